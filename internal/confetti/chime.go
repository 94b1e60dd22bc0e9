package confetti

import (
	"fmt"
	"io"
)

// Chime emits a single short audible cue via the terminal bell. Sound is
// best-effort: write errors are swallowed and the celebration is unaffected.
func Chime(w io.Writer) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprint(w, "\a")
}
