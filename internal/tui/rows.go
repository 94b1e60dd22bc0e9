package tui

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/blackwell-systems/booklog/internal/covers"
	"github.com/charmbracelet/lipgloss"
)

// Column width constraints
const (
	minTitleWidth  = 12
	maxTitleWidth  = 40
	minAuthorWidth = 8
	maxAuthorWidth = 24
	genreWidth     = 11
	columnGap      = 1
)

// statusPill renders the colored status tag for a book.
func statusPill(s book.Status) string {
	label := "[" + s.Label() + "]"
	switch s {
	case book.StatusCompleted:
		return stylePillDone.Render(label)
	case book.StatusReading:
		return stylePillReading.Render(label)
	}
	return stylePillPlain.Render(label)
}

// ratingPill renders the numeric rating tag.
func ratingPill(rating int) string {
	return stylePillPlain.Render(fmt.Sprintf("[%d/%d]", rating, book.MaxRating))
}

// starRow renders the five-position star control, filled up to rating.
func starRow(rating int) string {
	filled := strings.Repeat("★", rating)
	empty := strings.Repeat("☆", book.MaxRating-rating)
	return StyleStars.Render(filled) + StyleHelp.Render(empty)
}

// coverMark renders the one-cell cover area: a filled box for a cached
// cover, an outline when a lookup is still possible, and a dot when the
// book has no usable ISBN — the "no cover" placeholder.
func coverMark(b book.Book, cached bool) string {
	if cached {
		return lipgloss.NewStyle().Foreground(ColorGreen).Render("▣")
	}
	if covers.SanitizeISBN(b.ISBN) == "" {
		return StyleHelp.Render("·")
	}
	return StyleHelp.Render("▢")
}

// computeRowWidths splits the usable width between the title and author
// columns; genre gets a fixed slot.
func computeRowWidths(totalWidth int) (titleW, authorW int) {
	// prefix "› " + cover mark + gaps + genre + pills/stars tail
	const tail = 30
	usable := totalWidth - 4 - genreWidth - tail - columnGap*4
	if usable < minTitleWidth+minAuthorWidth {
		return minTitleWidth, minAuthorWidth
	}
	titleW = usable * 60 / 100
	if titleW > maxTitleWidth {
		titleW = maxTitleWidth
	}
	authorW = usable - titleW
	if authorW > maxAuthorWidth {
		authorW = maxAuthorWidth
	}
	if titleW < minTitleWidth {
		titleW = minTitleWidth
	}
	if authorW < minAuthorWidth {
		authorW = minAuthorWidth
	}
	return titleW, authorW
}

// renderRow renders one visible book as a single line.
func renderRow(b book.Book, selected, coverCached bool, totalWidth int) string {
	titleW, authorW := computeRowWidths(totalWidth)
	gap := strings.Repeat(" ", columnGap)

	prefix := "  "
	if selected {
		prefix = StyleHighlight.Render("›") + " "
	}

	titleCol := padOrTruncate(b.Title, titleW)
	authorCol := padOrTruncate(b.Author, authorW)
	genreCol := padOrTruncate(b.Genre, genreWidth)

	var titleStyled, authorStyled string
	if selected {
		titleStyled = StyleHighlight.Render(titleCol)
		authorStyled = lipgloss.NewStyle().Foreground(ColorYellow).Faint(true).Render(authorCol)
	} else {
		titleStyled = StyleNormal.Render(titleCol)
		authorStyled = StyleHelp.Render(authorCol)
	}

	return prefix + coverMark(b, coverCached) + gap + titleStyled + gap +
		authorStyled + gap + StyleGenre.Render(genreCol) + gap +
		statusPill(b.Status) + gap + ratingPill(b.Rating) + gap + starRow(b.Rating)
}
