package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/blackwell-systems/booklog/internal/confetti"
	"github.com/blackwell-systems/booklog/internal/covers"
	"github.com/blackwell-systems/booklog/internal/library"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	toastDuration = 1600 * time.Millisecond
	frameInterval = time.Second / 30
	maxConfettiH  = 8
)

// Messages internal to the browser.
type (
	toastTickMsg struct{ gen int }
	frameMsg     time.Time
	coverDoneMsg struct{}
	completedMsg library.Completion
)

// runningAnim pairs a confetti animation with its start instant.
type runningAnim struct {
	anim    *confetti.Animation
	started time.Time
}

// confirmState is a pending destructive action awaiting y/n.
type confirmState struct {
	prompt string
	kind   string // "delete" or "clear"
	id     string
}

// Browser is the interactive reading-list view. Every update re-derives the
// visible subset from the store and rebuilds the whole frame — collections
// are small, so a full rebuild beats incremental patching.
type Browser struct {
	store    *library.Store
	covers   *covers.Cache
	criteria library.Criteria
	sound    bool

	search    textinput.Model
	searching bool

	adding bool
	form   addForm

	confirm *confirmState

	cursor int

	toast    string
	toastGen int

	anims   []runningAnim
	ticking bool

	width, height int
	quitting      bool
}

// NewBrowser builds the browser model over a store.
func NewBrowser(store *library.Store, coverCache *covers.Cache, sound bool) Browser {
	search := textinput.New()
	search.Placeholder = "title or author"
	search.CharLimit = 100
	search.Width = 30
	search.Prompt = ""

	return Browser{
		store:    store,
		covers:   coverCache,
		criteria: library.DefaultCriteria(),
		sound:    sound,
		search:   search,
		width:    80,
		height:   24,
	}
}

func (m Browser) Init() tea.Cmd {
	return m.prefetchCovers()
}

// prefetchCovers warms the cover cache for the whole collection.
// Failures are expected (bad ISBN, offline) and simply leave placeholders.
func (m Browser) prefetchCovers() tea.Cmd {
	books := m.store.Books()
	return func() tea.Msg {
		for _, b := range books {
			if b.ISBN != "" {
				_, _ = m.covers.Fetch(b.ISBN)
			}
		}
		return coverDoneMsg{}
	}
}

func (m Browser) visible() []book.Book {
	return m.criteria.Apply(m.store.Books())
}

func (m *Browser) clampCursor(visibleLen int) {
	if m.cursor >= visibleLen {
		m.cursor = visibleLen - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// showToast replaces any active toast and restarts its dismissal timer.
func (m *Browser) showToast(msg string) tea.Cmd {
	m.toast = msg
	m.toastGen++
	gen := m.toastGen
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastTickMsg{gen: gen}
	})
}

// startCelebration spawns a confetti animation and, if enabled, the chime.
func (m *Browser) startCelebration(c library.Completion) tea.Cmd {
	h := m.height / 3
	if h > maxConfettiH {
		h = maxConfettiH
	}
	if h < 3 {
		h = 3
	}
	m.anims = append(m.anims, runningAnim{
		anim:    confetti.New(c.Title, m.width, h),
		started: time.Now(),
	})

	cmds := []tea.Cmd{m.showToast(fmt.Sprintf("Completed: %s 🎉", c.Title))}
	if !m.ticking {
		m.ticking = true
		cmds = append(cmds, frameTick())
	}
	if m.sound {
		cmds = append(cmds, func() tea.Msg {
			confetti.Chime(os.Stderr)
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// frameTick schedules the next animation frame. Each frame re-requests the
// next one until no animation remains.
func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, ra := range m.anims {
			h := m.height / 3
			if h > maxConfettiH {
				h = maxConfettiH
			}
			if h < 3 {
				h = 3
			}
			ra.anim.Resize(m.width, h)
		}
		return m, nil

	case completedMsg:
		return m, m.startCelebration(library.Completion(msg))

	case frameMsg:
		now := time.Time(msg)
		live := m.anims[:0]
		for _, ra := range m.anims {
			elapsed := now.Sub(ra.started)
			if ra.anim.Done(elapsed) {
				continue
			}
			ra.anim.Tick(elapsed)
			live = append(live, ra)
		}
		m.anims = live
		if len(m.anims) == 0 {
			m.ticking = false
			return m, nil
		}
		return m, frameTick()

	case toastTickMsg:
		if msg.gen == m.toastGen {
			m.toast = ""
		}
		return m, nil

	case coverDoneMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.adding {
		form, cmd, _ := m.form.update(msg)
		m.form = form
		return m, cmd
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.criteria.Search = m.search.Value()
		return m, cmd
	}
	return m, nil
}

func (m Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Add form captures everything while open.
	if m.adding {
		return m.handleFormKey(msg)
	}

	// Pending confirmation captures y/n/esc.
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	// Search editing captures everything except exit keys.
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.criteria.Search = ""
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.criteria.Search = m.search.Value()
			m.clampCursor(len(m.visible()))
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.cursor--
		m.clampCursor(len(m.visible()))
		return m, nil

	case "down", "j":
		m.cursor++
		m.clampCursor(len(m.visible()))
		return m, nil

	case "/":
		m.searching = true
		return m, m.search.Focus()

	case "f":
		m.criteria.Status = nextStatusFilter(m.criteria.Status)
		m.clampCursor(len(m.visible()))
		return m, nil

	case "o":
		m.criteria.Sort = m.criteria.Sort.Next()
		return m, nil

	case "a":
		m.adding = true
		m.form = newAddForm()
		return m, textinput.Blink

	case "S":
		added := m.store.Seed()
		m.clampCursor(len(m.visible()))
		cmds := []tea.Cmd{
			m.showToast(fmt.Sprintf("Added %d sample books.", len(added))),
			m.prefetchCovers(),
		}
		return m, tea.Batch(cmds...)

	case "s":
		if b, ok := m.selected(); ok {
			_ = m.store.SetStatus(b.ID, b.Status.Next())
			// The completed transition raises its own toast via the
			// store callback; only plain changes toast here.
			if b.Status.Next() != book.StatusCompleted {
				return m, m.showToast("Status updated.")
			}
		}
		return m, nil

	case "0", "1", "2", "3", "4", "5":
		if b, ok := m.selected(); ok {
			n := int(msg.String()[0] - '0')
			if err := m.store.SetRating(b.ID, n); err == nil {
				return m, m.showToast(fmt.Sprintf("Rated %d/%d.", n, book.MaxRating))
			}
		}
		return m, nil

	case "d":
		if b, ok := m.selected(); ok {
			m.confirm = &confirmState{
				prompt: fmt.Sprintf("Delete %q? (y/n)", b.Title),
				kind:   "delete",
				id:     b.ID,
			}
		}
		return m, nil

	case "C":
		if m.store.Len() > 0 {
			m.confirm = &confirmState{
				prompt: "Clear ALL books? This cannot be undone. (y/n)",
				kind:   "clear",
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Browser) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd, action := m.form.update(msg)
	m.form = form

	switch action {
	case formCancel:
		m.adding = false
		return m, nil

	case formSubmit:
		added, err := m.store.Add(m.form.Draft())
		if err != nil {
			// Keep the form open with its contents so the user can fix it.
			m.form.err = err
			return m, nil
		}
		m.adding = false
		m.cursor = 0
		cmds := []tea.Cmd{m.showToast("Added.")}
		if added.ISBN != "" {
			isbn := added.ISBN
			cmds = append(cmds, func() tea.Msg {
				_, _ = m.covers.Fetch(isbn)
				return coverDoneMsg{}
			})
		}
		return m, tea.Batch(cmds...)
	}
	return m, cmd
}

func (m Browser) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		c := m.confirm
		m.confirm = nil
		switch c.kind {
		case "delete":
			if m.store.Delete(c.id) {
				m.clampCursor(len(m.visible()))
				return m, m.showToast("Deleted.")
			}
		case "clear":
			if m.store.Clear() {
				m.cursor = 0
				return m, m.showToast("Cleared.")
			}
		}
		return m, nil

	case "n", "N", "esc":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m Browser) selected() (book.Book, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.cursor >= len(visible) {
		return book.Book{}, false
	}
	return visible[m.cursor], true
}

func nextStatusFilter(current string) string {
	cycle := []string{
		library.FilterAll,
		string(book.StatusToRead),
		string(book.StatusReading),
		string(book.StatusCompleted),
	}
	for i, f := range cycle {
		if f == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return library.FilterAll
}

func filterLabel(f string) string {
	if f == "" || f == library.FilterAll {
		return "All"
	}
	return book.Status(f).Label()
}

func (m Browser) View() string {
	if m.quitting {
		return ""
	}
	if m.adding {
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.view())
	}

	visible := m.visible()

	var out string

	// Confetti drawing surface: shown above everything while running,
	// hidden the moment the last animation finishes.
	if len(m.anims) > 0 {
		out += m.anims[len(m.anims)-1].anim.Frame() + "\n"
	}

	out += StyleHeader.Render("booklog — Personal Reading List") + "\n\n"

	searchView := m.search.View()
	if !m.searching && m.search.Value() == "" {
		searchView = StyleHelp.Render("(press / to search)")
	}
	out += fmt.Sprintf("%s %s   %s %s   %s %s\n",
		StyleHelp.Render("Search:"), searchView,
		StyleHelp.Render("Filter:"), StyleNormal.Render(filterLabel(m.criteria.Status)),
		StyleHelp.Render("Sort:"), StyleNormal.Render(m.criteria.Sort.Label()),
	)
	out += StyleHelp.Render(fmt.Sprintf("%d shown • %d total", len(visible), m.store.Len())) + "\n\n"

	if len(visible) == 0 {
		out += StyleHelp.Render("  No books here yet. Press 'a' to add one, or 'S' to load samples.") + "\n"
	}
	for i, b := range visible {
		out += renderRow(b, i == m.cursor, m.covers.Has(b.ISBN), m.width) + "\n"
	}

	out += "\n"
	if m.confirm != nil {
		out += StyleHighlight.Render("  "+m.confirm.prompt) + "\n"
	} else if m.toast != "" {
		out += StyleToast.Render("  "+m.toast) + "\n"
	} else {
		out += RenderFooterBar(browserShortcuts) + "\n"
	}
	return out
}

// RunBrowser launches the interactive reading-list browser. Completed
// transitions reported by the store are forwarded into the program so the
// celebration can react to them.
func RunBrowser(store *library.Store, coverCache *covers.Cache, sound bool) error {
	m := NewBrowser(store, coverCache, sound)
	p := tea.NewProgram(m, tea.WithAltScreen())

	store.OnCompleted(func(c library.Completion) {
		go p.Send(completedMsg(c))
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
