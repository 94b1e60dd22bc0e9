package tui

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/booklog/internal/book"
	"github.com/blackwell-systems/booklog/internal/library"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formAction is what the add form asks the browser to do after an update.
type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldISBN
	fieldGenre
	fieldStatus
	fieldCount
)

// addForm collects the fields for a new book. Genre and status are pickers
// over the fixed sets; the rest are free text.
type addForm struct {
	inputs  []textinput.Model // title, author, isbn
	focused int
	genre   int
	status  int
	err     error
}

func newAddForm() addForm {
	f := addForm{inputs: make([]textinput.Model, 3)}

	const fieldWidth = 42

	f.inputs[fieldTitle] = textinput.New()
	f.inputs[fieldTitle].Placeholder = "Book title"
	f.inputs[fieldTitle].Focus()
	f.inputs[fieldTitle].CharLimit = 200
	f.inputs[fieldTitle].Width = fieldWidth
	f.inputs[fieldTitle].Prompt = "│ "

	f.inputs[fieldAuthor] = textinput.New()
	f.inputs[fieldAuthor].Placeholder = "Author name"
	f.inputs[fieldAuthor].CharLimit = 100
	f.inputs[fieldAuthor].Width = fieldWidth
	f.inputs[fieldAuthor].Prompt = "│ "

	f.inputs[fieldISBN] = textinput.New()
	f.inputs[fieldISBN].Placeholder = "ISBN (optional)"
	f.inputs[fieldISBN].CharLimit = 20
	f.inputs[fieldISBN].Width = fieldWidth
	f.inputs[fieldISBN].Prompt = "│ "

	return f
}

// Draft returns the current form contents as a store draft.
func (f addForm) Draft() library.Draft {
	return library.Draft{
		Title:  f.inputs[fieldTitle].Value(),
		Author: f.inputs[fieldAuthor].Value(),
		Genre:  book.Genres[f.genre],
		Status: book.Statuses[f.status],
		ISBN:   f.inputs[fieldISBN].Value(),
	}
}

func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd, formAction) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return f, nil, formCancel

		case "enter":
			return f, nil, formSubmit

		case "tab", "shift+tab", "up", "down":
			if msg.String() == "up" || msg.String() == "shift+tab" {
				f.focused--
			} else {
				f.focused++
			}
			if f.focused < 0 {
				f.focused = fieldCount - 1
			} else if f.focused >= fieldCount {
				f.focused = 0
			}

			cmds := make([]tea.Cmd, len(f.inputs))
			for i := range f.inputs {
				if i == f.focused {
					cmds[i] = f.inputs[i].Focus()
				} else {
					f.inputs[i].Blur()
				}
			}
			return f, tea.Batch(cmds...), formNone

		case "left", "right":
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			switch f.focused {
			case fieldGenre:
				f.genre = (f.genre + delta + len(book.Genres)) % len(book.Genres)
				return f, nil, formNone
			case fieldStatus:
				f.status = (f.status + delta + len(book.Statuses)) % len(book.Statuses)
				return f, nil, formNone
			}
		}
	}

	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}
	return f, tea.Batch(cmds...), formNone
}

func (f addForm) view() string {
	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)

	const w = 54
	sep := sepStyle.Render(strings.Repeat("─", w))

	label := func(i int, text string) string {
		if i == f.focused {
			return formLabelActive.Render("› " + text)
		}
		return formLabel.Render(text)
	}
	picker := func(value string, active bool) string {
		v := "‹ " + value + " ›"
		if active {
			return StyleHighlight.Render(v)
		}
		return StyleNormal.Render(v)
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render("Add Book"))
	b.WriteString("\n\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	if f.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", f.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(label(fieldTitle, "Title"))
	b.WriteString(f.inputs[fieldTitle].View())
	b.WriteString("\n\n")
	b.WriteString(label(fieldAuthor, "Author"))
	b.WriteString(f.inputs[fieldAuthor].View())
	b.WriteString("\n\n")
	b.WriteString(label(fieldISBN, "ISBN"))
	b.WriteString(f.inputs[fieldISBN].View())
	b.WriteString("\n\n")
	b.WriteString(label(fieldGenre, "Genre"))
	b.WriteString(picker(book.Genres[f.genre], f.focused == fieldGenre))
	b.WriteString("\n\n")
	b.WriteString(label(fieldStatus, "Status"))
	b.WriteString(picker(book.Statuses[f.status].Label(), f.focused == fieldStatus))
	b.WriteString("\n\n")

	b.WriteString(sep)
	b.WriteString("\n")
	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "tab", Label: "Tab/↑↓ navigate"},
		{Key: "arrows", Label: "←→ pick"},
		{Key: "enter", Label: "enter add"},
		{Key: "esc", Label: "esc cancel"},
	}))
	b.WriteString("\n")
	return b.String()
}
