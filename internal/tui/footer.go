package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShortcutEntry pairs a trigger key with the display label for the footer.
type ShortcutEntry struct {
	Key   string
	Label string
}

// browserShortcuts is the footer for the main browser view.
var browserShortcuts = []ShortcutEntry{
	{Key: "a", Label: "a add"},
	{Key: "/", Label: "/ search"},
	{Key: "f", Label: "f filter"},
	{Key: "o", Label: "o sort"},
	{Key: "s", Label: "s status"},
	{Key: "1-5", Label: "1-5 rate"},
	{Key: "d", Label: "d delete"},
	{Key: "q", Label: "q quit"},
}

// RenderFooterBar renders a footer bar with shortcut labels.
func RenderFooterBar(shortcuts []ShortcutEntry) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	parts := make([]string, len(shortcuts))
	for i, sc := range shortcuts {
		parts[i] = dimStyle.Render(sc.Label)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, dimStyle.Render(" • ")))
}
