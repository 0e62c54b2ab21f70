package cli

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Quote   lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff7f50")).
			Bold(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5555")).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50fa7b")),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272a4")),

		Quote: lipgloss.NewStyle().
			Italic(true),
	}
}
