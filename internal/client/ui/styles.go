// Package ui renders the client's views as styled terminal text. Everything
// here is pure: components take data and return strings.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#1f4e79")
	Accent      = lipgloss.Color("#2e86de")
	Muted       = lipgloss.Color("#8a8f98")
	Border      = lipgloss.Color("#c8ccd2")
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#43a047")
	Warning     = lipgloss.Color("#ffb300")
	Info        = lipgloss.Color("#2196f3")
)

type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Card     lipgloss.Style
	Header   lipgloss.Style
	Sidebar  lipgloss.Style
	Active   lipgloss.Style
	Badge    lipgloss.Style
	Draft    lipgloss.Style
	Inactive lipgloss.Style
	Modal    lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(Muted).Italic(true),
		Body:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(Muted),
		Bold:     lipgloss.NewStyle().Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(Primary).
			Bold(true).
			Padding(0, 1),
		Sidebar: lipgloss.NewStyle().
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Border).
			PaddingRight(1),
		Active:   lipgloss.NewStyle().Foreground(Accent).Bold(true),
		Badge:    lipgloss.NewStyle().Foreground(Accent),
		Draft:    lipgloss.NewStyle().Foreground(Warning),
		Inactive: lipgloss.NewStyle().Foreground(Destructive),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Destructive).
			Padding(0, 2),

		Success: lipgloss.NewStyle().Foreground(Success).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(Warning).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(Info),
	}
}

// truncate cuts s to at most n cells, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
