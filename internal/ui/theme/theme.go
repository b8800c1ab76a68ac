package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette for terminal reports.
var (
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary).
		MarginTop(1)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Strong = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Middling = lipgloss.NewStyle().
			Foreground(Warning)

	Weak = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// ForCompetency picks the state style for a competency score.
func ForCompetency(c float64) lipgloss.Style {
	switch {
	case c > 75:
		return Strong
	case c >= 60:
		return Middling
	default:
		return Weak
	}
}
