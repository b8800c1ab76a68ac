package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/satlearn/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a 0-100 score.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Score      float64
	Width      int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, labelWidth int, score float64, width int) ProgressBar {
	return ProgressBar{
		Label:      label,
		LabelWidth: labelWidth,
		Score:      score,
		Width:      width,
	}
}

// View renders the progress bar followed by the numeric score.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		label := p.Label
		if p.LabelWidth > 0 {
			label = Truncate(label, p.LabelWidth)
			label += strings.Repeat(" ", max(0, p.LabelWidth-lipgloss.Width(label)))
		}
		result += theme.Body.Render(label) + "  "
	}

	barWidth := p.Width
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Score / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := theme.ForCompetency(p.Score).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("░", empty))

	result += filledStr + emptyStr
	result += fmt.Sprintf(" %5.1f", p.Score)
	return result
}

// Truncate shortens s to width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
