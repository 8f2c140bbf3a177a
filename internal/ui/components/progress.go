package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/ui/theme"
)

// StepProgress shows how far through a build part the learner is.
// Step is 1-based; Total is zero while the part is still being probed.
type StepProgress struct {
	Step  int
	Total int
	Width int
}

// Fraction returns the filled share of the bar, 0 when nothing is known.
func (p StepProgress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Step)/float64(p.Total), 0), 1)
}

// Label is the caption drawn before the bar.
func (p StepProgress) Label() string {
	if p.Total <= 0 {
		return "Step -/-"
	}
	return fmt.Sprintf("Step %d/%d", p.Step, p.Total)
}

func (p StepProgress) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label()) + "  "

	barWidth := max(p.Width-lipgloss.Width(label), 4)
	filled := int(float64(barWidth) * p.Fraction())
	return label +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
}
