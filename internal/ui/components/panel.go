package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/ui/theme"
)

// ContentWidth is the width every block card is rendered at, so the page
// reads as one column.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-4, 20), 96)
}

// Panel centers content inside a double border filling width x height.
// Loading and error screens use it.
func Panel(content string, width, height int, color lipgloss.Style) string {
	return color.
		Border(lipgloss.DoubleBorder()).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// BlockCard frames a page block. The focused block gets the highlight
// border and a marker before its title.
func BlockCard(title, body string, width int, focused bool) string {
	style := theme.Card
	heading := theme.Title.Render(title)
	if focused {
		style = theme.FocusedCard
		heading = theme.Selected.Render("▸ " + title)
	}
	if title == "" {
		return style.Width(width).Render(body)
	}
	return style.Width(width).Render(heading + "\n\n" + body)
}

// StepButton renders a previous/next control of the build guide.
func StepButton(label string, enabled bool) string {
	if !enabled {
		return lipgloss.NewStyle().
			Foreground(theme.Border).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(label)
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Padding(0, 1).
		Render(label)
}
