// Package layout renders the frame around every screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/ui/theme"
)

// The lesson page needs room for a card plus its step buttons.
const (
	MinWidth  = 60
	MinHeight = 20
)

const brand = "LESSON BOOK"

// KeyHint is a key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" notice.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("This lesson needs a bigger window.\n\n%d x %d or more, please.\nNow: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Body.Render(msg))
}

// RenderHeader renders the brand bar. The screen title sits after the
// brand and status, when set, is pinned to the right edge.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Highlight).Bold(true).
		Padding(0, 1).Render(brand)
	if title != "" {
		left += " " + theme.Body.Bold(true).Render(title)
	}
	right := ""
	if status != "" {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render(status) + " "
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("━", max(width, 0)))
	return lipgloss.NewStyle().MaxWidth(width).Render(bar) + "\n" + rule
}

// RenderFooter renders the key hints as chips, wrapping onto a second
// line when they do not fit.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.TextDim).Padding(0, 1)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var lines []string
	line := ""
	for _, h := range hints {
		chip := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		if line != "" && lipgloss.Width(line)+2+lipgloss.Width(chip) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += "  "
		}
		line += chip
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// ContentHeight is the height left for the screen between header and
// footer.
func ContentHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame stacks header, content and footer, padding the content so
// the footer stays on the last rows.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		MaxHeight(ContentHeight(header, footer, height)).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
