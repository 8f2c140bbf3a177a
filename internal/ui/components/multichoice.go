package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/ui/theme"
)

// MultiChoice is one question with a row of options. Chosen is -1 until
// an option is picked; the choice can be changed until Locked.
type MultiChoice struct {
	Question string
	Options  []string
	Chosen   int
	Locked   bool
}

func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{Question: question, Options: options, Chosen: -1}
}

// Choose picks option i unless locked or out of range.
func (m *MultiChoice) Choose(i int) bool {
	if m.Locked || i < 0 || i >= len(m.Options) || i == m.Chosen {
		return false
	}
	m.Chosen = i
	return true
}

// View renders the question. cursor is the option under the cursor, or
// -1 when the question is not focused.
func (m MultiChoice) View(cursor int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n")

	for i, opt := range m.Options {
		mark := "( )"
		if i == m.Chosen {
			mark = "(●)"
		}
		prefix := "  "
		if i == cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, mark, opt)

		switch {
		case i == cursor && !m.Locked:
			b.WriteString(theme.Selected.Render(line))
		case i == m.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case m.Locked:
			b.WriteString(theme.Disabled.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		if i < len(m.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
