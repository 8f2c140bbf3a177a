package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/ui/theme"
)

// MenuItem is one row of a Menu.
type MenuItem struct {
	Label    string
	Icon     string
	Disabled bool
}

// Menu is a vertical list with a cursor that skips disabled rows.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Up moves the cursor to the previous enabled row.
func (m *Menu) Up() bool {
	for i := m.Selected - 1; i >= 0; i-- {
		if !m.Items[i].Disabled {
			m.Selected = i
			return true
		}
	}
	return false
}

// Down moves the cursor to the next enabled row.
func (m *Menu) Down() bool {
	for i := m.Selected + 1; i < len(m.Items); i++ {
		if !m.Items[i].Disabled {
			m.Selected = i
			return true
		}
	}
	return false
}

// View renders the rows. The cursor is only drawn when focused.
func (m Menu) View(focused bool) string {
	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if item.Icon != "" {
			label = IconGlyph(item.Icon) + " " + label
		}
		switch {
		case item.Disabled:
			b.WriteString(theme.Disabled.Render("    " + label))
		case focused && i == m.Selected:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render("  ▸ " + label))
		default:
			b.WriteString(theme.Unselected.Render("    " + label))
		}
		if i < len(m.Items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// IconGlyph maps an icon class such as "fa-solid fa-gear" to a terminal
// glyph.
func IconGlyph(class string) string {
	for _, f := range strings.Fields(class) {
		if g, ok := iconGlyphs[strings.TrimPrefix(f, "fa-")]; ok {
			return g
		}
	}
	return "•"
}

var iconGlyphs = map[string]string{
	"gear":      "⚙",
	"gears":     "⚙",
	"cube":      "■",
	"cubes":     "■",
	"bolt":      "⚡",
	"eye":       "◉",
	"robot":     "☺",
	"star":      "★",
	"question":  "?",
	"check":     "✓",
	"flag":      "⚑",
	"lightbulb": "✦",
	"wrench":    "⚒",
}
