// Package keys defines the viewer key bindings.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/lessonbook/internal/ui/layout"
)

// KeyMap holds every binding of the viewer.
type KeyMap struct {
	// Focus
	NextBlock key.Binding
	PrevBlock key.Binding

	// Build guide
	NextStep key.Binding
	PrevStep key.Binding
	Part     key.Binding

	// Lists and report
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Submit key.Binding

	// Page
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Mute       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

var Default = KeyMap{
	NextBlock: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next block"),
	),
	PrevBlock: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous block"),
	),
	NextStep: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next step"),
	),
	PrevStep: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous step"),
	),
	Part: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "part"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Submit: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "send report"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j/k", "scroll"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("j/k", "scroll"),
	),
	Mute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "sound"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// PartIndex returns the zero-based part selected by a digit key.
func PartIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}

// Hints converts bindings into footer hints, skipping disabled ones and
// repeated help keys.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	var (
		out  []layout.KeyHint
		seen = map[string]bool{}
	)
	for _, b := range bindings {
		h := b.Help()
		if !b.Enabled() || h.Key == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
