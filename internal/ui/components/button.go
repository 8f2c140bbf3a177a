package components

import (
	"github.com/abhisek/lessonbook/internal/ui/theme"
)

// Button is a labelled action that can be disabled.
type Button struct {
	Label   string
	Enabled bool
}

func NewButton(label string, enabled bool) Button {
	return Button{Label: label, Enabled: enabled}
}

func (b Button) View() string {
	if b.Enabled {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
