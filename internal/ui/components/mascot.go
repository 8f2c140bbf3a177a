package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/ui/theme"
)

// MascotVariant selects which robot art to display.
type MascotVariant int

const (
	MascotIdle MascotVariant = iota
	MascotCheering
	MascotSad
)

const mascotIdle = `╭─────╮
│ ◉ ◉ │
│  ▽  │
╰┬───┬╯
 ╘═══╛`

const mascotCheering = `╭─────╮
│ ★ ★ │
│  ▿  │
╰┬───┬╯
\╘═══╛/`

const mascotSad = `╭─────╮
│ ◉ ◉ │ ?
│  ~  │
╰┬───┬╯
 ╘═══╛`

// RenderMascot returns the robot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCheering:
		art, fg = mascotCheering, theme.Highlight
	case MascotSad:
		art, fg = mascotSad, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
