package loading

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/ui/theme"
)

const bannerArt = `
 █   █▀▀ █▀▀ █▀▀ █▀█ █▄ █ █▄▄ █▀█ █▀█ █▄▀
 █▄▄ ██▄ ▄▄█ ▄▄█ █▄█ █ ▀█ █▄█ █▄█ █▄█ █ █`

const bannerCompact = "L E S S O N B O O K"

// RenderBanner returns the title banner, or a compact line on terminals
// narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 48 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
