// Package loading shows a spinner while the lesson bundle is fetched and
// then replaces itself with the lesson page or the error panel.
package loading

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/router"
	"github.com/abhisek/lessonbook/internal/screen"
	"github.com/abhisek/lessonbook/internal/source"
	"github.com/abhisek/lessonbook/internal/ui/components"
	"github.com/abhisek/lessonbook/internal/ui/theme"
)

// LoadFunc fetches the lesson bundle.
type LoadFunc func(ctx context.Context) (*source.Bundle, error)

type loadedMsg struct {
	bundle *source.Bundle
	err    error
}

var sparkleFrames = []string{"★", "✦", "·"}

// Screen is the startup screen.
type Screen struct {
	ctx      context.Context
	load     LoadFunc
	onLoaded func(*source.Bundle) screen.Screen
	onError  func(error) screen.Screen
	origin   string

	spinner spinner.Model
	ticks   int
	done    bool
}

var _ screen.Screen = (*Screen)(nil)

// New creates a loading screen. origin is only displayed.
func New(ctx context.Context, origin string, load LoadFunc, onLoaded func(*source.Bundle) screen.Screen, onError func(error) screen.Screen) *Screen {
	return &Screen{
		ctx:      ctx,
		load:     load,
		onLoaded: onLoaded,
		onError:  onError,
		origin:   origin,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Highlight)),
		),
	}
}

func (s *Screen) Title() string { return "Loading" }

func (s *Screen) Init() tea.Cmd {
	ctx, load := s.ctx, s.load
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		bundle, err := load(ctx)
		return loadedMsg{bundle: bundle, err: err}
	})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if s.done {
			return s, nil
		}
		s.done = true
		var next screen.Screen
		if msg.err != nil {
			next = s.onError(msg.err)
		} else {
			next = s.onLoaded(msg.bundle)
		}
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case spinner.TickMsg:
		if s.done {
			return s, nil
		}
		s.ticks++
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	mascot := components.RenderMascot(components.MascotIdle)

	sparkle := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(sparkleFrames[s.ticks%len(sparkleFrames)])
	lines := strings.Split(mascot, "\n")
	if len(lines) > 1 {
		lines[1] = sparkle + "  " + lines[1] + "  " + sparkle
		for i := range lines {
			if i != 1 {
				lines[i] = "   " + lines[i]
			}
		}
	}

	sections := []string{
		strings.Join(lines, "\n"),
		"",
		RenderBanner(width),
		"",
		s.spinner.View() + " " + theme.Body.Render("Loading lesson..."),
	}
	if s.origin != "" {
		sections = append(sections, theme.Hint.Render(s.origin))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
