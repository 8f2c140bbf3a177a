// Package errorpanel renders the single panel shown when a lesson cannot
// be loaded. Nothing of the lesson is shown alongside it.
package errorpanel

import (
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/screen"
	"github.com/abhisek/lessonbook/internal/source"
	"github.com/abhisek/lessonbook/internal/ui/components"
	"github.com/abhisek/lessonbook/internal/ui/keys"
	"github.com/abhisek/lessonbook/internal/ui/layout"
	"github.com/abhisek/lessonbook/internal/ui/theme"
)

type Screen struct {
	err  error
	path string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

func New(err error) *Screen {
	s := &Screen{err: err}
	var fatal *source.FatalLoadError
	if errors.As(err, &fatal) {
		s.path = fatal.Path
	}
	return s
}

func (s *Screen) Title() string { return "Error" }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(msg, keys.Default.Back) {
		return s, tea.Quit
	}
	return s, nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Back)
}

// Message is the text shown in the panel.
func (s *Screen) Message() string {
	if s.err == nil {
		return "Unknown error"
	}
	var fatal *source.FatalLoadError
	if errors.As(s.err, &fatal) && fatal.Err != nil {
		return fatal.Err.Error()
	}
	return s.err.Error()
}

func (s *Screen) View(width, height int) string {
	body := []string{
		components.RenderMascot(components.MascotSad),
		"",
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Failed to load lesson data"),
		"",
	}
	if s.path != "" {
		body = append(body, theme.Subtitle.Render(s.path))
	}
	body = append(body,
		theme.Body.Render(s.Message()),
		"",
		theme.Hint.Render("Check the lesson path and try again."),
	)
	content := lipgloss.JoinVertical(lipgloss.Center, body...)
	return components.Panel(content, width, height,
		lipgloss.NewStyle().BorderForeground(theme.Error))
}
