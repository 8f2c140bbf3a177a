// Package app hosts the root bubbletea model: the screen router framed by
// a header and a footer.
package app

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lessonbook/internal/router"
	"github.com/abhisek/lessonbook/internal/screen"
	"github.com/abhisek/lessonbook/internal/ui/keys"
	"github.com/abhisek/lessonbook/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// NewAppModel starts the router at initial.
func NewAppModel(initial screen.Screen) AppModel {
	return AppModel{router: router.New(initial)}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Default.Quit) {
			return m, tea.Quit
		}
		return m, m.router.Update(msg)

	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		return m, m.router.Update(msg)
	}

	// Background results may belong to a screen under a modal.
	return m, m.router.Broadcast(msg)
}

func (m AppModel) hints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return keys.Hints(keys.Default.Back, keys.Default.Quit)
	}
	return keys.Hints(keys.Default.Quit)
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame, or nothing before the first resize.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	status := ""
	if p, ok := active.(screen.StatusProvider); ok {
		status = p.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)
	footer := layout.RenderFooter(m.hints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the program at initial and blocks until it quits or ctx is
// cancelled.
func Run(ctx context.Context, initial screen.Screen) error {
	p := tea.NewProgram(NewAppModel(initial), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
