// Package modal shows the detail of a learn item above the lesson page.
package modal

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/compose"
	"github.com/abhisek/lessonbook/internal/discovery"
	"github.com/abhisek/lessonbook/internal/router"
	"github.com/abhisek/lessonbook/internal/screen"
	"github.com/abhisek/lessonbook/internal/ui/keys"
	"github.com/abhisek/lessonbook/internal/ui/layout"
	"github.com/abhisek/lessonbook/internal/ui/theme"
)

type imageStatus int

const (
	imageUnknown imageStatus = iota
	imageFound
	imageMissing
)

type imageCheckedMsg struct {
	url string
	ok  bool
}

// Screen renders one compose.Modal. Image modals check that their asset
// exists; a missing image is shown dimmed.
type Screen struct {
	ctx   context.Context
	modal compose.Modal
	probe discovery.Exister

	image  imageStatus
	offset int
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New creates a modal screen. probe may be nil, in which case images are
// never checked.
func New(ctx context.Context, m compose.Modal, probe discovery.Exister) *Screen {
	return &Screen{ctx: ctx, modal: m, probe: probe}
}

func (s *Screen) Title() string { return s.modal.Title }

func (s *Screen) Init() tea.Cmd {
	if s.modal.Kind != compose.ModalImage || s.probe == nil {
		return nil
	}
	ctx, probe, url := s.ctx, s.probe, s.modal.Content
	return func() tea.Msg {
		ok, err := probe.Exists(ctx, url)
		return imageCheckedMsg{url: url, ok: ok && err == nil}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case imageCheckedMsg:
		if msg.url != s.modal.Content {
			return s, nil
		}
		s.image = imageMissing
		if msg.ok {
			s.image = imageFound
		}

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Default.Back, keys.Default.Select):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, keys.Default.ScrollDown, keys.Default.Down):
			s.offset++
		case key.Matches(msg, keys.Default.ScrollUp, keys.Default.Up):
			if s.offset > 0 {
				s.offset--
			}
		}
	}
	return s, nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.ScrollDown, keys.Default.Back)
}

func (s *Screen) body(width int) string {
	if s.modal.Kind != compose.ModalImage {
		return theme.Body.Width(width).Render(s.modal.Content)
	}
	line := "▣ " + s.modal.Content
	switch s.image {
	case imageMissing:
		return theme.Dimmed.Render(line) + "\n" + theme.Hint.Render("image unavailable")
	case imageFound:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)
	default:
		return theme.Body.Render(line)
	}
}

func (s *Screen) View(width, height int) string {
	boxWidth := min(max(width-8, 30), 80)
	inner := boxWidth - 4

	lines := strings.Split(s.body(inner), "\n")
	visible := max(height-8, 3)
	if max(len(lines)-visible, 0) < s.offset {
		s.offset = max(len(lines)-visible, 0)
	}
	lines = lines[s.offset:min(len(lines), s.offset+visible)]

	content := theme.Title.Render(s.modal.Title) + "\n\n" + strings.Join(lines, "\n")
	box := theme.FocusedCard.Width(boxWidth).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
