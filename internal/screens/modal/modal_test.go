package modal

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lessonbook/internal/compose"
	"github.com/abhisek/lessonbook/internal/router"
)

type fakeProbe map[string]bool

func (f fakeProbe) Exists(_ context.Context, path string) (bool, error) {
	return f[path], nil
}

func TestModal_TextContent(t *testing.T) {
	s := New(context.Background(), compose.Modal{Title: "Gears", Content: "Gears turn together."}, nil)

	assert.Nil(t, s.Init())
	assert.Equal(t, "Gears", s.Title())
	view := s.View(100, 30)
	assert.Contains(t, view, "Gears")
	assert.Contains(t, view, "Gears turn together.")
}

func TestModal_ImageChecked(t *testing.T) {
	url := "../assets/learn/gear.png"
	probe := fakeProbe{url: true}
	s := New(context.Background(), compose.Modal{Title: "Gear", Content: url, Kind: compose.ModalImage}, probe)

	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Equal(t, imageFound, s.image)
	assert.NotContains(t, s.View(100, 30), "image unavailable")
}

func TestModal_ImageMissing(t *testing.T) {
	s := New(context.Background(), compose.Modal{Title: "Gear", Content: "x.png", Kind: compose.ModalImage}, fakeProbe{})

	s.Update(s.Init()())
	assert.Equal(t, imageMissing, s.image)
	assert.Contains(t, s.View(100, 30), "image unavailable")

	// Results for another image are ignored.
	s.Update(imageCheckedMsg{url: "y.png", ok: true})
	assert.Equal(t, imageMissing, s.image)
}

func TestModal_EscPops(t *testing.T) {
	s := New(context.Background(), compose.Modal{Title: "Gears"}, nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestModal_Scroll(t *testing.T) {
	long := strings.Repeat("line\n", 40)
	s := New(context.Background(), compose.Modal{Title: "Long", Content: long}, nil)

	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	assert.Equal(t, 2, s.offset)
	s.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 1, s.offset)

	// View clamps the offset to the content.
	for range 100 {
		s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	}
	s.View(100, 30)
	assert.Less(t, s.offset, 40)
}
