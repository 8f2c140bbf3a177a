package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lessonbook/internal/screen"
)

type pingMsg struct{}

// stubScreen counts the messages it receives.
type stubScreen struct {
	title   string
	initRan bool
	pings   int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(pingMsg); ok {
		s.pings++
	}
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushAndPop(t *testing.T) {
	lesson := &stubScreen{title: "lesson"}
	r := New(lesson)

	modal := &stubScreen{title: "modal"}
	r.Update(PushScreenMsg{Screen: modal})
	if r.Depth() != 2 || r.Active() != modal {
		t.Fatalf("expected modal on top, depth %d", r.Depth())
	}
	if !modal.initRan {
		t.Error("expected Init() to run on pushed screen")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != lesson {
		t.Fatalf("expected lesson on top, depth %d", r.Depth())
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&stubScreen{title: "loading"})
	r.Pop()
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "loading"})

	lesson := &stubScreen{title: "lesson"}
	r.Update(ReplaceScreenMsg{Screen: lesson})
	if r.Depth() != 1 || r.Active().Title() != "lesson" {
		t.Fatalf("expected lesson alone, got %q at depth %d", r.Active().Title(), r.Depth())
	}
	if !lesson.initRan {
		t.Error("expected Init() to run on replacement")
	}
}

func TestReplaceOnlyTop(t *testing.T) {
	r := New(&stubScreen{title: "lesson"})
	r.Push(&stubScreen{title: "modal"})
	r.Replace(&stubScreen{title: "other modal"})

	if r.Depth() != 2 || r.Active().Title() != "other modal" {
		t.Fatalf("unexpected stack: %q at depth %d", r.Active().Title(), r.Depth())
	}
}

func TestUpdateGoesToActiveOnly(t *testing.T) {
	lesson := &stubScreen{title: "lesson"}
	modal := &stubScreen{title: "modal"}
	r := New(lesson)
	r.Push(modal)

	r.Update(pingMsg{})
	if lesson.pings != 0 || modal.pings != 1 {
		t.Errorf("got lesson=%d modal=%d", lesson.pings, modal.pings)
	}
}

func TestBroadcastReachesCoveredScreens(t *testing.T) {
	lesson := &stubScreen{title: "lesson"}
	modal := &stubScreen{title: "modal"}
	r := New(lesson)
	r.Push(modal)

	r.Broadcast(pingMsg{})
	if lesson.pings != 1 || modal.pings != 1 {
		t.Errorf("got lesson=%d modal=%d", lesson.pings, modal.pings)
	}
}

func TestView(t *testing.T) {
	r := New(&stubScreen{title: "lesson"})
	if got := r.View(80, 24); got != "lesson" {
		t.Errorf("got %q", got)
	}
}
