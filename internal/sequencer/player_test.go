package sequencer

import (
	"testing"
	"time"
)

func TestPlayer_StartReplacesPrevious(t *testing.T) {
	p := NewPlayer()
	now := time.Now()

	first := Compile([]Step{{Action: ActionMove, Y: 10, Duration: 100}})
	second := Compile([]Step{{Action: ActionMove, Y: 99, Duration: 100}})

	g1 := p.Start(0, first, now)
	g2 := p.Start(0, second, now)

	if p.Active(0, g1) {
		t.Error("first timeline should be discarded")
	}
	if !p.Active(0, g2) {
		t.Error("second timeline should be active")
	}
	if p.Playing() != 1 {
		t.Errorf("Playing = %d, want 1", p.Playing())
	}

	f, ok := p.Frame(0, now.Add(second.Duration()-time.Millisecond))
	if !ok || f.RobotY != 99 {
		t.Errorf("frame = %+v (ok=%v), want RobotY 99", f, ok)
	}
}

func TestPlayer_IndependentViews(t *testing.T) {
	p := NewPlayer()
	now := time.Now()
	tl := Compile(nil)

	g0 := p.Start(0, tl, now)
	g1 := p.Start(1, tl, now)
	if !p.Active(0, g0) || !p.Active(1, g1) {
		t.Error("both views should be playing")
	}

	p.Stop(0)
	if p.Active(0, g0) {
		t.Error("view 0 should be stopped")
	}
	if _, ok := p.Frame(0, now); ok {
		t.Error("stopped view should not produce frames")
	}
	if p.Playing() != 1 {
		t.Errorf("Playing = %d, want 1", p.Playing())
	}
}
