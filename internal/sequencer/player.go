package sequencer

import "time"

// Player tracks the running timeline of each mission view. A view has at
// most one active timeline; starting a new one discards the old.
type Player struct {
	runs map[int]*run
	gen  int
}

type run struct {
	timeline Timeline
	started  time.Time
	gen      int
}

// NewPlayer returns an idle Player.
func NewPlayer() *Player {
	return &Player{runs: make(map[int]*run)}
}

// Start stops any timeline playing in view and begins tl at now. The
// returned generation identifies this run; ticks carrying an older
// generation belong to a discarded timeline.
func (p *Player) Start(view int, tl Timeline, now time.Time) int {
	p.Stop(view)
	p.gen++
	p.runs[view] = &run{timeline: tl, started: now, gen: p.gen}
	return p.gen
}

// Stop discards the timeline playing in view, if any.
func (p *Player) Stop(view int) {
	delete(p.runs, view)
}

// Active reports whether gen is the current run of view.
func (p *Player) Active(view, gen int) bool {
	r, ok := p.runs[view]
	return ok && r.gen == gen
}

// Playing returns the number of views with a running timeline.
func (p *Player) Playing() int {
	return len(p.runs)
}

// Frame evaluates the timeline of view at now. Playback loops forever.
func (p *Player) Frame(view int, now time.Time) (Frame, bool) {
	r, ok := p.runs[view]
	if !ok {
		return Frame{}, false
	}
	return r.timeline.At(now.Sub(r.started)), true
}
