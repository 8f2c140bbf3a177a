package sequencer

import "time"

// Kind identifies what a timeline entry animates.
type Kind string

const (
	KindMove  Kind = "move"
	KindHold  Kind = "hold"
	KindBeam  Kind = "beam"
	KindPopup Kind = "popup"
)

// Entry is one scheduled animation on the absolute timeline.
type Entry struct {
	Start  time.Duration
	End    time.Duration
	Kind   Kind
	FromY  float64
	ToY    float64
	Easing string
	Color  string
	Text   string
}

// Timeline is a compiled demo script. It is derived data and never
// persisted.
type Timeline struct {
	Entries  []Entry
	duration time.Duration
	finalY   float64
}

// Compile schedules each step at the running time offset. Moves accumulate
// Y; waits hold the current position. Effects start with their step and run
// for the same duration. A terminal hold closes the loop.
func Compile(steps []Step) Timeline {
	var (
		tl      Timeline
		current time.Duration
		y       float64
	)

	for _, s := range steps {
		d := s.duration()
		end := current + d

		if s.Action == ActionMove {
			from := y
			y += s.Y
			tl.Entries = append(tl.Entries, Entry{
				Start: current, End: end, Kind: KindMove,
				FromY: from, ToY: y, Easing: s.easing(),
			})
		} else {
			tl.Entries = append(tl.Entries, Entry{
				Start: current, End: end, Kind: KindHold,
				FromY: y, ToY: y,
			})
		}

		switch s.Effect {
		case EffectBeamGreen, EffectBeamRed:
			color := BeamGreen
			if s.Effect == EffectBeamRed {
				color = BeamRed
			}
			tl.Entries = append(tl.Entries, Entry{
				Start: current, End: end, Kind: KindBeam,
				Color: color, Easing: "linear",
			})
		case EffectPopupText:
			text := s.Text
			if text == "" {
				text = DefaultPopupText
			}
			tl.Entries = append(tl.Entries, Entry{
				Start: current, End: end, Kind: KindPopup,
				Text: text, Easing: DefaultEasing,
			})
		}

		current = end
	}

	tl.Entries = append(tl.Entries, Entry{
		Start: current, End: current + TerminalHold, Kind: KindHold,
		FromY: y, ToY: y,
	})
	tl.duration = current + TerminalHold
	tl.finalY = y
	return tl
}

// Duration is the length of one loop.
func (tl Timeline) Duration() time.Duration { return tl.duration }

// FinalY is the cumulative robot offset after the last step.
func (tl Timeline) FinalY() float64 { return tl.finalY }

// Effects returns the beam and popup entries in schedule order.
func (tl Timeline) Effects() []Entry {
	var out []Entry
	for _, e := range tl.Entries {
		if e.Kind == KindBeam || e.Kind == KindPopup {
			out = append(out, e)
		}
	}
	return out
}

// Frame is the visual state of a mission simulator at one instant.
type Frame struct {
	RobotY       float64
	BeamOpacity  float64
	BeamColor    string
	PopupOpacity float64
	PopupScale   float64
	PopupText    string
}

var (
	beamOpacity  = []float64{0, 0.5, 0}
	popupOpacity = []float64{0, 1, 1, 0}
	popupScale   = []float64{0.5, 1.1, 1, 1}
)

// At evaluates the timeline at t, looping past the end.
func (tl Timeline) At(t time.Duration) Frame {
	f := Frame{PopupScale: popupScale[0]}
	if tl.duration <= 0 {
		return f
	}
	t %= tl.duration
	if t < 0 {
		t += tl.duration
	}

	robotSet := false
	for _, e := range tl.Entries {
		if e.Start > t {
			continue
		}
		active := t < e.End
		p := progress(e, t)

		switch e.Kind {
		case KindMove, KindHold:
			if active && !robotSet {
				f.RobotY = e.FromY + (e.ToY-e.FromY)*Easing(e.Easing)(p)
				robotSet = true
			}
		case KindBeam:
			f.BeamColor = e.Color
			if active {
				f.BeamOpacity = keyframe(beamOpacity, p, Easing("linear"))
			}
		case KindPopup:
			f.PopupText = e.Text
			if active {
				ease := Easing(e.Easing)
				f.PopupOpacity = keyframe(popupOpacity, p, ease)
				f.PopupScale = keyframe(popupScale, p, ease)
			}
		}
	}
	if !robotSet {
		f.RobotY = tl.finalY
	}
	return f
}

func progress(e Entry, t time.Duration) float64 {
	span := e.End - e.Start
	if span <= 0 {
		return 1
	}
	p := float64(t-e.Start) / float64(span)
	if p > 1 {
		return 1
	}
	return p
}
