// Package sequencer compiles the declarative mission demo script into an
// absolute-time timeline and evaluates it frame by frame.
package sequencer

import "time"

// Action is what the robot does during a step.
type Action string

const (
	ActionMove Action = "move"
	ActionWait Action = "wait"
)

// Effect is an optional visual played alongside a step.
type Effect string

const (
	EffectNone      Effect = ""
	EffectBeamGreen Effect = "sensor_beam_green"
	EffectBeamRed   Effect = "sensor_beam_red"
	EffectPopupText Effect = "popup_text"
)

const (
	// DefaultStepDuration applies to steps without a positive duration.
	DefaultStepDuration = 500 * time.Millisecond

	// DefaultEasing applies to steps without an easing name.
	DefaultEasing = "easeInOutQuad"

	// DefaultPopupText is shown by popup steps without text.
	DefaultPopupText = "HIT!"

	// TerminalHold is appended after the last step before the loop restarts.
	TerminalHold = 1000 * time.Millisecond
)

// Beam colors for the sensor effects.
const (
	BeamGreen = "#4CAF50"
	BeamRed   = "#FF5252"
)

// Step is one entry of a demo script as authored in the lesson document.
// Duration is in milliseconds.
type Step struct {
	Action   Action  `json:"action"`
	Y        float64 `json:"y,omitempty"`
	Duration int     `json:"duration,omitempty"`
	Easing   string  `json:"easing,omitempty"`
	Effect   Effect  `json:"effect,omitempty"`
	Text     string  `json:"text,omitempty"`
}

func (s Step) duration() time.Duration {
	if s.Duration <= 0 {
		return DefaultStepDuration
	}
	return time.Duration(s.Duration) * time.Millisecond
}

func (s Step) easing() string {
	if s.Easing == "" {
		return DefaultEasing
	}
	return s.Easing
}
