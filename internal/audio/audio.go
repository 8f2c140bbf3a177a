// Package audio plays the viewer's sound cues. Playback is fire and
// forget; failures never reach the caller.
package audio

import (
	"io"
	"sync"

	"go.uber.org/zap"
)

// Cue names a sound effect.
type Cue string

const (
	Click   Cue = "se-click"
	Success Cue = "se-success"
	Charge  Cue = "se-charge"
)

// Player plays cues.
type Player interface {
	Play(c Cue)
}

// Bell rings the terminal bell for success cues. It starts muted unless
// told otherwise and logs every cue it receives.
type Bell struct {
	out    io.Writer
	logger *zap.Logger

	mu    sync.Mutex
	muted bool
	rung  int
}

// NewBell writes bell characters to out.
func NewBell(out io.Writer, muted bool, logger *zap.Logger) *Bell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bell{out: out, muted: muted, logger: logger}
}

func (b *Bell) Play(c Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.logger.Debug("cue", zap.String("cue", string(c)), zap.Bool("muted", b.muted))
	if b.muted || b.out == nil || c != Success {
		return
	}
	if _, err := io.WriteString(b.out, "\a"); err != nil {
		b.logger.Debug("bell failed", zap.Error(err))
		return
	}
	b.rung++
}

// SetMuted turns playback off or on.
func (b *Bell) SetMuted(muted bool) {
	b.mu.Lock()
	b.muted = muted
	b.mu.Unlock()
}

func (b *Bell) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

// Rung returns how many bells were written.
func (b *Bell) Rung() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rung
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}
