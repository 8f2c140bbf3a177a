// Package viewer holds the state of one lesson viewing session and the
// command handlers the UI calls. Handlers are synchronous and must be
// called from a single goroutine.
package viewer

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/assets"
	"github.com/abhisek/lessonbook/internal/audio"
	"github.com/abhisek/lessonbook/internal/build"
	"github.com/abhisek/lessonbook/internal/compose"
	"github.com/abhisek/lessonbook/internal/report"
	"github.com/abhisek/lessonbook/internal/sequencer"
	"github.com/abhisek/lessonbook/internal/source"
)

// Modal is the content of a learn item detail dialog.
type Modal = compose.Modal

// Options configures a Session.
type Options struct {
	Resolver assets.Resolver
	Audio    audio.Player
	Muted    bool
	Logger   *zap.Logger
}

// Session is everything the viewer knows about the lesson being shown.
// Block indexes refer to positions in Page.Blocks.
type Session struct {
	ID     string
	Bundle *source.Bundle
	Page   compose.Page

	Report *report.Flow
	Lock   *report.Lock
	Player *sequencer.Player
	Muted  bool

	navigators map[int]*build.Navigator
	timelines  map[int]sequencer.Timeline
	audio      audio.Player
	logger     *zap.Logger
}

// muter is implemented by audio players that can be silenced.
type muter interface {
	SetMuted(bool)
}

// New composes the bundle into a page and prepares per-block state.
func New(bundle *source.Bundle, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}

	c := &compose.Composer{
		Resolver:    opts.Resolver,
		Collections: bundle.Collections,
		Meta:        compose.MetaOf(bundle.Document),
		Logger:      logger,
	}
	lock := &report.Lock{}
	s := &Session{
		ID:         uuid.NewString(),
		Bundle:     bundle,
		Page:       c.ComposePage(bundle.Document),
		Report:     report.NewFlow(lock),
		Lock:       lock,
		Player:     sequencer.NewPlayer(),
		Muted:      opts.Muted,
		navigators: make(map[int]*build.Navigator),
		timelines:  make(map[int]sequencer.Timeline),
		audio:      player,
		logger:     logger.With(zap.String("component", "viewer")),
	}
	if m, ok := player.(muter); ok {
		m.SetMuted(s.Muted)
	}

	for i, b := range s.Page.Blocks {
		switch b := b.(type) {
		case *compose.BuildBlock:
			s.navigators[i] = build.NewNavigator(b.BasePaths(), opts.Resolver)
		case *compose.MissionBlock:
			if b.Simulated() {
				s.timelines[i] = sequencer.Compile(b.Steps)
			}
		}
	}
	s.logger.Info("session started",
		zap.String("session_id", s.ID),
		zap.Int("blocks", len(s.Page.Blocks)),
		zap.Int("builds", len(s.navigators)),
		zap.Int("simulators", len(s.timelines)),
	)
	return s
}

func (s *Session) cue(c audio.Cue) {
	if s.Muted {
		return
	}
	s.audio.Play(c)
}

// Navigator returns the build navigator of block, or nil.
func (s *Session) Navigator(block int) *build.Navigator {
	return s.navigators[block]
}

// BuildBlocks returns the indexes of build blocks in page order.
func (s *Session) BuildBlocks() []int {
	return s.Page.Indexes(compose.KindBuild)
}

// MissionBlocks returns the indexes of simulated mission blocks.
func (s *Session) MissionBlocks() []int {
	var out []int
	for _, i := range s.Page.Indexes(compose.KindMission) {
		if _, ok := s.timelines[i]; ok {
			out = append(out, i)
		}
	}
	return out
}

// SelectPart switches the part tab of a build block.
func (s *Session) SelectPart(block, part int) bool {
	n := s.navigators[block]
	return n != nil && n.SelectPart(part)
}

func (s *Session) NextStep(block int) bool {
	n := s.navigators[block]
	return n != nil && n.Next()
}

func (s *Session) PrevStep(block int) bool {
	n := s.navigators[block]
	return n != nil && n.Prev()
}

// ApplyDiscovery stores a discovered step count. It reports whether the
// visible step view changed.
func (s *Session) ApplyDiscovery(block, part, steps int) bool {
	n := s.navigators[block]
	if n == nil {
		return false
	}
	return n.SetTotal(part, steps)
}

// OpenLearn returns the modal of a learn entry.
func (s *Session) OpenLearn(block, item int) (Modal, bool) {
	if block < 0 || block >= len(s.Page.Blocks) {
		return Modal{}, false
	}
	lb, ok := s.Page.Blocks[block].(*compose.LearnBlock)
	if !ok || item < 0 || item >= len(lb.Items) {
		return Modal{}, false
	}
	s.cue(audio.Click)
	return lb.Items[item].Modal, true
}

// Answer selects an option of the mission report.
func (s *Session) Answer(q report.Question, opt report.Option) bool {
	if !s.Report.Select(q, opt) {
		return false
	}
	s.cue(audio.Click)
	return true
}

// Submit starts sending the report. The caller completes it with
// CompleteSend after report.SendDelay.
func (s *Session) Submit() bool {
	if !s.Report.Submit() {
		return false
	}
	s.cue(audio.Success)
	s.logger.Info("report submitted",
		zap.String("result", string(s.Report.Answer(report.Result))),
		zap.String("grit", string(s.Report.Answer(report.Grit))),
	)
	return true
}

// CompleteSend marks the report sent and starts the unlock sequence. The
// caller finishes it with FinishUnlock after report.UnlockDelay.
func (s *Session) CompleteSend() bool {
	if !s.Report.Complete() {
		return false
	}
	s.cue(audio.Charge)
	return true
}

// FinishUnlock reveals the home mission.
func (s *Session) FinishUnlock() bool {
	if !s.Lock.Finish() {
		return false
	}
	s.cue(audio.Success)
	return true
}

// ToggleMute flips audio on or off and returns the new muted state.
func (s *Session) ToggleMute() bool {
	s.Muted = !s.Muted
	if m, ok := s.audio.(muter); ok {
		m.SetMuted(s.Muted)
	}
	return s.Muted
}

// StartMission (re)starts the demo animation of a mission block. The
// returned generation tags animation ticks for this run.
func (s *Session) StartMission(block int, now time.Time) (int, bool) {
	tl, ok := s.timelines[block]
	if !ok {
		return 0, false
	}
	return s.Player.Start(block, tl, now), true
}

// MissionFrame evaluates the running demo of block at now.
func (s *Session) MissionFrame(block int, now time.Time) (sequencer.Frame, bool) {
	return s.Player.Frame(block, now)
}
