// Package lesson is the scrolling lesson page: every composed block in
// order, with keyboard focus moving between the interactive ones.
package lesson

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/coach"
	"github.com/abhisek/lessonbook/internal/compose"
	"github.com/abhisek/lessonbook/internal/discovery"
	"github.com/abhisek/lessonbook/internal/report"
	"github.com/abhisek/lessonbook/internal/router"
	"github.com/abhisek/lessonbook/internal/screen"
	"github.com/abhisek/lessonbook/internal/screens/modal"
	"github.com/abhisek/lessonbook/internal/ui/components"
	"github.com/abhisek/lessonbook/internal/ui/keys"
	"github.com/abhisek/lessonbook/internal/ui/layout"
	"github.com/abhisek/lessonbook/internal/viewer"
)

// Deps are the services the page runs in the background. Discovery, Probe
// and Coach may be nil.
type Deps struct {
	Ctx         context.Context
	Discovery   *discovery.Engine
	Probe       discovery.Exister
	Coach       *coach.Coach
	SendDelay   time.Duration
	UnlockDelay time.Duration
	Logger      *zap.Logger
}

type imageStatus int

const (
	imagePending imageStatus = iota
	imageFound
	imageMissing
)

// Screen renders a viewer.Session.
type Screen struct {
	deps Deps
	sess *viewer.Session
	now  func() time.Time
	log  *zap.Logger

	focusable    []int
	focus        int
	menus        map[int]*components.Menu
	reportCursor int

	images    map[string]imageStatus
	coachLine string
	coachSeq  int
	heroFrame int

	offset int
	follow bool
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.StatusProvider  = (*Screen)(nil)
)

// New creates the lesson page for sess.
func New(sess *viewer.Session, deps Deps) *Screen {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.SendDelay <= 0 {
		deps.SendDelay = report.SendDelay
	}
	if deps.UnlockDelay <= 0 {
		deps.UnlockDelay = report.UnlockDelay
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Screen{
		deps:   deps,
		sess:   sess,
		now:    time.Now,
		log:    log.With(zap.String("screen", "lesson")),
		menus:  make(map[int]*components.Menu),
		images: make(map[string]imageStatus),
		follow: true,
	}
	simulated := map[int]bool{}
	for _, i := range sess.MissionBlocks() {
		simulated[i] = true
	}
	for i, b := range sess.Page.Blocks {
		switch b := b.(type) {
		case *compose.BuildBlock, *compose.ReportBlock:
			s.focusable = append(s.focusable, i)
		case *compose.MissionBlock:
			if simulated[i] {
				s.focusable = append(s.focusable, i)
			}
		case *compose.LearnBlock:
			if len(b.Items) == 0 {
				continue
			}
			items := make([]components.MenuItem, len(b.Items))
			for j, e := range b.Items {
				items[j] = components.MenuItem{Label: e.Label, Icon: e.Icon}
			}
			m := components.NewMenu(items)
			s.menus[i] = &m
			s.focusable = append(s.focusable, i)
		}
	}
	return s
}

func (s *Screen) Title() string {
	if doc := s.sess.Bundle.Document; doc != nil && doc.Title != "" {
		return doc.Title
	}
	return "Lesson"
}

// Status shows the sound state in the header.
func (s *Screen) Status() string {
	if s.sess.Muted {
		return "♪ off"
	}
	return "♪ on"
}

func (s *Screen) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, i := range s.sess.BuildBlocks() {
		b := s.sess.Page.Blocks[i].(*compose.BuildBlock)
		if s.deps.Discovery != nil {
			for part, basePath := range b.BasePaths() {
				cmds = append(cmds, discoverCmd(s.deps.Ctx, s.deps.Discovery, i, part, basePath))
			}
		}
		cmds = append(cmds, s.checkStep(i))
	}
	for _, i := range s.sess.MissionBlocks() {
		cmds = append(cmds, s.startMission(i))
	}
	if len(s.sess.Page.Indexes(compose.KindHero)) > 0 {
		cmds = append(cmds, afterCmd(heroTickInterval, heroTickMsg{}))
	}
	return tea.Batch(cmds...)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return s, s.handleKey(msg)

	case discoveredMsg:
		if s.sess.ApplyDiscovery(msg.block, msg.part, msg.steps) {
			return s, s.checkStep(msg.block)
		}

	case imageCheckedMsg:
		s.images[msg.url] = imageMissing
		if msg.ok {
			s.images[msg.url] = imageFound
		}

	case sendDoneMsg:
		if !s.sess.CompleteSend() {
			return s, nil
		}
		cmds := []tea.Cmd{afterCmd(s.deps.UnlockDelay, unlockDoneMsg{})}
		if s.deps.Coach != nil {
			cmds = append(cmds, coachCmd(s.deps.Ctx, s.deps.Coach,
				s.sess.Report.Answer(report.Result), s.sess.Report.Answer(report.Grit)))
		}
		return s, tea.Batch(cmds...)

	case unlockDoneMsg:
		s.sess.FinishUnlock()

	case coachLineMsg:
		s.coachLine = msg.line
		s.coachSeq++
		return s, afterCmd(coach.ShowFor, coachHideMsg{seq: s.coachSeq})

	case coachHideMsg:
		if msg.seq == s.coachSeq {
			s.coachLine = ""
		}

	case missionTickMsg:
		if s.sess.Player.Active(msg.block, msg.gen) {
			return s, missionTickCmd(msg.block, msg.gen)
		}

	case heroTickMsg:
		s.heroFrame++
		return s, afterCmd(heroTickInterval, heroTickMsg{})
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	k := keys.Default
	switch {
	case key.Matches(msg, k.NextBlock):
		s.moveFocus(1)
		return nil
	case key.Matches(msg, k.PrevBlock):
		s.moveFocus(-1)
		return nil
	case key.Matches(msg, k.Mute):
		muted := s.sess.ToggleMute()
		s.log.Debug("sound toggled", zap.Bool("muted", muted))
		return nil
	case key.Matches(msg, k.ScrollDown):
		s.offset++
		s.follow = false
		return nil
	case key.Matches(msg, k.ScrollUp):
		s.offset = max(s.offset-1, 0)
		s.follow = false
		return nil
	case key.Matches(msg, k.Submit):
		return s.submit()
	}

	block, ok := s.Focused()
	if !ok {
		return nil
	}
	switch s.sess.Page.Blocks[block].(type) {
	case *compose.BuildBlock:
		return s.buildKey(block, msg)
	case *compose.LearnBlock:
		return s.learnKey(block, msg)
	case *compose.MissionBlock:
		if key.Matches(msg, k.Select) {
			return s.startMission(block)
		}
	case *compose.ReportBlock:
		return s.reportKey(msg)
	}
	return nil
}

// Focused returns the block index holding keyboard focus.
func (s *Screen) Focused() (int, bool) {
	if len(s.focusable) == 0 {
		return 0, false
	}
	return s.focusable[s.focus], true
}

func (s *Screen) moveFocus(delta int) {
	if len(s.focusable) == 0 {
		return
	}
	s.focus = (s.focus + delta + len(s.focusable)) % len(s.focusable)
	s.follow = true
}

func (s *Screen) buildKey(block int, msg tea.KeyPressMsg) tea.Cmd {
	k := keys.Default
	changed := false
	switch {
	case key.Matches(msg, k.NextStep):
		changed = s.sess.NextStep(block)
	case key.Matches(msg, k.PrevStep):
		changed = s.sess.PrevStep(block)
	case key.Matches(msg, k.Part):
		if part, ok := keys.PartIndex(msg.String()); ok {
			changed = s.sess.SelectPart(block, part)
		}
	}
	if !changed {
		return nil
	}
	return s.checkStep(block)
}

func (s *Screen) learnKey(block int, msg tea.KeyPressMsg) tea.Cmd {
	menu := s.menus[block]
	if menu == nil {
		return nil
	}
	k := keys.Default
	switch {
	case key.Matches(msg, k.Up):
		menu.Up()
	case key.Matches(msg, k.Down):
		menu.Down()
	case key.Matches(msg, k.Select):
		m, ok := s.sess.OpenLearn(block, menu.Selected)
		if !ok {
			return nil
		}
		next := modal.New(s.deps.Ctx, m, s.deps.Probe)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return nil
}

// reportOptions is the number of options across both questions.
func reportOptions() int {
	n := 0
	for _, p := range report.Prompts {
		n += len(p.Choices)
	}
	return n
}

// reportChoice maps the flat cursor to a question and option.
func reportChoice(cursor int) (report.Question, report.Option) {
	for _, p := range report.Prompts {
		if cursor < len(p.Choices) {
			return p.Question, p.Choices[cursor].Value
		}
		cursor -= len(p.Choices)
	}
	return 0, ""
}

func (s *Screen) reportKey(msg tea.KeyPressMsg) tea.Cmd {
	k := keys.Default
	switch {
	case key.Matches(msg, k.Up):
		s.reportCursor = max(s.reportCursor-1, 0)
	case key.Matches(msg, k.Down):
		s.reportCursor = min(s.reportCursor+1, reportOptions()-1)
	case key.Matches(msg, k.Select):
		s.sess.Answer(reportChoice(s.reportCursor))
	}
	return nil
}

func (s *Screen) submit() tea.Cmd {
	if !s.sess.Submit() {
		return nil
	}
	return afterCmd(s.deps.SendDelay, sendDoneMsg{})
}

func (s *Screen) startMission(block int) tea.Cmd {
	gen, ok := s.sess.StartMission(block, s.now())
	if !ok {
		return nil
	}
	return missionTickCmd(block, gen)
}

// checkStep verifies the current step image of a build block once.
func (s *Screen) checkStep(block int) tea.Cmd {
	nav := s.sess.Navigator(block)
	if nav == nil || s.deps.Probe == nil {
		return nil
	}
	url := nav.View().ImageURL
	if url == "" {
		return nil
	}
	if _, seen := s.images[url]; seen {
		return nil
	}
	s.images[url] = imagePending
	return checkImageCmd(s.deps.Ctx, s.deps.Probe, url)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	k := keys.Default
	hints := []key.Binding{k.NextBlock}
	if block, ok := s.Focused(); ok {
		switch s.sess.Page.Blocks[block].(type) {
		case *compose.BuildBlock:
			hints = append(hints, k.PrevStep, k.NextStep, k.Part)
		case *compose.LearnBlock:
			hints = append(hints, k.Down, k.Select)
		case *compose.MissionBlock:
			hints = append(hints, k.Select)
		case *compose.ReportBlock:
			hints = append(hints, k.Down, k.Select, k.Submit)
		}
	}
	hints = append(hints, k.ScrollDown, k.Mute, k.Quit)
	return keys.Hints(hints...)
}
