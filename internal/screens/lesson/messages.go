package lesson

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lessonbook/internal/coach"
	"github.com/abhisek/lessonbook/internal/discovery"
	"github.com/abhisek/lessonbook/internal/report"
)

const (
	missionTickInterval = 100 * time.Millisecond
	heroTickInterval    = 600 * time.Millisecond
)

// discoveredMsg carries the step count of one build part.
type discoveredMsg struct {
	block int
	part  int
	steps int
}

// imageCheckedMsg reports whether an image asset could be loaded.
type imageCheckedMsg struct {
	url string
	ok  bool
}

type sendDoneMsg struct{}

type unlockDoneMsg struct{}

type coachLineMsg struct {
	line string
}

type coachHideMsg struct {
	seq int
}

// missionTickMsg redraws a running demo. Ticks of a replaced run carry a
// stale generation and stop.
type missionTickMsg struct {
	block int
	gen   int
}

type heroTickMsg struct{}

func discoverCmd(ctx context.Context, engine *discovery.Engine, block, part int, basePath string) tea.Cmd {
	return func() tea.Msg {
		return discoveredMsg{block: block, part: part, steps: engine.Discover(ctx, basePath)}
	}
}

func checkImageCmd(ctx context.Context, probe discovery.Exister, url string) tea.Cmd {
	return func() tea.Msg {
		ok, err := probe.Exists(ctx, url)
		return imageCheckedMsg{url: url, ok: ok && err == nil}
	}
}

func afterCmd(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func coachCmd(ctx context.Context, c *coach.Coach, result, grit report.Option) tea.Cmd {
	return func() tea.Msg {
		return coachLineMsg{line: c.Line(ctx, result, grit)}
	}
}

func missionTickCmd(block, gen int) tea.Cmd {
	return afterCmd(missionTickInterval, missionTickMsg{block: block, gen: gen})
}
