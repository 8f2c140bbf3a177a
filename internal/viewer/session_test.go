package viewer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lessonbook/internal/assets"
	"github.com/abhisek/lessonbook/internal/audio"
	"github.com/abhisek/lessonbook/internal/compose"
	"github.com/abhisek/lessonbook/internal/lesson"
	"github.com/abhisek/lessonbook/internal/library"
	"github.com/abhisek/lessonbook/internal/report"
	"github.com/abhisek/lessonbook/internal/source"
)

type recorder struct {
	mu    sync.Mutex
	cues  []audio.Cue
	muted bool
}

func (r *recorder) Play(c audio.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

func (r *recorder) SetMuted(m bool) { r.muted = m }

func bundle(t *testing.T) *source.Bundle {
	t.Helper()
	doc, err := lesson.ParseDocument([]byte(`{"sections":[
		{"type":"hero"},
		{"type":"build","id":"robo"},
		{"type":"learn","items":["motor","ghost"]},
		{"type":"mission_view","demoAnimation":{"robot":"r.png","timeline":[
			{"action":"move","y":50,"duration":500},
			{"action":"wait","duration":300,"effect":"popup_text"}
		]}},
		{"type":"home","title":"Home"}
	]}`))
	require.NoError(t, err)

	robot, err := library.DecodeCollection([]byte(`[{"id":"robo","parts":[{"label":"A","basePath":"a/"},{"label":"B","basePath":"b/"}]}]`))
	require.NoError(t, err)
	learn, err := library.DecodeCollection([]byte(`[{"id":"motor","label":"Motor","modalContent":"Spins"}]`))
	require.NoError(t, err)

	return &source.Bundle{
		Document: doc,
		Collections: library.Collections{
			library.Robot: robot,
			library.Learn: learn,
		},
	}
}

func TestSession_Blocks(t *testing.T) {
	s := New(bundle(t), Options{Resolver: assets.NewResolver("./")})
	require.NotEmpty(t, s.ID)

	builds := s.BuildBlocks()
	require.Len(t, builds, 1)
	assert.Equal(t, 2, s.Navigator(builds[0]).Parts())
	assert.Len(t, s.MissionBlocks(), 1)
	assert.Nil(t, s.Navigator(0))
}

func TestSession_BuildCommands(t *testing.T) {
	s := New(bundle(t), Options{})
	b := s.BuildBlocks()[0]

	assert.False(t, s.NextStep(b), "one step until discovery")
	assert.False(t, s.ApplyDiscovery(b, 1, 4), "hidden part")
	assert.True(t, s.ApplyDiscovery(b, 0, 3))
	assert.True(t, s.NextStep(b))
	assert.True(t, s.PrevStep(b))

	assert.True(t, s.SelectPart(b, 1))
	assert.Equal(t, 4, s.Navigator(b).View().Total)
	assert.False(t, s.SelectPart(b, 1))

	assert.False(t, s.NextStep(0), "not a build block")
	assert.False(t, s.ApplyDiscovery(99, 0, 3))
}

func TestSession_OpenLearn(t *testing.T) {
	s := New(bundle(t), Options{})
	learn := s.Page.Indexes(compose.KindLearn)[0]

	m, ok := s.OpenLearn(learn, 0)
	require.True(t, ok)
	assert.Equal(t, Modal{Title: "Motor", Content: "Spins"}, m)

	m, ok = s.OpenLearn(learn, 1)
	require.True(t, ok, "placeholder entries open too")
	assert.Equal(t, "Not found", m.Content)

	_, ok = s.OpenLearn(learn, 5)
	assert.False(t, ok)
	_, ok = s.OpenLearn(0, 0)
	assert.False(t, ok)
}

func TestSession_ReportCues(t *testing.T) {
	rec := &recorder{}
	s := New(bundle(t), Options{Audio: rec})

	assert.False(t, s.Muted)
	assert.False(t, rec.muted)

	assert.False(t, s.Submit())
	assert.True(t, s.Answer(report.Result, report.Close))
	assert.True(t, s.Answer(report.Grit, report.Great))
	assert.True(t, s.Submit())
	assert.False(t, s.Submit())
	assert.True(t, s.CompleteSend())
	assert.Equal(t, report.Unlocking, s.Lock.State())
	assert.True(t, s.FinishUnlock())
	assert.False(t, s.FinishUnlock())
	assert.Equal(t, report.Unlocked, s.Lock.State())

	assert.Equal(t, []audio.Cue{
		audio.Click, audio.Click, audio.Success, audio.Charge, audio.Success,
	}, rec.cues)
}

func TestSession_MutedSkipsCues(t *testing.T) {
	rec := &recorder{}
	s := New(bundle(t), Options{Audio: rec, Muted: true})
	assert.True(t, rec.muted)

	s.Answer(report.Result, report.Success)
	assert.Empty(t, rec.cues)

	assert.False(t, s.ToggleMute())
	assert.False(t, rec.muted)
	s.Answer(report.Result, report.Fail)
	assert.Equal(t, []audio.Cue{audio.Click}, rec.cues)
}

func TestSession_StartMissionReplaces(t *testing.T) {
	s := New(bundle(t), Options{})
	m := s.MissionBlocks()[0]
	now := time.Now()

	g1, ok := s.StartMission(m, now)
	require.True(t, ok)
	g2, ok := s.StartMission(m, now)
	require.True(t, ok)
	assert.False(t, s.Player.Active(m, g1))
	assert.True(t, s.Player.Active(m, g2))
	assert.Equal(t, 1, s.Player.Playing())

	f, ok := s.MissionFrame(m, now.Add(650*time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, 50.0, f.RobotY)
	assert.Equal(t, "HIT!", f.PopupText)

	_, ok = s.StartMission(0, now)
	assert.False(t, ok)
}

func TestSession_Outline(t *testing.T) {
	s := New(bundle(t), Options{})
	outline := s.Outline()
	require.Len(t, outline, len(s.Page.Blocks))

	kinds := make([]compose.Kind, len(outline))
	for i, e := range outline {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []compose.Kind{
		compose.KindHero, compose.KindBuild, compose.KindLearn, compose.KindMarquee,
		compose.KindMission, compose.KindReport, compose.KindLocked,
	}, kinds)

	model := s.Page.Blocks[1].(*compose.BuildBlock).ModelURL
	assert.Equal(t, "model "+model+", parts: A, B", outline[1].Detail)
	assert.Equal(t, "2 items", outline[2].Detail)
	assert.Contains(t, outline[4].Detail, "2 demo steps")
	assert.Equal(t, "Home", outline[6].Title)
	assert.Equal(t, "locked home: text", outline[6].Detail)
}
