package compose

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lessonbook/internal/assets"
	"github.com/abhisek/lessonbook/internal/lesson"
	"github.com/abhisek/lessonbook/internal/library"
)

func section(t *testing.T, raw string) library.Section {
	t.Helper()
	var s library.Section
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

func collections(t *testing.T) library.Collections {
	t.Helper()
	parse := func(raw string) []library.Record {
		recs, err := library.DecodeCollection([]byte(raw))
		require.NoError(t, err)
		return recs
	}
	return library.Collections{
		library.Learn: parse(`[
			{"id":"motor","label":"Motor","icon":"fa-gear","modalContent":"Spins."},
			{"id":"map","label":"Map","modalType":"image","modalContent":"assets/map.png"}
		]`),
		library.Point:   parse(`[{"id":"p1","text":"Check the battery"}]`),
		library.Robot:   parse(`[{"id":"robo","name":"Robo","title":"Shared title","parts":[{"label":"Body","basePath":"p1/"}]}]`),
		library.Mission: parse(`[{"id":"m1","description":"Stop at the line","rules":[{"icon":"1","text":"No hands"}]}]`),
		library.Home:    parse(`[{"id":"h1","title":"Home","youtubeId":"abc"}]`),
		library.Footer:  parse(`{"copyright":"(c) Robo School"}`),
	}
}

func newComposer(t *testing.T) *Composer {
	return &Composer{
		Resolver:    assets.NewResolver("./"),
		Collections: collections(t),
		Meta:        Meta{CourseName: "CHALLENGER", LessonNumber: "04", Title: "Stop!"},
	}
}

func TestCompose_Hero(t *testing.T) {
	c := newComposer(t)
	b := c.Compose(section(t, `{"type":"hero","characters":[{"image":"assets/bot.png","initial":{"top":"10%","left":"5%"}}]}`))

	hero, ok := b.(*HeroBlock)
	require.True(t, ok)
	assert.Equal(t, HeroLabel, hero.Label)
	assert.Equal(t, "04", hero.LessonNumber)
	assert.Equal(t, []Sprite{{Image: "../assets/bot.png", Top: "10%", Left: "5%"}}, hero.Characters)

	c.Meta = Meta{}
	hero = c.Compose(section(t, `{"type":"hero"}`)).(*HeroBlock)
	assert.Equal(t, lesson.DefaultCourseName, hero.CourseName)
	assert.Equal(t, lesson.DefaultLessonNumber, hero.LessonNumber)
}

func TestCompose_PointFallback(t *testing.T) {
	b := newComposer(t).Compose(section(t, `{"type":"point","items":["p1","nope",{"id":"ghost"}]}`))
	point := b.(*PointBlock)
	assert.Equal(t, []string{"Check the battery", "nope", `{"id":"ghost"}`}, point.Items)
}

func TestCompose_BuildMergesShared(t *testing.T) {
	b := newComposer(t).Compose(section(t, `{"type":"build","id":"robo","title":"Lesson title"}`))
	build := b.(*BuildBlock)

	assert.Equal(t, "Lesson title", build.Title, "lesson fields win")
	assert.Equal(t, "Robo", build.Name)
	assert.Equal(t, "../assets/models/robot.glb", build.ModelURL)
	assert.Equal(t, "Robo 3D model", build.ModelAlt)
	assert.Equal(t, []string{"p1/"}, build.BasePaths())
}

func TestCompose_LearnPlaceholderOpensModal(t *testing.T) {
	b := newComposer(t).Compose(section(t, `{"type":"learn","items":["motor","map","missing"]}`))
	learn := b.(*LearnBlock)
	require.Len(t, learn.Items, 3)

	assert.Equal(t, Modal{Title: "Motor", Content: "Spins."}, learn.Items[0].Modal)
	assert.Equal(t, Modal{Title: "Map", Content: "../assets/map.png", Kind: ModalImage}, learn.Items[1].Modal)

	missing := learn.Items[2]
	assert.Equal(t, "Unknown", missing.Label)
	assert.Equal(t, "fa-solid fa-question", missing.Icon)
	assert.Equal(t, "Not found", missing.Modal.Content)
}

func TestCompose_MissionPatterns(t *testing.T) {
	c := newComposer(t)

	sim := c.Compose(section(t, `{"type":"mission_view","id":"m1","aspectRatio":"square",
		"demoAnimation":{"background":"bg.png","robot":"comp_model/bot.png","timeline":[{"action":"move","y":10}]}}`)).(*MissionBlock)
	assert.Equal(t, lesson.PatternSimulator, sim.Pattern)
	assert.Equal(t, RatioSquare, sim.Ratio)
	assert.Equal(t, "Stop at the line", sim.Description)
	assert.Len(t, sim.Rules, 1)
	assert.Equal(t, "./bg.png", sim.Background)
	assert.Equal(t, "../../../comp_model/bot.png", sim.Robot)
	assert.True(t, sim.Simulated())

	img := c.Compose(section(t, `{"type":"mission_view","displayPattern":"image_only","image":"course.png"}`)).(*MissionBlock)
	assert.Equal(t, RatioRectangle, img.Ratio)
	assert.Equal(t, "./course.png", img.Image)
	assert.False(t, img.Simulated())

	rules := c.Compose(section(t, `{"type":"mission_view","displayPattern":"rules_only","image":"x.png"}`)).(*MissionBlock)
	assert.Empty(t, rules.Image)
	assert.False(t, rules.Simulated())
}

func TestCompose_HomeOptionalFields(t *testing.T) {
	c := newComposer(t)
	home := c.Compose(section(t, `{"type":"home","id":"h1"}`)).(*HomeBlock)
	assert.Equal(t, HomeBlock{Title: "Home", YoutubeURL: "https://www.youtube.com/embed/abc"}, *home)

	home = c.Compose(section(t, `{"type":"home","text":"Try it"}`)).(*HomeBlock)
	assert.Equal(t, HomeBlock{Text: "Try it"}, *home)
}

func TestCompose_FooterAndUnknown(t *testing.T) {
	c := newComposer(t)
	footer := c.Compose(section(t, `{"type":"footer"}`)).(*FooterBlock)
	assert.Equal(t, "(c) Robo School", footer.Copyright)

	assert.Nil(t, c.Compose(section(t, `{"type":"quiz"}`)))
}

func TestComposePage_Layout(t *testing.T) {
	doc, err := lesson.ParseDocument([]byte(`{"sections":[
		{"type":"hero"},
		{"type":"mission_view","displayPattern":"rules_only"},
		{"type":"quiz"},
		{"type":"point","items":[]},
		{"type":"mission_view","displayPattern":"rules_only"},
		{"type":"home","id":"h1"},
		{"type":"mission_view","displayPattern":"rules_only"},
		{"type":"footer"}
	]}`))
	require.NoError(t, err)

	page := newComposer(t).ComposePage(doc)

	var kinds []Kind
	for _, b := range page.Blocks {
		kinds = append(kinds, b.Kind())
	}
	assert.Equal(t, []Kind{
		KindHero,
		KindMarquee, KindMission,
		KindPoint,
		KindMarquee, KindMission,
		KindReport, KindLocked,
		KindMarquee, KindMission,
		KindFooter,
	}, kinds)

	missions := page.Indexes(KindMission)
	require.Len(t, missions, 3)
	// Rendered counts before each mission: 1, 3, 4.
	assert.True(t, page.Blocks[missions[0]].(*MissionBlock).Reverse)
	assert.True(t, page.Blocks[missions[1]].(*MissionBlock).Reverse)
	assert.False(t, page.Blocks[missions[2]].(*MissionBlock).Reverse)

	locked := page.Blocks[7].(*LockedBlock)
	assert.Equal(t, KindHome, locked.Inner.Kind())
	assert.Equal(t, []int{7}, page.Indexes(KindHome))
}

func TestComposePage_UndecodableMissionDropsMarquee(t *testing.T) {
	doc, err := lesson.ParseDocument([]byte(`{"sections":[
		{"type":"mission_view","rules":"oops"},
		{"type":"hero"},
		{"type":"mission_view","displayPattern":"rules_only"}
	]}`))
	require.NoError(t, err)

	page := newComposer(t).ComposePage(doc)

	var kinds []Kind
	for _, b := range page.Blocks {
		kinds = append(kinds, b.Kind())
	}
	assert.Equal(t, []Kind{KindHero, KindMarquee, KindMission}, kinds)
	assert.True(t, page.Blocks[2].(*MissionBlock).Reverse, "the dropped mission is not counted")
}
