// Package compose turns lesson sections, merged with their shared library
// records, into renderable blocks and lays them out as a page.
package compose

import (
	"github.com/abhisek/lessonbook/internal/lesson"
	"github.com/abhisek/lessonbook/internal/sequencer"
)

// Kind identifies a block variant.
type Kind string

const (
	KindHero    Kind = "hero"
	KindPoint   Kind = "point"
	KindBuild   Kind = "build"
	KindLearn   Kind = "learn"
	KindMission Kind = "mission"
	KindHome    Kind = "home"
	KindFooter  Kind = "footer"
	KindReport  Kind = "report"
	KindLocked  Kind = "locked"
	KindMarquee Kind = "marquee"
)

// Block is one renderable unit of the lesson page.
type Block interface {
	Kind() Kind
}

// HeroLabel is the fixed caption under the lesson number.
const HeroLabel = "LESSON BOOK"

type HeroBlock struct {
	CourseName   string
	LessonNumber string
	Label        string
	Title        string
	Characters   []Sprite
}

// Sprite is an image placed at an authored offset.
type Sprite struct {
	Image string
	Top   string
	Left  string
}

type PointBlock struct {
	Title string
	Items []string
}

// DefaultModel is shown by build sections that do not name a model.
const DefaultModel = "assets/models/robot.glb"

type BuildBlock struct {
	ID       string
	Title    string
	Name     string
	ModelURL string
	ModelAlt string
	Parts    []PartTab
}

type PartTab struct {
	Label    string
	Icon     string
	BasePath string
}

// BasePaths returns the step image prefix of every part, in tab order.
func (b *BuildBlock) BasePaths() []string {
	out := make([]string, len(b.Parts))
	for i, p := range b.Parts {
		out[i] = p.BasePath
	}
	return out
}

type LearnBlock struct {
	Title string
	Items []LearnEntry
}

// LearnEntry is a learn card. Every entry opens its modal when activated.
type LearnEntry struct {
	Label string
	Icon  string
	Modal Modal
}

// ModalImage marks modal content that is an asset path.
const ModalImage = "image"

// Modal is the detail shown for a learn entry.
type Modal struct {
	Title   string
	Content string
	Kind    string
}

// Aspect ratios of the mission demo area.
const (
	RatioSquare    = "square"
	RatioRectangle = "rectangle"
)

type MissionBlock struct {
	Title       string
	Pattern     string
	Ratio       string
	Description string
	Rules       []lesson.Rule
	Background  string
	Robot       string
	Steps       []sequencer.Step
	Image       string
	Reverse     bool
}

// Simulated reports whether the block runs the animated demo.
func (m *MissionBlock) Simulated() bool {
	return m.Pattern == lesson.PatternSimulator && m.Robot != ""
}

type HomeBlock struct {
	Title      string
	YoutubeURL string
	Image      string
	Text       string
}

type FooterBlock struct {
	Copyright string
}

// ReportBlock is the mission report form injected before the home mission.
type ReportBlock struct{}

// LockedBlock hides its inner block until the mission report is sent.
type LockedBlock struct {
	Inner Block
}

// Marquee lines announcing a mission.
var MarqueeLines = []string{"MISSION START", "ROBO DONE CHALLENGE"}

type MarqueeBlock struct {
	Lines []string
}

func (*HeroBlock) Kind() Kind    { return KindHero }
func (*PointBlock) Kind() Kind   { return KindPoint }
func (*BuildBlock) Kind() Kind   { return KindBuild }
func (*LearnBlock) Kind() Kind   { return KindLearn }
func (*MissionBlock) Kind() Kind { return KindMission }
func (*HomeBlock) Kind() Kind    { return KindHome }
func (*FooterBlock) Kind() Kind  { return KindFooter }
func (*ReportBlock) Kind() Kind  { return KindReport }
func (*LockedBlock) Kind() Kind  { return KindLocked }
func (*MarqueeBlock) Kind() Kind { return KindMarquee }
