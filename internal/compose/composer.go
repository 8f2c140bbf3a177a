package compose

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/lessonbook/internal/assets"
	"github.com/abhisek/lessonbook/internal/lesson"
	"github.com/abhisek/lessonbook/internal/library"
)

const youtubeEmbed = "https://www.youtube.com/embed/"

// Placeholder shown for learn references missing from the library.
var unknownLearn = lesson.LearnItem{
	Label:        "Unknown",
	Icon:         "fa-solid fa-question",
	ModalContent: "Not found",
}

// Meta carries the document header fields the hero block shows.
type Meta struct {
	CourseName   string
	LessonNumber string
	Title        string
}

// MetaOf returns the header of doc with defaults applied.
func MetaOf(doc *lesson.Document) Meta {
	return Meta{CourseName: doc.Course(), LessonNumber: doc.Number(), Title: doc.Title}
}

// Composer builds blocks from sections.
type Composer struct {
	Resolver    assets.Resolver
	Collections library.Collections
	Meta        Meta
	Logger      *zap.Logger
}

func (c *Composer) log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Compose merges the section with its shared record and builds its block.
// Unknown section types and sections that fail to decode yield nil.
func (c *Composer) Compose(s library.Section) Block {
	s = library.MergeShared(s, c.Collections)

	b, err := c.compose(s)
	if err != nil {
		c.log().Warn("skip section", zap.String("type", s.Type()), zap.String("id", s.ID()), zap.Error(err))
		return nil
	}
	return b
}

func (c *Composer) compose(s library.Section) (Block, error) {
	switch s.Type() {
	case lesson.TypeHero:
		var v lesson.Hero
		if err := s.Decode(&v); err != nil {
			return nil, err
		}
		return c.hero(v), nil
	case lesson.TypePoint:
		var v lesson.Point
		if err := s.Decode(&v); err != nil {
			return nil, err
		}
		return c.point(v), nil
	case lesson.TypeBuild:
		var v lesson.Build
		if err := s.Decode(&v); err != nil {
			return nil, err
		}
		return c.build(v), nil
	case lesson.TypeLearn:
		var v lesson.Learn
		if err := s.Decode(&v); err != nil {
			return nil, err
		}
		return c.learn(v), nil
	case lesson.TypeMissionView:
		var v lesson.MissionView
		if err := s.Decode(&v); err != nil {
			return nil, err
		}
		return c.mission(v), nil
	case lesson.TypeHome:
		var v lesson.Home
		if err := s.Decode(&v); err != nil {
			return nil, err
		}
		return c.home(v), nil
	case lesson.TypeFooter:
		return c.footer(s)
	}
	return nil, nil
}

func (c *Composer) hero(v lesson.Hero) *HeroBlock {
	b := &HeroBlock{
		CourseName:   c.Meta.CourseName,
		LessonNumber: c.Meta.LessonNumber,
		Label:        HeroLabel,
		Title:        c.Meta.Title,
	}
	if b.CourseName == "" {
		b.CourseName = lesson.DefaultCourseName
	}
	if b.LessonNumber == "" {
		b.LessonNumber = lesson.DefaultLessonNumber
	}
	for _, ch := range v.Characters {
		b.Characters = append(b.Characters, Sprite{
			Image: c.Resolver.Resolve(ch.Image),
			Top:   string(ch.Initial.Top),
			Left:  string(ch.Initial.Left),
		})
	}
	return b
}

func (c *Composer) point(v lesson.Point) *PointBlock {
	b := &PointBlock{Title: v.Title}
	for _, ref := range v.Items {
		rec, ok := library.Resolve(ref, c.Collections[library.Point])
		if !ok {
			c.log().Debug("point reference not found", zap.String("ref", ref.Raw()))
			b.Items = append(b.Items, ref.Raw())
			continue
		}
		b.Items = append(b.Items, rec.String("text"))
	}
	return b
}

func (c *Composer) build(v lesson.Build) *BuildBlock {
	model := v.Model
	if model == "" {
		model = DefaultModel
	}
	alt := "Robot 3D model"
	if v.Name != "" {
		alt = v.Name + " 3D model"
	}
	b := &BuildBlock{
		ID:       v.ID,
		Title:    v.Title,
		Name:     v.Name,
		ModelURL: c.Resolver.Resolve(model),
		ModelAlt: alt,
	}
	for _, p := range v.Parts {
		b.Parts = append(b.Parts, PartTab{Label: p.Label, Icon: p.Icon, BasePath: p.BasePath})
	}
	return b
}

func (c *Composer) learn(v lesson.Learn) *LearnBlock {
	b := &LearnBlock{Title: v.Title}
	for _, ref := range v.Items {
		item := unknownLearn
		if rec, ok := library.Resolve(ref, c.Collections[library.Learn]); ok {
			var found lesson.LearnItem
			if err := rec.Decode(&found); err != nil {
				c.log().Warn("decode learn item", zap.String("id", rec.ID()), zap.Error(err))
			} else {
				item = found
			}
		} else {
			c.log().Debug("learn reference not found", zap.String("ref", ref.Raw()))
		}

		content := item.ModalContent
		if item.ModalType == ModalImage {
			content = c.Resolver.Resolve(content)
		}
		b.Items = append(b.Items, LearnEntry{
			Label: item.Label,
			Icon:  item.Icon,
			Modal: Modal{Title: item.Label, Content: content, Kind: item.ModalType},
		})
	}
	return b
}

func (c *Composer) mission(v lesson.MissionView) *MissionBlock {
	ratio := RatioRectangle
	if v.AspectRatio == RatioSquare {
		ratio = RatioSquare
	}
	b := &MissionBlock{
		Title:       v.Title,
		Pattern:     v.Pattern(),
		Ratio:       ratio,
		Description: v.Description,
		Rules:       v.Rules,
	}
	switch b.Pattern {
	case lesson.PatternSimulator:
		if demo := v.DemoAnimation; demo != nil {
			b.Background = c.Resolver.Resolve(demo.Background)
			b.Robot = c.Resolver.Resolve(demo.Robot)
			b.Steps = demo.Timeline
		}
	case lesson.PatternImageOnly:
		b.Image = c.Resolver.Resolve(v.Image)
	}
	return b
}

func (c *Composer) home(v lesson.Home) *HomeBlock {
	b := &HomeBlock{Title: v.Title, Text: v.Text}
	if v.YoutubeID != "" {
		b.YoutubeURL = youtubeEmbed + v.YoutubeID
	}
	if v.Image != "" {
		b.Image = c.Resolver.Resolve(v.Image)
	}
	return b
}

func (c *Composer) footer(s library.Section) (Block, error) {
	if s.Fields.Has("copyright") {
		return &FooterBlock{Copyright: s.Fields.String("copyright")}, nil
	}
	recs := c.Collections[library.Footer]
	if len(recs) == 0 {
		return nil, fmt.Errorf("no shared footer record")
	}
	var f lesson.Footer
	if err := recs[0].Decode(&f); err != nil {
		return nil, err
	}
	return &FooterBlock{Copyright: f.Copyright}, nil
}
