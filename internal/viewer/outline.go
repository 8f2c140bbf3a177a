package viewer

import (
	"fmt"
	"strings"

	"github.com/abhisek/lessonbook/internal/compose"
)

// OutlineEntry is one line of a page outline.
type OutlineEntry struct {
	Block  int
	Kind   compose.Kind
	Title  string
	Detail string
}

// Outline describes every block of the page in order.
func (s *Session) Outline() []OutlineEntry {
	out := make([]OutlineEntry, 0, len(s.Page.Blocks))
	for i, b := range s.Page.Blocks {
		e := OutlineEntry{Block: i, Kind: b.Kind()}
		describe(&e, b)
		out = append(out, e)
	}
	return out
}

func describe(e *OutlineEntry, b compose.Block) {
	switch b := b.(type) {
	case *compose.HeroBlock:
		e.Title = b.Title
		e.Detail = fmt.Sprintf("%s #%s, %d characters", b.CourseName, b.LessonNumber, len(b.Characters))
	case *compose.PointBlock:
		e.Title = b.Title
		e.Detail = fmt.Sprintf("%d points", len(b.Items))
	case *compose.BuildBlock:
		e.Title = b.Title
		labels := make([]string, len(b.Parts))
		for i, p := range b.Parts {
			labels[i] = p.Label
		}
		e.Detail = fmt.Sprintf("model %s, parts: %s", b.ModelURL, strings.Join(labels, ", "))
	case *compose.LearnBlock:
		e.Title = b.Title
		e.Detail = fmt.Sprintf("%d items", len(b.Items))
	case *compose.MissionBlock:
		e.Title = b.Title
		e.Detail = fmt.Sprintf("%s, %s, %d rules", b.Pattern, b.Ratio, len(b.Rules))
		if b.Simulated() {
			e.Detail += fmt.Sprintf(", %d demo steps", len(b.Steps))
		}
		if b.Reverse {
			e.Detail += ", reversed"
		}
	case *compose.MarqueeBlock:
		e.Detail = strings.Join(b.Lines, " / ")
	case *compose.ReportBlock:
		e.Title = "Mission report"
	case *compose.LockedBlock:
		if b.Inner != nil {
			describe(e, b.Inner)
			e.Detail = "locked " + string(b.Inner.Kind()) + ": " + e.Detail
		}
	case *compose.HomeBlock:
		e.Title = b.Title
		switch {
		case b.YoutubeURL != "":
			e.Detail = "video"
		case b.Image != "":
			e.Detail = "image"
		default:
			e.Detail = "text"
		}
	case *compose.FooterBlock:
		e.Detail = b.Copyright
	}
}
