package compose

import "github.com/abhisek/lessonbook/internal/lesson"

// Page is the ordered list of blocks rendered for a lesson.
type Page struct {
	Blocks []Block
}

// ComposePage composes every section of doc and applies the page layout:
// a report form and a lock around each home section, a marquee before each
// mission, and alternating mission orientation. Only directly rendered
// sections advance the orientation count; locked home sections and the
// injected blocks do not.
func (c *Composer) ComposePage(doc *lesson.Document) Page {
	var (
		page     Page
		rendered int
	)
	for _, s := range doc.Sections {
		if s.Type() == lesson.TypeHome {
			inner := c.Compose(s)
			if inner == nil {
				continue
			}
			page.Blocks = append(page.Blocks, &ReportBlock{}, &LockedBlock{Inner: inner})
			continue
		}

		b := c.Compose(s)
		if b == nil {
			continue
		}
		if m, ok := b.(*MissionBlock); ok {
			page.Blocks = append(page.Blocks, &MarqueeBlock{Lines: MarqueeLines})
			if rendered%2 != 0 {
				m.Reverse = true
			}
		}
		page.Blocks = append(page.Blocks, b)
		rendered++
	}
	return page
}

// Indexes returns the positions of blocks of kind k, looking inside
// locked wrappers.
func (p Page) Indexes(k Kind) []int {
	var out []int
	for i, b := range p.Blocks {
		if b.Kind() == k {
			out = append(out, i)
			continue
		}
		if l, ok := b.(*LockedBlock); ok && l.Inner != nil && l.Inner.Kind() == k {
			out = append(out, i)
		}
	}
	return out
}
