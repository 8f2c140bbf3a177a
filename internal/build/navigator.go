// Package build tracks the part and step shown by a build guide.
package build

import (
	"github.com/abhisek/lessonbook/internal/assets"
	"github.com/abhisek/lessonbook/internal/discovery"
)

// Navigator is the state of one build guide: which part tab is selected
// and which step of it is shown. Step counts arrive asynchronously and
// default to 1 until then.
type Navigator struct {
	basePaths []string
	totals    []int
	resolver  assets.Resolver

	selected int
	step     int
}

// View is what the step viewer shows.
type View struct {
	PartIndex    int
	Step         int
	Total        int
	ImageURL     string
	PrevDisabled bool
	NextDisabled bool
}

// NewNavigator starts at the first part, step 1.
func NewNavigator(basePaths []string, resolver assets.Resolver) *Navigator {
	totals := make([]int, len(basePaths))
	for i := range totals {
		totals[i] = 1
	}
	return &Navigator{
		basePaths: basePaths,
		totals:    totals,
		resolver:  resolver,
		step:      1,
	}
}

func (n *Navigator) Parts() int        { return len(n.basePaths) }
func (n *Navigator) SelectedPart() int { return n.selected }
func (n *Navigator) CurrentStep() int  { return n.step }

// Total returns the known step count of part.
func (n *Navigator) Total(part int) int {
	if part < 0 || part >= len(n.totals) {
		return 1
	}
	return n.totals[part]
}

// SelectPart switches tabs and rewinds to step 1. Reselecting the current
// part or an out of range index does nothing.
func (n *Navigator) SelectPart(i int) bool {
	if i == n.selected || i < 0 || i >= len(n.basePaths) {
		return false
	}
	n.selected = i
	n.step = 1
	return true
}

// Next advances one step unless already on the last.
func (n *Navigator) Next() bool {
	if n.step >= n.Total(n.selected) {
		return false
	}
	n.step++
	return true
}

// Prev goes back one step unless already on the first.
func (n *Navigator) Prev() bool {
	if n.step <= 1 {
		return false
	}
	n.step--
	return true
}

// SetTotal records a discovered step count. It reports whether the visible
// view must refresh, which is only the case for the selected part.
func (n *Navigator) SetTotal(part, total int) bool {
	if part < 0 || part >= len(n.totals) {
		return false
	}
	if total < 1 {
		total = 1
	}
	n.totals[part] = total
	return part == n.selected
}

// View returns the current step view.
func (n *Navigator) View() View {
	total := n.Total(n.selected)
	v := View{
		PartIndex:    n.selected,
		Step:         n.step,
		Total:        total,
		PrevDisabled: n.step == 1,
		NextDisabled: n.step >= total,
	}
	if n.selected < len(n.basePaths) {
		v.ImageURL = n.resolver.Resolve(discovery.StepImage(n.basePaths[n.selected], n.step))
	}
	return v
}
