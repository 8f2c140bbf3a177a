package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Soon", Disabled: true},
		{Label: "Gears", Icon: "fa-solid fa-gear"},
		{Label: "Locked", Disabled: true},
		{Label: "Wheels"},
	})
	assert.Equal(t, 1, m.Selected)

	assert.True(t, m.Down())
	assert.Equal(t, 3, m.Selected)
	assert.False(t, m.Down())

	assert.True(t, m.Up())
	assert.Equal(t, 1, m.Selected)
	assert.False(t, m.Up())

	view := m.View(true)
	assert.Contains(t, view, "▸ ⚙ Gears")
	assert.Contains(t, view, "Wheels")
}

func TestIconGlyph(t *testing.T) {
	assert.Equal(t, "⚡", IconGlyph("fa-solid fa-bolt"))
	assert.Equal(t, "•", IconGlyph("fa-solid fa-unknown"))
	assert.Equal(t, "•", IconGlyph(""))
}

func TestMultiChoice_Choose(t *testing.T) {
	m := NewMultiChoice("Did it work?", []string{"Success!", "So close", "Didn't work"})
	assert.Equal(t, -1, m.Chosen)

	assert.True(t, m.Choose(1))
	assert.False(t, m.Choose(1))
	assert.False(t, m.Choose(5))
	assert.True(t, m.Choose(0))

	m.Locked = true
	assert.False(t, m.Choose(2))
	assert.Equal(t, 0, m.Chosen)
	assert.Contains(t, m.View(-1), "(●) Success!")
}

func TestStepProgress(t *testing.T) {
	p := StepProgress{Step: 2, Total: 4, Width: 30}
	assert.Equal(t, "Step 2/4", p.Label())
	assert.InDelta(t, 0.5, p.Fraction(), 0.001)
	assert.Contains(t, p.View(), "Step 2/4")

	unknown := StepProgress{Step: 1}
	assert.Equal(t, "Step -/-", unknown.Label())
	assert.Zero(t, unknown.Fraction())
}

func TestButton(t *testing.T) {
	assert.Contains(t, NewButton("SEND REPORT", true).View(), "▸ SEND REPORT")
	assert.NotContains(t, NewButton("SEND REPORT", false).View(), "▸")
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 76, ContentWidth(80))
	assert.Equal(t, 96, ContentWidth(300))
}
