// Package theme holds the colors and styles of the lesson book.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette, bright workshop colors on a dark page.
var (
	Primary   = lipgloss.Color("#2563EB") // Robot Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Highlight = lipgloss.Color("#FACC15") // Mission Yellow
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Dimmed = lipgloss.NewStyle().
		Foreground(Border).
		Strikethrough(true)
)

// Cards. The focused block gets the highlight border.
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	FocusedCard = Card.
			BorderForeground(Highlight)

	LockedCard = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(TextDim).
			Foreground(TextDim).
			Align(lipgloss.Center).
			Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Chosen = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Disabled = lipgloss.NewStyle().
			Foreground(Border)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	Marquee = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Highlight).
		Bold(true)

	Coach = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true).
		Border(lipgloss.ThickBorder()).
		BorderForeground(Accent).
		Padding(0, 3)
)
