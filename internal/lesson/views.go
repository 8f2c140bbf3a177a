package lesson

import (
	"github.com/abhisek/lessonbook/internal/library"
	"github.com/abhisek/lessonbook/internal/sequencer"
)

// Section types.
const (
	TypeHero        = "hero"
	TypePoint       = "point"
	TypeBuild       = "build"
	TypeLearn       = "learn"
	TypeMissionView = "mission_view"
	TypeHome        = "home"
	TypeFooter      = "footer"
)

type Hero struct {
	Title      string      `json:"title"`
	Characters []Character `json:"characters"`
}

// Character is a hero mascot placed at an authored offset.
type Character struct {
	Image   string   `json:"image"`
	Initial Position `json:"initial"`
}

type Position struct {
	Top  Scalar `json:"top"`
	Left Scalar `json:"left"`
}

type Point struct {
	Title string              `json:"title"`
	Items []library.Reference `json:"items"`
}

type Build struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Name  string `json:"name"`
	Model string `json:"model"`
	Parts []Part `json:"parts"`
}

// Part is one tab of a build guide. Step images live at
// BasePath + "step-N.png".
type Part struct {
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	BasePath string `json:"basePath"`
}

type Learn struct {
	Title string              `json:"title"`
	Items []library.Reference `json:"items"`
}

// Mission display patterns.
const (
	PatternSimulator = "simulator"
	PatternImageOnly = "image_only"
	PatternRulesOnly = "rules_only"
)

type MissionView struct {
	Title          string         `json:"title"`
	DisplayPattern string         `json:"displayPattern"`
	AspectRatio    string         `json:"aspectRatio"`
	Description    string         `json:"description"`
	Rules          []Rule         `json:"rules"`
	DemoAnimation  *DemoAnimation `json:"demoAnimation,omitempty"`
	Image          string         `json:"image"`
}

// Pattern returns the display pattern, defaulting to the simulator.
func (m MissionView) Pattern() string {
	if m.DisplayPattern == "" {
		return PatternSimulator
	}
	return m.DisplayPattern
}

type Rule struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// DemoAnimation is the scripted simulator shown beside the rules.
type DemoAnimation struct {
	Background string           `json:"background"`
	Robot      string           `json:"robot"`
	Timeline   []sequencer.Step `json:"timeline"`
}

type Home struct {
	Title     string `json:"title"`
	YoutubeID string `json:"youtubeId"`
	Image     string `json:"image"`
	Text      string `json:"text"`
}

// LearnItem is a record of the learn library.
type LearnItem struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Icon         string `json:"icon"`
	ModalContent string `json:"modalContent"`
	ModalType    string `json:"modalType"`
}

// PointItem is a record of the point library.
type PointItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Footer struct {
	Copyright string `json:"copyright"`
}
