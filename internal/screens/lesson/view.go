package lesson

import (
	"fmt"
	"math"
	"path"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonbook/internal/compose"
	"github.com/abhisek/lessonbook/internal/lesson"
	"github.com/abhisek/lessonbook/internal/report"
	"github.com/abhisek/lessonbook/internal/ui/components"
	"github.com/abhisek/lessonbook/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	w := components.ContentWidth(width)
	focused, hasFocus := s.Focused()

	var (
		lines []string
		start = -1
	)
	for i, b := range s.sess.Page.Blocks {
		if hasFocus && i == focused {
			start = len(lines)
		}
		rendered := s.renderBlock(i, b, w, hasFocus && i == focused)
		if rendered == "" {
			continue
		}
		lines = append(lines, strings.Split(rendered, "\n")...)
		lines = append(lines, "")
	}

	if s.follow && start >= 0 && (start < s.offset || start >= s.offset+height) {
		s.offset = start
	}
	s.offset = min(s.offset, max(len(lines)-height, 0))
	visible := lines[s.offset:min(len(lines), s.offset+height)]

	page := strings.Join(visible, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, page)
}

func (s *Screen) renderBlock(i int, b compose.Block, w int, focused bool) string {
	switch b := b.(type) {
	case *compose.HeroBlock:
		return s.renderHero(b, w)
	case *compose.PointBlock:
		return renderPoint(b, w)
	case *compose.BuildBlock:
		return s.renderBuild(i, b, w, focused)
	case *compose.LearnBlock:
		return s.renderLearn(i, b, w, focused)
	case *compose.MarqueeBlock:
		return s.renderMarquee(b, w)
	case *compose.MissionBlock:
		return s.renderMission(i, b, w, focused)
	case *compose.ReportBlock:
		return s.renderReport(w, focused)
	case *compose.LockedBlock:
		return s.renderLocked(i, b, w)
	case *compose.HomeBlock:
		return renderHome(b, w)
	case *compose.FooterBlock:
		return lipgloss.PlaceHorizontal(w, lipgloss.Center, theme.Hint.Render(b.Copyright))
	}
	return ""
}

func (s *Screen) renderHero(b *compose.HeroBlock, w int) string {
	rows := []string{
		theme.Subtitle.Render(b.CourseName),
		theme.Hint.Render(b.Label),
		lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render(b.LessonNumber),
		theme.Title.Render(b.Title),
	}
	if len(b.Characters) > 0 {
		var sprites []string
		for j, c := range b.Characters {
			// Neighbouring characters bob in opposite phase.
			lift := (s.heroFrame + j) % 2
			sprite := strings.Repeat("\n", lift) + "☺ " + path.Base(c.Image) + strings.Repeat("\n", 1-lift)
			sprites = append(sprites, lipgloss.NewStyle().Foreground(theme.Secondary).PaddingRight(2).Render(sprite))
		}
		rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Top, sprites...))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return lipgloss.NewStyle().
		Width(w).
		Align(lipgloss.Center).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Render(body)
}

func renderPoint(b *compose.PointBlock, w int) string {
	var items []string
	for _, it := range b.Items {
		items = append(items, theme.Body.Render("✔ "+it))
	}
	return components.BlockCard(b.Title, strings.Join(items, "\n"), w, false)
}

// imageLine renders an asset path, dimmed when it failed to load.
func (s *Screen) imageLine(url string) string {
	line := "▣ " + url
	switch s.images[url] {
	case imageMissing:
		return theme.Dimmed.Render(line) + "  " + theme.Hint.Render("image unavailable")
	case imageFound:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)
	}
	return theme.Body.Render(line)
}

func (s *Screen) renderBuild(i int, b *compose.BuildBlock, w int, focused bool) string {
	nav := s.sess.Navigator(i)
	var rows []string
	if b.Name != "" {
		rows = append(rows, theme.Subtitle.Render(b.Name))
	}
	model := "◈ " + b.ModelURL
	if b.ModelAlt != "" {
		model += "  " + theme.Hint.Render(b.ModelAlt)
	}
	rows = append(rows, theme.Body.Render(model), "")

	if nav == nil || len(b.Parts) == 0 {
		return components.BlockCard(b.Title, strings.Join(rows, "\n"), w, focused)
	}
	v := nav.View()

	var tabs []string
	for j, p := range b.Parts {
		label := fmt.Sprintf("%d %s", j+1, p.Label)
		if p.Icon != "" {
			label = fmt.Sprintf("%d %s %s", j+1, components.IconGlyph(p.Icon), p.Label)
		}
		if j == v.PartIndex {
			tabs = append(tabs, theme.Selected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, theme.Unselected.Render(" "+label+" "))
		}
	}
	rows = append(rows, strings.Join(tabs, " "), "", s.imageLine(v.ImageURL))

	progress := components.StepProgress{Step: v.Step, Total: v.Total, Width: w - 6}
	rows = append(rows, progress.View(), lipgloss.JoinHorizontal(lipgloss.Center,
		components.StepButton("◀ PREV", !v.PrevDisabled),
		"  ",
		components.StepButton("NEXT ▶", !v.NextDisabled),
	))
	return components.BlockCard(b.Title, strings.Join(rows, "\n"), w, focused)
}

func (s *Screen) renderLearn(i int, b *compose.LearnBlock, w int, focused bool) string {
	menu := s.menus[i]
	if menu == nil {
		return components.BlockCard(b.Title, theme.Hint.Render("Nothing to learn here yet."), w, focused)
	}
	return components.BlockCard(b.Title, menu.View(focused), w, focused)
}

func (s *Screen) renderMarquee(b *compose.MarqueeBlock, w int) string {
	text := strings.Join(b.Lines, "  ★  ") + "  ★  "
	runes := []rune(text)
	shift := s.heroFrame % len(runes)
	rotated := string(runes[shift:]) + string(runes[:shift])
	return theme.Marquee.Width(w).Render(rotated)
}

func renderRules(rules []lesson.Rule, width int) string {
	var out []string
	for _, r := range rules {
		out = append(out, lipgloss.NewStyle().Width(width).Render(components.IconGlyph(r.Icon)+" "+r.Text))
	}
	return strings.Join(out, "\n")
}

// demoSize returns the rows and columns of the simulator area.
func demoSize(ratio string) (int, int) {
	if ratio == compose.RatioSquare {
		return 8, 16
	}
	return 6, 28
}

func (s *Screen) renderDemo(i int, b *compose.MissionBlock) string {
	rows, cols := demoSize(b.Ratio)
	// A stopped demo draws the zero frame.
	frame, _ := s.sess.MissionFrame(i, s.now())
	robotRow := int(math.Round(min(max(frame.RobotY, 0), 100) / 100 * float64(rows-1)))

	grid := make([]string, rows)
	for r := range grid {
		grid[r] = strings.Repeat("·", cols)
	}
	robot := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render("☺")
	pad := (cols - 1) / 2
	grid[robotRow] = strings.Repeat("·", pad) + robot + strings.Repeat("·", cols-pad-1)

	if frame.BeamOpacity > 0.1 && robotRow+1 < rows {
		beam := lipgloss.NewStyle().Foreground(lipgloss.Color(beamColor(frame.BeamColor)))
		grid[robotRow+1] = beam.Render(strings.Repeat("━", cols))
	}
	if frame.PopupOpacity > 0.3 && frame.PopupText != "" {
		popup := lipgloss.NewStyle().Foreground(theme.Accent).Bold(frame.PopupScale >= 1).Render(frame.PopupText)
		grid[0] = lipgloss.PlaceHorizontal(cols, lipgloss.Center, popup)
	}

	demo := strings.Join(grid, "\n")
	caption := theme.Hint.Render(path.Base(b.Background))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(demo) + "\n" + caption
}

// beamColor maps authored CSS colors to a terminal color, keeping hex
// values as they are.
func beamColor(c string) string {
	if strings.HasPrefix(c, "#") {
		return c
	}
	switch strings.ToLower(c) {
	case "red":
		return "#F43F5E"
	case "green":
		return "#22C55E"
	case "blue":
		return "#3B82F6"
	}
	return "#FACC15"
}

func (s *Screen) renderMission(i int, b *compose.MissionBlock, w int, focused bool) string {
	var rows []string
	if b.Description != "" {
		rows = append(rows, theme.Body.Width(w-4).Render(b.Description), "")
	}

	var side string
	switch {
	case b.Pattern == lesson.PatternImageOnly:
		side = s.imageLine(b.Image)
	case b.Simulated():
		side = s.renderDemo(i, b)
	}

	rules := ""
	if b.Pattern != lesson.PatternImageOnly {
		rules = renderRules(b.Rules, max(w/2-4, 10))
	}

	switch {
	case side == "":
		rows = append(rows, rules)
	case rules == "":
		rows = append(rows, side)
	case b.Reverse:
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, side, "   ", rules))
	default:
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rules, "   ", side))
	}
	return components.BlockCard(b.Title, strings.Join(rows, "\n"), w, focused)
}

func (s *Screen) renderReport(w int, focused bool) string {
	flow := s.sess.Report
	var rows []string

	offset := 0
	for _, p := range report.Prompts {
		labels := make([]string, len(p.Choices))
		chosen := -1
		for j, c := range p.Choices {
			labels[j] = c.Label
			if flow.Answer(p.Question) == c.Value {
				chosen = j
			}
		}
		mc := components.NewMultiChoice(p.Text, labels)
		mc.Chosen = chosen
		mc.Locked = flow.State() != report.Editing

		cursor := -1
		if focused && s.reportCursor >= offset && s.reportCursor < offset+len(p.Choices) {
			cursor = s.reportCursor - offset
		}
		rows = append(rows, mc.View(cursor), "")
		offset += len(p.Choices)
	}

	switch flow.State() {
	case report.Editing:
		rows = append(rows, components.NewButton("SEND REPORT", flow.CanSubmit()).View())
	case report.Sending:
		rows = append(rows, theme.Hint.Render("Sending report..."))
	case report.Sent:
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓ Report sent!"))
	}
	if s.coachLine != "" {
		rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Center,
			components.RenderMascot(components.MascotCheering), "  ", theme.Coach.Render(s.coachLine)))
	}
	return components.BlockCard("MISSION REPORT", strings.Join(rows, "\n"), w, focused)
}

func (s *Screen) renderLocked(i int, b *compose.LockedBlock, w int) string {
	switch s.sess.Lock.State() {
	case report.Locked:
		return theme.LockedCard.Width(w).Render("🔒 HOME MISSION\n" + theme.Hint.Render("Send your mission report to unlock."))
	case report.Unlocking:
		return theme.LockedCard.Width(w).Render("🔓 Unlocking...")
	}
	if b.Inner == nil {
		return ""
	}
	return s.renderBlock(i, b.Inner, w, false)
}

func renderHome(b *compose.HomeBlock, w int) string {
	var rows []string
	if b.YoutubeURL != "" {
		rows = append(rows, theme.Body.Render("▶ "+b.YoutubeURL))
	}
	if b.Image != "" {
		rows = append(rows, theme.Body.Render("▣ "+b.Image))
	}
	if b.Text != "" {
		rows = append(rows, "", theme.Body.Width(w-4).Render(b.Text))
	}
	return components.BlockCard(b.Title, strings.Join(rows, "\n"), w, false)
}
