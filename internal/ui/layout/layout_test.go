package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("First run", "♪ off", 80)
	for _, want := range []string{brand, "First run", "♪ off"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if lipgloss.Height(h) != 2 {
		t.Errorf("expected bar plus rule, got height %d", lipgloss.Height(h))
	}
}

func TestRenderFooter_Wraps(t *testing.T) {
	hints := []KeyHint{
		{"tab", "next block"}, {"←/→", "step"}, {"enter", "open"},
		{"s", "submit"}, {"m", "mute"}, {"ctrl+c", "quit"},
	}
	if got := lipgloss.Height(RenderFooter(hints, 200)); got != 1 {
		t.Errorf("wide footer height = %d, want 1", got)
	}
	narrow := RenderFooter(hints, 30)
	if lipgloss.Height(narrow) < 2 {
		t.Errorf("narrow footer should wrap, got %q", narrow)
	}
	if !strings.Contains(narrow, "quit") {
		t.Error("wrapped footer lost a hint")
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight("a\nb", "c", 10); got != 7 {
		t.Errorf("ContentHeight = %d, want 7", got)
	}
	if got := ContentHeight("a\nb", "c", 2); got != 0 {
		t.Errorf("ContentHeight = %d, want 0", got)
	}
}
