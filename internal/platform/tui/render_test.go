package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/waverider/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '~', core.ColorCyan)
	s.SetColored(3, 0, '~', core.ColorCyan)
	s.DrawText(0, 2, "end")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}

	if !strings.Contains(out, "ab") || !strings.Contains(out, "~~") || !strings.Contains(out, "end") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText should leave wide text alone, got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{0, "0:00"},
		{59.9, "0:59"},
		{61, "1:01"},
		{600, "10:00"},
	}
	for _, tc := range tests {
		if got := formatDuration(tc.sec); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tc.sec, got, tc.want)
		}
	}
}

func TestStyleForCoversPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDim; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}

	// Unknown colors render like plain text
	if got, want := styleFor(core.Color(250)).Render("x"), styleFor(core.ColorDefault).Render("x"); got != want {
		t.Errorf("unknown color rendered %q, expected %q", got, want)
	}
}
