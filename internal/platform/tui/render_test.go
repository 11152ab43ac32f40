package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/mazechase/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorYellow)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.DrawText(0, 1, "xyz")

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "xyz   " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorMagenta, core.ColorCyan,
		core.ColorOrange, core.ColorYellow, core.ColorBlue, core.ColorBrightBlue,
		core.ColorWhite, core.ColorGray,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
