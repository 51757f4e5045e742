package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tunnel/internal/core"
)

func TestRowRunsGroupColours(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.SetColored(1, 0, '█', core.ColorGreen)
	s.SetColored(2, 0, '█', core.ColorGreen)
	s.SetColored(4, 0, '●', core.ColorRed)

	runs := rowRuns(s, 0)
	want := []colorRun{
		{core.ColorDefault, " "},
		{core.ColorGreen, "██"},
		{core.ColorDefault, " "},
		{core.ColorRed, "●"},
		{core.ColorDefault, " "},
	}
	if len(runs) != len(want) {
		t.Fatalf("Got %d runs, want %d: %+v", len(runs), len(want), runs)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "Score: 3", core.ColorBrightWhite)
	s.DrawText(0, 1, "row two")

	out := RenderScreen(s)
	if !strings.Contains(out, "Score: 3") || !strings.Contains(out, "row two") {
		t.Errorf("Rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 lines, got %q", out)
	}
}
