package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tunnel/internal/core"
)

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for _, c := range core.Colors() {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// colorRun is a horizontal stretch of cells sharing one colour.
type colorRun struct {
	color core.Color
	text  string
}

// rowRuns splits row y of s into same-colour runs.
func rowRuns(s *core.Screen, y int) []colorRun {
	var runs []colorRun
	var sb strings.Builder
	for x := 0; x < s.Width(); {
		color := s.GetCell(x, y).Color
		sb.Reset()
		for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
			sb.WriteRune(s.GetCell(x, y).Rune)
		}
		runs = append(runs, colorRun{color: color, text: sb.String()})
	}
	return runs
}

// RenderScreen converts a Screen to a styled string, one escape sequence
// per colour run rather than per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range rowRuns(s, y) {
			sb.WriteString(styleFor(run.color).Render(run.text))
		}
	}
	return sb.String()
}
