package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/waverider/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// The sea ramp runs from navy troughs through teal to white foam.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorAbyss:   lipgloss.NewStyle().Foreground(lipgloss.Color("18")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
	core.ColorSwell:   lipgloss.NewStyle().Foreground(lipgloss.Color("32")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("38")),
	core.ColorCrest:   lipgloss.NewStyle().Foreground(lipgloss.Color("80")),
	core.ColorFoam:    lipgloss.NewStyle().Foreground(lipgloss.Color("152")),
	core.ColorSpray:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
	core.ColorHull:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorDebris:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// styleFor returns the style of a color, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run, which keeps a
// full screen of water from turning into one escape sequence per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
