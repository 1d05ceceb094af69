package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pillow-tower/internal/core"
)

// colorStyles maps colour roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorSky:         lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorGround:      lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPillow:      lipgloss.NewStyle().Foreground(lipgloss.Color("225")),
	core.ColorPillowShade: lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
	core.ColorFloating:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGrown:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorLine:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorFeather:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorLife:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorAlert:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colour share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
