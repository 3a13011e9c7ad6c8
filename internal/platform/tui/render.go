package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gamekit/internal/screen"
)

// colorStyles maps screen.Color to lipgloss styles.
var colorStyles = map[screen.Color]lipgloss.Style{
	screen.ColorDefault:       lipgloss.NewStyle(),
	screen.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	screen.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	screen.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	screen.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	screen.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	screen.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	screen.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	screen.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	screen.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	screen.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	screen.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	screen.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *screen.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[screen.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
