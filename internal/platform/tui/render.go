package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pmoroz/brickgame/internal/engine"
)

// colorStyles maps engine colors to lipgloss styles.
var colorStyles = map[engine.Color]lipgloss.Style{
	engine.ColorDefault: lipgloss.NewStyle(),
	engine.ColorShade:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	engine.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	engine.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	engine.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	engine.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	engine.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	engine.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	engine.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	engine.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	engine.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// playfieldBorder frames the grid the way the handheld's bezel does.
var playfieldBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// RenderFrame converts a frame to a styled string for display. Terminal
// cells are roughly twice as tall as wide, so every grid cell is drawn two
// characters wide to keep blocks square. Adjacent cells with the same color
// are grouped to minimize ANSI escape sequences.
func RenderFrame(f *engine.Frame) string {
	g := f.Grid()

	var sb strings.Builder
	sb.Grow(g.Cols*g.Rows*4 + g.Rows)

	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < g.Cols {
			start := f.Get(engine.Coord{Col: col, Row: row}).Color

			// Collect consecutive cells with the same color
			var run strings.Builder
			for col < g.Cols {
				cell := f.Get(engine.Coord{Col: col, Row: row})
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				run.WriteRune(cell.Rune)
				col++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[engine.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderPlayfield draws the frame inside the bezel border.
func RenderPlayfield(f *engine.Frame) string {
	return playfieldBorder.Render(RenderFrame(f))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
