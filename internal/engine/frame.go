package engine

import "strings"

// Runes for the two visual cell states. The platform may restyle these, but
// a Frame is printable on its own, which the tests rely on.
const (
	cellFilled = '█'
	cellEmpty  = ' '
)

// Cell is one rendered grid cell.
type Cell struct {
	Rune  rune
	Color Color
}

// Frame is the grid-sized render target blocks paint into. It decouples game
// rendering from the terminal: games draw cells, the platform styles and
// scales them for display.
type Frame struct {
	grid  Grid
	cells []Cell
}

// NewFrame creates a cleared frame sized to the grid.
func NewFrame(g Grid) *Frame {
	f := &Frame{
		grid:  g,
		cells: make([]Cell, g.Cols*g.Rows),
	}
	f.Clear()
	return f
}

// Grid returns the frame's dimensions.
func (f *Frame) Grid() Grid {
	return f.grid
}

// Clear resets every cell to empty.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = Cell{Rune: cellEmpty}
	}
}

// Set writes a cell at the coordinate. Out-of-grid coordinates are silently
// clipped, so sprites straddling the edge draw their visible part only.
func (f *Frame) Set(c Coord, cell Cell) {
	if !f.grid.Contains(c) {
		return
	}
	f.cells[c.Row*f.grid.Cols+c.Col] = cell
}

// Get returns the cell at the coordinate, or an empty cell outside the grid.
func (f *Frame) Get(c Coord) Cell {
	if !f.grid.Contains(c) {
		return Cell{Rune: cellEmpty}
	}
	return f.cells[c.Row*f.grid.Cols+c.Col]
}

// Filled reports whether the coordinate holds a non-empty cell.
func (f *Frame) Filled(c Coord) bool {
	return f.Get(c).Rune != cellEmpty
}

// String renders the frame as plain text, one row per line.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.grid.Cols*f.grid.Rows + f.grid.Rows)
	for row := 0; row < f.grid.Rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < f.grid.Cols; col++ {
			sb.WriteRune(f.cells[row*f.grid.Cols+col].Rune)
		}
	}
	return sb.String()
}
