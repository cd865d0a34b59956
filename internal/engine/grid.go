// Package engine provides the shared game lifecycle and entity-rendering
// engine for the brickgame console: the block grid primitives, the entity
// groups games compose shapes from, and the state machine every game variant
// plugs into. It contains no external dependencies beyond logging so game
// logic stays pure and testable.
package engine

// Grid describes the play field dimensions in cells. The classic handheld
// layout is 10 columns by 20 rows, but orientation is configuration, not a
// constant: a transposed 20x10 field works the same way.
type Grid struct {
	Cols int
	Rows int
}

// DefaultGrid returns the classic 10x20 portrait layout.
func DefaultGrid() Grid {
	return Grid{Cols: 10, Rows: 20}
}

// Contains reports whether the coordinate lies inside the grid.
func (g Grid) Contains(c Coord) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// Cells returns the total number of grid cells.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// Coord is a grid position: Col runs left to right, Row top to bottom.
type Coord struct {
	Col int
	Row int
}

// Shift returns the coordinate moved one cell in the given direction.
func (c Coord) Shift(d Direction) Coord {
	dc, dr := d.Offset()
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Direction is a unit movement on the grid.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Offset returns the column and row deltas for one step in the direction.
func (d Direction) Offset() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction, or DirNone for DirNone.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
