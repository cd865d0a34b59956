package tetris

import "github.com/pmoroz/brickgame/internal/engine"

// piece is the falling tetromino: a shape in a rotation state at an anchor,
// backed by four blocks in the "piece" group.
type piece struct {
	shape  rune
	rotID  int
	anchor engine.Coord
	blocks [4]*engine.Block

	// height is the distance to the landing spot as of the last movement
	// attempt. The piece locks on the attempt after it reaches 0, which
	// leaves one beat to slide it.
	height int
}

// spawnPiece replaces the current piece with a fresh one at top center.
func (v *Variant) spawnPiece(m *engine.Machine, shape rune) {
	g := m.Grid()
	p := &piece{
		shape:  shape,
		rotID:  1,
		anchor: engine.Coord{Col: g.Cols/2 - 1, Row: 0},
		height: g.Rows - 1,
	}
	group := m.Group("piece")
	group.Clear()
	for i, c := range cellsAt(shape, 1, p.anchor) {
		p.blocks[i] = engine.NewColorBlock(g, c, shapeColors[shape])
		group.Add(p.blocks[i])
	}
	v.pc = p
	v.lockSwitch = false
}

// landingDistance is the shortest free fall left in any of the piece's
// columns, to the fallen structure or the floor.
func (v *Variant) landingDistance(m *engine.Machine) int {
	g := m.Grid()

	// Lowest piece row per column, clamped at the top edge.
	lowest := make(map[int]int)
	for _, b := range v.pc.blocks {
		c := b.Pos()
		row := c.Row
		if row < 0 {
			row = 0
		}
		if cur, ok := lowest[c.Col]; !ok || row > cur {
			lowest[c.Col] = row
		}
	}

	dist := g.Rows // larger than any possible fall
	for col, row := range lowest {
		d := g.Rows - 1 - row
		for c := range v.fallen {
			if c.Col == col && c.Row > row && c.Row-row-1 < d {
				d = c.Row - row - 1
			}
		}
		if d < dist {
			dist = d
		}
	}
	return dist
}

// movePiece attempts one step in the given direction, refreshing the landing
// height first. A DirNone attempt only refreshes the height, which is what
// arms the lock on the beat after touchdown.
func (v *Variant) movePiece(m *engine.Machine, d engine.Direction) {
	v.pc.height = v.landingDistance(m)

	var dc, dr int
	switch d {
	case engine.DirLeft:
		dc = -1
	case engine.DirRight:
		dc = 1
	case engine.DirDown:
		dr = 1
	default:
		return
	}

	g := m.Grid()
	for _, b := range v.pc.blocks {
		c := b.Pos()
		next := engine.Coord{Col: c.Col + dc, Row: c.Row + dr}
		if _, hit := v.fallen[next]; hit {
			return
		}
		// Pieces may straddle the top edge but not the sides or floor.
		if next.Col < 0 || next.Col >= g.Cols || next.Row >= g.Rows {
			return
		}
	}

	v.pc.anchor = engine.Coord{Col: v.pc.anchor.Col + dc, Row: v.pc.anchor.Row + dr}
	for _, b := range v.pc.blocks {
		c := b.Pos()
		b.Place(engine.Coord{Col: c.Col + dc, Row: c.Row + dr})
	}
}

// rotatePiece advances to the next rotation state if it fits: no overlap
// with the fallen structure, no cell past the side walls or the floor.
func (v *Variant) rotatePiece(m *engine.Machine) {
	g := m.Grid()
	next := shapes[v.pc.shape][v.pc.rotID].next
	for _, c := range cellsAt(v.pc.shape, next, v.pc.anchor) {
		if _, hit := v.fallen[c]; hit {
			return
		}
		if c.Col < 0 || c.Col >= g.Cols || c.Row >= g.Rows {
			return
		}
	}

	v.pc.rotID = next
	for i, c := range cellsAt(v.pc.shape, next, v.pc.anchor) {
		v.pc.blocks[i].Place(c)
	}
}

// dropInstant sends the piece straight to its landing spot. The lock still
// waits for the next movement beat, so a dropped piece can be slid.
func (v *Variant) dropInstant(m *engine.Machine) {
	h := v.landingDistance(m)
	v.pc.height = h
	v.pc.anchor.Row += h
	for _, b := range v.pc.blocks {
		c := b.Pos()
		b.Place(engine.Coord{Col: c.Col, Row: c.Row + h})
	}
}

// switchPiece trades the falling shape for the stored one, once per spawn.
// The replacement spawns back at top center.
func (v *Variant) switchPiece(m *engine.Machine) {
	if v.lockSwitch {
		return
	}
	v.stored, v.active = v.active, v.stored
	v.spawnPiece(m, v.active)
	v.lockSwitch = true
}
