// Package tetris implements the tetris rule set: seven tetrominoes falling
// into a structure, full-line clears, a stored swap piece, and a fall speed
// that ramps every thirty seconds. Endless; defeat when the structure tops
// out.
package tetris

import (
	"math"
	"math/rand"

	"github.com/pmoroz/brickgame/internal/engine"
	"github.com/pmoroz/brickgame/internal/registry"
)

const (
	// startSpeed is the initial fall rate in blocks per second.
	startSpeed = 1.0
	// speedCap stops the ramp; past this the game no longer accelerates.
	speedCap = 10.0
	// rampEvery is the ramp period in seconds.
	rampEvery = 30
)

// speedStep multiplies the fall speed at every ramp, ten ramps per decade.
var speedStep = math.Pow(10, 0.05)

// Variant implements the tetris rules on top of the engine machine.
type Variant struct {
	rng   *rand.Rand
	speed float64

	active     rune // shape of the falling piece
	stored     rune // shape buffered for the next spawn or a switch
	lockSwitch bool // one switch per spawn
	dir        engine.Direction

	pc           *piece
	fallen       map[engine.Coord]*engine.Block
	fallenHeight int // rows from the floor to the structure's top
}

// New creates an unstarted tetris variant.
func New() *Variant {
	return &Variant{}
}

func init() {
	registry.Register("tetris", func() engine.Variant {
		return New()
	})
}

// ID returns the game identifier.
func (v *Variant) ID() string { return "tetris" }

// Title returns the display name.
func (v *Variant) Title() string { return "Tetris" }

// EntityNames declares the entity groups in draw order.
func (v *Variant) EntityNames() []string { return []string{"piece", "fallen"} }

// Stored returns the shape buffered for the next spawn, for previews.
func (v *Variant) Stored() rune { return v.stored }

// Spawn resets all variant state and drops the first piece.
func (v *Variant) Spawn(m *engine.Machine) {
	v.rng = rand.New(rand.NewSource(m.Config().Seed))
	v.speed = startSpeed
	v.dir = engine.DirNone
	v.fallen = make(map[engine.Coord]*engine.Block)
	v.fallenHeight = 0

	v.active = v.randomShape()
	v.stored = v.randomShape()
	v.spawnPiece(m, v.active)
}

func (v *Variant) randomShape() rune {
	return shapeNames[v.rng.Intn(len(shapeNames))]
}

// HandleKey rotates on up, slides and soft-drops on held arrows, hard-drops
// on the drop key, and trades for the stored shape on swap.
func (v *Variant) HandleKey(m *engine.Machine, ev engine.KeyEvent) {
	if ev.Pressed {
		switch ev.Action {
		case engine.ActionUp:
			v.rotatePiece(m)
		case engine.ActionDown, engine.ActionLeft, engine.ActionRight:
			v.dir = directionFor(ev.Action)
		case engine.ActionDrop:
			v.dropInstant(m)
			v.tryLock(m)
		case engine.ActionSwap:
			v.switchPiece(m)
		}
		return
	}
	switch ev.Action {
	case engine.ActionDown, engine.ActionLeft, engine.ActionRight:
		v.dir = engine.DirNone
	}
}

func directionFor(a engine.Action) engine.Direction {
	switch a {
	case engine.ActionDown:
		return engine.DirDown
	case engine.ActionLeft:
		return engine.DirLeft
	default:
		return engine.DirRight
	}
}

// Advance runs one tick: gravity at the fall rate, held movement at a faster
// rate that scales with the fall speed, and the periodic speed ramp.
func (v *Variant) Advance(m *engine.Machine, t uint64) {
	fps := m.Config().TickRate

	if t%gate(float64(fps)/v.speed) == 0 {
		v.movePiece(m, engine.DirDown)
		v.tryLock(m)
	}

	if v.speed <= speedCap && t%uint64(rampEvery*fps) == 0 {
		v.speed *= speedStep
	}

	if t%gate(float64(fps)/(7+3*v.speed)) == 0 {
		v.movePiece(m, v.dir)
		v.tryLock(m)
	}
}

// gate truncates a tick interval, never below one tick.
func gate(interval float64) uint64 {
	if interval < 1 {
		return 1
	}
	return uint64(interval)
}

// tryLock merges the piece into the fallen structure once its landing
// height has been seen at zero, clears full lines, and spawns the stored
// shape.
func (v *Variant) tryLock(m *engine.Machine) {
	if v.pc.height != 0 {
		return
	}
	v.mergeFallen(m)
	lines := v.removeFullLines(m)
	v.scoreLines(m, lines)

	v.active = v.stored
	v.stored = v.randomShape()
	v.spawnPiece(m, v.active)
}

// mergeFallen transfers the piece's blocks into the fallen structure and
// refreshes the structure height.
func (v *Variant) mergeFallen(m *engine.Machine) {
	fallenGroup := m.Group("fallen")
	for _, b := range v.pc.blocks {
		v.fallen[b.Pos()] = b
		fallenGroup.Add(b)
	}
	m.Group("piece").Clear()

	top := m.Grid().Rows
	for c := range v.fallen {
		if c.Row < top {
			top = c.Row
		}
	}
	v.fallenHeight = m.Grid().Rows - top
}

// removeFullLines clears every complete row and lowers the blocks above it,
// returning the number of rows cleared.
func (v *Variant) removeFullLines(m *engine.Machine) int {
	g := m.Grid()
	group := m.Group("fallen")
	cleared := 0

	for row := 0; row < g.Rows; row++ {
		count := 0
		for c := range v.fallen {
			if c.Row == row {
				count++
			}
		}
		if count != g.Cols {
			continue
		}
		cleared++

		next := make(map[engine.Coord]*engine.Block, len(v.fallen))
		for c, b := range v.fallen {
			switch {
			case c.Row == row:
				group.Remove(b)
			case c.Row < row:
				b.Place(engine.Coord{Col: c.Col, Row: c.Row + 1})
				next[b.Pos()] = b
			default:
				next[c] = b
			}
		}
		v.fallen = next
	}
	return cleared
}

// scoreLines credits a line clear: more lines at once pay more, scaled by
// the current speed and the structure height at lock time.
func (v *Variant) scoreLines(m *engine.Machine, lines int) {
	var base float64
	switch lines {
	case 1:
		base = 2
	case 2:
		base = 6
	case 3:
		base = 12
	case 4:
		base = 20
	default:
		return
	}
	m.AddScore(int(base+v.speed*float64(v.fallenHeight)) * 15)
}

// CheckVictory never fires; the game is endless.
func (v *Variant) CheckVictory(m *engine.Machine) bool { return false }

// CheckDefeat fires when the fallen structure grows past the top of the
// grid.
func (v *Variant) CheckDefeat(m *engine.Machine) bool {
	return v.fallenHeight > m.Grid().Rows
}
