// Package snake implements the snake rule set: steer a growing body to the
// blinking food, hold space for a speed boost, fill the whole grid to win.
package snake

import (
	"math/rand"

	"github.com/pmoroz/brickgame/internal/engine"
	"github.com/pmoroz/brickgame/internal/registry"
)

// baseSpeed is the movement rate in blocks per second. Holding the boost key
// doubles it for as long as the key is down.
const baseSpeed = 10

// Variant implements the snake rules on top of the engine machine.
type Variant struct {
	rng *rand.Rand

	body    []*engine.Block // head at index 0
	food    *engine.BlinkingBlock
	dir     engine.Direction
	growing bool
	speed   int

	// One direction change per movement step; re-armed after each move so a
	// fast double-tap cannot fold the head back into the neck.
	turnArmed bool
}

// New creates an unstarted snake variant.
func New() *Variant {
	return &Variant{}
}

func init() {
	registry.Register("snake", func() engine.Variant {
		return New()
	})
}

// ID returns the game identifier.
func (v *Variant) ID() string { return "snake" }

// Title returns the display name.
func (v *Variant) Title() string { return "Snake" }

// EntityNames declares the entity groups in draw order.
func (v *Variant) EntityNames() []string { return []string{"body", "food"} }

// Spawn resets all variant state and places the initial three-segment body
// heading down, plus the first food block.
func (v *Variant) Spawn(m *engine.Machine) {
	g := m.Grid()
	v.rng = rand.New(rand.NewSource(m.Config().Seed))
	v.dir = engine.DirDown
	v.growing = false
	v.speed = baseSpeed
	v.turnArmed = false

	col := g.Cols/2 - 1
	v.body = v.body[:0]
	for _, row := range []int{5, 4, 3} {
		b := engine.NewColorBlock(g, engine.Coord{Col: col, Row: row}, engine.ColorGreen)
		v.body = append(v.body, b)
	}
	m.Group("body").Add(spritesOf(v.body)...)

	v.food = engine.NewBlinkingBlock(g, engine.Coord{}, 0)
	v.respawnFood(g)
	m.Group("food").Add(v.food)
}

func spritesOf(blocks []*engine.Block) []engine.Sprite {
	sprites := make([]engine.Sprite, len(blocks))
	for i, b := range blocks {
		sprites[i] = b
	}
	return sprites
}

// HandleKey steers the snake and applies the speed boost. Direction keys are
// rate-limited to one change per movement step and cannot reverse into the
// body.
func (v *Variant) HandleKey(m *engine.Machine, ev engine.KeyEvent) {
	if !ev.Pressed {
		if ev.Action == engine.ActionDrop && v.speed > baseSpeed {
			v.speed /= 2
		}
		return
	}

	switch ev.Action {
	case engine.ActionDrop:
		v.speed *= 2
	case engine.ActionUp, engine.ActionDown, engine.ActionLeft, engine.ActionRight:
		if !v.turnArmed {
			return
		}
		v.turnArmed = false
		if d := directionFor(ev.Action); d != v.dir.Opposite() {
			v.dir = d
		}
	}
}

func directionFor(a engine.Action) engine.Direction {
	switch a {
	case engine.ActionUp:
		return engine.DirUp
	case engine.ActionDown:
		return engine.DirDown
	case engine.ActionLeft:
		return engine.DirLeft
	default:
		return engine.DirRight
	}
}

// Advance runs one tick: eating is checked every tick, movement happens at
// the current speed in blocks per second.
func (v *Variant) Advance(m *engine.Machine, t uint64) {
	v.checkEat(m)

	rate := m.Config().TickRate / v.speed
	if rate < 1 {
		rate = 1
	}
	if t%uint64(rate) == 0 {
		v.updateScore(m)
		v.move(m)
		v.turnArmed = true
	}
}

// checkEat marks the snake for growth and relocates the food when the head
// reaches it.
func (v *Variant) checkEat(m *engine.Machine) {
	if v.head().Pos() == v.food.Pos() {
		v.growing = true
		v.respawnFood(m.Grid())
	}
}

// respawnFood relocates the food to a random cell outside the body.
func (v *Variant) respawnFood(g engine.Grid) {
	c := v.randomCell(g)
	for v.bodyAt(c) {
		c = v.randomCell(g)
	}
	v.food.Place(c)
}

func (v *Variant) randomCell(g engine.Grid) engine.Coord {
	return engine.Coord{Col: v.rng.Intn(g.Cols), Row: v.rng.Intn(g.Rows)}
}

func (v *Variant) bodyAt(c engine.Coord) bool {
	for _, seg := range v.body {
		if seg.Pos() == c {
			return true
		}
	}
	return false
}

func (v *Variant) head() *engine.Block {
	return v.body[0]
}

// updateScore credits a pending growth. Longer snakes earn more per food.
func (v *Variant) updateScore(m *engine.Machine) {
	if !v.growing {
		return
	}
	switch n := len(v.body); {
	case n <= 3:
		// The starting body earns nothing.
	case n <= 25:
		m.AddScore(15)
	case n <= 50:
		m.AddScore(45)
	case n <= 100:
		m.AddScore(100)
	case n < m.Grid().Cells():
		m.AddScore(250)
	}
}

// move advances the head one cell by inserting a new block in front, dropping
// the tail unless a growth is pending. The new head is placed unchecked: a
// border hit is detected by CheckDefeat on the same tick.
func (v *Variant) move(m *engine.Machine) {
	next := v.head().Pos().Shift(v.dir)
	head := engine.NewColorBlock(m.Grid(), next, engine.ColorGreen)
	v.body = append([]*engine.Block{head}, v.body...)
	m.Group("body").Add(head)

	if v.growing {
		v.growing = false
		return
	}
	tail := v.body[len(v.body)-1]
	v.body = v.body[:len(v.body)-1]
	m.Group("body").Remove(tail)
}

// CheckVictory fires when the body fills the entire grid.
func (v *Variant) CheckVictory(m *engine.Machine) bool {
	return len(v.body) == m.Grid().Cells()
}

// CheckDefeat fires when the head leaves the grid or enters the body.
func (v *Variant) CheckDefeat(m *engine.Machine) bool {
	head := v.head().Pos()
	if !m.Grid().Contains(head) {
		return true
	}
	for _, seg := range v.body[1:] {
		if seg.Pos() == head {
			return true
		}
	}
	return false
}
