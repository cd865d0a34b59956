// Package breakout implements the breakout rule set: a unit-velocity ball,
// a three-block paddle, and three brick stages to clear.
package breakout

import (
	"github.com/pmoroz/brickgame/internal/engine"
	"github.com/pmoroz/brickgame/internal/registry"
)

// startSpeed is the base ball rate in blocks per second. Holding the launch
// key doubles it, which is also what releases the ball from the paddle.
const startSpeed = 20

// velocity is a unit step per axis: each component is -1, 0, or +1.
type velocity struct {
	DCol, DRow int
}

func (v velocity) zero() bool { return v.DCol == 0 && v.DRow == 0 }

// Variant implements the breakout rules on top of the engine machine.
type Variant struct {
	level int
	speed int

	target map[engine.Coord]*engine.Block
	total  int // bricks the stage started with
	count  int // bricks remaining at the last score settlement

	ball *engine.Block
	vel  velocity // reflection state
	disp velocity // actual step applied on the next move

	paddle   []*engine.Block // leftmost first
	padDir   engine.Direction
	launched bool // ball has left the paddle this stage
	dragging bool // paddle caught the ball and carries it for one step
}

// New creates an unstarted breakout variant.
func New() *Variant {
	return &Variant{}
}

func init() {
	registry.Register("breakout", func() engine.Variant {
		return New()
	})
}

// ID returns the game identifier.
func (v *Variant) ID() string { return "breakout" }

// Title returns the display name.
func (v *Variant) Title() string { return "Breakout" }

// EntityNames declares the entity groups in draw order.
func (v *Variant) EntityNames() []string { return []string{"target", "ball", "paddle"} }

// Spawn resets all variant state and builds the first stage.
func (v *Variant) Spawn(m *engine.Machine) {
	v.level = 1
	v.speed = startSpeed
	v.padDir = engine.DirNone
	v.buildStage(m)
	v.spawnBallAndPaddle(m)
}

// buildStage populates the target group with the current stage's bricks.
// The sketches are drawn for the classic ten-column field; bricks falling
// outside a narrower grid are dropped so the stage stays clearable.
func (v *Variant) buildStage(m *engine.Machine) {
	g := m.Grid()
	group := m.Group("target")
	group.Clear()
	v.target = make(map[engine.Coord]*engine.Block)
	color := stageColors[v.level]
	for _, c := range stageSketch(v.level) {
		if !g.Contains(c) {
			continue
		}
		b := engine.NewColorBlock(g, c, color)
		v.target[c] = b
		group.Add(b)
	}
	v.total = len(v.target)
	v.count = v.total
}

// spawnBallAndPaddle places a fresh ball riding a fresh paddle centered at
// the bottom of the grid.
func (v *Variant) spawnBallAndPaddle(m *engine.Machine) {
	g := m.Grid()
	left := g.Cols/2 - 2
	if left < 0 {
		left = 0
	}

	m.Group("ball").Clear()
	v.ball = engine.NewColorBlock(g, engine.Coord{Col: left + 1, Row: g.Rows - 2}, engine.ColorWhite)
	v.vel = velocity{}
	v.disp = velocity{}
	v.launched = false
	v.dragging = false
	m.Group("ball").Add(v.ball)

	m.Group("paddle").Clear()
	v.paddle = v.paddle[:0]
	for col := left; col <= left+2; col++ {
		b := engine.NewColorBlock(g, engine.Coord{Col: col, Row: g.Rows - 1}, engine.ColorBlue)
		v.paddle = append(v.paddle, b)
		m.Group("paddle").Add(b)
	}
}

// HandleKey steers the paddle and applies the speed boost that launches and
// accelerates the ball.
func (v *Variant) HandleKey(m *engine.Machine, ev engine.KeyEvent) {
	if ev.Pressed {
		switch ev.Action {
		case engine.ActionLeft:
			v.padDir = engine.DirLeft
		case engine.ActionRight:
			v.padDir = engine.DirRight
		case engine.ActionDrop:
			v.speed *= 2
		}
		return
	}
	switch ev.Action {
	case engine.ActionLeft, engine.ActionRight:
		v.padDir = engine.DirNone
	case engine.ActionDrop:
		if v.speed > startSpeed {
			v.speed /= 2
		}
	}
}

// Advance runs the collision pipeline at the current ball rate. The hit
// check runs twice, before and after the border reflection, so a brick
// adjacent to the wall is resolved on the same step.
func (v *Variant) Advance(m *engine.Machine, t uint64) {
	rate := m.Config().TickRate / v.speed
	if rate < 1 {
		rate = 1
	}
	if t%uint64(rate) != 0 {
		return
	}

	v.moveBall()
	v.checkHit(m)
	v.settleScore(m)
	v.manageStage(m)

	v.borderReflect(m.Grid())
	v.checkHit(m)
	v.settleScore(m)
	v.manageStage(m)

	v.checkPaddleDrag()
	v.checkPaddleReflect()
	v.borderReflect(m.Grid())
	v.movePaddle(m)
}

// moveBall applies the pending displacement. An unlaunched or dragged ball
// has a zero displacement and stays put.
func (v *Variant) moveBall() {
	if v.disp.zero() {
		return
	}
	p := v.ball.Pos()
	v.ball.Place(engine.Coord{Col: p.Col + v.disp.DCol, Row: p.Row + v.disp.DRow})
}

// settleScore credits bricks destroyed since the last settlement.
func (v *Variant) settleScore(m *engine.Machine) {
	n := len(v.target)
	if removed := v.count - n; removed > 0 {
		m.AddScore(removed * brickPoints(v.level))
	}
	v.count = n
}

// manageStage advances to the next stage when the current one is cleared:
// stage bonus, fresh brick layout, ball back on the paddle.
func (v *Variant) manageStage(m *engine.Machine) {
	// The clear handler runs twice per step (before and after the border
	// reflection); once the last stage is cleared the target stays empty,
	// so the level gate keeps the bonus from paying out twice.
	if len(v.target) > 0 || v.level > stageCount {
		return
	}
	v.level++
	m.AddScore(3000 * v.level)
	if v.level > stageCount {
		return // victory fires on this tick
	}
	v.buildStage(m)
	v.spawnBallAndPaddle(m)
}

// movePaddle slides the paddle one cell in the held direction, carrying the
// ball while it is attached, and performs the launch when the boost key is
// held at a stage start.
func (v *Variant) movePaddle(m *engine.Machine) {
	g := m.Grid()
	if v.padDir == engine.DirLeft || v.padDir == engine.DirRight {
		next := v.paddle[0].Pos().Shift(v.padDir)
		if next.Col >= 0 && next.Col <= g.Cols-len(v.paddle) {
			for _, b := range v.paddle {
				b.Place(b.Pos().Shift(v.padDir))
			}
			if v.attached() {
				v.ball.Place(v.ball.Pos().Shift(v.padDir))
			}
		}
	}

	if v.speed > startSpeed && !v.launched && v.count == v.total {
		v.launched = true
		v.vel = velocity{DCol: 1, DRow: -1}
		v.disp = v.vel
	}
}

// attached reports whether the ball currently rides the paddle.
func (v *Variant) attached() bool {
	return !v.launched || v.dragging
}

// CheckVictory fires once all stages are cleared.
func (v *Variant) CheckVictory(m *engine.Machine) bool {
	return v.level > stageCount
}

// CheckDefeat fires when the ball falls past the bottom row.
func (v *Variant) CheckDefeat(m *engine.Machine) bool {
	return v.ball.Pos().Row > m.Grid().Rows-1
}
