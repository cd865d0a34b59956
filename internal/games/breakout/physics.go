package breakout

import "github.com/pmoroz/brickgame/internal/engine"

// checkHit resolves the collision between the ball and the brick wall by
// probing the three cells the ball is heading into: straight ahead on each
// axis and the diagonal vertex. A corner hit (both axes blocked) destroys up
// to three bricks and reverses both components.
func (v *Variant) checkHit(m *engine.Machine) {
	a, b := v.vel.DCol, v.vel.DRow
	p := v.ball.Pos()

	horiz := engine.Coord{Col: p.Col + a, Row: p.Row}
	vert := engine.Coord{Col: p.Col, Row: p.Row + b}
	vertex := engine.Coord{Col: p.Col + a, Row: p.Row + b}

	_, hitH := v.target[horiz]
	_, hitV := v.target[vert]
	_, hitX := v.target[vertex]

	switch {
	case hitH && hitV:
		v.vel = velocity{DCol: -a, DRow: -b}
		v.destroyBrick(m, horiz)
		v.destroyBrick(m, vert)
		if hitX {
			v.destroyBrick(m, vertex)
		}
	case hitH:
		v.vel.DCol = -a
		v.destroyBrick(m, horiz)
	case hitV:
		v.vel.DRow = -b
		v.destroyBrick(m, vert)
	case hitX:
		v.vel = velocity{DCol: -a, DRow: -b}
		v.destroyBrick(m, vertex)
	}

	v.disp = v.vel
}

func (v *Variant) destroyBrick(m *engine.Machine, c engine.Coord) {
	b, ok := v.target[c]
	if !ok {
		return
	}
	delete(v.target, c)
	m.Group("target").Remove(b)
}

// borderReflect bounces the ball off the side and top walls. The bottom is
// open: falling through it is the defeat condition.
func (v *Variant) borderReflect(g engine.Grid) {
	a, b := v.vel.DCol, v.vel.DRow
	p := v.ball.Pos()

	if (p.Col == 0 && a == -1) || (p.Col == g.Cols-1 && a == 1) {
		v.vel.DCol = -a
	}
	if p.Row == 0 && b == -1 {
		v.vel.DRow = 1
	}
	if !v.dragging {
		v.disp = v.vel
	}
}

// paddleAt reports whether any paddle block occupies the cell.
func (v *Variant) paddleAt(c engine.Coord) bool {
	for _, b := range v.paddle {
		if b.Pos() == c {
			return true
		}
	}
	return false
}

// checkPaddleDrag catches a descending ball on the paddle for exactly one
// movement step: the first contact freezes the ball and attaches it, the
// next step releases it back into play.
func (v *Variant) checkPaddleDrag() {
	p := v.ball.Pos()
	below := engine.Coord{Col: p.Col, Row: p.Row + v.vel.DRow}
	if !v.paddleAt(below) {
		v.disp = v.vel
		return
	}
	v.disp = velocity{}
	v.dragging = !v.dragging
}

// checkPaddleReflect bounces a descending ball off the paddle. The middle
// block keeps the horizontal component; the left and right corners force the
// ball outward.
func (v *Variant) checkPaddleReflect() {
	if v.dragging {
		return
	}
	a, b := v.vel.DCol, v.vel.DRow
	p := v.ball.Pos()
	under := engine.Coord{Col: p.Col, Row: p.Row + b}
	diag := engine.Coord{Col: p.Col + a, Row: p.Row + b}

	if v.paddleAt(under) || v.paddleAt(diag) {
		v.vel.DRow = -1
		left := v.paddle[0].Pos()
		right := v.paddle[len(v.paddle)-1].Pos()
		switch {
		case under == left || diag == left:
			v.vel.DCol = -1
		case under == right || diag == right:
			v.vel.DCol = 1
		}
	}
	v.disp = v.vel
}
