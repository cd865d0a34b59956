package breakout

import "github.com/pmoroz/brickgame/internal/engine"

// Snapshot captures the variant state for determinism testing.
type Snapshot struct {
	Level      int
	Speed      int
	Ball       engine.Coord
	Vel        velocity
	Bricks     int
	PaddleLeft engine.Coord
	Launched   bool
	Dragging   bool
}

// Snapshot returns the current variant snapshot.
func (v *Variant) Snapshot() Snapshot {
	return Snapshot{
		Level:      v.level,
		Speed:      v.speed,
		Ball:       v.ball.Pos(),
		Vel:        v.vel,
		Bricks:     len(v.target),
		PaddleLeft: v.paddle[0].Pos(),
		Launched:   v.launched,
		Dragging:   v.dragging,
	}
}
