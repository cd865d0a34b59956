package snake

import "github.com/pmoroz/brickgame/internal/engine"

// Snapshot captures the variant state for determinism testing.
type Snapshot struct {
	Head    engine.Coord
	Food    engine.Coord
	Length  int
	Dir     engine.Direction
	Speed   int
	Growing bool
}

// Snapshot returns the current variant snapshot.
func (v *Variant) Snapshot() Snapshot {
	return Snapshot{
		Head:    v.head().Pos(),
		Food:    v.food.Pos(),
		Length:  len(v.body),
		Dir:     v.dir,
		Speed:   v.speed,
		Growing: v.growing,
	}
}
