package tetris

import "github.com/pmoroz/brickgame/internal/engine"

// Snapshot captures the variant state for determinism testing.
type Snapshot struct {
	Active       rune
	Stored       rune
	Anchor       engine.Coord
	RotID        int
	Speed        float64
	FallenCount  int
	FallenHeight int
}

// Snapshot returns the current variant snapshot.
func (v *Variant) Snapshot() Snapshot {
	return Snapshot{
		Active:       v.pc.shape,
		Stored:       v.stored,
		Anchor:       v.pc.anchor,
		RotID:        v.pc.rotID,
		Speed:        v.speed,
		FallenCount:  len(v.fallen),
		FallenHeight: v.fallenHeight,
	}
}
