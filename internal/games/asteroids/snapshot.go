package asteroids

import "github.com/pmoroz/brickgame/internal/engine"

// Snapshot captures the variant state for determinism testing.
type Snapshot struct {
	GameTicks uint64
	Shooter   engine.Coord
	Asteroids int
	Bullets   int
	Bombs     int
}

// Snapshot returns the current variant snapshot.
func (v *Variant) Snapshot() Snapshot {
	return Snapshot{
		GameTicks: v.gameTicks,
		Shooter:   v.shooter.Pos(),
		Asteroids: len(v.asteroids),
		Bullets:   len(v.bullets),
		Bombs:     len(v.bombs),
	}
}
