// Package asteroids implements the asteroids rule set: a bottom-row shooter
// with a continuous bullet stream against rows of falling asteroids, plus a
// rare rising bomb that clears a blast area. The game is endless; only
// defeat ends it.
package asteroids

import (
	"math/rand"

	"github.com/pmoroz/brickgame/internal/engine"
	"github.com/pmoroz/brickgame/internal/registry"
)

const (
	// shooterRate is shooter moves and bullets per second.
	shooterRate = 10
	// asteroidRate is asteroid fall steps per second.
	asteroidRate = 2
	// rampSeconds is how long the difficulty takes to reach its ceiling.
	rampSeconds = 180
	// pointsPerHit is the score for one destroyed asteroid.
	pointsPerHit = 5
)

// Variant implements the asteroids rules on top of the engine machine.
type Variant struct {
	rng       *rand.Rand
	gameTicks uint64 // pause-independent timer driving the difficulty ramp

	shooter    *engine.Block
	shooterDir engine.Direction

	asteroids map[engine.Coord]*engine.Block
	bullets   []*engine.Block
	bombs     []*bomb
}

// New creates an unstarted asteroids variant.
func New() *Variant {
	return &Variant{}
}

func init() {
	registry.Register("asteroids", func() engine.Variant {
		return New()
	})
}

// ID returns the game identifier.
func (v *Variant) ID() string { return "asteroids" }

// Title returns the display name.
func (v *Variant) Title() string { return "Asteroids" }

// EntityNames declares the entity groups in draw order.
func (v *Variant) EntityNames() []string {
	return []string{"asteroids", "bullet", "shooter", "bomb"}
}

// Spawn resets all variant state and places the shooter on the bottom row.
func (v *Variant) Spawn(m *engine.Machine) {
	g := m.Grid()
	v.rng = rand.New(rand.NewSource(m.Config().Seed))
	v.gameTicks = 0
	v.shooterDir = engine.DirNone
	v.asteroids = make(map[engine.Coord]*engine.Block)
	v.bullets = v.bullets[:0]
	v.bombs = v.bombs[:0]

	v.shooter = engine.NewColorBlock(g, engine.Coord{Col: g.Cols/2 - 1, Row: g.Rows - 1}, engine.ColorWhite)
	m.Group("shooter").Add(v.shooter)
}

// HandleKey steers the shooter; firing is automatic.
func (v *Variant) HandleKey(m *engine.Machine, ev engine.KeyEvent) {
	if ev.Pressed {
		switch ev.Action {
		case engine.ActionLeft:
			v.shooterDir = engine.DirLeft
		case engine.ActionRight:
			v.shooterDir = engine.DirRight
		}
		return
	}
	if ev.Action == engine.ActionLeft || ev.Action == engine.ActionRight {
		v.shooterDir = engine.DirNone
	}
}

// Animate moves the bullet stream one cell up per raw tick, dropping bullets
// that left the grid.
func (v *Variant) Animate(m *engine.Machine, t uint64) {
	kept := v.bullets[:0]
	for _, b := range v.bullets {
		b.Place(b.Pos().Shift(engine.DirUp))
		if b.Pos().Row < 0 {
			m.Group("bullet").Remove(b)
			continue
		}
		kept = append(kept, b)
	}
	v.bullets = kept
}

// Advance runs one tick: hits settle every tick, asteroids and bombs move at
// the fall rate, the shooter acts at its own rate.
func (v *Variant) Advance(m *engine.Machine, t uint64) {
	v.gameTicks++

	m.AddScore(pointsPerHit * v.checkHits(m))

	fps := m.Config().TickRate
	if t%gate(fps/asteroidRate) == 0 {
		v.moveAsteroids(m)
		v.moveBombs(m)
		v.checkExplosions(m)
	}
	if t%gate(fps/shooterRate) == 0 {
		v.shoot(m)
		v.moveShooter(m)
		v.trySpawnBomb(m)
	}
}

// gate clamps a tick interval to at least one tick, so a tick rate below an
// action rate runs that action every tick instead of dividing by zero.
func gate(interval int) uint64 {
	if interval < 1 {
		return 1
	}
	return uint64(interval)
}

// checkHits destroys every bullet/asteroid pair sharing a cell and returns
// the number of asteroids destroyed.
func (v *Variant) checkHits(m *engine.Machine) int {
	hits := 0
	kept := v.bullets[:0]
	for _, b := range v.bullets {
		if a, ok := v.asteroids[b.Pos()]; ok {
			delete(v.asteroids, b.Pos())
			m.Group("asteroids").Remove(a)
			m.Group("bullet").Remove(b)
			hits++
			continue
		}
		kept = append(kept, b)
	}
	v.bullets = kept
	return hits
}

// moveAsteroids shifts the whole field one row down and spawns a new top row,
// each column independently with the current spawn chance.
func (v *Variant) moveAsteroids(m *engine.Machine) {
	moved := make(map[engine.Coord]*engine.Block, len(v.asteroids))
	for _, a := range v.asteroids {
		a.Place(a.Pos().Shift(engine.DirDown))
		moved[a.Pos()] = a
	}
	v.asteroids = moved

	chance := v.spawnChance(m.Config().TickRate)
	for col := 0; col < m.Grid().Cols; col++ {
		if v.rng.Float64() < chance {
			a := engine.NewColorBlock(m.Grid(), engine.Coord{Col: col}, engine.ColorGray)
			v.asteroids[a.Pos()] = a
			m.Group("asteroids").Add(a)
		}
	}
}

// spawnChance ramps the per-column spawn probability linearly from 0.3 to
// 0.45 over the ramp window. Anything past 0.5 would be unbeatable.
func (v *Variant) spawnChance(fps int) float64 {
	ramp := uint64(rampSeconds * fps)
	if v.gameTicks >= ramp {
		return 0.45
	}
	return 0.3 + 0.15*float64(v.gameTicks)/float64(ramp)
}

// shoot spawns a bullet at the shooter's position.
func (v *Variant) shoot(m *engine.Machine) {
	b := engine.NewColorBlock(m.Grid(), v.shooter.Pos(), engine.ColorYellow)
	v.bullets = append(v.bullets, b)
	m.Group("bullet").Add(b)
}

// moveShooter slides the shooter one cell, clamped to the grid.
func (v *Variant) moveShooter(m *engine.Machine) {
	if v.shooterDir == engine.DirNone {
		return
	}
	next := v.shooter.Pos().Shift(v.shooterDir)
	if m.Grid().Contains(next) {
		v.shooter.Place(next)
	}
}

// CheckVictory never fires; the game is endless.
func (v *Variant) CheckVictory(m *engine.Machine) bool { return false }

// CheckDefeat fires when an asteroid reaches the shooter or falls past the
// bottom row.
func (v *Variant) CheckDefeat(m *engine.Machine) bool {
	for c := range v.asteroids {
		if c == v.shooter.Pos() {
			return true
		}
		if c.Row >= m.Grid().Rows {
			return true
		}
	}
	return false
}
