package asteroids

import (
	"testing"

	"github.com/pmoroz/brickgame/internal/engine"
)

func newGame(t *testing.T, seed int64) (*Variant, *engine.Machine) {
	t.Helper()
	v := New()
	cfg := engine.DefaultRuntimeConfig()
	cfg.Seed = seed
	m := engine.New(v, cfg)
	m.Reset()
	return v, m
}

func step(m *engine.Machine, t uint64) {
	m.UpdateEntities(t)
	m.Manage(t)
}

func addAsteroid(v *Variant, m *engine.Machine, c engine.Coord) {
	a := engine.NewColorBlock(m.Grid(), c, engine.ColorGray)
	v.asteroids[c] = a
	m.Group("asteroids").Add(a)
}

func TestLowTickRate(t *testing.T) {
	// A tick rate below the action rates must clamp the gates to every tick
	// rather than divide by zero.
	v := New()
	cfg := engine.DefaultRuntimeConfig()
	cfg.TickRate = 5
	cfg.Seed = 1
	m := engine.New(v, cfg)
	m.Reset()

	for tick := uint64(0); tick < 40 && m.Running(); tick++ {
		step(m, tick)
	}
	if len(v.asteroids) == 0 && m.Running() {
		t.Error("asteroids should still spawn at a low tick rate")
	}
}

func TestInitialState(t *testing.T) {
	v, m := newGame(t, 1)

	if got := v.shooter.Pos(); got != (engine.Coord{Col: 4, Row: 19}) {
		t.Errorf("shooter at %v, expected (4,19)", got)
	}
	if len(v.asteroids) != 0 || len(v.bullets) != 0 || len(v.bombs) != 0 {
		t.Error("field should start empty")
	}
	if m.Group("shooter").Len() != 1 {
		t.Error("shooter group should hold one block")
	}
}

func TestDeterminism(t *testing.T) {
	v1, m1 := newGame(t, 777)
	v2, m2 := newGame(t, 777)

	script := map[uint64]engine.KeyEvent{
		10:  engine.Press(engine.ActionLeft),
		60:  engine.Release(engine.ActionLeft),
		90:  engine.Press(engine.ActionRight),
		200: engine.Release(engine.ActionRight),
	}

	for tick := uint64(0); tick < 400; tick++ {
		if ev, ok := script[tick]; ok {
			m1.HandleKey(ev)
			m2.HandleKey(ev)
		}
		step(m1, tick)
		step(m2, tick)
	}

	if v1.Snapshot() != v2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", v1.Snapshot(), v2.Snapshot())
	}
	if m1.Score() != m2.Score() {
		t.Errorf("score mismatch: %d vs %d", m1.Score(), m2.Score())
	}
}

func TestShooterMovesAndClamps(t *testing.T) {
	v, m := newGame(t, 1)

	v.shooterDir = engine.DirLeft
	for i := 0; i < 15; i++ {
		v.moveShooter(m)
	}
	if got := v.shooter.Pos().Col; got != 0 {
		t.Errorf("shooter col = %d, expected clamp at 0", got)
	}

	v.shooterDir = engine.DirRight
	for i := 0; i < 15; i++ {
		v.moveShooter(m)
	}
	if got := v.shooter.Pos().Col; got != m.Grid().Cols-1 {
		t.Errorf("shooter col = %d, expected clamp at the right wall", got)
	}
}

func TestKeyReleaseStopsShooter(t *testing.T) {
	v, m := newGame(t, 1)

	m.HandleKey(engine.Press(engine.ActionLeft))
	if v.shooterDir != engine.DirLeft {
		t.Fatalf("shooterDir = %v, expected left", v.shooterDir)
	}
	m.HandleKey(engine.Release(engine.ActionLeft))
	if v.shooterDir != engine.DirNone {
		t.Errorf("shooterDir = %v, expected none after release", v.shooterDir)
	}
}

func TestBulletStream(t *testing.T) {
	v, m := newGame(t, 1)

	v.shoot(m)
	if len(v.bullets) != 1 {
		t.Fatal("shoot should spawn a bullet")
	}
	if got := v.bullets[0].Pos(); got != v.shooter.Pos() {
		t.Errorf("bullet at %v, expected the shooter's cell", got)
	}

	v.Animate(m, 1)
	if got := v.bullets[0].Pos(); got != (engine.Coord{Col: 4, Row: 18}) {
		t.Errorf("bullet at %v, expected one cell up", got)
	}
}

func TestBulletLeavesGrid(t *testing.T) {
	v, m := newGame(t, 1)

	v.shoot(m)
	v.bullets[0].Place(engine.Coord{Col: 4, Row: 0})
	v.Animate(m, 1)
	if len(v.bullets) != 0 {
		t.Error("bullet should be dropped past the top row")
	}
	if m.Group("bullet").Len() != 0 {
		t.Error("bullet group should be empty")
	}
}

func TestHitScoresFivePoints(t *testing.T) {
	v, m := newGame(t, 1)

	c := engine.Coord{Col: 4, Row: 10}
	addAsteroid(v, m, c)
	v.shoot(m)
	v.bullets[0].Place(c)

	v.Advance(m, 1) // off the movement beats: only hit settlement runs
	if m.Score() != pointsPerHit {
		t.Errorf("Score() = %d, expected %d", m.Score(), pointsPerHit)
	}
	if len(v.asteroids) != 0 || len(v.bullets) != 0 {
		t.Error("both the asteroid and the bullet should be destroyed")
	}
}

func TestAsteroidsFall(t *testing.T) {
	v, m := newGame(t, 1)

	addAsteroid(v, m, engine.Coord{Col: 3, Row: 5})
	v.moveAsteroids(m)
	if _, ok := v.asteroids[engine.Coord{Col: 3, Row: 6}]; !ok {
		t.Error("asteroid should fall one row")
	}
}

func TestTopRowSpawns(t *testing.T) {
	v, m := newGame(t, 99)

	for i := 0; i < 5; i++ {
		v.moveAsteroids(m)
	}
	if len(v.asteroids) == 0 {
		t.Error("five fall steps should have spawned asteroids")
	}
	for c := range v.asteroids {
		if c.Row < 0 || c.Col < 0 || c.Col >= m.Grid().Cols {
			t.Errorf("asteroid spawned at %v, outside the field", c)
		}
	}
}

func TestSpawnChanceRamp(t *testing.T) {
	v, m := newGame(t, 1)
	fps := m.Config().TickRate
	ramp := uint64(rampSeconds * fps)

	v.gameTicks = 0
	if got := v.spawnChance(fps); got != 0.3 {
		t.Errorf("spawnChance at start = %v, expected 0.3", got)
	}
	v.gameTicks = ramp / 2
	if got := v.spawnChance(fps); got != 0.375 {
		t.Errorf("spawnChance at half ramp = %v, expected 0.375", got)
	}
	v.gameTicks = ramp + 1
	if got := v.spawnChance(fps); got != 0.45 {
		t.Errorf("spawnChance past ramp = %v, expected the 0.45 ceiling", got)
	}
}

func TestEndlessNoVictory(t *testing.T) {
	v, m := newGame(t, 1)
	if v.CheckVictory(m) {
		t.Error("asteroids has no victory condition")
	}
}

func TestDefeatConditions(t *testing.T) {
	t.Run("contact with shooter", func(t *testing.T) {
		v, m := newGame(t, 1)
		addAsteroid(v, m, v.shooter.Pos())
		if !v.CheckDefeat(m) {
			t.Error("asteroid on the shooter should be a defeat")
		}
	})

	t.Run("asteroid past the bottom", func(t *testing.T) {
		v, m := newGame(t, 1)
		addAsteroid(v, m, engine.Coord{Col: 0, Row: m.Grid().Rows})
		if !v.CheckDefeat(m) {
			t.Error("asteroid past the bottom row should be a defeat")
		}
	})

	t.Run("mid-field is safe", func(t *testing.T) {
		v, m := newGame(t, 1)
		addAsteroid(v, m, engine.Coord{Col: 0, Row: 10})
		if v.CheckDefeat(m) {
			t.Error("a falling asteroid alone is not a defeat")
		}
	})
}

func TestBombShape(t *testing.T) {
	v, m := newGame(t, 1)

	b := newBomb(m, engine.Coord{Col: 2, Row: 10})
	v.bombs = append(v.bombs, b)
	if len(b.parts) != 16 {
		t.Errorf("bomb has %d parts, expected 16", len(b.parts))
	}
	if m.Group("bomb").Len() != 16 {
		t.Errorf("bomb group has %d sprites, expected 16", m.Group("bomb").Len())
	}

	blinkers := 0
	for _, s := range b.parts {
		if _, ok := s.(*engine.BlinkingBlock); ok {
			blinkers++
		}
	}
	if blinkers != 4 {
		t.Errorf("bomb has %d blinking corners, expected 4", blinkers)
	}
}

func TestBombRisesAndDespawns(t *testing.T) {
	v, m := newGame(t, 1)

	b := newBomb(m, engine.Coord{Col: 2, Row: 1})
	v.bombs = append(v.bombs, b)

	v.moveBombs(m)
	if b.origin.Row != 0 {
		t.Fatalf("origin row = %d, expected 0 after one rise", b.origin.Row)
	}

	// The next rise takes the top row above the grid and retires the bomb.
	v.moveBombs(m)
	if len(v.bombs) != 0 {
		t.Error("bomb should despawn once its top row leaves the grid")
	}
	if m.Group("bomb").Len() != 0 {
		t.Error("bomb group should be emptied on despawn")
	}
}

func TestBombExplosion(t *testing.T) {
	v, m := newGame(t, 1)

	b := newBomb(m, engine.Coord{Col: 2, Row: 10})
	v.bombs = append(v.bombs, b)

	addAsteroid(v, m, engine.Coord{Col: 3, Row: 12}) // inside the shape: triggers
	addAsteroid(v, m, engine.Coord{Col: 0, Row: 9})  // in blast range only
	addAsteroid(v, m, engine.Coord{Col: 9, Row: 0})  // out of reach

	v.checkExplosions(m)

	if len(v.bombs) != 0 {
		t.Error("a triggered bomb should be consumed")
	}
	if len(v.asteroids) != 1 {
		t.Fatalf("%d asteroids left, expected only the distant one", len(v.asteroids))
	}
	if _, ok := v.asteroids[engine.Coord{Col: 9, Row: 0}]; !ok {
		t.Error("the asteroid outside the blast should survive")
	}
	if m.Score() != 0 {
		t.Error("bomb kills award no points")
	}
}

func TestUntriggeredBombSurvives(t *testing.T) {
	v, m := newGame(t, 1)

	b := newBomb(m, engine.Coord{Col: 2, Row: 10})
	v.bombs = append(v.bombs, b)
	addAsteroid(v, m, engine.Coord{Col: 9, Row: 0})

	v.checkExplosions(m)
	if len(v.bombs) != 1 {
		t.Error("a bomb with no asteroid in its box should stay armed")
	}
}
