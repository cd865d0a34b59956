package snake

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

func TestInitialState(t *testing.T) {
	v, m := newGame(t, 1)

	if got := v.head().Pos(); got != (engine.Coord{Col: 4, Row: 5}) {
		t.Errorf("head at %v, expected (4,5)", got)
	}
	if len(v.body) != 3 {
		t.Errorf("body length = %d, expected 3", len(v.body))
	}
	if v.dir != engine.DirDown {
		t.Errorf("initial direction = %v, expected down", v.dir)
	}
	if v.speed != baseSpeed {
		t.Errorf("initial speed = %d, expected %d", v.speed, baseSpeed)
	}
	if m.Group("body").Len() != 3 || m.Group("food").Len() != 1 {
		t.Error("entity groups not populated")
	}
}

func TestDeterminism(t *testing.T) {
	// Two machines with the same seed and input script must stay in lockstep.
	v1, m1 := newGame(t, 12345)
	v2, m2 := newGame(t, 12345)

	script := map[uint64]engine.Action{
		7:  engine.ActionLeft,
		30: engine.ActionUp,
		55: engine.ActionRight,
		90: engine.ActionDown,
	}

	for tick := uint64(0); tick < 300; tick++ {
		if a, ok := script[tick]; ok {
			m1.HandleKey(engine.Press(a))
			m2.HandleKey(engine.Press(a))
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

func TestNoImmediateReversal(t *testing.T) {
	v, m := newGame(t, 42)

	// The first move arms the turn lock.
	step(m, 0)
	if !v.turnArmed {
		t.Fatal("turn should be armed after a move")
	}

	// Heading down: up must be rejected, left accepted.
	m.HandleKey(engine.Press(engine.ActionUp))
	if v.dir != engine.DirDown {
		t.Errorf("direction = %v, reversal should be rejected", v.dir)
	}
	if v.turnArmed {
		t.Error("a rejected reversal still consumes the turn")
	}
}

func TestOneTurnPerStep(t *testing.T) {
	v, m := newGame(t, 42)
	step(m, 0)

	m.HandleKey(engine.Press(engine.ActionLeft))
	if v.dir != engine.DirLeft {
		t.Fatalf("direction = %v, expected left", v.dir)
	}

	// Second change before the next move is ignored.
	m.HandleKey(engine.Press(engine.ActionUp))
	if v.dir != engine.DirLeft {
		t.Errorf("direction = %v, second turn should wait for the next step", v.dir)
	}
}

func TestSpeedBoost(t *testing.T) {
	v, m := newGame(t, 42)

	m.HandleKey(engine.Press(engine.ActionDrop))
	if v.speed != 2*baseSpeed {
		t.Errorf("speed = %d, expected %d while boosting", v.speed, 2*baseSpeed)
	}
	m.HandleKey(engine.Release(engine.ActionDrop))
	if v.speed != baseSpeed {
		t.Errorf("speed = %d, expected %d after release", v.speed, baseSpeed)
	}

	// A stray release without a matching press must not slow below base.
	m.HandleKey(engine.Release(engine.ActionDrop))
	if v.speed != baseSpeed {
		t.Errorf("speed = %d, stray release should be ignored", v.speed)
	}
}

func TestWallCollisionDefeat(t *testing.T) {
	_, m := newGame(t, 42)

	// Head starts at row 5 heading down; with no input it must hit the
	// bottom border and lose.
	for tick := uint64(0); tick < 600 && m.Running(); tick++ {
		step(m, tick)
	}

	if m.Running() {
		t.Fatal("game should have ended at the bottom border")
	}
	if m.Outcome() != engine.OutcomeDefeat {
		t.Errorf("Outcome() = %v, expected defeat", m.Outcome())
	}
}

func TestSelfCollisionDefeat(t *testing.T) {
	v, m := newGame(t, 42)
	g := m.Grid()

	// A hook shape: moving right folds the head into the body.
	coords := []engine.Coord{
		{Col: 5, Row: 5},
		{Col: 5, Row: 6},
		{Col: 6, Row: 6},
		{Col: 6, Row: 5},
		{Col: 6, Row: 4},
	}
	v.body = v.body[:0]
	for _, c := range coords {
		v.body = append(v.body, engine.NewColorBlock(g, c, engine.ColorGreen))
	}
	v.dir = engine.DirRight

	v.move(m)
	if !v.CheckDefeat(m) {
		t.Error("head entering the body should be a defeat")
	}
}

func TestEatGrowsByOne(t *testing.T) {
	v, m := newGame(t, 42)

	// Put the food directly on the snake's path.
	v.food.Place(engine.Coord{Col: 4, Row: 7})

	var length int
	for tick := uint64(0); tick < 30; tick++ {
		step(m, tick)
		if length = len(v.body); length > 3 {
			break
		}
	}

	if length != 4 {
		t.Errorf("body length = %d, expected 4 after one food", length)
	}
	if v.bodyAt(v.food.Pos()) {
		t.Error("food should have respawned outside the body")
	}
}

func TestScoringTiers(t *testing.T) {
	tests := []struct {
		length int
		points int
	}{
		{3, 0},
		{4, 15},
		{25, 15},
		{26, 45},
		{50, 45},
		{51, 100},
		{100, 100},
		{101, 250},
		{199, 250},
	}

	for _, tc := range tests {
		v, m := newGame(t, 42)
		v.body = make([]*engine.Block, tc.length)
		for i := range v.body {
			v.body[i] = engine.NewBlock(m.Grid(), engine.Coord{})
		}
		v.growing = true

		v.updateScore(m)
		if m.Score() != tc.points {
			t.Errorf("length %d: scored %d, expected %d", tc.length, m.Score(), tc.points)
		}
	}
}

func TestNoScoreWithoutGrowth(t *testing.T) {
	v, m := newGame(t, 42)
	v.growing = false
	v.updateScore(m)
	if m.Score() != 0 {
		t.Errorf("Score() = %d, expected 0 on a plain move", m.Score())
	}
}

func TestFoodRespawnAvoidsBody(t *testing.T) {
	v, m := newGame(t, 999)

	for i := 0; i < 200; i++ {
		v.respawnFood(m.Grid())
		if v.bodyAt(v.food.Pos()) {
			t.Fatalf("food respawned inside the body at %v", v.food.Pos())
		}
		if !m.Grid().Contains(v.food.Pos()) {
			t.Fatalf("food respawned out of grid at %v", v.food.Pos())
		}
	}
}

func TestVictoryOnFullGrid(t *testing.T) {
	v, m := newGame(t, 42)

	v.body = make([]*engine.Block, m.Grid().Cells())
	for i := range v.body {
		v.body[i] = engine.NewBlock(m.Grid(), engine.Coord{})
	}
	if !v.CheckVictory(m) {
		t.Error("a body covering the whole grid should win")
	}
}

func TestFoodBlinks(t *testing.T) {
	v, m := newGame(t, 42)

	m.UpdateEntities(engine.DefaultBlinkInterval)
	if v.food.Visible() {
		t.Error("food should be in its hidden phase")
	}
	m.UpdateEntities(2 * engine.DefaultBlinkInterval)
	if !v.food.Visible() {
		t.Error("food should be back in its visible phase")
	}
}
