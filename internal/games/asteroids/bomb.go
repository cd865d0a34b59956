package asteroids

import "github.com/pmoroz/brickgame/internal/engine"

// bombSize is the side of the square bomb shape.
const bombSize = 4

// blastMargin extends the explosion beyond the bomb's edges.
const blastMargin = 2

// mover is a sprite the bomb can relocate as a unit.
type mover interface {
	engine.Sprite
	Place(engine.Coord)
}

// bomb is an X-shaped composite rising from below the grid: four blinking
// corners, a solid core, and shaded filler cells, like a sea mine.
type bomb struct {
	origin engine.Coord // top-left corner of the shape
	parts  []mover
}

var (
	bombCorners = [][2]int{{0, 0}, {0, 3}, {3, 0}, {3, 3}}
	bombCore    = [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	bombFiller  = [][2]int{{0, 1}, {0, 2}, {3, 1}, {3, 2}, {1, 0}, {2, 0}, {1, 3}, {2, 3}}
)

func newBomb(m *engine.Machine, origin engine.Coord) *bomb {
	g := m.Grid()
	b := &bomb{origin: origin}
	at := func(d [2]int) engine.Coord {
		return engine.Coord{Col: origin.Col + d[0], Row: origin.Row + d[1]}
	}
	for _, d := range bombCorners {
		b.parts = append(b.parts, engine.NewBlinkingBlock(g, at(d), 0))
	}
	for _, d := range bombCore {
		b.parts = append(b.parts, engine.NewColorBlock(g, at(d), engine.ColorRed))
	}
	for _, d := range bombFiller {
		b.parts = append(b.parts, engine.NewColorBlock(g, at(d), engine.ColorShade))
	}

	group := m.Group("bomb")
	for _, s := range b.parts {
		group.Add(s)
	}
	return b
}

// rise moves the whole shape one row up.
func (b *bomb) rise() {
	for _, s := range b.parts {
		s.Place(s.Pos().Shift(engine.DirUp))
	}
	b.origin.Row--
}

// discard removes the shape from the draw group.
func (b *bomb) discard(m *engine.Machine) {
	group := m.Group("bomb")
	for _, s := range b.parts {
		group.Remove(s)
	}
}

// triggered reports whether any asteroid entered the bomb's bounding box.
func (b *bomb) triggered(asteroids map[engine.Coord]*engine.Block) bool {
	for c := range asteroids {
		if b.origin.Col <= c.Col && c.Col <= b.origin.Col+bombSize-1 &&
			b.origin.Row <= c.Row && c.Row <= b.origin.Row+bombSize-1 {
			return true
		}
	}
	return false
}

// inBlast reports whether a cell lies within the explosion area.
func (b *bomb) inBlast(c engine.Coord) bool {
	return b.origin.Col-blastMargin <= c.Col && c.Col <= b.origin.Col+bombSize-1+blastMargin &&
		b.origin.Row-blastMargin <= c.Row && c.Row <= b.origin.Row+bombSize-1+blastMargin
}

// moveBombs raises every active bomb, discarding the ones whose top row left
// the grid.
func (v *Variant) moveBombs(m *engine.Machine) {
	kept := v.bombs[:0]
	for _, b := range v.bombs {
		b.rise()
		if b.origin.Row < 0 {
			b.discard(m)
			continue
		}
		kept = append(kept, b)
	}
	v.bombs = kept
}

// checkExplosions detonates every bomb an asteroid has reached, destroying
// the asteroids in its blast area. Exploded asteroids award no points.
func (v *Variant) checkExplosions(m *engine.Machine) {
	kept := v.bombs[:0]
	for _, b := range v.bombs {
		if !b.triggered(v.asteroids) {
			kept = append(kept, b)
			continue
		}
		for c, a := range v.asteroids {
			if b.inBlast(c) {
				delete(v.asteroids, c)
				m.Group("asteroids").Remove(a)
			}
		}
		b.discard(m)
	}
	v.bombs = kept
}

// trySpawnBomb rolls the spawn chance and, on success, starts a bomb below
// the grid at a random column.
func (v *Variant) trySpawnBomb(m *engine.Machine) {
	if v.rng.Float64() >= v.bombChance(m.Config().TickRate) {
		return
	}
	col := v.rng.Intn(m.Grid().Cols - bombSize + 1)
	b := newBomb(m, engine.Coord{Col: col, Row: m.Grid().Rows - 1})
	v.bombs = append(v.bombs, b)
}

// bombChance ramps the per-attempt spawn probability from 1/3000 to 1/2000
// over the same window as the asteroid ramp.
func (v *Variant) bombChance(fps int) float64 {
	ramp := uint64(rampSeconds * fps)
	gt := v.gameTicks
	if gt > ramp {
		gt = ramp
	}
	return 1.0/3000 + float64(gt)/float64(ramp)/6000
}
