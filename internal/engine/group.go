package engine

// EntityGroup is an insertion-ordered collection of sprites composing one
// logical shape: the snake body, a brick wall, a falling piece. Draw order is
// insertion order, so later additions paint over earlier ones at the same
// coordinate. Membership uniqueness is not required.
type EntityGroup struct {
	sprites []Sprite
}

// Add appends sprites to the group.
func (g *EntityGroup) Add(sprites ...Sprite) {
	g.sprites = append(g.sprites, sprites...)
}

// Remove removes the first matching sprite by identity. Removing an absent
// sprite is a no-op, not an error: games are responsible for knowing what
// they removed.
func (g *EntityGroup) Remove(s Sprite) {
	for i, member := range g.sprites {
		if member == s {
			g.sprites = append(g.sprites[:i], g.sprites[i+1:]...)
			return
		}
	}
}

// Clear empties the group.
func (g *EntityGroup) Clear() {
	g.sprites = g.sprites[:0]
}

// Len returns the number of sprites in the group.
func (g *EntityGroup) Len() int {
	return len(g.sprites)
}

// Sprites returns the group's members in insertion order. The slice is the
// group's backing storage; callers iterate, they do not mutate.
func (g *EntityGroup) Sprites() []Sprite {
	return g.sprites
}

// Each calls fn for every sprite in insertion order.
func (g *EntityGroup) Each(fn func(s Sprite)) {
	for _, s := range g.sprites {
		fn(s)
	}
}

// At reports whether any member occupies the coordinate.
func (g *EntityGroup) At(c Coord) bool {
	for _, s := range g.sprites {
		if s.Pos() == c {
			return true
		}
	}
	return false
}

// Draw paints every member into the frame in insertion order.
func (g *EntityGroup) Draw(f *Frame) {
	for _, s := range g.sprites {
		s.Draw(f)
	}
}
