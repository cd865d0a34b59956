package engine

import "testing"

func TestGroupAddRemove(t *testing.T) {
	g := DefaultGrid()
	var grp EntityGroup

	a := NewBlock(g, Coord{0, 0})
	b := NewBlock(g, Coord{1, 0})
	c := NewBlock(g, Coord{2, 0})
	grp.Add(a, b, c)

	if grp.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", grp.Len())
	}

	grp.Remove(b)
	if grp.Len() != 2 {
		t.Errorf("Len() after remove = %d, expected 2", grp.Len())
	}
	if grp.At(Coord{1, 0}) {
		t.Error("removed block should not be found")
	}

	// Removing an absent sprite is a no-op, not an error.
	grp.Remove(b)
	if grp.Len() != 2 {
		t.Errorf("Len() after absent remove = %d, expected 2", grp.Len())
	}
}

func TestGroupRemoveFirstMatchOnly(t *testing.T) {
	// Membership uniqueness is not required; Remove takes the first match.
	g := DefaultGrid()
	var grp EntityGroup

	a := NewBlock(g, Coord{0, 0})
	grp.Add(a, a)
	grp.Remove(a)
	if grp.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 (first match only)", grp.Len())
	}
}

func TestGroupDrawOrder(t *testing.T) {
	// Later-added sprites paint over earlier ones at the same coordinate.
	g := DefaultGrid()
	var grp EntityGroup
	grp.Add(NewColorBlock(g, Coord{3, 3}, ColorRed))
	grp.Add(NewColorBlock(g, Coord{3, 3}, ColorGreen))

	f := NewFrame(g)
	grp.Draw(f)
	if got := f.Get(Coord{3, 3}).Color; got != ColorGreen {
		t.Errorf("top cell color = %v, expected ColorGreen (insertion order)", got)
	}
}

func TestGroupClear(t *testing.T) {
	g := DefaultGrid()
	var grp EntityGroup
	grp.Add(NewBlock(g, Coord{0, 0}), NewBlock(g, Coord{1, 1}))

	grp.Clear()
	if grp.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", grp.Len())
	}

	f := NewFrame(g)
	grp.Draw(f)
	if f.Filled(Coord{0, 0}) || f.Filled(Coord{1, 1}) {
		t.Error("cleared group should draw nothing")
	}
}

func TestGroupEach(t *testing.T) {
	g := DefaultGrid()
	var grp EntityGroup
	grp.Add(NewBlock(g, Coord{0, 0}), NewBlock(g, Coord{1, 0}), NewBlock(g, Coord{2, 0}))

	var cols []int
	grp.Each(func(s Sprite) { cols = append(cols, s.Pos().Col) })
	for i, col := range cols {
		if col != i {
			t.Errorf("iteration order broken: index %d has col %d", i, col)
		}
	}
}
