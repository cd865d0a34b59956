package engine

import "testing"

func TestGridContains(t *testing.T) {
	g := Grid{Cols: 10, Rows: 20}

	tests := []struct {
		name     string
		c        Coord
		expected bool
	}{
		{"origin", Coord{0, 0}, true},
		{"bottom-right corner", Coord{9, 19}, true},
		{"center", Coord{4, 10}, true},
		{"past right edge", Coord{10, 0}, false},
		{"past bottom edge", Coord{0, 20}, false},
		{"negative col", Coord{-1, 5}, false},
		{"negative row", Coord{5, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.c); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestGridTransposed(t *testing.T) {
	// Orientation is configuration: the transposed layout must work too.
	g := Grid{Cols: 20, Rows: 10}
	if !g.Contains(Coord{19, 9}) {
		t.Error("transposed grid should contain (19,9)")
	}
	if g.Contains(Coord{9, 19}) {
		t.Error("transposed grid should not contain (9,19)")
	}
	if g.Cells() != 200 {
		t.Errorf("Cells() = %d, expected 200", g.Cells())
	}
}

func TestCoordShift(t *testing.T) {
	c := Coord{4, 10}

	tests := []struct {
		dir      Direction
		expected Coord
	}{
		{DirUp, Coord{4, 9}},
		{DirDown, Coord{4, 11}},
		{DirLeft, Coord{3, 10}},
		{DirRight, Coord{5, 10}},
		{DirNone, Coord{4, 10}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := c.Shift(tc.dir); got != tc.expected {
				t.Errorf("Shift(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirNone:  DirNone,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
	}
}
