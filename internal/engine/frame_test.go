package engine

import (
	"strings"
	"testing"
)

func TestFrameSetGet(t *testing.T) {
	f := NewFrame(Grid{Cols: 4, Rows: 3})

	f.Set(Coord{2, 1}, Cell{Rune: cellFilled, Color: ColorRed})
	got := f.Get(Coord{2, 1})
	if got.Rune != cellFilled || got.Color != ColorRed {
		t.Errorf("Get(2,1) = %+v, expected filled red", got)
	}

	// Out-of-grid writes are clipped, reads return empty.
	f.Set(Coord{-1, 0}, Cell{Rune: cellFilled})
	f.Set(Coord{4, 0}, Cell{Rune: cellFilled})
	f.Set(Coord{0, 3}, Cell{Rune: cellFilled})
	if f.Get(Coord{-1, 0}).Rune != cellEmpty {
		t.Error("out-of-grid Get should return an empty cell")
	}
	if f.Filled(Coord{4, 0}) {
		t.Error("clipped write must not land anywhere")
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame(Grid{Cols: 3, Rows: 3})
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			f.Set(Coord{col, row}, Cell{Rune: cellFilled})
		}
	}

	f.Clear()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if f.Filled(Coord{col, row}) {
				t.Fatalf("cell (%d,%d) not empty after Clear", col, row)
			}
		}
	}
}

func TestFrameString(t *testing.T) {
	f := NewFrame(Grid{Cols: 3, Rows: 2})
	f.Set(Coord{0, 0}, Cell{Rune: cellFilled})
	f.Set(Coord{2, 1}, Cell{Rune: cellFilled})

	lines := strings.Split(f.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if []rune(lines[0])[0] != cellFilled {
		t.Error("row 0 col 0 should be filled")
	}
	if []rune(lines[1])[2] != cellFilled {
		t.Error("row 1 col 2 should be filled")
	}
}
