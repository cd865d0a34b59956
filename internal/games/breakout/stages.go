package breakout

import "github.com/pmoroz/brickgame/internal/engine"

// stageCount is the number of stages to clear for victory.
const stageCount = 3

// Brick layouts per stage, row -> occupied columns. Stage 1 is a frame with a
// core, stage 2 a diamond, stage 3 a lattice.
var sketches = map[int]map[int][]int{
	1: {
		0: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		1: {0, 9},
		2: {0, 9},
		3: {0, 3, 4, 5, 6, 9},
		4: {0, 3, 4, 5, 6, 9},
		5: {0, 3, 4, 5, 6, 9},
		6: {0, 3, 4, 5, 6, 9},
		7: {0, 9},
		8: {0, 9},
		9: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	},
	2: {
		0: {0, 1, 8, 9},
		1: {0, 1, 2, 7, 8, 9},
		2: {1, 2, 3, 6, 7, 8},
		3: {2, 3, 4, 5, 6, 7},
		4: {1, 2, 3, 6, 7, 8},
		5: {0, 1, 2, 7, 8, 9},
		6: {0, 1, 8, 9},
	},
	3: {
		0: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		1: {0, 4, 5, 9},
		2: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		3: {0, 4, 5, 9},
		4: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		5: {0, 4, 5, 9},
		6: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	},
}

var stageColors = map[int]engine.Color{
	1: engine.ColorYellow,
	2: engine.ColorMagenta,
	3: engine.ColorCyan,
}

// stageSketch returns the brick coordinates for a stage, empty past the last
// stage.
func stageSketch(level int) []engine.Coord {
	sketch, ok := sketches[level]
	if !ok {
		return nil
	}
	var coords []engine.Coord
	for row, cols := range sketch {
		for _, col := range cols {
			coords = append(coords, engine.Coord{Col: col, Row: row})
		}
	}
	return coords
}

// brickPoints is the per-brick score for a stage.
func brickPoints(level int) int {
	switch level {
	case 1:
		return 15
	case 2:
		return 20
	default:
		return 30
	}
}
