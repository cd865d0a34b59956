package tetris

import "github.com/pmoroz/brickgame/internal/engine"

// offset is a cell position relative to the piece anchor.
type offset struct {
	DCol, DRow int
}

// rotation is one rotation state: the four cell offsets and the state to try
// on the next rotate.
type rotation struct {
	next  int
	cells [4]offset
}

// Rotation tables per shape, keyed by state id. Four-state shapes cycle
// 1-2-3-4, the two-state shapes bounce 1-2, O has a single state.
var shapes = map[rune]map[int]rotation{
	'T': {
		1: {2, [4]offset{{-1, 0}, {0, 0}, {1, 0}, {0, -1}}},
		2: {3, [4]offset{{-1, 0}, {0, 0}, {0, -1}, {0, 1}}},
		3: {4, [4]offset{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}},
		4: {1, [4]offset{{0, -1}, {0, 0}, {1, 0}, {0, 1}}},
	},
	'J': {
		1: {2, [4]offset{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}}},
		2: {3, [4]offset{{0, -1}, {0, 0}, {0, 1}, {-1, 1}}},
		3: {4, [4]offset{{-1, -1}, {0, -1}, {1, -1}, {1, 0}}},
		4: {1, [4]offset{{-1, -1}, {0, -1}, {-1, 0}, {-1, 1}}},
	},
	'L': {
		1: {2, [4]offset{{-1, 0}, {0, 0}, {1, 0}, {1, -1}}},
		2: {3, [4]offset{{-1, -1}, {0, -1}, {0, 0}, {0, 1}}},
		3: {4, [4]offset{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}}},
		4: {1, [4]offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}}},
	},
	'S': {
		1: {2, [4]offset{{-1, 0}, {0, 0}, {0, -1}, {1, -1}}},
		2: {1, [4]offset{{0, 1}, {0, 0}, {-1, 0}, {-1, -1}}},
	},
	'Z': {
		1: {2, [4]offset{{-1, -1}, {0, -1}, {0, 0}, {1, 0}}},
		2: {1, [4]offset{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}}},
	},
	'I': {
		1: {2, [4]offset{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}},
		2: {1, [4]offset{{0, -1}, {0, 0}, {0, 1}, {0, 2}}},
	},
	'O': {
		1: {1, [4]offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	},
}

var shapeNames = []rune{'T', 'J', 'L', 'S', 'Z', 'I', 'O'}

var shapeColors = map[rune]engine.Color{
	'T': engine.ColorMagenta,
	'J': engine.ColorBlue,
	'L': engine.ColorOrange,
	'S': engine.ColorGreen,
	'Z': engine.ColorRed,
	'I': engine.ColorCyan,
	'O': engine.ColorYellow,
}

// cellsAt resolves a rotation state to absolute coordinates at an anchor.
func cellsAt(shape rune, rotID int, anchor engine.Coord) [4]engine.Coord {
	var cells [4]engine.Coord
	for i, o := range shapes[shape][rotID].cells {
		cells[i] = engine.Coord{Col: anchor.Col + o.DCol, Row: anchor.Row + o.DRow}
	}
	return cells
}
