package engine

import "errors"

// ErrOutOfBounds signals a block placement outside the grid. It indicates a
// logic bug in a game's movement rule: variants are expected to clamp or
// reject moves before calling MoveTo.
var ErrOutOfBounds = errors.New("engine: coordinate out of grid bounds")
