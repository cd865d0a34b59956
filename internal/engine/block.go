package engine

import "fmt"

// Sprite is anything an EntityGroup can hold and draw: a Block or a
// block-composite. Identity is pointer identity.
type Sprite interface {
	Pos() Coord
	Draw(f *Frame)
}

// Block is one cell of the play grid. It owns a position and a color tag and
// knows how to paint itself into a Frame.
type Block struct {
	grid  Grid
	pos   Coord
	color Color
}

// NewBlock creates a block at the given coordinate. The coordinate may lie
// outside the grid (pieces spawn above the top row, bombs enter from below);
// drawing clips to the frame, and MoveTo is the checked relocation.
func NewBlock(g Grid, c Coord) *Block {
	return &Block{grid: g, pos: c, color: ColorDefault}
}

// NewColorBlock creates a block with an explicit color tag.
func NewColorBlock(g Grid, c Coord, color Color) *Block {
	return &Block{grid: g, pos: c, color: color}
}

// Pos returns the block's grid coordinate.
func (b *Block) Pos() Coord {
	return b.pos
}

// Color returns the block's color tag.
func (b *Block) Color() Color {
	return b.color
}

// MoveTo relocates the block, failing with ErrOutOfBounds if the destination
// lies outside the grid. Callers are expected to validate moves first; an
// error here is a defect in the calling game's rules.
func (b *Block) MoveTo(c Coord) error {
	if !b.grid.Contains(c) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, c.Col, c.Row, b.grid.Cols, b.grid.Rows)
	}
	b.pos = c
	return nil
}

// Place relocates the block without a bounds check. Used where shapes
// legitimately straddle the grid edge (tetromino spawn rows, rising bombs);
// drawing clips to the frame.
func (b *Block) Place(c Coord) {
	b.pos = c
}

// Draw paints the cell into the frame. Out-of-grid positions are clipped by
// the frame; no state is mutated.
func (b *Block) Draw(f *Frame) {
	f.Set(b.pos, Cell{Rune: cellFilled, Color: b.color})
}

// BlinkingBlock is a Block whose visibility toggles on a fixed tick interval,
// used for transient effects: snake food, bomb corners.
type BlinkingBlock struct {
	Block
	interval uint64
	visible  bool
}

// DefaultBlinkInterval is half a second at the default 60 ticks/s.
const DefaultBlinkInterval = 30

// NewBlinkingBlock creates a blinking block with the given toggle interval in
// ticks. An interval of 0 falls back to DefaultBlinkInterval.
func NewBlinkingBlock(g Grid, c Coord, interval uint64) *BlinkingBlock {
	if interval == 0 {
		interval = DefaultBlinkInterval
	}
	return &BlinkingBlock{
		Block:    Block{grid: g, pos: c, color: ColorDefault},
		interval: interval,
		visible:  true,
	}
}

// Tick updates visibility from the frame timestamp: visible for t in
// [0,interval), hidden for [interval,2*interval), repeating. Purely a
// function of t, so a restarted timer restarts the phase.
func (b *BlinkingBlock) Tick(t uint64) {
	b.visible = (t/b.interval)%2 == 0
}

// Visible reports the current blink phase.
func (b *BlinkingBlock) Visible() bool {
	return b.visible
}

// Draw paints the cell filled or shaded depending on the blink phase.
func (b *BlinkingBlock) Draw(f *Frame) {
	if b.visible {
		f.Set(b.pos, Cell{Rune: cellFilled, Color: b.color})
		return
	}
	f.Set(b.pos, Cell{Rune: cellFilled, Color: ColorShade})
}
