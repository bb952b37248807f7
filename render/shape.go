// Package render draws the editor glyph using relative cursor moves.
//
// The glyph for size 5:
//
//	x   x
//	xx xx
//	x x x
//	x   x
//	x   x
package render

import "github.com/lixenwraith/shape-editor/geometry"

// Segments holds the stroke lengths of the glyph for one size
type Segments struct {
	Rise     int // left spine, drawn bottom-up
	Fall     int // diagonal from the top-left corner down to the middle
	Ascend   int // diagonal from the middle back up, after the pivot cell
	Closing  int // right spine, drawn top-down
	Midpoint int // (size-3)/2, shared by Fall and Ascend
}

// SegmentsFor returns the stroke lengths for size.
// Lengths below 1 mean the stroke is skipped.
func SegmentsFor(size int) Segments {
	mid := (size - 3) / 2
	return Segments{
		Rise:     size - 1,
		Fall:     mid + 2,
		Ascend:   mid - 1,
		Closing:  size,
		Midpoint: mid,
	}
}

// Shape draws the glyph for s with ch and parks the cursor at (0,0)
func Shape(c Canvas, s geometry.Shape, ch rune) {
	seg := SegmentsFor(s.Size)

	c.MoveCursor(s.X, s.Y+s.Size)

	// Writing advances one cell right, so left+up lands on the cell above
	for i := 0; i < seg.Rise; i++ {
		c.Put(ch)
		step(c, -1, -1)
	}

	for i := 0; i < seg.Fall; i++ {
		c.Put(ch)
		step(c, 0, 1)
	}

	step(c, 0, -2)
	c.Put(ch)

	// Move first, then draw
	for i := 0; i < seg.Ascend; i++ {
		step(c, 0, -1)
		c.Put(ch)
	}

	step(c, 0, -1)

	for i := 0; i < seg.Closing; i++ {
		c.Put(ch)
		step(c, -1, 1)
	}

	c.MoveCursor(0, 0)
}
