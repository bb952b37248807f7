// Package geometry holds the shape position/size state and the fit rule
// that gates every change to it.
package geometry

// MinSize is the smallest size the glyph renders correctly at
const MinSize = 5

// Bounds is the captured window extent in cells.
// Width and Height are the right-most and bottom-most addressable indices.
type Bounds struct {
	Width  int
	Height int
}

// MaxSize returns the largest size a shape can have inside b
func (b Bounds) MaxSize() int {
	// y may reach -1, so a shape can be one taller than Height
	limit := b.Height + 1
	if b.Width < limit {
		limit = b.Width
	}
	return limit
}

// Fits reports whether a shape of the given size anchored at (x, y) lies inside b
func (b Bounds) Fits(x, y, size int) bool {
	if x < 0 || y < -1 ||
		x+size > b.Width ||
		y+size > b.Height ||
		size < MinSize {
		return false
	}
	return true
}

// Shape is the mutable geometry of the glyph
type Shape struct {
	Size int
	X    int
	Y    int
}

// Initial places a shape of the given size flush with the bottom edge at column 0.
// The caller is responsible for size being within [MinSize, b.MaxSize()].
func Initial(b Bounds, size int) Shape {
	return Shape{
		Size: size,
		X:    0,
		Y:    b.Height - size,
	}
}

// Valid reports whether s satisfies the fit rule inside b
func (s Shape) Valid(b Bounds) bool {
	return b.Fits(s.X, s.Y, s.Size)
}

// Bottom returns the row index the shape is anchored to when resizing
func (s Shape) Bottom() int {
	return s.Y + s.Size
}

// MoveTo relocates the shape if the new origin fits, returns false and leaves s untouched otherwise
func (s *Shape) MoveTo(b Bounds, x, y int) bool {
	if !b.Fits(x, y, s.Size) {
		return false
	}
	s.X = x
	s.Y = y
	return true
}

// MoveBy is MoveTo relative to the current origin
func (s *Shape) MoveBy(b Bounds, dx, dy int) bool {
	return s.MoveTo(b, s.X+dx, s.Y+dy)
}

// ResizeTo changes the size keeping the bottom edge anchored.
// Returns false and leaves s untouched if the result would not fit.
func (s *Shape) ResizeTo(b Bounds, size int) bool {
	y := s.Y + (s.Size - size)
	if !b.Fits(s.X, y, size) {
		return false
	}
	s.Size = size
	s.Y = y
	return true
}

// ResizeBy is ResizeTo relative to the current size
func (s *Shape) ResizeBy(b Bounds, delta int) bool {
	return s.ResizeTo(b, s.Size+delta)
}
