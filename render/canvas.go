package render

// Canvas is the cursor-addressed surface the glyph is drawn on.
// Put writes at the cursor and advances it past the written cell.
type Canvas interface {
	MoveCursor(x, y int)
	CursorPosition() (x, y int)
	Put(r rune)
}

// step moves the cursor relative to its current position
func step(c Canvas, dx, dy int) {
	x, y := c.CursorPosition()
	c.MoveCursor(x+dx, y+dy)
}
