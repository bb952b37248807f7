package terminal

import (
	"github.com/mattn/go-runewidth"
)

// cursor tracks the write position independently of the physical terminal.
// Positions outside the screen are legal; writes there are dropped.
type cursor struct {
	x, y int
}

func (c *cursor) moveTo(x, y int) {
	c.x = x
	c.y = y
}

func (c *cursor) position() (int, int) {
	return c.x, c.y
}

// cellRune returns the rune to draw for r. Every write advances exactly one
// column, so runes that are not single-width (control, combining, wide) are
// drawn as '?'
func cellRune(r rune) rune {
	if runewidth.RuneWidth(r) != 1 {
		return '?'
	}
	return r
}

// inside reports whether (x, y) is on a screen of cols x rows cells
func inside(x, y, cols, rows int) bool {
	return x >= 0 && y >= 0 && x < cols && y < rows
}

// printText writes s through put, treating '\n' as column 0 of the next row
func printText(c *cursor, s string, put func(r rune)) {
	for _, r := range s {
		switch r {
		case '\n':
			c.moveTo(0, c.y+1)
		case '\r':
			c.moveTo(0, c.y)
		default:
			put(r)
		}
	}
}
