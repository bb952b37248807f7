// Package editor runs the interactive shape editor: setup prompts, then the
// redraw / read key / apply loop until the exit key.
package editor

import "github.com/lixenwraith/shape-editor/geometry"

// Session holds what is fixed for the whole run
type Session struct {
	bounds geometry.Bounds
	char   rune
}

// NewSession captures the window bounds and drawing character
func NewSession(bounds geometry.Bounds, char rune) Session {
	return Session{bounds: bounds, char: char}
}

// Bounds returns the window bounds captured at startup
func (s Session) Bounds() geometry.Bounds {
	return s.bounds
}

// Char returns the drawing character
func (s Session) Char() rune {
	return s.char
}
