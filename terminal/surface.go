package terminal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTerminal is returned by Init when stdin is not attached to a terminal
	ErrNotTerminal = errors.New("stdin is not a terminal")
	// ErrUnsupported is returned when a backend is not available on this platform
	ErrUnsupported = errors.New("terminal backend not supported on this platform")
	// ErrClosed is returned by reads once input has ended
	ErrClosed = errors.New("terminal input closed")
)

// Backend names accepted by Open
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Surface is the terminal the editor draws on and reads keys from
type Surface interface {
	// Init takes over the terminal (raw input, cleared screen)
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// WindowSize returns the right-most column and bottom-most row indices
	WindowSize() (width, height int)

	// MoveCursor sets the write position; no bounds checks
	MoveCursor(x, y int)

	// CursorPosition returns the write position
	CursorPosition() (x, y int)

	// Clear erases the screen
	Clear()

	// Put writes r at the cursor and advances the cursor by its display width
	Put(r rune)

	// Print writes s; '\n' moves to column 0 of the next row
	Print(s string)

	// Show flushes pending output
	Show()

	// ReadKey blocks for one key press
	ReadKey() (Event, error)

	// ReadChar blocks for one character and echoes it
	ReadChar() (rune, error)

	// ReadLine reads an echoed line terminated by Enter
	ReadLine() (string, error)
}

// Open creates the surface for the named backend without initializing it
func Open(backend string) (Surface, error) {
	switch backend {
	case BackendANSI:
		return newANSISurface()
	case BackendTcell:
		s, err := NewTcellSurface(nil)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("terminal backend %q: %w", backend, ErrUnsupported)
}
