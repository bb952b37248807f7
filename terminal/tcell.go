package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellSurface implements Surface on a tcell screen
type TcellSurface struct {
	screen tcell.Screen
	style  tcell.Style
	cur    cursor

	// Screen size captured at Init
	cols, rows int

	initialized bool
	finalized   bool
}

// NewTcellSurface wraps screen, or the default tcell screen when screen is nil
func NewTcellSurface(screen tcell.Screen) (*TcellSurface, error) {
	if screen == nil {
		sc, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell screen: %w", err)
		}
		screen = sc
	}
	return &TcellSurface{
		screen: screen,
		style:  tcell.StyleDefault,
	}, nil
}

// Init initializes the tcell screen and captures its size
func (s *TcellSurface) Init() error {
	if s.initialized {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	s.cols, s.rows = s.screen.Size()
	s.screen.SetStyle(s.style)
	s.screen.Clear()
	s.initialized = true
	return nil
}

// Fini releases the tcell screen
func (s *TcellSurface) Fini() {
	if !s.initialized || s.finalized {
		return
	}
	s.screen.Fini()
	s.finalized = true
}

func (s *TcellSurface) WindowSize() (int, int) {
	cols, rows := s.cols, s.rows
	if !s.initialized {
		cols, rows = s.screen.Size()
	}
	return cols - 1, rows - 1
}

func (s *TcellSurface) MoveCursor(x, y int) {
	s.cur.moveTo(x, y)
}

func (s *TcellSurface) CursorPosition() (int, int) {
	return s.cur.position()
}

func (s *TcellSurface) Clear() {
	s.screen.Clear()
}

func (s *TcellSurface) Put(r rune) {
	r = cellRune(r)
	x, y := s.cur.position()
	if inside(x, y, s.cols, s.rows) {
		s.screen.SetContent(x, y, r, nil, s.style)
	}
	s.cur.moveTo(x+1, y)
}

func (s *TcellSurface) Print(text string) {
	printText(&s.cur, text, s.Put)
}

// Show places the visible cursor and pushes the frame to the terminal
func (s *TcellSurface) Show() {
	x, y := s.cur.position()
	if inside(x, y, s.cols, s.rows) {
		s.screen.ShowCursor(x, y)
	} else {
		s.screen.HideCursor()
	}
	s.screen.Show()
}

// ReadKey blocks for the next key event; resize events only repaint
func (s *TcellSurface) ReadKey() (Event, error) {
	s.Show()
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return Event{}, ErrClosed
		case *tcell.EventKey:
			return translateTcellKey(ev), nil
		case *tcell.EventResize:
			// Bounds are fixed for the session
			s.screen.Sync()
		}
	}
}

func (s *TcellSurface) ReadChar() (rune, error) {
	return readChar(s)
}

func (s *TcellSurface) ReadLine() (string, error) {
	return readLine(s)
}

// translateTcellKey maps tcell key codes onto the normalized key set
func translateTcellKey(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return RuneEvent(ev.Rune())
	case tcell.KeyUp:
		return Event{Key: KeyUp}
	case tcell.KeyDown:
		return Event{Key: KeyDown}
	case tcell.KeyLeft:
		return Event{Key: KeyLeft}
	case tcell.KeyRight:
		return Event{Key: KeyRight}
	case tcell.KeyEscape:
		return Event{Key: KeyEscape, Rune: 0x1b}
	case tcell.KeyEnter:
		return Event{Key: KeyEnter, Rune: '\r'}
	case tcell.KeyTab, tcell.KeyBacktab:
		return Event{Key: KeyTab, Rune: '\t'}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Key: KeyBackspace, Rune: 0x7f}
	case tcell.KeyCtrlC:
		return Event{Key: KeyCtrlC, Rune: 0x03}
	}

	// tcell control keys share their ASCII code
	if k := ev.Key(); k >= 0 && k < 0x20 {
		return Event{Key: KeyOther, Rune: rune(k)}
	}
	return Event{Key: KeyOther}
}
