//go:build unix

package terminal

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ansiSurface drives the terminal with raw stdin and direct ANSI output
type ansiSurface struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	writer *bufio.Writer
	keys   *keyDecoder
	cur    cursor

	// Screen size captured at Init
	cols, rows int

	initialized bool
	finalized   bool
}

func newANSISurface() (Surface, error) {
	s := &ansiSurface{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
	s.writer = bufio.NewWriterSize(s.out, 4096)
	s.keys = newKeyDecoder(s)
	return s, nil
}

// Init enters raw mode and the alternate screen
func (s *ansiSurface) Init() error {
	if s.initialized {
		return nil
	}

	if !term.IsTerminal(s.inFd) {
		return ErrNotTerminal
	}

	old, err := term.MakeRaw(s.inFd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	s.oldTerm = old

	s.cols, s.rows = getTerminalSize(s.outFd)

	s.writer.Write(csiAltScreenEnter)
	// Prevents terminal scroll/wrap on bottom-right corner write
	s.writer.Write(csiAutoWrapOff)
	s.writer.Write(escKeypadNumeric)
	s.writer.Write(csiClear)
	s.writer.Flush()

	s.initialized = true
	return nil
}

// Fini restores terminal state
func (s *ansiSurface) Fini() {
	if !s.initialized || s.finalized {
		return
	}

	s.writer.Write(csiCursorShow)
	s.writer.Write(csiAltScreenExit)
	// Re-enable Auto-Wrap AFTER exiting alt screen to ensure the main buffer has wrap enabled
	s.writer.Write(csiAutoWrapOn)
	s.writer.Write(csiSGR0)
	s.writer.Flush()

	if s.oldTerm != nil {
		term.Restore(s.inFd, s.oldTerm)
	}

	s.finalized = true
}

func (s *ansiSurface) WindowSize() (int, int) {
	cols, rows := s.cols, s.rows
	if !s.initialized {
		cols, rows = getTerminalSize(s.outFd)
	}
	return cols - 1, rows - 1
}

func (s *ansiSurface) MoveCursor(x, y int) {
	s.cur.moveTo(x, y)
}

func (s *ansiSurface) CursorPosition() (int, int) {
	return s.cur.position()
}

func (s *ansiSurface) Clear() {
	s.writer.Write(csiClear)
}

func (s *ansiSurface) Put(r rune) {
	r = cellRune(r)
	x, y := s.cur.position()
	if inside(x, y, s.cols, s.rows) {
		writeCursorPos(s.writer, x, y)
		s.writer.WriteRune(r)
	}
	s.cur.moveTo(x+1, y)
}

func (s *ansiSurface) Print(text string) {
	printText(&s.cur, text, s.Put)
}

// Show parks the physical cursor on the tracked position and flushes
func (s *ansiSurface) Show() {
	x, y := s.cur.position()
	if inside(x, y, s.cols, s.rows) {
		writeCursorPos(s.writer, x, y)
	}
	s.writer.Flush()
}

func (s *ansiSurface) ReadKey() (Event, error) {
	s.Show()
	return s.keys.next()
}

func (s *ansiSurface) ReadChar() (rune, error) {
	return readChar(s)
}

func (s *ansiSurface) ReadLine() (string, error) {
	return readLine(s)
}

// read polls stdin so an escape sequence can be told apart from a lone ESC
func (s *ansiSurface) read(timeout time.Duration) ([]byte, error) {
	buf := make([]byte, 256)

	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}

	for {
		fds := []unix.PollFd{
			{Fd: int32(s.inFd), Events: unix.POLLIN},
		}

		n, err := unix.Poll(fds, ms)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}

		if n == 0 {
			return nil, nil // Timeout
		}

		rn, err := unix.Read(s.inFd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}

		if rn == 0 {
			return nil, ErrClosed
		}

		return buf[:rn], nil
	}
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}
