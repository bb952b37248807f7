package editor

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lixenwraith/shape-editor/terminal"
)

type point struct{ x, y int }

// fakeSurface is a scripted in-memory terminal
type fakeSurface struct {
	width, height int

	x, y   int
	cells  map[point]rune
	text   strings.Builder
	clears int
	shows  int

	keys  []terminal.Event
	chars []rune
	lines []string

	// glyph cells seen at each ReadKey, oldest first
	frames []map[point]rune
}

func newFakeSurface(width, height int) *fakeSurface {
	return &fakeSurface{
		width:  width,
		height: height,
		cells:  make(map[point]rune),
	}
}

func (f *fakeSurface) Init() error                { return nil }
func (f *fakeSurface) Fini()                      {}
func (f *fakeSurface) WindowSize() (int, int)     { return f.width, f.height }
func (f *fakeSurface) MoveCursor(x, y int)        { f.x, f.y = x, y }
func (f *fakeSurface) CursorPosition() (int, int) { return f.x, f.y }
func (f *fakeSurface) Show()                      { f.shows++ }

func (f *fakeSurface) Clear() {
	f.clears++
	f.cells = make(map[point]rune)
	f.text.Reset()
}

func (f *fakeSurface) Put(r rune) {
	f.cells[point{f.x, f.y}] = r
	f.x++
}

func (f *fakeSurface) Print(s string) {
	f.text.WriteString(s)
}

func (f *fakeSurface) ReadKey() (terminal.Event, error) {
	snapshot := make(map[point]rune, len(f.cells))
	for p, r := range f.cells {
		snapshot[p] = r
	}
	f.frames = append(f.frames, snapshot)

	if len(f.keys) == 0 {
		return terminal.Event{}, terminal.ErrClosed
	}
	ev := f.keys[0]
	f.keys = f.keys[1:]
	return ev, nil
}

func (f *fakeSurface) ReadChar() (rune, error) {
	if len(f.chars) == 0 {
		return 0, terminal.ErrClosed
	}
	r := f.chars[0]
	f.chars = f.chars[1:]
	return r, nil
}

func (f *fakeSurface) ReadLine() (string, error) {
	if len(f.lines) == 0 {
		return "", terminal.ErrClosed
	}
	l := f.lines[0]
	f.lines = f.lines[1:]
	f.text.WriteString(l + "\n")
	return l, nil
}

var _ terminal.Surface = (*fakeSurface)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func key(k terminal.Key) terminal.Event {
	return terminal.Event{Key: k}
}

func repeat(ev terminal.Event, n int) []terminal.Event {
	out := make([]terminal.Event, n)
	for i := range out {
		out[i] = ev
	}
	return out
}
