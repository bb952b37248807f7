package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shape-editor/geometry"
	"github.com/lixenwraith/shape-editor/render"
)

func newSimSurface(t *testing.T, cols, rows int) (*TcellSurface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	s, err := NewTcellSurface(sim)
	require.NoError(t, err)
	require.NoError(t, s.Init())
	sim.SetSize(cols, rows)
	// Size is captured at Init; re-capture after the simulated resize
	s.cols, s.rows = sim.Size()
	t.Cleanup(s.Fini)
	return s, sim
}

func cellAt(t *testing.T, sim tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := sim.GetContents()
	runes := cells[y*w+x].Runes
	if len(runes) == 0 {
		return ' '
	}
	return runes[0]
}

func TestTcellSurface_WindowSizeIsLastIndex(t *testing.T) {
	s, _ := newSimSurface(t, 40, 12)
	w, h := s.WindowSize()
	assert.Equal(t, 39, w)
	assert.Equal(t, 11, h)
}

func TestTcellSurface_PutAdvancesCursor(t *testing.T) {
	s, sim := newSimSurface(t, 20, 5)

	s.MoveCursor(3, 2)
	s.Put('x')
	x, y := s.CursorPosition()
	assert.Equal(t, 4, x)
	assert.Equal(t, 2, y)

	s.Put('y')
	s.Show()

	assert.Equal(t, 'x', cellAt(t, sim, 3, 2))
	assert.Equal(t, 'y', cellAt(t, sim, 4, 2))
}

func TestTcellSurface_PutOutsideIsDropped(t *testing.T) {
	s, _ := newSimSurface(t, 10, 5)

	s.MoveCursor(-2, -1)
	s.Put('x')
	x, y := s.CursorPosition()
	assert.Equal(t, -1, x)
	assert.Equal(t, -1, y)

	s.MoveCursor(10, 4)
	assert.NotPanics(t, func() {
		s.Put('x')
		s.Show()
	})
}

func TestTcellSurface_Print(t *testing.T) {
	s, sim := newSimSurface(t, 20, 5)

	s.Print("ab\ncd")
	s.Show()

	assert.Equal(t, 'a', cellAt(t, sim, 0, 0))
	assert.Equal(t, 'b', cellAt(t, sim, 1, 0))
	assert.Equal(t, 'c', cellAt(t, sim, 0, 1))
	assert.Equal(t, 'd', cellAt(t, sim, 1, 1))
}

func TestTcellSurface_ReadKey(t *testing.T) {
	s, sim := newSimSurface(t, 20, 5)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, '+', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, '-', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyF5, 0, tcell.ModNone)

	want := []Event{
		{Key: KeyUp},
		{Key: KeyRight},
		{Key: KeyPlus, Rune: '+'},
		{Key: KeyMinus, Rune: '-'},
		{Key: KeyRune, Rune: 'q'},
		{Key: KeyEscape, Rune: 0x1b},
		{Key: KeyOther},
	}
	for _, w := range want {
		ev, err := s.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, w, ev)
	}
}

func TestTcellSurface_ReadLine(t *testing.T) {
	s, sim := newSimSurface(t, 30, 5)

	s.Print("size: ")
	for _, r := range "12x" {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, '7', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "127", line)

	x, y := s.CursorPosition()
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)

	assert.Equal(t, '7', cellAt(t, sim, 8, 0))
}

func TestTcellSurface_ReadChar(t *testing.T) {
	s, sim := newSimSurface(t, 30, 5)

	s.MoveCursor(5, 1)
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, '#', tcell.ModNone)

	r, err := s.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, '#', r)
	assert.Equal(t, '#', cellAt(t, sim, 5, 1))
}

func TestTcellSurface_PlaceholderForNonSingleWidth(t *testing.T) {
	s, sim := newSimSurface(t, 20, 5)

	for i, r := range []rune{0x07, '中', '\u0301', 'a'} {
		s.MoveCursor(2, i)
		s.Put(r)
		x, _ := s.CursorPosition()
		assert.Equal(t, 3, x, "rune %U", r)
	}
	s.Show()

	assert.Equal(t, '?', cellAt(t, sim, 2, 0))
	assert.Equal(t, '?', cellAt(t, sim, 2, 1))
	assert.Equal(t, '?', cellAt(t, sim, 2, 2))
	assert.Equal(t, 'a', cellAt(t, sim, 2, 3))
}

func TestTcellSurface_GlyphStaysInsideShapeBox(t *testing.T) {
	shape := geometry.Shape{Size: 5, X: 0, Y: 6}

	for _, ch := range []rune{'x', '中', 0x07} {
		s, sim := newSimSurface(t, 40, 12)
		render.Shape(s, shape, ch)
		s.Show()

		drawn := 0
		for y := 0; y < 12; y++ {
			for x := 0; x < 40; x++ {
				if cellAt(t, sim, x, y) == ' ' {
					continue
				}
				drawn++
				assert.True(t, x >= shape.X && x < shape.X+shape.Size,
					"rune %U: column %d outside shape", ch, x)
				assert.True(t, y > shape.Y && y <= shape.Y+shape.Size,
					"rune %U: row %d outside shape", ch, y)
			}
		}
		assert.NotZero(t, drawn, "rune %U", ch)

		want := ch
		if ch != 'x' {
			want = '?'
		}
		assert.Equal(t, want, cellAt(t, sim, 0, 11), "rune %U", ch)
		assert.Equal(t, want, cellAt(t, sim, 4, 7), "rune %U", ch)
	}
}
