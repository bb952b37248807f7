//go:build unix

package terminal

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedANSISurface(cols, rows int) (*ansiSurface, *bytes.Buffer) {
	var buf bytes.Buffer
	s := &ansiSurface{
		writer:      bufio.NewWriter(&buf),
		cols:        cols,
		rows:        rows,
		initialized: true,
	}
	return s, &buf
}

func TestANSISurface_WindowSizeIsLastIndex(t *testing.T) {
	s, _ := newBufferedANSISurface(80, 24)
	w, h := s.WindowSize()
	assert.Equal(t, 79, w)
	assert.Equal(t, 23, h)
}

func TestANSISurface_PutPositionsEachRune(t *testing.T) {
	s, buf := newBufferedANSISurface(10, 5)

	s.MoveCursor(3, 2)
	s.Put('x')
	s.Put('y')
	s.Show()

	assert.Equal(t, "\x1b[3;4Hx\x1b[3;5Hy\x1b[3;6H", buf.String())
	x, y := s.CursorPosition()
	assert.Equal(t, 5, x)
	assert.Equal(t, 2, y)
}

func TestANSISurface_OffScreenWritesDropped(t *testing.T) {
	s, buf := newBufferedANSISurface(10, 5)

	for _, p := range [][2]int{{10, 2}, {-1, 0}, {0, -1}, {3, 5}} {
		s.MoveCursor(p[0], p[1])
		s.Put('x')
		s.Show()
	}

	assert.Empty(t, buf.String())
	x, y := s.CursorPosition()
	assert.Equal(t, 4, x)
	assert.Equal(t, 5, y)
}

func TestANSISurface_ControlRuneDrawnAsPlaceholder(t *testing.T) {
	s, buf := newBufferedANSISurface(10, 5)

	s.MoveCursor(0, 0)
	s.Put(0x1b)
	s.Put('中')
	s.writer.Flush()

	assert.Equal(t, "\x1b[1;1H?\x1b[1;2H?", buf.String())
}

func TestWriteInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{999, "999"},
		{1000, "1000"},
		{12345, "12345"},
		{-3, "0"},
	}

	for _, tc := range tests {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, tc.n)
		w.Flush()
		assert.Equal(t, tc.want, buf.String(), "n=%d", tc.n)
	}
}
