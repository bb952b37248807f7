package terminal

import (
	"time"
	"unicode/utf8"
)

// escapeTimeout is the duration to wait after ESC to distinguish
// standalone ESC from escape sequence start
const escapeTimeout = 50 * time.Millisecond

// maxSequence bounds the scan for a CSI terminator
const maxSequence = 16

// byteSource delivers raw input bytes.
// read blocks for at most timeout (negative waits forever) and returns an
// empty slice when nothing arrived in time.
type byteSource interface {
	read(timeout time.Duration) ([]byte, error)
}

// keyDecoder turns a raw byte stream into key events, one at a time
type keyDecoder struct {
	src byteSource
	// Persistent buffer for stream assembly, partial sequences survive between reads
	buf []byte
}

func newKeyDecoder(src byteSource) *keyDecoder {
	return &keyDecoder{
		src: src,
		buf: make([]byte, 0, 64),
	}
}

// next blocks until one complete key is available
func (d *keyDecoder) next() (Event, error) {
	for {
		if len(d.buf) == 0 {
			data, err := d.src.read(-1)
			if err != nil {
				return Event{}, err
			}
			d.buf = append(d.buf, data...)
			continue
		}

		if ev, n := decodeKey(d.buf); n > 0 {
			d.consume(n)
			return ev, nil
		}

		// Incomplete sequence, give the rest a short window to arrive
		data, err := d.src.read(escapeTimeout)
		if err != nil {
			return Event{}, err
		}
		if len(data) > 0 {
			d.buf = append(d.buf, data...)
			continue
		}

		// Nothing followed: a lone ESC is the Escape key, anything else is a stray byte
		first := d.buf[0]
		d.consume(1)
		if first == 0x1b {
			return Event{Key: KeyEscape, Rune: 0x1b}, nil
		}
		return Event{Key: KeyOther, Rune: rune(first)}, nil
	}
}

func (d *keyDecoder) consume(n int) {
	if n >= len(d.buf) {
		d.buf = d.buf[:0]
		return
	}
	copy(d.buf, d.buf[n:])
	d.buf = d.buf[:len(d.buf)-n]
}

// decodeKey parses the first key in data, returns bytes consumed (0 on incomplete sequence)
func decodeKey(data []byte) (Event, int) {
	if len(data) == 0 {
		return Event{}, 0
	}

	b := data[0]

	switch {
	// Fast path: printable ASCII
	case b >= 0x20 && b < 0x7f:
		return RuneEvent(rune(b)), 1

	case b == 0x1b:
		return decodeEscape(data)

	case b < 0x20:
		return decodeControl(b), 1

	// DEL
	case b == 0x7f:
		return Event{Key: KeyBackspace, Rune: 0x7f}, 1
	}

	// UTF-8 multibyte
	if !utf8.FullRune(data) {
		return Event{}, 0
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size <= 1 {
		return Event{Key: KeyOther, Rune: rune(b)}, 1
	}
	return RuneEvent(r), size
}

// decodeEscape parses a sequence starting with ESC, returns 0 on incomplete
func decodeEscape(data []byte) (Event, int) {
	if len(data) < 2 {
		return Event{}, 0
	}

	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		return decodeSS3(data)
	}

	// ESC followed by anything else is the Escape key; the next byte stands on its own
	return Event{Key: KeyEscape, Rune: 0x1b}, 1
}

// decodeCSI parses ESC [ params final
func decodeCSI(data []byte) (Event, int) {
	if len(data) < 3 {
		return Event{}, 0
	}

	limit := len(data)
	if limit > maxSequence {
		limit = maxSequence
	}

	for end := 2; end < limit; end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			if ev, ok := lookupCSI(data[2:end+1]); ok {
				return ev, end + 1
			}
			// Unknown but valid CSI syntax - consume as a key nobody binds
			return Event{Key: KeyOther}, end + 1
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer and let the rest decode normally
			return Event{Key: KeyOther}, 2
		}
	}

	if len(data) >= maxSequence {
		return Event{Key: KeyOther}, maxSequence
	}
	return Event{}, 0
}

// decodeSS3 parses ESC O final
func decodeSS3(data []byte) (Event, int) {
	if len(data) < 3 {
		return Event{}, 0
	}
	if ev, ok := lookupSS3(data[2:3]); ok {
		return ev, 3
	}
	// Unknown SS3 - consume to prevent garbage
	return Event{Key: KeyOther}, 3
}

// decodeControl maps control bytes to keys, keeping the raw byte as the rune
func decodeControl(b byte) Event {
	r := rune(b)
	switch b {
	case 0x03:
		return Event{Key: KeyCtrlC, Rune: r}
	case 0x08: // Ctrl+H or Backspace
		return Event{Key: KeyBackspace, Rune: r}
	case 0x09:
		return Event{Key: KeyTab, Rune: r}
	case 0x0a, 0x0d: // LF, CR
		return Event{Key: KeyEnter, Rune: r}
	case 0x1b: // handled by decodeEscape
		return Event{Key: KeyEscape, Rune: r}
	}
	return Event{Key: KeyOther, Rune: r}
}
