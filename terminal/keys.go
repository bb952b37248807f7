package terminal

// Key represents a normalized input key
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Plain character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyCtrlC

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Resize keys, main row and keypad
	KeyPlus
	KeyMinus

	// Anything recognized as a key press that has no symbol above
	KeyOther
)

// Event is one decoded key press.
// Rune carries the character for KeyRune, KeyPlus, KeyMinus and the raw
// byte for control keys; it is zero for navigation keys.
type Event struct {
	Key  Key
	Rune rune
}

// RuneEvent builds the event for a typed character, normalizing + and -
func RuneEvent(r rune) Event {
	switch r {
	case '+':
		return Event{Key: KeyPlus, Rune: r}
	case '-':
		return Event{Key: KeyMinus, Rune: r}
	}
	return Event{Key: KeyRune, Rune: r}
}

// escapeSequence maps the bytes following ESC [ or ESC O to a key
type escapeSequence struct {
	seq string
	key Key
	r   rune
}

// CSI sequences (ESC [ ...)
var csiSequences = []escapeSequence{
	{"A", KeyUp, 0},
	{"B", KeyDown, 0},
	{"C", KeyRight, 0},
	{"D", KeyLeft, 0},

	// xterm modifier forms (ESC [ 1 ; mod X) move the same way
	{"1;2A", KeyUp, 0},
	{"1;2B", KeyDown, 0},
	{"1;2C", KeyRight, 0},
	{"1;2D", KeyLeft, 0},
	{"1;3A", KeyUp, 0},
	{"1;3B", KeyDown, 0},
	{"1;3C", KeyRight, 0},
	{"1;3D", KeyLeft, 0},
	{"1;5A", KeyUp, 0},
	{"1;5B", KeyDown, 0},
	{"1;5C", KeyRight, 0},
	{"1;5D", KeyLeft, 0},

	{"Z", KeyTab, 0}, // Shift+Tab
}

// SS3 sequences (ESC O ...), including application keypad
var ss3Sequences = []escapeSequence{
	{"A", KeyUp, 0},
	{"B", KeyDown, 0},
	{"C", KeyRight, 0},
	{"D", KeyLeft, 0},
	{"k", KeyPlus, '+'},
	{"m", KeyMinus, '-'},
	{"M", KeyEnter, '\r'},
}

var csiMap = buildSequenceMap(csiSequences)
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]escapeSequence {
	m := make(map[string]escapeSequence, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s
	}
	return m
}

// lookupCSI performs zero-alloc map lookup via compiler optimization
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(seq []byte) (Event, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return Event{Key: s.key, Rune: s.r}, true
	}
	return Event{}, false
}

// lookupSS3 performs zero-alloc map lookup
func lookupSS3(seq []byte) (Event, bool) {
	if s, ok := ss3Map[string(seq)]; ok {
		return Event{Key: s.key, Rune: s.r}, true
	}
	return Event{}, false
}
