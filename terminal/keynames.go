package terminal

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyCtrlC:     "ctrl_c",

	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",

	KeyPlus:  "plus",
	KeyMinus: "minus",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+2)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["esc"] = KeyEscape
	nameToKey["return"] = KeyEnter
}

// KeyName returns the canonical string name for a Key constant
// Returns empty string for KeyNone, KeyRune and KeyOther
func KeyName(k Key) string {
	return keyToName[k]
}

// KeyByName resolves a canonical name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	switch k {
	case KeyRune:
		return "rune"
	case KeyOther:
		return "other"
	}
	return "none"
}
