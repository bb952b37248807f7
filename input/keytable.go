package input

import "github.com/lixenwraith/shape-editor/terminal"

// KeyTable maps keys to actions
type KeyTable struct {
	// Named keys (arrows, plus, minus, escape, ...)
	Keys map[terminal.Key]Action

	// Plain characters, consulted for KeyRune events only
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[terminal.Key]Action{
			terminal.KeyUp:     ActionMoveUp,
			terminal.KeyDown:   ActionMoveDown,
			terminal.KeyLeft:   ActionMoveLeft,
			terminal.KeyRight:  ActionMoveRight,
			terminal.KeyPlus:   ActionGrow,
			terminal.KeyMinus:  ActionShrink,
			terminal.KeyEscape: ActionExit,
		},
		Runes: map[rune]Action{},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[terminal.Key]Action, len(kt.Keys)),
		Runes: make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}

// Resolve returns the action bound to ev, ActionNone if unbound
func (kt *KeyTable) Resolve(ev terminal.Event) Action {
	if ev.Key == terminal.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.Keys[ev.Key]
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Keys {
		if v == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}
	return result
}
