// Package input maps normalized key events to editor actions.
package input

// Action is what a key press asks the editor to do
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionGrow
	ActionShrink
	ActionExit
)

// actionRegistry maps canonical action names to actions
// Used by keymap config loader to resolve YAML action strings to bindings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"grow":       ActionGrow,
	"shrink":     ActionShrink,
	"exit":       ActionExit,
}

var actionNames = func() map[Action]string {
	m := make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		m[a] = name
	}
	return m
}()

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
