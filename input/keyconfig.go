package input

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/shape-editor/terminal"
)

var (
	// ErrUnknownAction is returned for action names missing from the registry
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnknownKey is returned for key names that cannot be resolved
	ErrUnknownKey = errors.New("unknown key")
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyConfigFile is the YAML layout of a keymap file
type keyConfigFile struct {
	Keys  map[string]string `yaml:"keys"`
	Runes map[string]string `yaml:"runes"`
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Only keys present in the document are populated
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var file keyConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		Keys:  make(map[terminal.Key]Action, len(file.Keys)),
		Runes: make(map[rune]Action, len(file.Runes)),
	}

	for name, actionName := range file.Keys {
		k, ok := terminal.KeyByName(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("[keys] %q: %w", name, ErrUnknownKey)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] %q: %w", name, err)
		}
		kt.Keys[k] = a
	}

	for keyStr, actionName := range file.Runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[runes] %q: %w", keyStr, err)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[runes] %q: %w", keyStr, err)
		}

		// '+' and '-' arrive as named keys, bind them there
		if ev := terminal.RuneEvent(r); ev.Key != terminal.KeyRune {
			kt.Keys[ev.Key] = a
			continue
		}
		kt.Runes[r] = a
	}

	return kt, nil
}

// LoadKeyTable returns the default table merged with the keymap file at path
func LoadKeyTable(path string) (*KeyTable, error) {
	base := DefaultKeyTable()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}

	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}

	return MergeKeyTable(base, override), nil
}

// resolveRune converts a YAML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	// Named alias
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	// Single character
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("expected single character or alias: %w", ErrUnknownKey)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("%q: %w", name, ErrUnknownAction)
	}
	return a, nil
}
