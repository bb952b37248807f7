// Package config reads the editor settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/lixenwraith/shape-editor/terminal"
)

// Environment variables
const (
	EnvBackend = "SHAPE_EDITOR_BACKEND"
	EnvLog     = "SHAPE_EDITOR_LOG"
	EnvDebug   = "SHAPE_EDITOR_DEBUG"
	EnvKeymap  = "SHAPE_EDITOR_KEYMAP"
)

// ErrUnknownBackend is returned when EnvBackend names no known surface
var ErrUnknownBackend = errors.New("unknown terminal backend")

// Config holds the settings for one run
type Config struct {
	Backend    string // terminal.BackendANSI or terminal.BackendTcell
	LogFile    string // empty disables logging
	Debug      bool
	KeymapFile string // empty keeps the default bindings
}

// Default returns the settings used when the environment is empty
func Default() *Config {
	backend := terminal.BackendANSI
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" || runtime.GOOS == "js" {
		backend = terminal.BackendTcell
	}
	return &Config{
		Backend: backend,
	}
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if backend := strings.ToLower(strings.TrimSpace(getenv(EnvBackend))); backend != "" {
		switch backend {
		case terminal.BackendANSI, terminal.BackendTcell:
			cfg.Backend = backend
		default:
			return nil, fmt.Errorf("%s=%q: %w", EnvBackend, backend, ErrUnknownBackend)
		}
	}

	cfg.LogFile = strings.TrimSpace(getenv(EnvLog))

	// Invalid values keep the default
	if debug := getenv(EnvDebug); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = val
		}
	}

	cfg.KeymapFile = strings.TrimSpace(getenv(EnvKeymap))

	return cfg, nil
}
