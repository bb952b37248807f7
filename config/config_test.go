package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shape-editor/terminal"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.KeymapFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	cfg, err := load(envMap(map[string]string{
		EnvBackend: " TCELL ",
		EnvLog:     "/tmp/shape-editor.log",
		EnvDebug:   "true",
		EnvKeymap:  "keys.yaml",
	}))
	require.NoError(t, err)

	assert.Equal(t, terminal.BackendTcell, cfg.Backend)
	assert.Equal(t, "/tmp/shape-editor.log", cfg.LogFile)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "keys.yaml", cfg.KeymapFile)
}

func TestLoad_InvalidDebugIgnored(t *testing.T) {
	cfg, err := load(envMap(map[string]string{EnvDebug: "loud"}))
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
}

func TestLoad_UnknownBackend(t *testing.T) {
	_, err := load(envMap(map[string]string{EnvBackend: "curses"}))
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv(EnvBackend, terminal.BackendTcell)
	t.Setenv(EnvDebug, "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, terminal.BackendTcell, cfg.Backend)
	assert.True(t, cfg.Debug)
}
