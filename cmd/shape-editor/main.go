package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/shape-editor/config"
	"github.com/lixenwraith/shape-editor/editor"
	"github.com/lixenwraith/shape-editor/input"
	"github.com/lixenwraith/shape-editor/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the editor crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\nSHAPE-EDITOR CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shape-editor: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logFile, err := setupLogging(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.LoadKeyTable(cfg.KeymapFile)
	if err != nil {
		return err
	}

	surface, err := terminal.Open(cfg.Backend)
	if err != nil {
		return err
	}
	if err := surface.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer surface.Fini()

	logger.Debug("terminal ready", "backend", cfg.Backend)

	session, shape, err := editor.Setup(surface, logger)
	if err != nil {
		return err
	}

	return editor.New(surface, session, shape, keys, logger).Run()
}
