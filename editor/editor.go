package editor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lixenwraith/shape-editor/geometry"
	"github.com/lixenwraith/shape-editor/input"
	"github.com/lixenwraith/shape-editor/render"
	"github.com/lixenwraith/shape-editor/terminal"
)

// State is the editor loop state
type State uint8

const (
	StateRunning State = iota
	StateExited
)

func (s State) String() string {
	if s == StateExited {
		return "exited"
	}
	return "running"
}

// Editor owns the shape geometry and applies key presses to it
type Editor struct {
	surface terminal.Surface
	session Session
	shape   geometry.Shape
	keys    *input.KeyTable
	state   State
	logger  *slog.Logger
}

// New creates an editor in the running state
func New(surface terminal.Surface, session Session, shape geometry.Shape, keys *input.KeyTable, logger *slog.Logger) *Editor {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &Editor{
		surface: surface,
		session: session,
		shape:   shape,
		keys:    keys,
		state:   StateRunning,
		logger:  loggerOrDiscard(logger),
	}
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

// Shape returns the current geometry
func (e *Editor) Shape() geometry.Shape {
	return e.shape
}

// State returns the loop state
func (e *Editor) State() State {
	return e.state
}

// Run redraws and handles keys until the exit key is pressed
func (e *Editor) Run() error {
	for e.state == StateRunning {
		e.redraw()

		ev, err := e.surface.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		e.Handle(ev)
	}

	e.surface.Clear()
	e.surface.MoveCursor(0, 0)
	e.surface.Show()
	e.logger.Info("exit", "size", e.shape.Size, "x", e.shape.X, "y", e.shape.Y)
	return nil
}

// Handle applies one key press and returns the resulting state
func (e *Editor) Handle(ev terminal.Event) State {
	if e.state != StateRunning {
		return e.state
	}

	action := e.keys.Resolve(ev)
	e.logger.Debug("key", "key", ev.Key.String(), "rune", ev.Rune, "action", action.String())

	b := e.session.Bounds()
	var ok bool

	switch action {
	case input.ActionMoveRight:
		ok = e.shape.MoveBy(b, 1, 0)
	case input.ActionMoveLeft:
		ok = e.shape.MoveBy(b, -1, 0)
	case input.ActionMoveUp:
		ok = e.shape.MoveBy(b, 0, -1)
	case input.ActionMoveDown:
		ok = e.shape.MoveBy(b, 0, 1)
	case input.ActionGrow:
		ok = e.shape.ResizeBy(b, 1)
	case input.ActionShrink:
		ok = e.shape.ResizeBy(b, -1)
	case input.ActionExit:
		e.state = StateExited
		return e.state
	default:
		return e.state
	}

	if !ok {
		e.logger.Debug("rejected", "action", action.String(),
			"size", e.shape.Size, "x", e.shape.X, "y", e.shape.Y)
	}
	return e.state
}

// redraw clears the screen and draws the glyph at the current geometry
func (e *Editor) redraw() {
	e.surface.Clear()
	render.Shape(e.surface, e.shape, e.session.Char())
}
