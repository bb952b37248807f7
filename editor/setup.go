package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/shape-editor/geometry"
	"github.com/lixenwraith/shape-editor/terminal"
)

// ErrWindowTooSmall is returned when no shape size fits the window
var ErrWindowTooSmall = errors.New("window too small for the smallest shape")

const (
	indent = 8

	title      = "Draw a shape with any ASCII character"
	helpLine   = "Arrows move the shape, + and - resize it, Esc quits"
	charPrompt = "Please specify ASCII character for drawing: "
	sizePrompt = "Enter shape size: "
)

var headlineStyle = lipgloss.NewStyle().
	MarginTop(3).
	MarginBottom(3).
	PaddingLeft(indent)

var pad = strings.Repeat(" ", indent)

// Setup runs the prompts and returns the session and the starting shape
func Setup(s terminal.Surface, logger *slog.Logger) (Session, geometry.Shape, error) {
	logger = loggerOrDiscard(logger)
	w, h := s.WindowSize()
	bounds := geometry.Bounds{Width: w, Height: h}
	if bounds.MaxSize() < geometry.MinSize {
		return Session{}, geometry.Shape{}, fmt.Errorf("%w: %dx%d", ErrWindowTooSmall, w, h)
	}

	ch, err := PromptChar(s)
	if err != nil {
		return Session{}, geometry.Shape{}, fmt.Errorf("drawing character: %w", err)
	}

	size, err := PromptSize(s, bounds, logger)
	if err != nil {
		return Session{}, geometry.Shape{}, fmt.Errorf("shape size: %w", err)
	}

	shape := geometry.Initial(bounds, size)
	logger.Info("session started",
		"width", bounds.Width, "height", bounds.Height,
		"char", string(ch), "size", size, "x", shape.X, "y", shape.Y)

	return NewSession(bounds, ch), shape, nil
}

// PromptChar asks for the drawing character; any key carrying a character is accepted
func PromptChar(s terminal.Surface) (rune, error) {
	showHeadline(s)
	s.Print(pad + charPrompt)
	return s.ReadChar()
}

// PromptSize asks for the shape size until a value inside the window range is entered
func PromptSize(s terminal.Surface, b geometry.Bounds, logger *slog.Logger) (int, error) {
	logger = loggerOrDiscard(logger)
	limit := b.MaxSize()

	showHeadline(s)
	for {
		s.Print(pad + sizePrompt)
		line, err := s.ReadLine()
		if err != nil {
			return 0, err
		}

		size, ok := ParseSize(line)
		if ok && size >= geometry.MinSize && size <= limit {
			return size, nil
		}
		logger.Debug("size rejected", "input", line, "min", geometry.MinSize, "max", limit)

		showHeadline(s)
		s.Print(fmt.Sprintf("%sEntered value must be within range %d-%d\n\n", pad, geometry.MinSize, limit))
	}
}

// ParseSize reads a leading integer from text the way stream extraction does:
// leading blanks skipped, optional sign, digits; the rest of the line is ignored.
func ParseSize(text string) (int, bool) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)

	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}
	start := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// showHeadline clears the screen and writes the title block
func showHeadline(s terminal.Surface) {
	s.Clear()
	s.MoveCursor(0, 0)
	s.Print(headlineStyle.Render(title + "\n" + helpLine))
	s.Print("\n")
}
