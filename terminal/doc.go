// Package terminal provides the cursor-addressed drawing surface and
// normalized keyboard input used by the editor.
//
// Two surfaces are available:
//   - ansi: raw stdin/stdout with direct ANSI sequences (unix only)
//   - tcell: github.com/gdamore/tcell/v2 screen, any platform tcell supports
//
// Both report keys as a small enumerated set (arrows, plus, minus, escape,
// ...) so callers never see escape sequences or platform key codes.
package terminal
