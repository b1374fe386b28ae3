// Package backend defines the terminal surface the engine draws to.
// This abstraction allows swapping between tcell (real terminals) and
// a simulation surface (testing), enabling golden-frame tests.
package backend

import "github.com/jmhart/weft/pkg/ui/terminal"

// Surface is the character-cell terminal abstraction.
// Implementations handle terminal I/O, input events, and screen output.
type Surface interface {
	// Init initializes the surface (enters alt screen, raw mode, etc).
	// On failure the terminal is left in its original mode.
	Init() error

	// Fini cleans up the surface and restores terminal state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets the cell at (x, y) to the given rune and style.
	// The comb parameter carries combining characters (may be nil).
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show flushes the internal buffer to the physical terminal.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// ShowCursor shows the terminal cursor.
	ShowCursor()

	// SetCursorPos moves the cursor.
	SetCursorPos(x, y int)

	// PollEvent blocks until an input event is available.
	// Returns nil when the surface is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the queue. Used by tests and
	// for posting internal events.
	PostEvent(ev terminal.Event) error

	// Sync forces a full repaint on the next Show.
	Sync()
}
