// Package input delivers user input events to the activity tracker:
// key presses from the application's own windows and global mouse
// movement sampled from the cursor position.
package input

import (
	"io"
	"time"

	"idlewatch/internal/core/tracker"

	"fyne.io/fyne/v2"
)

// Source feeds keyboard events from a window and global mouse movement
// into the tracker. It implements tracker.InputSource.
type Source struct {
	window fyne.Window
	sample time.Duration
}

// NewSource creates an input source capturing keys typed into window.
func NewSource(window fyne.Window) *Source {
	return &Source{
		window: window,
		sample: mouseSampleInterval,
	}
}

// ListenKeyboard attaches a key listener to the source window.
func (source *Source) ListenKeyboard(handler func(tracker.KeyEvent)) (io.Closer, error) {
	return AttachKeyboard(source.window, handler)
}

// ListenMouse starts the global cursor-movement watcher.
func (source *Source) ListenMouse(handler func()) (io.Closer, error) {
	return WatchMouse(source.sample, handler), nil
}
