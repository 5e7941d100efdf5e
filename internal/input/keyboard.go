package input

import (
	"errors"
	"io"
	"sync"

	"idlewatch/internal/core/tracker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// ErrKeyboardUnsupported indicates the current driver cannot deliver raw
// key events (mobile or web canvases).
var ErrKeyboardUnsupported = errors.New("desktop key events unsupported")

// keyboardListener feeds key presses from a window canvas into a handler,
// tracking held modifiers from key down/up pairs.
type keyboardListener struct {
	mu     sync.Mutex
	canvas desktop.Canvas
	mods   tracker.Modifiers
	closed bool
}

// AttachKeyboard installs a key listener on the window's canvas and
// returns its disposer. Closing the disposer detaches the hooks so a
// later registration starts clean.
func AttachKeyboard(window fyne.Window, handler func(tracker.KeyEvent)) (io.Closer, error) {
	canvas, ok := window.Canvas().(desktop.Canvas)
	if !ok {
		return nil, ErrKeyboardUnsupported
	}

	listener := &keyboardListener{canvas: canvas}
	canvas.SetOnKeyDown(func(event *fyne.KeyEvent) {
		listener.keyDown(event, handler)
	})
	canvas.SetOnKeyUp(listener.keyUp)
	return listener, nil
}

// Close detaches the key hooks. Safe to call more than once.
func (listener *keyboardListener) Close() error {
	listener.mu.Lock()
	defer listener.mu.Unlock()
	if listener.closed {
		return nil
	}
	listener.closed = true
	listener.canvas.SetOnKeyDown(nil)
	listener.canvas.SetOnKeyUp(nil)
	return nil
}

func (listener *keyboardListener) keyDown(event *fyne.KeyEvent, handler func(tracker.KeyEvent)) {
	listener.mu.Lock()
	if listener.closed {
		listener.mu.Unlock()
		return
	}
	listener.setModifier(event.Name, true)
	keyEvent := tracker.KeyEvent{
		Key:  canonicalKey(event.Name),
		Mods: listener.mods,
	}
	listener.mu.Unlock()

	handler(keyEvent)
}

func (listener *keyboardListener) keyUp(event *fyne.KeyEvent) {
	listener.mu.Lock()
	listener.setModifier(event.Name, false)
	listener.mu.Unlock()
}

func (listener *keyboardListener) setModifier(name fyne.KeyName, held bool) {
	switch name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		listener.mods.Shift = held
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		listener.mods.Ctrl = held
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		listener.mods.Alt = held
	case desktop.KeySuperLeft, desktop.KeySuperRight:
		listener.mods.Meta = held
	}
}

// canonicalKey maps fyne key names onto the names the typing filter
// understands. Anything unmapped passes through as-is.
func canonicalKey(name fyne.KeyName) string {
	switch name {
	case fyne.KeyUp:
		return "ArrowUp"
	case fyne.KeyDown:
		return "ArrowDown"
	case fyne.KeyLeft:
		return "ArrowLeft"
	case fyne.KeyRight:
		return "ArrowRight"
	case fyne.KeyReturn, fyne.KeyEnter:
		return "Enter"
	case fyne.KeyBackspace:
		return "Backspace"
	case fyne.KeyDelete:
		return "Delete"
	case fyne.KeyInsert:
		return "Insert"
	case fyne.KeyEscape:
		return "Escape"
	case fyne.KeyTab:
		return "Tab"
	case fyne.KeyHome:
		return "Home"
	case fyne.KeyEnd:
		return "End"
	case fyne.KeyPageUp:
		return "PageUp"
	case fyne.KeyPageDown:
		return "PageDown"
	case desktop.KeyCapsLock:
		return "CapsLock"
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		return "Shift"
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		return "Control"
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		return "Alt"
	case desktop.KeySuperLeft, desktop.KeySuperRight:
		return "Meta"
	}
	return string(name)
}
