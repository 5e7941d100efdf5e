package input

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func TestCanonicalKeyMapsSpecialKeys(t *testing.T) {
	tests := []struct {
		name fyne.KeyName
		want string
	}{
		{fyne.KeyUp, "ArrowUp"},
		{fyne.KeyDown, "ArrowDown"},
		{fyne.KeyLeft, "ArrowLeft"},
		{fyne.KeyRight, "ArrowRight"},
		{fyne.KeyReturn, "Enter"},
		{fyne.KeyEnter, "Enter"},
		{fyne.KeyBackspace, "Backspace"},
		{fyne.KeyPageUp, "PageUp"},
		{fyne.KeyPageDown, "PageDown"},
		{desktop.KeyShiftLeft, "Shift"},
		{desktop.KeyShiftRight, "Shift"},
		{desktop.KeyControlLeft, "Control"},
		{desktop.KeyAltRight, "Alt"},
		{desktop.KeySuperLeft, "Meta"},
		{desktop.KeyCapsLock, "CapsLock"},
	}

	for _, tc := range tests {
		if got := canonicalKey(tc.name); got != tc.want {
			t.Errorf("canonicalKey(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCanonicalKeyPassesContentThrough(t *testing.T) {
	for _, name := range []fyne.KeyName{fyne.KeyA, fyne.Key1, fyne.KeyF1} {
		if got := canonicalKey(name); got != string(name) {
			t.Errorf("canonicalKey(%q) = %q, want pass-through", name, got)
		}
	}
}

func TestModifierTracking(t *testing.T) {
	listener := &keyboardListener{}

	listener.setModifier(desktop.KeyControlLeft, true)
	if !listener.mods.Ctrl {
		t.Fatal("ctrl not tracked on key down")
	}
	listener.setModifier(desktop.KeyShiftRight, true)
	if !listener.mods.Shift {
		t.Fatal("shift not tracked on key down")
	}
	listener.setModifier(desktop.KeyControlLeft, false)
	if listener.mods.Ctrl {
		t.Fatal("ctrl not cleared on key up")
	}
	if !listener.mods.Shift {
		t.Fatal("shift lost when another modifier was released")
	}
}
