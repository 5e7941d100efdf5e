package tracker

// Modifiers describes the modifier keys held during a key press.
type Modifiers struct {
	Meta  bool
	Ctrl  bool
	Alt   bool
	Shift bool
}

// KeyEvent is a single key press delivered by an input source.
type KeyEvent struct {
	Key  string
	Mods Modifiers
}

// Navigation, editing and function keys that do not count as typing.
var ignoredKeys = map[string]struct{}{
	"ArrowUp":    {},
	"ArrowDown":  {},
	"ArrowLeft":  {},
	"ArrowRight": {},
	"Escape":     {},
	"Tab":        {},
	"Enter":      {},
	"Backspace":  {},
	"Delete":     {},
	"Insert":     {},
	"Home":       {},
	"End":        {},
	"PageUp":     {},
	"PageDown":   {},
	"CapsLock":   {},
	"Shift":      {},
	"Meta":       {},
	"Control":    {},
	"Alt":        {},
	"F1":         {},
	"F2":         {},
	"F3":         {},
	"F4":         {},
	"F5":         {},
	"F6":         {},
	"F7":         {},
	"F8":         {},
	"F9":         {},
	"F10":        {},
	"F11":        {},
	"F12":        {},
}

// QualifiesAsTyping reports whether a key press counts as real typing.
// Chorded shortcuts never do; shift alone still does, since shifted
// characters are content. Unknown keys fall through to true.
func QualifiesAsTyping(key string, mods Modifiers) bool {
	if mods.Meta || mods.Ctrl || mods.Alt {
		return false
	}
	if _, ignored := ignoredKeys[key]; ignored {
		return false
	}
	return true
}
