package core

import "strings"

// Key identifies a non-printable key. Printable input arrives as KeyRune.
type Key int

const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyCtrlC
)

var keyNames = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyCtrlC:     "ctrl+c",
}

// KeyEvent is one discrete key press, independent of the terminal backend.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// RuneKey builds the event for a printable character. Space is ' '.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// KeyPress builds the event for a special key.
func KeyPress(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// String returns the key name in the same vocabulary bubbletea uses
// ("up", "enter", "ctrl+c", "q", " "), so bubbles key bindings match
// events from any backend.
func (e KeyEvent) String() string {
	if e.Key == KeyRune {
		return string(e.Rune)
	}
	if name, ok := keyNames[e.Key]; ok {
		return name
	}
	return ""
}

// ParseKey is the inverse of String. Unknown multi-character names yield
// false.
func ParseKey(name string) (KeyEvent, bool) {
	for k, n := range keyNames {
		if n == name {
			return KeyPress(k), true
		}
	}
	if name == "space" {
		return RuneKey(' '), true
	}
	r := []rune(name)
	if len(r) == 1 {
		return RuneKey(r[0]), true
	}
	return KeyEvent{}, false
}

// Keys parses a space separated list of key names. It is a convenience for
// scripting input in tests and demos; "space" stands for ' '.
func Keys(names string) []KeyEvent {
	var out []KeyEvent
	for _, n := range strings.Fields(names) {
		if ev, ok := ParseKey(n); ok {
			out = append(out, ev)
		}
	}
	return out
}
