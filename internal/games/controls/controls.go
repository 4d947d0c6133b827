// Package controls holds the key bindings shared by the games and a
// plain-text rendering of their help, suitable for drawing into a
// core.Screen.
package controls

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/termplay/internal/core"
)

// Common bindings. Games compose these into their own key maps.
var (
	Up      = key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up"))
	Down    = key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down"))
	Left    = key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left"))
	Right   = key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right"))
	Confirm = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select"))
	Pause   = key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause"))
	Restart = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart"))
	Quit    = key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "menu"))
)

// Matches reports whether ev triggers any of the bindings.
func Matches(ev core.KeyEvent, bindings ...key.Binding) bool {
	return key.Matches(ev, bindings...)
}

// HelpLine renders a key map's short help as "key desc • key desc".
// Disabled bindings are skipped.
func HelpLine(km help.KeyMap) string {
	var parts []string
	for _, b := range km.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Direction maps arrow/WASD keys to a unit step. ok is false for any other
// key.
func Direction(ev core.KeyEvent) (d core.Point, ok bool) {
	switch {
	case Matches(ev, Up):
		return core.Point{Y: -1}, true
	case Matches(ev, Down):
		return core.Point{Y: 1}, true
	case Matches(ev, Left):
		return core.Point{X: -1}, true
	case Matches(ev, Right):
		return core.Point{X: 1}, true
	}
	return core.Point{}, false
}
