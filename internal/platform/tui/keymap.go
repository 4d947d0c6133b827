package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termplay/internal/core"
)

var specialKeys = map[tea.KeyType]core.Key{
	tea.KeyUp:        core.KeyUp,
	tea.KeyDown:      core.KeyDown,
	tea.KeyLeft:      core.KeyLeft,
	tea.KeyRight:     core.KeyRight,
	tea.KeyEnter:     core.KeyEnter,
	tea.KeyEsc:       core.KeyEsc,
	tea.KeyTab:       core.KeyTab,
	tea.KeyBackspace: core.KeyBackspace,
	tea.KeyDelete:    core.KeyDelete,
	tea.KeyHome:      core.KeyHome,
	tea.KeyEnd:       core.KeyEnd,
	tea.KeyPgUp:      core.KeyPgUp,
	tea.KeyPgDown:    core.KeyPgDown,
	tea.KeyCtrlC:     core.KeyCtrlC,
}

// KeyFromMsg translates a Bubble Tea key message into a backend-neutral
// key event. Pastes, alt chords and keys the games never bind report
// false.
func KeyFromMsg(msg tea.KeyMsg) (core.KeyEvent, bool) {
	if msg.Paste || msg.Alt {
		return core.KeyEvent{}, false
	}
	switch msg.Type {
	case tea.KeySpace:
		return core.RuneKey(' '), true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return core.KeyEvent{}, false
		}
		return core.RuneKey(msg.Runes[0]), true
	}
	if k, ok := specialKeys[msg.Type]; ok {
		return core.KeyPress(k), true
	}
	return core.KeyEvent{}, false
}
