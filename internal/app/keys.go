package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/termplay/internal/games/controls"
)

// Global bindings, honored outside the settings screen.
var (
	forceQuit   = key.NewBinding(key.WithKeys("ctrl+c"))
	toggleMusic = key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "music"))
	toggleSound = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "sound"))
)

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Music  key.Binding
	Sound  key.Binding
	Quit   key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Music, k.Sound, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var menuKeys = menuKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑↓", "navigate")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
	Select: controls.Confirm,
	Music:  toggleMusic,
	Sound:  toggleSound,
	Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
}

type pageKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Reload key.Binding
	Back   key.Binding
}

func (k pageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Select, k.Reload, k.Back}
}

func (k pageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var pageKeys = pageKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "select")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "change")),
	Right:  key.NewBinding(key.WithKeys("right", "l")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Back:   key.NewBinding(key.WithKeys("esc", "q", "backspace"), key.WithHelp("esc", "back")),
}

// settingsHelp and scoresHelp pick the bindings relevant to each page.
func settingsHelp() pageKeyMap {
	k := pageKeys
	k.Reload.SetEnabled(false)
	return k
}

func scoresHelp() pageKeyMap {
	k := pageKeys
	k.Up.SetEnabled(false)
	k.Select.SetEnabled(false)
	k.Left.SetHelp("←→", "game")
	return k
}
