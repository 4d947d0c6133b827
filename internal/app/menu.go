package app

import (
	"fmt"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
	"github.com/vovakirdan/termplay/internal/registry"
)

type itemKind int

const (
	itemGame itemKind = iota
	itemScores
	itemSettings
	itemAbout
	itemQuit
)

type menuItem struct {
	kind  itemKind
	label string
	hint  string
	desc  registry.Descriptor
}

func buildMenu(reg *registry.Registry) []menuItem {
	var items []menuItem
	if reg != nil {
		for _, d := range reg.List() {
			items = append(items, menuItem{kind: itemGame, label: d.Title, hint: d.Description, desc: d})
		}
	}
	return append(items,
		menuItem{kind: itemScores, label: "High Scores", hint: "Top ten per game"},
		menuItem{kind: itemSettings, label: "Settings", hint: "Sound, music and difficulty"},
		menuItem{kind: itemAbout, label: "About", hint: "What this is"},
		menuItem{kind: itemQuit, label: "Quit", hint: "Leave the arcade"},
	)
}

// MenuCursor returns the highlighted menu row.
func (m *Machine) MenuCursor() int { return m.menuCursor }

func (m *Machine) handleMenu(ev core.KeyEvent) {
	n := len(m.menu)
	switch {
	case controls.Matches(ev, menuKeys.Quit):
		m.exit()
	case controls.Matches(ev, menuKeys.Up):
		m.menuCursor = (m.menuCursor - 1 + n) % n
		m.audio.PlaySound(audio.SoundMenuSelect)
	case controls.Matches(ev, menuKeys.Down):
		m.menuCursor = (m.menuCursor + 1) % n
		m.audio.PlaySound(audio.SoundMenuSelect)
	case controls.Matches(ev, menuKeys.Select):
		m.audio.PlaySound(audio.SoundMenuConfirm)
		m.selectItem(m.menu[m.menuCursor])
	}
}

func (m *Machine) selectItem(it menuItem) {
	switch it.kind {
	case itemGame:
		m.start(it.desc)
	case itemScores:
		m.mode = ModeScores
		m.loadScores()
	case itemSettings:
		m.mode = ModeSettings
		m.settingsCursor = 0
	case itemAbout:
		m.mode = ModeAbout
	case itemQuit:
		m.exit()
	}
}

const menuMinW, menuMinH = 40, 22

func (m *Machine) drawMenu(dst *core.Screen) {
	if !dst.FitsOrWarn(menuMinW, menuMinH) {
		return
	}
	top := max(1, (dst.Height()-len(m.menu)-8)/2)
	dst.DrawTextCenteredColor(top, "T E R M P L A Y", core.ColorBrightCyan)
	dst.DrawTextCenteredColor(top+1, "a terminal arcade", core.ColorGray)

	width := 0
	for _, it := range m.menu {
		width = max(width, len([]rune(it.label)))
	}
	x := (dst.Width() - width - 2) / 2
	y := top + 3
	for i, it := range m.menu {
		if it.kind != itemGame && i > 0 && m.menu[i-1].kind == itemGame {
			y++
		}
		color := core.ColorDefault
		if i == m.menuCursor {
			color = core.ColorBrightYellow
			dst.DrawTextColor(x, y, "▸", color)
		}
		dst.DrawTextColor(x+2, y, it.label, color)
		y++
	}

	sel := m.menu[m.menuCursor]
	dst.DrawTextCenteredColor(y+1, sel.hint, core.ColorGray)

	a := m.settings.Audio
	status := fmt.Sprintf("music %s • sound %s • %s", onOff(a.MusicEnabled), onOff(a.Enabled), m.settings.Difficulty)
	dst.DrawTextCenteredColor(dst.Height()-2, status, core.ColorGray)
	dst.DrawFooter(controls.HelpLine(menuKeys))
}
