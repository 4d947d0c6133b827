package app

import (
	"fmt"
	"math"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
)

type settingKind int

const (
	settingSound settingKind = iota
	settingMusic
	settingMaster
	settingEffects
	settingMusicVolume
	settingDifficulty
	settingBack
)

var settingLabels = [...]string{
	settingSound:       "Sound effects",
	settingMusic:       "Music",
	settingMaster:      "Master volume",
	settingEffects:     "Effects volume",
	settingMusicVolume: "Music volume",
	settingDifficulty:  "Difficulty",
	settingBack:        "Back",
}

const volumeStep = 0.1

// stepVolume moves v by one step and snaps it to the 10% grid.
func stepVolume(v float64, dir int) float64 {
	v = math.Round((v+float64(dir)*volumeStep)*10) / 10
	return math.Max(0, math.Min(1, v))
}

// SettingsCursor returns the highlighted settings row.
func (m *Machine) SettingsCursor() int { return m.settingsCursor }

func (m *Machine) handleSettings(ev core.KeyEvent) {
	n := len(settingLabels)
	switch {
	case controls.Matches(ev, pageKeys.Back):
		m.back()
	case controls.Matches(ev, pageKeys.Up):
		m.settingsCursor = (m.settingsCursor - 1 + n) % n
		m.audio.PlaySound(audio.SoundMenuSelect)
	case controls.Matches(ev, pageKeys.Down):
		m.settingsCursor = (m.settingsCursor + 1) % n
		m.audio.PlaySound(audio.SoundMenuSelect)
	case controls.Matches(ev, pageKeys.Left):
		m.adjust(-1)
	case controls.Matches(ev, pageKeys.Right):
		m.adjust(1)
	case controls.Matches(ev, pageKeys.Select):
		if settingKind(m.settingsCursor) == settingBack {
			m.back()
			return
		}
		m.adjust(1)
	}
}

// adjust changes the highlighted setting. Switches flip in either
// direction.
func (m *Machine) adjust(dir int) {
	a := &m.settings.Audio
	switch settingKind(m.settingsCursor) {
	case settingSound:
		a.Enabled = !a.Enabled
	case settingMusic:
		a.MusicEnabled = !a.MusicEnabled
	case settingMaster:
		a.MasterVolume = stepVolume(a.MasterVolume, dir)
	case settingEffects:
		a.EffectsVolume = stepVolume(a.EffectsVolume, dir)
	case settingMusicVolume:
		a.MusicVolume = stepVolume(a.MusicVolume, dir)
	case settingDifficulty:
		if dir < 0 {
			m.settings.Difficulty = m.settings.Difficulty.Prev()
		} else {
			m.settings.Difficulty = m.settings.Difficulty.Next()
		}
	default:
		return
	}
	m.settingsChanged()
	m.audio.PlaySound(audio.SoundToggle)
}

func (m *Machine) settingValue(k settingKind) string {
	a := m.settings.Audio
	switch k {
	case settingSound:
		return onOff(a.Enabled)
	case settingMusic:
		return onOff(a.MusicEnabled)
	case settingMaster:
		return volumeBar(a.MasterVolume)
	case settingEffects:
		return volumeBar(a.EffectsVolume)
	case settingMusicVolume:
		return volumeBar(a.MusicVolume)
	case settingDifficulty:
		return string(m.settings.Difficulty)
	}
	return ""
}

func volumeBar(v float64) string {
	filled := int(math.Round(v * 10))
	bar := make([]rune, 10)
	for i := range bar {
		bar[i] = '░'
		if i < filled {
			bar[i] = '█'
		}
	}
	return fmt.Sprintf("%s %3d%%", string(bar), int(math.Round(v*100)))
}

func (m *Machine) drawSettings(dst *core.Screen) {
	if !dst.FitsOrWarn(menuMinW, len(settingLabels)+6) {
		return
	}
	box := core.Centered(dst.Width(), dst.Height(), 40, len(settingLabels)+4)
	dst.DrawPanel(box, "Settings", core.ColorBrightCyan)
	for i, label := range settingLabels {
		y := box.Y + 2 + i
		color := core.ColorDefault
		if i == m.settingsCursor {
			color = core.ColorBrightYellow
			dst.DrawTextColor(box.X+2, y, "▸", color)
		}
		dst.DrawTextColor(box.X+4, y, label, color)
		dst.DrawTextColor(box.X+20, y, m.settingValue(settingKind(i)), color)
	}
	dst.DrawFooter(controls.HelpLine(settingsHelp()))
}
