package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/termplay/internal/core"
)

var specialKeys = map[tcell.Key]core.Key{
	tcell.KeyUp:         core.KeyUp,
	tcell.KeyDown:       core.KeyDown,
	tcell.KeyLeft:       core.KeyLeft,
	tcell.KeyRight:      core.KeyRight,
	tcell.KeyEnter:      core.KeyEnter,
	tcell.KeyEscape:     core.KeyEsc,
	tcell.KeyTab:        core.KeyTab,
	tcell.KeyBackspace:  core.KeyBackspace,
	tcell.KeyBackspace2: core.KeyBackspace,
	tcell.KeyDelete:     core.KeyDelete,
	tcell.KeyHome:       core.KeyHome,
	tcell.KeyEnd:        core.KeyEnd,
	tcell.KeyPgUp:       core.KeyPgUp,
	tcell.KeyPgDn:       core.KeyPgDown,
	tcell.KeyCtrlC:      core.KeyCtrlC,
}

// KeyFromEvent translates a tcell key event. Alt chords and unbound keys
// report false.
func KeyFromEvent(ev *tcell.EventKey) (core.KeyEvent, bool) {
	if ev.Modifiers()&tcell.ModAlt != 0 {
		return core.KeyEvent{}, false
	}
	if ev.Key() == tcell.KeyRune {
		return core.RuneKey(ev.Rune()), true
	}
	if k, ok := specialKeys[ev.Key()]; ok {
		return core.KeyPress(k), true
	}
	return core.KeyEvent{}, false
}

// palette uses the same xterm indexes as the Bubble Tea backend.
var palette = map[core.Color]tcell.Color{
	core.ColorRed:           tcell.PaletteColor(1),
	core.ColorGreen:         tcell.PaletteColor(2),
	core.ColorYellow:        tcell.PaletteColor(3),
	core.ColorBlue:          tcell.PaletteColor(4),
	core.ColorMagenta:       tcell.PaletteColor(5),
	core.ColorCyan:          tcell.PaletteColor(6),
	core.ColorWhite:         tcell.PaletteColor(7),
	core.ColorBrightRed:     tcell.PaletteColor(9),
	core.ColorBrightGreen:   tcell.PaletteColor(10),
	core.ColorBrightYellow:  tcell.PaletteColor(11),
	core.ColorBrightBlue:    tcell.PaletteColor(12),
	core.ColorBrightMagenta: tcell.PaletteColor(13),
	core.ColorBrightCyan:    tcell.PaletteColor(14),
	core.ColorBrightWhite:   tcell.PaletteColor(15),
	core.ColorOrange:        tcell.PaletteColor(208),
	core.ColorGray:          tcell.PaletteColor(245),
}

// Style returns the tcell style for a cell color.
func Style(c core.Color) tcell.Style {
	if tc, ok := palette[c]; ok {
		return tcell.StyleDefault.Foreground(tc)
	}
	return tcell.StyleDefault
}
