package app

import (
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
)

var aboutLines = []string{
	"termplay is a small arcade for the terminal.",
	"",
	"Every game runs on the same fixed-rate loop and",
	"keeps its best scores in a local leaderboard.",
	"",
	"m toggles music and n toggles sound anywhere",
	"outside the settings page.",
}

func (m *Machine) drawAbout(dst *core.Screen) {
	if !dst.FitsOrWarn(menuMinW+12, len(aboutLines)+6) {
		return
	}
	box := core.Centered(dst.Width(), dst.Height(), 52, len(aboutLines)+4)
	dst.DrawPanel(box, "About", core.ColorBrightCyan)
	for i, l := range aboutLines {
		dst.DrawText(box.X+2, box.Y+2+i, l)
	}
	dst.DrawFooter(controls.HelpLine(pageKeyMap{Back: pageKeys.Back}))
}
