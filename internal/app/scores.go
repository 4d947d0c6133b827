package app

import (
	"context"
	"fmt"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
	"github.com/vovakirdan/termplay/internal/storage"
)

func (m *Machine) scoreGames() []menuItem {
	var games []menuItem
	for _, it := range m.menu {
		if it.kind == itemGame {
			games = append(games, it)
		}
	}
	return games
}

// loadScores reads the leaderboard of the selected game. Failures are
// shown on the page instead of leaving it.
func (m *Machine) loadScores() {
	m.scoresRows, m.scoresErr = nil, ""
	games := m.scoreGames()
	if len(games) == 0 {
		return
	}
	if m.scores == nil {
		m.scoresErr = "No score database available"
		return
	}
	id := games[m.scoresGame].desc.ID
	rows, err := m.scores.TopScores(context.Background(), id, storage.TopN)
	if err != nil {
		m.logger.Error("cannot load scores", "game", id, "err", err)
		m.scoresErr = "Could not load scores"
		return
	}
	m.scoresRows = rows
}

func (m *Machine) handleScores(ev core.KeyEvent) {
	n := len(m.scoreGames())
	switch {
	case controls.Matches(ev, pageKeys.Back):
		m.back()
	case n == 0:
	case controls.Matches(ev, pageKeys.Left):
		m.scoresGame = (m.scoresGame - 1 + n) % n
		m.loadScores()
	case controls.Matches(ev, pageKeys.Right):
		m.scoresGame = (m.scoresGame + 1) % n
		m.loadScores()
	case controls.Matches(ev, pageKeys.Reload):
		m.loadScores()
	}
}

func (m *Machine) drawScores(dst *core.Screen) {
	if !dst.FitsOrWarn(menuMinW, storage.TopN+8) {
		return
	}
	box := core.Centered(dst.Width(), dst.Height(), min(dst.Width(), 56), storage.TopN+6)
	dst.DrawPanel(box, "High Scores", core.ColorBrightCyan)

	games := m.scoreGames()
	if len(games) > 0 {
		dst.DrawTextCenteredColor(box.Y+1, "◂ "+games[m.scoresGame].label+" ▸", core.ColorBrightWhite)
	}

	y := box.Y + 3
	switch {
	case m.scoresErr != "":
		dst.DrawTextCenteredColor(y+2, m.scoresErr, core.ColorBrightRed)
	case len(m.scoresRows) == 0:
		dst.DrawTextCenteredColor(y+2, "No scores recorded yet", core.ColorGray)
	default:
		for i, e := range m.scoresRows {
			color := core.ColorDefault
			if i == 0 {
				color = core.ColorBrightYellow
			}
			player := e.Player
			if len([]rune(player)) > 12 {
				player = string([]rune(player)[:12])
			}
			line := fmt.Sprintf("%2d. %-12s %8d  %s", i+1, player, e.Score, e.CreatedAt.Format("Jan 02 15:04"))
			dst.DrawTextColor(box.X+3, y+i, line, color)
		}
	}
	dst.DrawFooter(controls.HelpLine(scoresHelp()))
}
