package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
)

const cellW = 2

var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

func (g *Game) frameSize() (int, int) {
	return g.board.W*cellW + 3, g.board.H + 4
}

// Draw renders the status line, the minefield and the cursor.
func (g *Game) Draw(dst *core.Screen) {
	fw, fh := g.frameSize()
	if !dst.FitsOrWarn(max(fw, 40), fh) {
		return
	}
	ox := (dst.Width() - fw) / 2
	oy := (dst.Height() - fh) / 2

	secs := int(g.Elapsed().Seconds())
	status := fmt.Sprintf("Mines %d  Flags %d  Time %d:%02d  Score %d",
		g.board.Mines-g.board.Flags(), g.board.Flags(), secs/60, secs%60, g.score)
	dst.DrawTextCenteredColor(oy, status, core.ColorBrightWhite)

	field := core.NewRect(ox, oy+1, fw, g.board.H+2)
	dst.DrawBoxColor(field, core.ColorGray)

	for y := 0; y < g.board.H; y++ {
		for x := 0; x < g.board.W; x++ {
			p := core.Point{X: x, Y: y}
			r, c := g.glyph(p)
			sx, sy := field.X+1+x*cellW+1, field.Y+1+y
			if p == g.cursor && !g.finished() {
				dst.Put(sx-1, sy, '[', core.ColorBrightYellow)
				dst.Put(sx+1, sy, ']', core.ColorBrightYellow)
			}
			dst.Put(sx, sy, r, c)
		}
	}

	dst.DrawFooter(controls.HelpLine(keys))

	switch {
	case g.won:
		dst.DrawPopup(core.ColorBrightGreen, "ALL MINES FOUND!",
			fmt.Sprintf("Score %d  Time %d:%02d", g.score, secs/60, secs%60),
			"r restart • q menu")
	case g.gameOver:
		dst.DrawPopup(core.ColorBrightRed, "BOOM!", fmt.Sprintf("Score %d", g.score), "r restart • q menu")
	}
}

func (g *Game) glyph(p core.Point) (rune, core.Color) {
	c := g.board.At(p)
	switch {
	case c.State == Flagged:
		return '⚑', core.ColorBrightRed
	case c.State == Hidden:
		return '■', core.ColorGray
	case c.Mine && p == g.boom:
		return '✹', core.ColorBrightRed
	case c.Mine:
		return '*', core.ColorRed
	case c.Adjacent == 0:
		return '·', core.ColorGray
	default:
		return rune('0' + c.Adjacent), numberColors[c.Adjacent]
	}
}
