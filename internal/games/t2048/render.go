package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
)

const (
	cellWidth  = 7 // including the left border
	cellHeight = 3 // including the top border

	boardW = BoardSize*cellWidth + 1
	boardH = BoardSize*cellHeight + 1

	// MinWidth and MinHeight fit the grid, two HUD rows and the footer.
	MinWidth  = boardW
	MinHeight = boardH + 4
)

var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorRed,
	64:   core.ColorBrightRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorGreen,
	512:  core.ColorBrightGreen,
	1024: core.ColorCyan,
	2048: core.ColorBrightMagenta,
}

func tileColor(v int) core.Color {
	if c, ok := tileColors[v]; ok {
		return c
	}
	return core.ColorMagenta
}

// Draw renders the HUD, the grid and any overlay.
func (g *Game) Draw(dst *core.Screen) {
	if !dst.FitsOrWarn(MinWidth, MinHeight) {
		return
	}
	ox := (dst.Width() - boardW) / 2
	oy := (dst.Height() - MinHeight) / 2

	dst.DrawTextColor(ox+(boardW-4)/2, oy, "2048", core.ColorBrightYellow)
	dst.DrawTextColor(ox, oy+1, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	best := fmt.Sprintf("Max: %d", MaxTile(g.board))
	dst.DrawTextColor(ox+boardW-len(best), oy+1, best, core.ColorGray)

	g.drawGrid(dst, ox, oy+2)
	dst.DrawFooter(controls.HelpLine(g.keys))

	switch {
	case g.gameOver:
		dst.DrawPopup(core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score %d  Max tile %d", g.score, MaxTile(g.board)),
			"r restart • q menu")
	case g.blocked():
		dst.DrawPopup(core.ColorBrightGreen, "YOU REACHED 2048!",
			fmt.Sprintf("Score %d", g.score),
			"c keep going • r restart • q menu")
	}
}

// drawGrid draws the box-drawing grid with tiles centered in their cells.
func (g *Game) drawGrid(dst *core.Screen, bx, by int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := bx + x*cellWidth
			py := by + y*cellHeight
			dst.Put(px, py, junction(x, y), core.ColorGray)
			if x < BoardSize {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < BoardSize {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for y := range BoardSize {
		for x := range BoardSize {
			v := g.board[y][x]
			if v == 0 {
				continue
			}
			p := core.Point{X: x, Y: y}
			s := strconv.Itoa(v)
			if (g.anim.isMerged(p) || g.anim.isFresh(p)) && len(s)+2 < cellWidth {
				s = "*" + s + "*"
			}
			cx := bx + x*cellWidth + 1 + max(0, cellWidth-1-len(s))/2
			cy := by + y*cellHeight + 1
			dst.DrawTextColor(cx, cy, s, tileColor(v))
		}
	}
}

func junction(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}
