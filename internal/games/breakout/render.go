package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
)

// Visual characters for rendering.
const (
	PaddleChar = '▀'
	BallChar   = '●'
)

// MinWidth and MinHeight fit the bordered field, the HUD and the footer.
const (
	MinWidth  = FieldW + 2
	MinHeight = FieldH + 4
)

// Draw renders the HUD, the wall, the paddle and the ball.
func (g *Game) Draw(dst *core.Screen) {
	if !dst.FitsOrWarn(MinWidth, MinHeight) {
		return
	}
	ox := (dst.Width() - MinWidth) / 2
	oy := (dst.Height() - MinHeight) / 2

	dst.DrawTextColor(ox+1, oy, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	dst.DrawTextCenteredColor(oy, fmt.Sprintf("Level %d", g.level), core.ColorBrightCyan)
	hearts := strings.Repeat("♥", g.lives)
	dst.DrawTextColor(ox+MinWidth-1-len([]rune(hearts)), oy, hearts, core.ColorBrightRed)

	field := core.NewRect(ox, oy+1, FieldW+2, FieldH+2)
	dst.DrawBoxColor(field, core.ColorGray)
	fx, fy := field.X+1, field.Y+1

	for r := range BrickRows {
		for c := range BrickCols {
			b := g.wall[r][c]
			if !b.Alive {
				continue
			}
			glyph := "▆▆▆▆"
			if b.HP > 1 {
				glyph = "████"
			}
			br := BrickRect(r, c)
			dst.DrawTextColor(fx+br.X, fy+br.Y, glyph, rowColors[r])
		}
	}

	for i := 0; i < g.paddle.Width; i++ {
		dst.Put(fx+g.paddle.X+i, fy+g.paddle.Y, PaddleChar, core.ColorBrightWhite)
	}
	if g.state != StateGameOver {
		bx, by := g.ball.Cell()
		if by >= 0 && by < FieldH {
			dst.Put(fx+bx, fy+by, BallChar, core.ColorBrightYellow)
		}
	}

	dst.DrawFooter(controls.HelpLine(keys))

	switch {
	case g.state == StateGameOver:
		dst.DrawPopup(core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score %d  Level %d", g.score, g.level),
			"r restart • q menu")
	case g.paused:
		dst.DrawPopup(core.ColorYellow, "PAUSED", "p to resume")
	case g.state == StateServe:
		dst.DrawTextCenteredColor(fy+FieldH/2+2, "space to launch", core.ColorGray)
	}
}
