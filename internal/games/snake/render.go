package snake

import (
	"fmt"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
)

// Minimum frame: field plus border, a HUD row and the footer.
const (
	MinWidth  = FieldW + 2
	MinHeight = FieldH + 4
)

// Draw renders the HUD, the field, the snake and any overlay.
func (g *Game) Draw(dst *core.Screen) {
	if !dst.FitsOrWarn(MinWidth, MinHeight) {
		return
	}
	ox := (dst.Width() - MinWidth) / 2
	oy := (dst.Height() - MinHeight) / 2

	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d", g.score, len(g.snake))
	dst.DrawTextColor(ox, oy, hud, core.ColorBrightWhite)

	field := core.NewRect(ox, oy+1, FieldW+2, FieldH+2)
	dst.DrawBoxColor(field, core.ColorGray)
	at := func(p core.Point) (int, int) { return field.X + 1 + p.X, field.Y + 1 + p.Y }

	if g.hasFood {
		x, y := at(g.food)
		dst.Put(x, y, '●', core.ColorBrightRed)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		x, y := at(g.snake[i])
		if i == 0 {
			dst.Put(x, y, '■', core.ColorBrightGreen)
		} else {
			dst.Put(x, y, '■', core.ColorGreen)
		}
	}

	dst.DrawFooter(controls.HelpLine(keys))

	switch {
	case g.won:
		dst.DrawPopup(core.ColorBrightGreen, "YOU WIN!", fmt.Sprintf("Final Score: %d", g.score), "r restart • q menu")
	case g.gameOver:
		dst.DrawPopup(core.ColorBrightRed, "GAME OVER", fmt.Sprintf("Score: %d", g.score), "r restart • q menu")
	case g.paused:
		dst.DrawPopup(core.ColorYellow, "PAUSED", "p to continue")
	}
}
