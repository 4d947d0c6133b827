package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
)

// Visual characters for rendering.
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// MinWidth and MinHeight fit the bordered field, a score row and the footer.
const (
	MinWidth  = FieldW + 2
	MinHeight = FieldH + 4
)

// Draw renders the mode selection or the field.
func (g *Game) Draw(dst *core.Screen) {
	if g.mode == ModeSelect {
		g.drawSelect(dst)
		return
	}
	if !dst.FitsOrWarn(MinWidth, MinHeight) {
		return
	}
	ox := (dst.Width() - MinWidth) / 2
	oy := (dst.Height() - MinHeight) / 2
	field := core.NewRect(ox, oy+1, FieldW+2, FieldH+2)
	fx, fy := field.X+1, field.Y+1

	right := "CPU"
	if g.mode == ModeTwoPlayer {
		right = "P2"
	}
	dst.DrawTextColor(ox+1, oy, "P1", core.ColorBrightCyan)
	dst.DrawTextColor(field.Right()-len(right)-1, oy, right, core.ColorBrightMagenta)
	dst.DrawTextCenteredColor(oy, fmt.Sprintf("%d   %d", g.score1, g.score2), core.ColorBrightWhite)

	dst.DrawBoxColor(field, core.ColorGray)
	for y := 0; y < FieldH; y += 2 {
		dst.Put(fx+FieldW/2, fy+y, NetChar, core.ColorGray)
	}

	p1, p2 := int(math.Round(g.paddle1Y)), int(math.Round(g.paddle2Y))
	for i := 0; i < PaddleHeight; i++ {
		dst.Put(fx+PaddleOffset, fy+p1+i, PaddleChar, core.ColorBrightCyan)
		dst.Put(fx+FieldW-1-PaddleOffset, fy+p2+i, PaddleChar, core.ColorBrightMagenta)
	}

	// The ball blinks while waiting to be served.
	if !g.serving || (g.serveDelay/8)%2 == 0 {
		bx := core.Clamp(int(math.Round(g.ballX)), 0, FieldW-1)
		by := core.Clamp(int(math.Round(g.ballY)), 0, FieldH-1)
		dst.Put(fx+bx, fy+by, BallChar, core.ColorBrightWhite)
	}

	dst.DrawFooter(controls.HelpLine(keys))

	switch {
	case g.gameOver:
		dst.DrawPopup(core.ColorBrightYellow, g.winnerText(),
			fmt.Sprintf("%d - %d", g.score1, g.score2),
			"r restart • q menu")
	case g.paused:
		dst.DrawPopup(core.ColorYellow, "PAUSED", "space to resume")
	}
}

func (g *Game) winnerText() string {
	switch {
	case g.winner == 1 && g.mode == ModeSingle:
		return "YOU WIN!"
	case g.winner == 1:
		return "PLAYER 1 WINS!"
	case g.mode == ModeSingle:
		return "CPU WINS!"
	default:
		return "PLAYER 2 WINS!"
	}
}

func (g *Game) drawSelect(dst *core.Screen) {
	box := core.Centered(dst.Width(), dst.Height(), 34, 9)
	dst.DrawPanel(box, "Pong", core.ColorBrightCyan)

	options := []string{"1  Single player (vs CPU)", "2  Two players"}
	for i, opt := range options {
		c := core.ColorWhite
		prefix := "  "
		if i == g.cursor {
			c = core.ColorBrightYellow
			prefix = "> "
		}
		dst.DrawTextColor(box.X+3, box.Y+3+i*2, prefix+opt, c)
	}
	dst.DrawFooter("↑/↓ choose • enter start • q menu")
}
