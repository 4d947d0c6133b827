package tetris

import (
	"fmt"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
)

const (
	cellW  = 2
	wellW  = Width*cellW + 2
	wellH  = Height + 2
	sideW  = 16
	frameW = wellW + 2 + sideW
	frameH = wellH + 2

	// MinWidth and MinHeight are the smallest frame the layout fits in.
	MinWidth  = frameW
	MinHeight = frameH
)

// Draw renders the well, the falling piece, the preview and the stats.
func (g *Game) Draw(dst *core.Screen) {
	if !dst.FitsOrWarn(MinWidth, MinHeight) {
		return
	}
	ox := (dst.Width() - frameW) / 2
	oy := (dst.Height() - frameH) / 2

	dst.DrawTextColor(ox, oy, "T E T R I S", core.ColorBrightCyan)

	well := core.NewRect(ox, oy+1, wellW, wellH)
	dst.DrawBoxColor(well, core.ColorGray)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			sx, sy := well.X+1+x*cellW, well.Y+1+y
			if s, ok := g.board.ShapeAt(x, y); ok {
				dst.DrawTextColor(sx, sy, "██", s.Color())
			} else {
				dst.DrawTextColor(sx, sy, " ·", core.ColorGray)
			}
		}
	}
	if g.hasActive {
		for _, c := range g.active.Cells() {
			dst.DrawTextColor(well.X+1+c.X*cellW, well.Y+1+c.Y, "██", g.active.Shape.Color())
		}
	}

	g.drawSide(dst, ox+wellW+2, oy+1)
	dst.DrawFooter(controls.HelpLine(keys))

	switch {
	case g.over:
		dst.DrawPopup(core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score %d  Lines %d", g.score, g.lines),
			"r restart • q menu")
	case g.paused:
		dst.DrawPopup(core.ColorYellow, "PAUSED", "p to resume")
	case g.celebrate > 0:
		dst.DrawTextColor(well.X+(wellW-11)/2, well.Y+2, " TETRIS!!! ", core.ColorBrightMagenta)
	}
}

func (g *Game) drawSide(dst *core.Screen, x, y int) {
	preview := core.NewRect(x, y, sideW, 6)
	dst.DrawPanel(preview, "Next", core.ColorGray)
	n := Piece{Shape: g.next}
	offX := x + (sideW-n.Shape.Size()*cellW)/2
	offY := y + 1
	if n.Shape != ShapeI {
		offY++
	}
	for _, c := range n.Cells() {
		dst.DrawTextColor(offX+c.X*cellW, offY+c.Y, "██", n.Shape.Color())
	}

	stats := []struct {
		label string
		value int
	}{
		{"Score", g.score},
		{"Lines", g.lines},
		{"Level", g.level},
	}
	row := y + 7
	for _, s := range stats {
		dst.DrawTextColor(x+1, row, s.label, core.ColorGray)
		dst.DrawTextColor(x+1, row+1, fmt.Sprintf("%d", s.value), core.ColorBrightWhite)
		row += 3
	}
}
