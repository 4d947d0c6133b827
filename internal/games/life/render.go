package life

import (
	"fmt"

	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
)

// Two grid rows share one terminal row through half blocks.
const (
	fieldW = Width + 2
	fieldH = Height/2 + 2

	MinWidth  = fieldW
	MinHeight = fieldH + 3
)

// halves maps (top alive, bottom alive) to a glyph.
var halves = [2][2]rune{
	{' ', '▄'},
	{'▀', '█'},
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Draw renders the HUD, the universe and, while editing, the cursor.
func (g *Game) Draw(dst *core.Screen) {
	if !dst.FitsOrWarn(MinWidth, MinHeight) {
		return
	}
	ox := (dst.Width() - fieldW) / 2
	oy := (dst.Height() - MinHeight) / 2

	mode, modeColor := "EDIT", core.ColorBrightYellow
	if g.running {
		mode, modeColor = "RUN", core.ColorBrightGreen
	}
	dst.DrawTextColor(ox, oy, mode, modeColor)
	dst.DrawTextColor(ox+5, oy, fmt.Sprintf("Gen %d  Pop %d  Speed %d", g.generation, g.grid.Population(), g.speed), core.ColorBrightWhite)

	field := core.NewRect(ox, oy+1, fieldW, fieldH)
	dst.DrawBoxColor(field, core.ColorGray)
	for row := 0; row < Height/2; row++ {
		for x := 0; x < Width; x++ {
			top, bottom := g.grid.Alive(x, row*2), g.grid.Alive(x, row*2+1)
			r, c := halves[b2i(top)][b2i(bottom)], core.ColorBrightGreen
			if !g.running && x == g.cursor.X && row == g.cursor.Y/2 {
				r, c = g.cursorGlyph(top, bottom)
			}
			dst.Put(field.X+1+x, field.Y+1+row, r, c)
		}
	}

	dst.DrawFooter(controls.HelpLine(keys))
}

// cursorGlyph marks the cursor's half of the character cell. A dead cell
// under the cursor shows as a dim half block, a live one as bright.
func (g *Game) cursorGlyph(top, bottom bool) (rune, core.Color) {
	onTop := g.cursor.Y%2 == 0
	alive := (onTop && top) || (!onTop && bottom)
	c := core.ColorYellow
	if alive {
		c = core.ColorBrightYellow
	}
	if onTop {
		return halves[1][b2i(bottom)], c
	}
	return halves[b2i(top)][1], c
}
