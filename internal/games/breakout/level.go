package breakout

import "github.com/vovakirdan/termplay/internal/core"

// Wall layout: rows of bricks separated by one blank row and column.
const (
	BrickRows  = 6
	BrickCols  = 12
	BrickWidth = 4
	brickGap   = 1
	wallTop    = 2
	wallLeft   = 1
)

var rowColors = [BrickRows]core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Brick is one brick in the wall.
type Brick struct {
	Alive  bool
	Points int
	// HP is the number of hits left; from level 3 the top row takes two.
	HP int
}

// Wall is the brick grid, indexed [row][col] with row 0 at the top.
type Wall [BrickRows][BrickCols]Brick

// NewWall builds a full wall for the given level.
func NewWall(level int, points func(row, rows int) int) Wall {
	var w Wall
	for r := range BrickRows {
		hp := 1
		if r == 0 && level >= 3 {
			hp = 2
		}
		for c := range BrickCols {
			w[r][c] = Brick{Alive: true, Points: points(r, BrickRows), HP: hp}
		}
	}
	return w
}

// CountAlive returns the number of bricks left.
func (w *Wall) CountAlive() int {
	n := 0
	for r := range w {
		for c := range w[r] {
			if w[r][c].Alive {
				n++
			}
		}
	}
	return n
}

// BrickRect returns the on-field rectangle of a brick.
func BrickRect(row, col int) core.Rect {
	return core.NewRect(wallLeft+col*(BrickWidth+brickGap), wallTop+row*2, BrickWidth, 1)
}

// BrickAt maps a field cell to the brick covering it.
func BrickAt(x, y int) (row, col int, ok bool) {
	dy := y - wallTop
	dx := x - wallLeft
	if dy < 0 || dx < 0 || dy%2 != 0 || dx%(BrickWidth+brickGap) >= BrickWidth {
		return 0, 0, false
	}
	row, col = dy/2, dx/(BrickWidth+brickGap)
	if row >= BrickRows || col >= BrickCols {
		return 0, 0, false
	}
	return row, col, true
}
