// Package scoring holds the score deltas and progression thresholds shared
// by the games, so each rule is defined in exactly one place.
package scoring

import "time"

// Tetris.
const (
	SoftDropPoints       = 1
	HardDropPointsPerRow = 2
	LinesPerLevel        = 10

	// TetrisTick is the tetris update interval; gravity is a whole number
	// of ticks.
	TetrisTick = 50 * time.Millisecond
)

var lineClearBase = [...]int{40, 100, 300, 1200}

// LineClearPoints returns the award for clearing n rows at once at the given
// level. n outside 1..4 scores nothing.
func LineClearPoints(n, level int) int {
	if n < 1 || n > len(lineClearBase) {
		return 0
	}
	return lineClearBase[n-1] * level
}

// Level derives the tetris level from the total number of cleared lines.
func Level(lines int) int {
	return 1 + lines/LinesPerLevel
}

// GravityInterval is the time between forced descents at a level:
// max(1, 21-level) ticks.
func GravityInterval(level int) time.Duration {
	return time.Duration(max(1, 21-level)) * TetrisTick
}

// Snake.
const (
	SnakeFoodPoints = 10
	snakeBaseTick   = 300 * time.Millisecond
	snakeTickStep   = 15 * time.Millisecond
	snakeMinTick    = 80 * time.Millisecond
)

// SnakeTickRate speeds the snake up as it grows.
func SnakeTickRate(length int) time.Duration {
	d := snakeBaseTick - time.Duration(max(length-1, 0))*snakeTickStep
	return max(d, snakeMinTick)
}

// Breakout.

// BrickPoints pays more for rows nearer the top; row 0 is the top row.
func BrickPoints(row, rows int) int {
	return 10 * (rows - row)
}

// BreakoutLevelBonus is awarded for clearing every brick on a level.
func BreakoutLevelBonus(level int) int {
	return 100 * level
}

// 2048.
const T2048Goal = 2048

// Minesweeper.
const (
	MinesweeperCellPoints = 10
	MinesweeperWinBonus   = 500
)

// Pong.
const (
	PongWinningScore = 5
	PongPointValue   = 100
	PongWinBonus     = 500
)
