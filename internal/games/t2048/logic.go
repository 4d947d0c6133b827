package t2048

import "github.com/vovakirdan/termplay/internal/core"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	return [...]string{"up", "down", "left", "right"}[d]
}

// BoardSize is the board dimension.
const BoardSize = 4

// Board is indexed [row][column]; 0 is an empty cell.
type Board [BoardSize][BoardSize]int

// slideRow slides a row toward index 0. Each tile merges at most once per
// move, so 2 2 4 becomes 4 4, not 8. merged marks the cells that hold a
// merge result.
func slideRow(row [BoardSize]int) (result [BoardSize]int, score int, merged [BoardSize]bool) {
	w := 0
	for _, v := range row {
		if v == 0 {
			continue
		}
		if w > 0 && result[w-1] == v && !merged[w-1] {
			result[w-1] *= 2
			score += result[w-1]
			merged[w-1] = true
			continue
		}
		result[w] = v
		w++
	}
	return result, score, merged
}

func reverseRow(row [BoardSize]int) [BoardSize]int {
	for i, j := 0, BoardSize-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
	return row
}

func transpose(b Board) Board {
	var t Board
	for y := range BoardSize {
		for x := range BoardSize {
			t[y][x] = b[x][y]
		}
	}
	return t
}

// Move is the outcome of a slide.
type Move struct {
	Board   Board
	Score   int
	Changed bool
	// Merged lists the cells holding merge results, in board coordinates.
	Merged []core.Point
}

// Slide performs a move in the given direction. Up and down reuse the row
// logic on the transposed board; right and down on the reversed rows.
func Slide(b Board, dir Direction) Move {
	vertical := dir == DirUp || dir == DirDown
	reversed := dir == DirRight || dir == DirDown

	work := b
	if vertical {
		work = transpose(work)
	}

	var m Move
	for y := range BoardSize {
		row := work[y]
		if reversed {
			row = reverseRow(row)
		}
		out, score, merged := slideRow(row)
		m.Score += score
		for x, ok := range merged {
			if !ok {
				continue
			}
			if reversed {
				x = BoardSize - 1 - x
			}
			p := core.Point{X: x, Y: y}
			if vertical {
				p = core.Point{X: y, Y: x}
			}
			m.Merged = append(m.Merged, p)
		}
		if reversed {
			out = reverseRow(out)
		}
		work[y] = out
	}

	if vertical {
		work = transpose(work)
	}
	m.Board = work
	m.Changed = work != b
	return m
}

// EmptyCells returns the coordinates of all empty cells in row order.
func EmptyCells(b Board) []core.Point {
	var cells []core.Point
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == 0 {
				cells = append(cells, core.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// CanMove reports whether any slide would change the board.
func CanMove(b Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			v := b[y][x]
			if v == 0 {
				return true
			}
			if x < BoardSize-1 && b[y][x+1] == v {
				return true
			}
			if y < BoardSize-1 && b[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the highest tile on the board.
func MaxTile(b Board) int {
	m := 0
	for y := range BoardSize {
		for x := range BoardSize {
			m = max(m, b[y][x])
		}
	}
	return m
}
