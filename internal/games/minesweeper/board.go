package minesweeper

import (
	"math/rand"

	"github.com/vovakirdan/termplay/internal/core"
)

// CellState is what the player sees of a cell.
type CellState uint8

const (
	Hidden CellState = iota
	Flagged
	Revealed
)

// Cell is one square of the minefield.
type Cell struct {
	Mine     bool
	Adjacent uint8
	State    CellState
}

// Board is a W×H minefield. Mines are placed lazily on the first reveal.
type Board struct {
	W, H  int
	Mines int
	cells []Cell

	placed   bool
	revealed int
	flags    int
}

// NewBoard returns an empty board; mines is clamped so the first reveal
// always has a safe 3×3 neighbourhood.
func NewBoard(w, h, mines int) *Board {
	mines = min(mines, w*h-9)
	return &Board{W: w, H: h, Mines: mines, cells: make([]Cell, w*h)}
}

func (b *Board) in(p core.Point) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

// At returns the cell at p. p must be on the board.
func (b *Board) At(p core.Point) *Cell {
	return &b.cells[p.Y*b.W+p.X]
}

// neighbours returns the on-board cells around p.
func (b *Board) neighbours(p core.Point) []core.Point {
	out := make([]core.Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := core.Point{X: p.X + dx, Y: p.Y + dy}
			if b.in(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Place lays the mines anywhere except the 3×3 block around safe, then
// counts neighbours. It is a no-op after the first call.
func (b *Board) Place(rng *rand.Rand, safe core.Point) {
	if b.placed {
		return
	}
	var candidates []int
	for i := range b.cells {
		p := core.Point{X: i % b.W, Y: i / b.W}
		if core.Abs(p.X-safe.X) <= 1 && core.Abs(p.Y-safe.Y) <= 1 {
			continue
		}
		candidates = append(candidates, i)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, i := range candidates[:b.Mines] {
		b.cells[i].Mine = true
	}
	b.count()
	b.placed = true
}

func (b *Board) count() {
	for i := range b.cells {
		p := core.Point{X: i % b.W, Y: i / b.W}
		var n uint8
		for _, q := range b.neighbours(p) {
			if b.At(q).Mine {
				n++
			}
		}
		b.cells[i].Adjacent = n
	}
}

// Reveal uncovers p, flood-filling through zero cells. It returns the
// number of safe cells uncovered and whether p was a mine.
func (b *Board) Reveal(p core.Point) (opened int, boom bool) {
	c := b.At(p)
	if c.State != Hidden {
		return 0, false
	}
	if c.Mine {
		c.State = Revealed
		return 0, true
	}

	stack := []core.Point{p}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell := b.At(q)
		if cell.State != Hidden || cell.Mine {
			continue
		}
		cell.State = Revealed
		b.revealed++
		opened++
		if cell.Adjacent == 0 {
			stack = append(stack, b.neighbours(q)...)
		}
	}
	return opened, false
}

// ToggleFlag flags or unflags a hidden cell. Flags are capped at the mine
// count.
func (b *Board) ToggleFlag(p core.Point) bool {
	c := b.At(p)
	switch c.State {
	case Hidden:
		if b.flags >= b.Mines {
			return false
		}
		c.State = Flagged
		b.flags++
		return true
	case Flagged:
		c.State = Hidden
		b.flags--
		return true
	}
	return false
}

// ShowMines reveals every mine.
func (b *Board) ShowMines() {
	for i := range b.cells {
		if b.cells[i].Mine {
			b.cells[i].State = Revealed
		}
	}
}

// Cleared reports whether every safe cell is revealed.
func (b *Board) Cleared() bool {
	return b.placed && b.revealed == b.W*b.H-b.Mines
}

// Flags returns the number of flags placed.
func (b *Board) Flags() int { return b.flags }
