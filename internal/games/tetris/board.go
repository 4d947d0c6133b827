package tetris

// Board dimensions in cells.
const (
	Width  = 10
	Height = 20
)

// cell is 0 when empty, otherwise the settled shape plus one.
type cell uint8

// Board holds settled cells only; the falling piece is tracked separately.
type Board struct {
	cells [Height][Width]cell
}

// Occupied reports whether (x, y) holds a settled cell. Coordinates outside
// the board count as occupied.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return true
	}
	return b.cells[y][x] != 0
}

// ShapeAt returns the settled shape at (x, y).
func (b *Board) ShapeAt(x, y int) (Shape, bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height || b.cells[y][x] == 0 {
		return 0, false
	}
	return Shape(b.cells[y][x] - 1), true
}

// Fits reports whether p lies inside the board without overlapping any
// settled cell.
func (b *Board) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if b.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Lock copies p's cells into the board. Callers check Fits first.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		if c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height {
			b.cells[c.Y][c.X] = cell(p.Shape) + 1
		}
	}
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if b.cells[y][x] == 0 {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifts the rows above down and
// returns the number of rows removed.
func (b *Board) ClearLines() int {
	dst := Height - 1
	for src := Height - 1; src >= 0; src-- {
		if b.rowFull(src) {
			continue
		}
		if dst != src {
			b.cells[dst] = b.cells[src]
		}
		dst--
	}
	cleared := dst + 1
	for y := 0; y <= dst; y++ {
		b.cells[y] = [Width]cell{}
	}
	return cleared
}

// Count returns the number of settled cells.
func (b *Board) Count() int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != 0 {
				n++
			}
		}
	}
	return n
}
