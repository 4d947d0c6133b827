package tetris

import "github.com/vovakirdan/termplay/internal/core"

// Shape is one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	shapeCount
)

// Spawn matrices, rotation 0. Each is square; rotations turn the whole
// matrix clockwise about its center.
var shapeRows = [shapeCount][]string{
	ShapeI: {
		"....",
		"####",
		"....",
		"....",
	},
	ShapeO: {
		"##",
		"##",
	},
	ShapeT: {
		".#.",
		"###",
		"...",
	},
	ShapeS: {
		".##",
		"##.",
		"...",
	},
	ShapeZ: {
		"##.",
		".##",
		"...",
	},
	ShapeJ: {
		"#..",
		"###",
		"...",
	},
	ShapeL: {
		"..#",
		"###",
		"...",
	},
}

var shapeColors = [shapeCount]core.Color{
	ShapeI: core.ColorCyan,
	ShapeO: core.ColorYellow,
	ShapeT: core.ColorMagenta,
	ShapeS: core.ColorGreen,
	ShapeZ: core.ColorRed,
	ShapeJ: core.ColorBlue,
	ShapeL: core.ColorOrange,
}

// rotations[shape][rot] lists the occupied cells relative to the anchor.
var rotations [shapeCount][4][]core.Point

func init() {
	for s := Shape(0); s < shapeCount; s++ {
		size := len(shapeRows[s])
		var cells []core.Point
		for y, row := range shapeRows[s] {
			for x, c := range row {
				if c == '#' {
					cells = append(cells, core.Point{X: x, Y: y})
				}
			}
		}
		for r := 0; r < 4; r++ {
			rotations[s][r] = cells
			next := make([]core.Point, len(cells))
			for i, p := range cells {
				// Clockwise: column becomes row, row counts from the right.
				next[i] = core.Point{X: size - 1 - p.Y, Y: p.X}
			}
			cells = next
		}
	}
}

// Size is the side of the shape's bounding matrix.
func (s Shape) Size() int {
	return len(shapeRows[s])
}

// Color is the display color of the shape.
func (s Shape) Color() core.Color {
	return shapeColors[s]
}

func (s Shape) String() string {
	return string("IOTSZJL"[s])
}

// Piece is a placed tetromino: shape, rotation index 0-3 and the board
// coordinate of its matrix's top-left corner.
type Piece struct {
	Shape Shape
	Rot   int
	X, Y  int
}

// Cells returns the board coordinates the piece occupies.
func (p Piece) Cells() []core.Point {
	rel := rotations[p.Shape][p.Rot]
	out := make([]core.Point, len(rel))
	for i, c := range rel {
		out[i] = core.Point{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy turned by dir quarter turns (1 clockwise, -1
// counter-clockwise).
func (p Piece) Rotated(dir int) Piece {
	p.Rot = ((p.Rot+dir)%4 + 4) % 4
	return p
}
