package life

import "github.com/vovakirdan/termplay/internal/core"

// Pattern is a named set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Cells []core.Point
}

func pts(xy ...int) []core.Point {
	out := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

var (
	Glider  = Pattern{Name: "glider", Cells: pts(1, 0, 2, 1, 0, 2, 1, 2, 2, 2)}
	Blinker = Pattern{Name: "blinker", Cells: pts(0, 0, 1, 0, 2, 0)}
	Block   = Pattern{Name: "block", Cells: pts(0, 0, 1, 0, 0, 1, 1, 1)}
	Toad    = Pattern{Name: "toad", Cells: pts(1, 0, 2, 0, 3, 0, 0, 1, 1, 1, 2, 1)}
	Beacon  = Pattern{Name: "beacon", Cells: pts(0, 0, 1, 0, 0, 1, 1, 1, 2, 2, 3, 2, 2, 3, 3, 3)}
	Pulsar  = Pattern{Name: "pulsar", Cells: pulsarCells()}
)

// Patterns are the stamps bound to keys 1 through 6.
var Patterns = []Pattern{Glider, Blinker, Block, Toad, Beacon, Pulsar}

// pulsarCells builds the 13×13 period-3 oscillator from its four
// symmetric arms.
func pulsarCells() []core.Point {
	var out []core.Point
	for _, a := range []int{0, 5, 7, 12} {
		for _, b := range []int{2, 3, 4, 8, 9, 10} {
			out = append(out, core.Point{X: b, Y: a}, core.Point{X: a, Y: b})
		}
	}
	return out
}
