package life

import (
	"math/rand"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/termplay/internal/core"
)

// Grid dimensions. The grid is a torus: the edges wrap.
const (
	Width  = 60
	Height = 30
)

// Grid is a Life universe. Neighbour counting only touches the cells around
// live ones, so sparse patterns step quickly.
type Grid struct {
	alive      []bool
	population int
	counts     *intmap.Map[int, uint8]
}

// NewGrid returns an empty universe.
func NewGrid() *Grid {
	return &Grid{
		alive:  make([]bool, Width*Height),
		counts: intmap.New[int, uint8](256),
	}
}

func index(x, y int) int {
	return core.Wrap(y, Height)*Width + core.Wrap(x, Width)
}

// Alive reports whether the cell at (x, y) is alive. Coordinates wrap.
func (g *Grid) Alive(x, y int) bool {
	return g.alive[index(x, y)]
}

// Set makes the cell at (x, y) alive or dead.
func (g *Grid) Set(x, y int, alive bool) {
	i := index(x, y)
	if g.alive[i] == alive {
		return
	}
	g.alive[i] = alive
	if alive {
		g.population++
	} else {
		g.population--
	}
}

// Toggle flips the cell at (x, y).
func (g *Grid) Toggle(x, y int) {
	g.Set(x, y, !g.Alive(x, y))
}

// Population returns the number of live cells.
func (g *Grid) Population() int { return g.population }

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.alive)
	g.population = 0
}

// Randomize fills the grid, each cell alive with probability density.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	g.Clear()
	for i := range g.alive {
		if rng.Float64() < density {
			g.alive[i] = true
			g.population++
		}
	}
}

// Stamp brings p to life with its top-left corner at (x, y).
func (g *Grid) Stamp(p Pattern, x, y int) {
	for _, c := range p.Cells {
		g.Set(x+c.X, y+c.Y, true)
	}
}

// Step advances one generation: a live cell with two or three neighbours
// survives, a dead cell with exactly three is born, everything else dies.
func (g *Grid) Step() {
	g.counts.Clear()
	for i, alive := range g.alive {
		if !alive {
			continue
		}
		x, y := i%Width, i/Width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				j := index(x+dx, y+dy)
				n, _ := g.counts.Get(j)
				g.counts.Put(j, n+1)
			}
		}
	}

	next := make([]bool, len(g.alive))
	pop := 0
	g.counts.ForEach(func(i int, n uint8) bool {
		if n == 3 || (n == 2 && g.alive[i]) {
			next[i] = true
			pop++
		}
		return true
	})
	g.alive = next
	g.population = pop
}
