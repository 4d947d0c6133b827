// Package life is Conway's Game of Life on a wrapping 60×30 grid with an
// editor for drawing and stamping patterns.
package life

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
	"github.com/vovakirdan/termplay/internal/registry"
)

// ID is the registry id of the game.
const ID = "life"

const (
	minSpeed     = 1
	maxSpeed     = 5
	defaultSpeed = 3

	randomDensity = 0.25
)

// tickRates is indexed by speed-1.
var tickRates = [maxSpeed]time.Duration{
	500 * time.Millisecond,
	300 * time.Millisecond,
	150 * time.Millisecond,
	80 * time.Millisecond,
	40 * time.Millisecond,
}

type keyMap struct {
	Move      key.Binding
	Toggle    key.Binding
	Stamp     key.Binding
	Randomize key.Binding
	Clear     key.Binding
	Run       key.Binding
	Step      key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Step, k.Toggle, k.Stamp, k.Randomize, k.Clear, k.Faster, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Move, k.Slower, k.Restart}}
}

var keys = keyMap{
	Move:      key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑→↓", "cursor")),
	Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Stamp:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "pattern")),
	Randomize: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "random")),
	Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	Run:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Step:      key.NewBinding(key.WithKeys("."), key.WithHelp(".", "step")),
	Faster:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "speed")),
	Slower:    key.NewBinding(key.WithKeys("-", "_")),
	Restart:   controls.Restart,
	Quit:      controls.Quit,
}

// Game holds the universe and the editor state. Editing is only possible
// while the simulation is stopped.
type Game struct {
	audio audio.Player
	rng   *rand.Rand

	grid       *Grid
	cursor     core.Point
	generation int
	running    bool
	speed      int
}

// New creates an empty, stopped universe with the cursor in the middle.
func New(env registry.Env) *Game {
	env = env.Normalize()
	return &Game{
		audio:  env.Audio,
		rng:    rand.New(rand.NewSource(env.Seed)),
		grid:   NewGrid(),
		cursor: core.Point{X: Width / 2, Y: Height / 2},
		speed:  defaultSpeed,
	}
}

// Descriptor registers life with the catalog.
func Descriptor() registry.Descriptor {
	return registry.Descriptor{
		ID:          ID,
		Title:       "Game of Life",
		Description: "Draw patterns and watch them evolve",
		Music:       audio.TrackLife,
		New:         func(env registry.Env) registry.Game { return New(env) },
	}
}

func (g *Game) Name() string { return ID }

func (g *Game) Description() string {
	return "Draw patterns and watch them evolve"
}

// TickRate follows the speed setting.
func (g *Game) TickRate() time.Duration { return tickRates[g.speed-1] }

// Generation returns the number of steps taken since the last clear.
func (g *Game) Generation() int { return g.generation }

func (g *Game) HandleKey(ev core.KeyEvent) core.GameAction {
	switch {
	case controls.Matches(ev, keys.Quit):
		return core.ActionQuit
	case controls.Matches(ev, keys.Restart):
		return core.ActionRestart
	case controls.Matches(ev, keys.Run):
		g.running = !g.running
		return core.ActionContinue
	case controls.Matches(ev, keys.Faster):
		g.speed = min(g.speed+1, maxSpeed)
		return core.ActionContinue
	case controls.Matches(ev, keys.Slower):
		g.speed = max(g.speed-1, minSpeed)
		return core.ActionContinue
	case controls.Matches(ev, keys.Step):
		g.step()
		return core.ActionContinue
	}
	if g.running {
		return core.ActionContinue
	}
	g.edit(ev)
	return core.ActionContinue
}

func (g *Game) edit(ev core.KeyEvent) {
	if controls.Matches(ev, keys.Move) {
		d, _ := controls.Direction(ev)
		g.cursor.X = core.Wrap(g.cursor.X+d.X, Width)
		g.cursor.Y = core.Wrap(g.cursor.Y+d.Y, Height)
		return
	}
	switch {
	case controls.Matches(ev, keys.Toggle):
		g.grid.Toggle(g.cursor.X, g.cursor.Y)
		g.audio.PlaySound(audio.SoundToggle)
	case controls.Matches(ev, keys.Stamp):
		p := Patterns[ev.Rune-'1']
		g.grid.Stamp(p, g.cursor.X, g.cursor.Y)
		g.audio.PlaySound(audio.SoundToggle)
	case controls.Matches(ev, keys.Randomize):
		g.grid.Randomize(g.rng, randomDensity)
		g.generation = 0
	case controls.Matches(ev, keys.Clear):
		g.grid.Clear()
		g.generation = 0
	}
}

func (g *Game) step() {
	g.grid.Step()
	g.generation++
}

// Update advances one generation while running.
func (g *Game) Update() core.GameAction {
	if g.running {
		g.step()
	}
	return core.ActionContinue
}
