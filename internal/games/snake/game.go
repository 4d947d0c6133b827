// Package snake implements the classic snake: steer around a walled
// field, eat food to grow, and do not bite yourself.
package snake

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
	"github.com/vovakirdan/termplay/internal/games/scoring"
	"github.com/vovakirdan/termplay/internal/registry"
)

// ID is the registry id of the game.
const ID = "snake"

// Field size in cells, excluding the border.
const (
	FieldW = 40
	FieldH = 20

	startLen = 3
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

var dirSteps = [...]core.Point{
	DirRight: {X: 1},
	DirDown:  {Y: 1},
	DirLeft:  {X: -1},
	DirUp:    {Y: -1},
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Pause, k.Restart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Pause, k.Restart, k.Quit}}
}

var keys = keyMap{
	Up:      controls.Up,
	Down:    controls.Down,
	Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←↑→↓", "steer")),
	Right:   controls.Right,
	Pause:   controls.Pause,
	Restart: controls.Restart,
	Quit:    controls.Quit,
}

// Game is one snake session.
type Game struct {
	audio audio.Player
	rng   *rand.Rand
	tick  uint64
	score int

	// Head at index 0.
	snake     []core.Point
	direction Direction
	// nextDir is applied on the next move so two quick presses between
	// moves cannot fold the snake back onto itself.
	nextDir Direction
	food    core.Point
	hasFood bool

	gameOver bool
	won      bool
	paused   bool
}

// New creates a game with a three-segment snake heading right from the
// middle of the field.
func New(env registry.Env) *Game {
	env = env.Normalize()
	g := &Game{
		audio: env.Audio,
		rng:   rand.New(rand.NewSource(env.Seed)),
	}
	g.initSnake()
	g.spawnFood()
	return g
}

// Descriptor registers snake with the catalog.
func Descriptor() registry.Descriptor {
	return registry.Descriptor{
		ID:          ID,
		Title:       "Snake",
		Description: "Eat, grow and avoid the walls and your own tail",
		Music:       audio.TrackSnake,
		New:         func(env registry.Env) registry.Game { return New(env) },
	}
}

func (g *Game) Name() string { return ID }

func (g *Game) Description() string {
	return "Eat, grow and avoid the walls and your own tail"
}

// TickRate shortens as the snake grows.
func (g *Game) TickRate() time.Duration {
	return scoring.SnakeTickRate(len(g.snake))
}

func (g *Game) Result() core.Result {
	return core.Result{Score: g.score, Level: len(g.snake), Over: g.gameOver || g.won, Won: g.won}
}

func (g *Game) initSnake() {
	startX, startY := FieldW/2, FieldH/2
	g.snake = g.snake[:0]
	for i := 0; i < startLen; i++ {
		g.snake = append(g.snake, core.Point{X: startX - i, Y: startY})
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// spawnFood places food at a random empty cell. A full field wins.
func (g *Game) spawnFood() {
	var empty []core.Point
	for y := 0; y < FieldH; y++ {
		for x := 0; x < FieldW; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		g.hasFood = false
		g.won = true
		g.audio.PlaySound(audio.SoundVictory)
		return
	}
	g.food = empty[g.rng.Intn(len(empty))]
	g.hasFood = true
}

func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

func inField(p core.Point) bool {
	return p.X >= 0 && p.X < FieldW && p.Y >= 0 && p.Y < FieldH
}

// HandleKey buffers a direction change or handles pause, restart and quit.
func (g *Game) HandleKey(ev core.KeyEvent) core.GameAction {
	switch {
	case controls.Matches(ev, keys.Quit):
		return core.ActionQuit
	case g.gameOver || g.won:
		if controls.Matches(ev, keys.Restart) {
			return core.ActionRestart
		}
		return core.ActionContinue
	case controls.Matches(ev, keys.Pause):
		g.paused = !g.paused
		return core.ActionContinue
	case g.paused:
		return core.ActionContinue
	}

	var dir Direction
	switch {
	case controls.Matches(ev, keys.Up):
		dir = DirUp
	case controls.Matches(ev, keys.Down):
		dir = DirDown
	case controls.Matches(ev, keys.Left):
		dir = DirLeft
	case controls.Matches(ev, keys.Right):
		dir = DirRight
	default:
		return core.ActionContinue
	}
	// Reversal is checked against the direction of the last move.
	if dir != g.direction.Opposite() {
		g.nextDir = dir
	}
	return core.ActionContinue
}

// Update moves the snake one cell.
func (g *Game) Update() core.GameAction {
	if g.gameOver || g.won || g.paused {
		return core.ActionContinue
	}
	g.tick++
	g.moveSnake()
	return core.ActionContinue
}

func (g *Game) moveSnake() {
	g.direction = g.nextDir
	head := g.snake[0].Add(dirSteps[g.direction])

	if !inField(head) {
		g.die()
		return
	}
	eating := g.hasFood && head == g.food

	// The tail moves out of the way unless the snake is growing.
	body := g.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == head {
			g.die()
			return
		}
	}

	g.snake = append([]core.Point{head}, body...)
	if eating {
		g.score += scoring.SnakeFoodPoints
		g.audio.PlaySound(audio.SoundEat)
		g.spawnFood()
	}
}

func (g *Game) die() {
	g.gameOver = true
	g.audio.PlaySound(audio.SoundGameOver)
}
