// Package tetris implements the falling-block puzzle: a 10x20 well, seven
// tetrominoes with wall kicks, gravity that speeds up every ten lines and
// the classic 40/100/300/1200 line-clear table.
package tetris

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
const ID = "tetris"

const (
	// fastMusicLevel switches to the faster arrangement.
	fastMusicLevel = 7
	// celebrationTicks keeps the four-line banner up for six seconds.
	celebrationTicks = 120
)

// kicks are the horizontal offsets tried, in order, when a rotation
// collides. 0 is the unkicked rotation.
var kicks = [...]int{0, -1, 1, -2, 2}

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	SoftDrop  key.Binding
	Rotate    key.Binding
	RotateCCW key.Binding
	HardDrop  key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Rotate, k.SoftDrop, k.HardDrop, k.Pause, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.RotateCCW, k.Restart}}
}

var keys = keyMap{
	Left:      key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←→", "move")),
	Right:     key.NewBinding(key.WithKeys("right", "d")),
	SoftDrop:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓", "drop")),
	Rotate:    key.NewBinding(key.WithKeys("up", "w", "x"), key.WithHelp("↑", "rotate")),
	RotateCCW: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "rotate left")),
	HardDrop:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hard drop")),
	Pause:     controls.Pause,
	Restart:   controls.Restart,
	Quit:      controls.Quit,
}

// Game is one tetris session. A finished game is never reset; the runtime
// replaces it with a new instance on restart.
type Game struct {
	audio audio.Player
	rng   *rand.Rand

	board     Board
	active    Piece
	hasActive bool
	next      Shape

	score int
	lines int
	level int

	fallTimer time.Duration
	over      bool
	paused    bool
	celebrate int
	fast      bool
}

// New starts a game with an empty board and two random pieces.
func New(env registry.Env) *Game {
	env = env.Normalize()
	g := &Game{
		audio: env.Audio,
		rng:   rand.New(rand.NewSource(env.Seed)),
		level: 1,
	}
	g.next = g.randomShape()
	g.spawn()
	return g
}

// Descriptor registers tetris with the catalog.
func Descriptor() registry.Descriptor {
	return registry.Descriptor{
		ID:          ID,
		Title:       "Tetris",
		Description: "Stack falling tetrominoes and clear full lines",
		Music:       audio.TrackTetris,
		New:         func(env registry.Env) registry.Game { return New(env) },
	}
}

func (g *Game) Name() string { return ID }

func (g *Game) Description() string {
	return "Stack falling tetrominoes and clear full lines"
}

// TickRate is constant; gravity speed comes from GravityInterval.
func (g *Game) TickRate() time.Duration { return scoring.TetrisTick }

// Result reports the current score for the leaderboard.
func (g *Game) Result() core.Result {
	return core.Result{Score: g.score, Level: g.level, Lines: g.lines, Over: g.over}
}

func (g *Game) randomShape() Shape {
	return Shape(g.rng.Intn(int(shapeCount)))
}

// spawn promotes next to the active piece at the top center. A spawn that
// overlaps settled cells ends the game.
func (g *Game) spawn() {
	p := Piece{Shape: g.next}
	p.X = (Width - p.Shape.Size()) / 2
	g.next = g.randomShape()
	g.fallTimer = 0

	if !g.board.Fits(p) {
		g.hasActive = false
		g.over = true
		g.audio.PlaySound(audio.SoundGameOver)
		return
	}
	g.active = p
	g.hasActive = true
}

// HandleKey applies a move immediately. Blocked moves are ignored.
func (g *Game) HandleKey(ev core.KeyEvent) core.GameAction {
	if controls.Matches(ev, keys.Quit) {
		return core.ActionQuit
	}
	if g.over {
		if controls.Matches(ev, keys.Restart) {
			return core.ActionRestart
		}
		return core.ActionContinue
	}
	if controls.Matches(ev, keys.Pause) {
		g.paused = !g.paused
		return core.ActionContinue
	}
	if g.paused || !g.hasActive {
		return core.ActionContinue
	}

	switch {
	case controls.Matches(ev, keys.Left):
		g.shift(-1)
	case controls.Matches(ev, keys.Right):
		g.shift(1)
	case controls.Matches(ev, keys.SoftDrop):
		g.softDrop()
	case controls.Matches(ev, keys.Rotate):
		g.rotate(1)
	case controls.Matches(ev, keys.RotateCCW):
		g.rotate(-1)
	case controls.Matches(ev, keys.HardDrop):
		g.hardDrop()
	}
	return core.ActionContinue
}

// Update applies gravity.
func (g *Game) Update() core.GameAction {
	if g.over || g.paused {
		return core.ActionContinue
	}
	if g.celebrate > 0 {
		g.celebrate--
	}

	g.fallTimer += scoring.TetrisTick
	if g.fallTimer < scoring.GravityInterval(g.level) {
		return core.ActionContinue
	}
	g.fallTimer = 0
	if !g.tryMove(0, 1) {
		g.lock()
	}
	return core.ActionContinue
}

func (g *Game) tryMove(dx, dy int) bool {
	cand := g.active.Moved(dx, dy)
	if !g.board.Fits(cand) {
		return false
	}
	g.active = cand
	return true
}

func (g *Game) shift(dx int) {
	if g.tryMove(dx, 0) {
		g.audio.PlaySound(audio.SoundMove)
	}
}

// rotate tries the plain rotation, then each kick offset in order. When
// nothing fits the piece is left untouched.
func (g *Game) rotate(dir int) bool {
	turned := g.active.Rotated(dir)
	for _, dx := range kicks {
		cand := turned.Moved(dx, 0)
		if g.board.Fits(cand) {
			g.active = cand
			g.audio.PlaySound(audio.SoundRotate)
			return true
		}
	}
	return false
}

func (g *Game) softDrop() {
	if g.tryMove(0, 1) {
		g.score += scoring.SoftDropPoints
		g.fallTimer = 0
		g.audio.PlaySound(audio.SoundSoftDrop)
		return
	}
	g.lock()
}

func (g *Game) hardDrop() {
	rows := 0
	for g.tryMove(0, 1) {
		rows++
	}
	g.score += rows * scoring.HardDropPointsPerRow
	g.audio.PlaySound(audio.SoundHardDrop)
	g.lock()
}

// lock settles the active piece, clears lines and spawns the next piece.
func (g *Game) lock() {
	g.board.Lock(g.active)
	g.hasActive = false
	g.audio.PlaySound(audio.SoundLock)

	if n := g.board.ClearLines(); n > 0 {
		g.score += scoring.LineClearPoints(n, g.level)
		g.lines += n
		prev := g.level
		g.level = scoring.Level(g.lines)

		if n == 4 {
			g.celebrate = celebrationTicks
			g.audio.PlaySound(audio.SoundTetris)
		} else {
			g.audio.PlaySound(audio.SoundLineClear)
		}
		if g.level > prev {
			g.audio.PlaySound(audio.SoundLevelUp)
		}
		if g.level >= fastMusicLevel && !g.fast {
			g.fast = true
			g.audio.SetMusic(audio.TrackTetrisFast)
		}
	}
	g.spawn()
}
