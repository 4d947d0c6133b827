// Package t2048 implements the 2048 sliding-tile puzzle.
package t2048

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
const ID = "2048"

const (
	// TickRate drives the tile highlight animation only; moves are
	// applied on key press.
	TickRate = 100 * time.Millisecond

	spawn4Prob = 0.10
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Continue key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Continue, k.Restart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Continue, k.Restart, k.Quit}}
}

var keys = keyMap{
	Up:       controls.Up,
	Down:     controls.Down,
	Left:     key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←↑→↓", "slide")),
	Right:    controls.Right,
	Continue: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "keep going"), key.WithDisabled()),
	Restart:  controls.Restart,
	Quit:     controls.Quit,
}

// Game implements the 2048 puzzle game.
type Game struct {
	audio audio.Player
	rng   *rand.Rand
	moves uint64

	score int
	board Board

	// won shows the win overlay once 2048 appears; continued dismisses it
	// and keeps playing.
	won       bool
	continued bool
	gameOver  bool

	keys keyMap
	anim highlight
}

// New creates a game with two random tiles.
func New(env registry.Env) *Game {
	env = env.Normalize()
	g := &Game{
		audio: env.Audio,
		rng:   rand.New(rand.NewSource(env.Seed)),
		keys:  keys,
	}
	g.spawnTile()
	g.spawnTile()
	return g
}

// Descriptor registers 2048 with the catalog.
func Descriptor() registry.Descriptor {
	return registry.Descriptor{
		ID:          ID,
		Title:       "2048",
		Description: "Slide and merge tiles to reach 2048",
		Music:       audio.Track2048,
		New:         func(env registry.Env) registry.Game { return New(env) },
	}
}

func (g *Game) Name() string { return ID }

func (g *Game) Description() string {
	return "Slide and merge tiles to reach 2048"
}

func (g *Game) TickRate() time.Duration { return TickRate }

func (g *Game) Result() core.Result {
	return core.Result{Score: g.score, Level: MaxTile(g.board), Over: g.gameOver, Won: g.won}
}

// spawnTile puts a 2 (or, 10% of the time, a 4) on a random empty cell.
func (g *Game) spawnTile() (core.Point, bool) {
	empty := EmptyCells(g.board)
	if len(empty) == 0 {
		return core.Point{}, false
	}
	p := empty[g.rng.Intn(len(empty))]
	v := 2
	if g.rng.Float64() < spawn4Prob {
		v = 4
	}
	g.board[p.Y][p.X] = v
	return p, true
}

// blocked reports whether the win overlay is waiting for the player.
func (g *Game) blocked() bool {
	return g.won && !g.continued
}

func (g *Game) HandleKey(ev core.KeyEvent) core.GameAction {
	if controls.Matches(ev, keys.Quit) {
		return core.ActionQuit
	}
	if controls.Matches(ev, keys.Restart) && (g.gameOver || g.won) {
		return core.ActionRestart
	}
	if g.gameOver {
		return core.ActionContinue
	}
	if g.blocked() {
		if controls.Matches(ev, g.keys.Continue) {
			g.continued = true
			g.keys.Continue.SetEnabled(false)
		}
		return core.ActionContinue
	}

	switch {
	case controls.Matches(ev, keys.Up):
		g.move(DirUp)
	case controls.Matches(ev, keys.Down):
		g.move(DirDown)
	case controls.Matches(ev, keys.Left):
		g.move(DirLeft)
	case controls.Matches(ev, keys.Right):
		g.move(DirRight)
	}
	return core.ActionContinue
}

// move applies a slide. A slide that changes nothing spawns nothing.
func (g *Game) move(dir Direction) {
	m := Slide(g.board, dir)
	if !m.Changed {
		return
	}
	g.moves++
	g.board = m.Board
	g.score += m.Score

	if len(m.Merged) > 0 {
		g.audio.PlaySound(audio.SoundMerge)
	} else {
		g.audio.PlaySound(audio.SoundMove)
	}

	fresh, _ := g.spawnTile()
	g.anim.start(m.Merged, fresh)

	if !g.won && MaxTile(g.board) >= scoring.T2048Goal {
		g.won = true
		g.keys.Continue.SetEnabled(true)
		g.audio.PlaySound(audio.SoundVictory)
	}
	if !CanMove(g.board) {
		g.gameOver = true
		g.audio.PlaySound(audio.SoundGameOver)
	}
}

// Update fades the merge and spawn highlights.
func (g *Game) Update() core.GameAction {
	g.anim.tick()
	return core.ActionContinue
}
