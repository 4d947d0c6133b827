// Package minesweeper implements the mine-clearing puzzle with a safe
// first reveal, flood fill and flags.
package minesweeper

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/config"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/games/controls"
	"github.com/vovakirdan/termplay/internal/games/scoring"
	"github.com/vovakirdan/termplay/internal/registry"
)

// ID is the registry id of the game.
const ID = "minesweeper"

// TickRate only drives the elapsed timer.
const TickRate = 100 * time.Millisecond

// Layout is a board size and mine count.
type Layout struct {
	W, H, Mines int
}

// Layouts per difficulty preset.
var (
	Beginner     = Layout{W: 9, H: 9, Mines: 10}
	Intermediate = Layout{W: 16, H: 16, Mines: 40}
	Expert       = Layout{W: 30, H: 16, Mines: 99}
)

type keyMap struct {
	Move    key.Binding
	Reveal  key.Binding
	Flag    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Reveal, k.Flag, k.Restart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Move:    key.NewBinding(key.WithKeys("up", "down", "left", "right", "w", "a", "s", "d"), key.WithHelp("←↑→↓", "move")),
	Reveal:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("space", "reveal")),
	Flag:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flag")),
	Restart: controls.Restart,
	Quit:    controls.Quit,
}

// Game is one minesweeper session.
type Game struct {
	audio audio.Player
	rng   *rand.Rand

	board  *Board
	cursor core.Point

	score int
	// ticks counts elapsed ticks from the first reveal to the end.
	ticks    int
	started  bool
	gameOver bool
	won      bool
	// boom is the mine that ended the game.
	boom core.Point
}

// New creates a game sized by the difficulty preset.
func New(env registry.Env) *Game {
	env = env.Normalize()
	l := config.Pick(env.Difficulty, Beginner, Intermediate, Expert)
	return NewWithLayout(env, l)
}

// NewWithLayout creates a game with an explicit board layout.
func NewWithLayout(env registry.Env, l Layout) *Game {
	env = env.Normalize()
	return &Game{
		audio:  env.Audio,
		rng:    rand.New(rand.NewSource(env.Seed)),
		board:  NewBoard(l.W, l.H, l.Mines),
		cursor: core.Point{X: l.W / 2, Y: l.H / 2},
	}
}

// Descriptor registers minesweeper with the catalog.
func Descriptor() registry.Descriptor {
	return registry.Descriptor{
		ID:          ID,
		Title:       "Minesweeper",
		Description: "Clear the field without touching a mine",
		Music:       audio.TrackMinesweeper,
		New:         func(env registry.Env) registry.Game { return New(env) },
	}
}

func (g *Game) Name() string { return ID }

func (g *Game) Description() string {
	return "Clear the field without touching a mine"
}

func (g *Game) TickRate() time.Duration { return TickRate }

func (g *Game) Result() core.Result {
	return core.Result{Score: g.score, Over: g.gameOver || g.won, Won: g.won}
}

// Elapsed returns the play time so far.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.ticks) * TickRate
}

func (g *Game) finished() bool { return g.gameOver || g.won }

func (g *Game) HandleKey(ev core.KeyEvent) core.GameAction {
	if controls.Matches(ev, keys.Quit) {
		return core.ActionQuit
	}
	if controls.Matches(ev, keys.Restart) {
		// Restart is allowed mid-game too; a fresh board is cheap.
		return core.ActionRestart
	}
	if g.finished() {
		return core.ActionContinue
	}

	if d, ok := controls.Direction(ev); ok {
		g.cursor.X = core.Clamp(g.cursor.X+d.X, 0, g.board.W-1)
		g.cursor.Y = core.Clamp(g.cursor.Y+d.Y, 0, g.board.H-1)
		return core.ActionContinue
	}

	switch {
	case controls.Matches(ev, keys.Reveal):
		g.reveal(g.cursor)
	case controls.Matches(ev, keys.Flag):
		if g.board.ToggleFlag(g.cursor) {
			g.audio.PlaySound(audio.SoundFlag)
		}
	}
	return core.ActionContinue
}

func (g *Game) reveal(p core.Point) {
	if g.board.At(p).State != Hidden {
		return
	}
	if !g.started {
		g.board.Place(g.rng, p)
		g.started = true
	}

	opened, boom := g.board.Reveal(p)
	if boom {
		g.gameOver = true
		g.boom = p
		g.board.ShowMines()
		g.audio.PlaySound(audio.SoundExplosion)
		return
	}
	g.score += opened * scoring.MinesweeperCellPoints
	g.audio.PlaySound(audio.SoundReveal)

	if g.board.Cleared() {
		g.won = true
		g.score += scoring.MinesweeperWinBonus
		g.audio.PlaySound(audio.SoundVictory)
	}
}

// Update advances the timer while a round is in progress.
func (g *Game) Update() core.GameAction {
	if g.started && !g.finished() {
		g.ticks++
	}
	return core.ActionContinue
}
