// Package breakout implements a brick breaker: keep the ball in play with
// the paddle and clear the wall to advance.
package breakout

import (
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
const ID = "breakout"

// Field and paddle settings.
const (
	FieldW      = 60
	FieldH      = 20
	PaddleWidth = 10
	paddleStep  = 2

	TickRate = 50 * time.Millisecond

	// Level 1 ball velocity per tick; each level adds 10%.
	baseVX Fixed = 800
	baseVY Fixed = -600
	// maxVX is the horizontal speed after an edge hit on the paddle.
	maxVX Fixed = 1200
)

// Game states.
const (
	StateServe    = "serve" // ball on the paddle, waiting for launch
	StatePlaying  = "playing"
	StateGameOver = "gameover"
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Launch  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Launch, k.Pause, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Launch}, {k.Pause, k.Restart, k.Quit}}
}

var keys = keyMap{
	Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/→", "move")),
	Right:   key.NewBinding(key.WithKeys("right", "d")),
	Launch:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "launch")),
	Pause:   controls.Pause,
	Restart: controls.Restart,
	Quit:    controls.Quit,
}

// Game implements the breakout game logic.
type Game struct {
	audio audio.Player

	paddle Paddle
	ball   Ball
	wall   Wall

	state  string
	paused bool
	score  int
	lives  int
	level  int
	tick   uint64
}

// New creates a game with a full wall and the ball on the paddle. Lives
// depend on the difficulty preset.
func New(env registry.Env) *Game {
	env = env.Normalize()
	g := &Game{
		audio:  env.Audio,
		paddle: Paddle{X: (FieldW - PaddleWidth) / 2, Y: FieldH - 2, Width: PaddleWidth},
		lives:  config.Pick(env.Difficulty, 5, 3, 2),
		level:  1,
	}
	g.wall = NewWall(g.level, scoring.BrickPoints)
	g.serve()
	return g
}

// Descriptor registers breakout with the catalog.
func Descriptor() registry.Descriptor {
	return registry.Descriptor{
		ID:          ID,
		Title:       "Breakout",
		Description: "Bounce the ball and break every brick",
		Music:       audio.TrackBreakout,
		New:         func(env registry.Env) registry.Game { return New(env) },
	}
}

func (g *Game) Name() string { return ID }

func (g *Game) Description() string {
	return "Bounce the ball and break every brick"
}

func (g *Game) TickRate() time.Duration { return TickRate }

func (g *Game) Result() core.Result {
	return core.Result{Score: g.score, Level: g.level, Over: g.state == StateGameOver}
}

// speed scales a level 1 velocity component for the current level.
func (g *Game) speed(v Fixed) Fixed {
	return v.Scaled(10+g.level-1, 10)
}

// serve parks the ball on the paddle.
func (g *Game) serve() {
	g.state = StateServe
	g.stickBall()
	g.ball.VX = g.speed(baseVX)
	g.ball.VY = g.speed(baseVY)
}

func (g *Game) stickBall() {
	g.ball.X = g.paddle.Center()
	g.ball.Y = ToFixed(g.paddle.Y - 1)
}

func (g *Game) HandleKey(ev core.KeyEvent) core.GameAction {
	if controls.Matches(ev, keys.Quit) {
		return core.ActionQuit
	}
	if g.state == StateGameOver {
		if controls.Matches(ev, keys.Restart) {
			return core.ActionRestart
		}
		return core.ActionContinue
	}
	if controls.Matches(ev, keys.Pause) {
		g.paused = !g.paused
		return core.ActionContinue
	}
	if g.paused {
		return core.ActionContinue
	}

	switch {
	case controls.Matches(ev, keys.Left):
		g.paddle.Shift(-paddleStep)
	case controls.Matches(ev, keys.Right):
		g.paddle.Shift(paddleStep)
	case controls.Matches(ev, keys.Launch) && g.state == StateServe:
		g.state = StatePlaying
		g.audio.PlaySound(audio.SoundPaddle)
	}
	if g.state == StateServe {
		g.stickBall()
	}
	return core.ActionContinue
}

// Update moves the ball and resolves collisions.
func (g *Game) Update() core.GameAction {
	if g.state != StatePlaying || g.paused {
		return core.ActionContinue
	}
	g.tick++
	g.ball.Move()

	side, fell := CheckWallCollision(&g.ball)
	if fell {
		g.loseLife()
		return core.ActionContinue
	}
	if side != CollisionNone {
		g.audio.PlaySound(audio.SoundWall)
	}

	if CheckPaddleCollision(&g.ball, &g.paddle, g.speed(maxVX)) {
		g.audio.PlaySound(audio.SoundPaddle)
		return core.ActionContinue
	}
	g.hitBrick()
	return core.ActionContinue
}

// hitBrick damages the brick under the ball, if any, and bounces it.
func (g *Game) hitBrick() {
	x, y := g.ball.Cell()
	row, col, ok := BrickAt(x, y)
	if !ok || !g.wall[row][col].Alive {
		return
	}
	b := &g.wall[row][col]
	g.ball.VY = -g.ball.VY
	b.HP--
	if b.HP > 0 {
		g.audio.PlaySound(audio.SoundWall)
		return
	}
	b.Alive = false
	g.score += b.Points
	g.audio.PlaySound(audio.SoundBrick)

	if g.wall.CountAlive() == 0 {
		g.nextLevel()
	}
}

func (g *Game) nextLevel() {
	g.score += scoring.BreakoutLevelBonus(g.level)
	g.level++
	g.wall = NewWall(g.level, scoring.BrickPoints)
	g.audio.PlaySound(audio.SoundLevelUp)
	g.serve()
}

func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		g.audio.PlaySound(audio.SoundGameOver)
		return
	}
	g.audio.PlaySound(audio.SoundExplosion)
	g.serve()
}
