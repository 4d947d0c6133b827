// Package pong implements two-paddle pong, either against a CPU paddle or
// with two players sharing the keyboard.
package pong

import (
	"math"
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
const ID = "pong"

// Field and physics settings.
const (
	FieldW = 60
	FieldH = 20

	PaddleHeight = 4
	PaddleOffset = 2 // distance from the side walls

	TickRate = 25 * time.Millisecond

	paddleStep   = 2.0
	ballSpeed    = 0.8
	maxBallSpeed = 2.0
	speedUp      = 1.05
	spin         = 0.6
	serveTicks   = 40 // one second
	aiEvery      = 3  // the CPU reconsiders every third tick
)

// Mode selects who controls the right paddle.
type Mode int

const (
	ModeSelect Mode = iota
	ModeSingle
	ModeTwoPlayer
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "vs CPU"
	case ModeTwoPlayer:
		return "2 players"
	default:
		return "select"
	}
}

type keyMap struct {
	P1Up    key.Binding
	P1Down  key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P2Up, k.Pause, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.P1Down, k.P2Down, k.Restart}}
}

var keys = keyMap{
	P1Up:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w/s", "left paddle")),
	P1Down:  key.NewBinding(key.WithKeys("s")),
	P2Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "right paddle")),
	P2Down:  key.NewBinding(key.WithKeys("down")),
	Pause:   key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
	Restart: controls.Restart,
	Quit:    controls.Quit,
}

// Game implements the pong game logic. Positions are in field cells;
// paddle Y is the top row of the paddle.
type Game struct {
	audio audio.Player
	rng   *rand.Rand

	mode   Mode
	cursor int

	paddle1Y float64
	paddle2Y float64

	ballX, ballY   float64
	ballVX, ballVY float64

	score1 int
	score2 int

	serving    bool
	serveDelay int

	gameOver bool
	paused   bool
	winner   int

	aiSkill   float64
	aiCounter int
	tickCount int
}

// New creates a game waiting on the mode selection screen.
func New(env registry.Env) *Game {
	env = env.Normalize()
	g := &Game{
		audio:   env.Audio,
		rng:     rand.New(rand.NewSource(env.Seed)),
		aiSkill: config.Pick(env.Difficulty, 0.5, 0.7, 0.9),
	}
	g.resetPositions()
	return g
}

// Descriptor registers pong with the catalog.
func Descriptor() registry.Descriptor {
	return registry.Descriptor{
		ID:          ID,
		Title:       "Pong",
		Description: "First to five against the CPU or a friend",
		Music:       audio.TrackPong,
		New:         func(env registry.Env) registry.Game { return New(env) },
	}
}

func (g *Game) Name() string { return ID }

func (g *Game) Description() string {
	return "First to five against the CPU or a friend"
}

func (g *Game) TickRate() time.Duration { return TickRate }

// Result scores the left player. Two-player matches are not ranked.
func (g *Game) Result() core.Result {
	r := core.Result{Over: g.gameOver, Won: g.gameOver && g.winner == 1}
	if g.mode != ModeSingle {
		return r
	}
	r.Score = g.score1 * scoring.PongPointValue
	if r.Won {
		r.Score += scoring.PongWinBonus
	}
	return r
}

// Mode returns the selected mode, ModeSelect until a choice is made.
func (g *Game) Mode() Mode { return g.mode }

func (g *Game) start(mode Mode) {
	g.mode = mode
	g.score1, g.score2 = 0, 0
	g.gameOver = false
	g.paused = false
	g.winner = 0
	g.resetPositions()
	g.startServe(1)
	g.audio.PlaySound(audio.SoundMenuConfirm)
}

func (g *Game) resetPositions() {
	top := float64(FieldH-PaddleHeight) / 2
	g.paddle1Y = top
	g.paddle2Y = top
	g.ballX = FieldW / 2
	g.ballY = FieldH / 2
}

// startServe centers the ball and aims it at the given side (1 left, 2
// right) with a random angle of up to 45 degrees.
func (g *Game) startServe(toward int) {
	g.serving = true
	g.serveDelay = serveTicks
	g.ballX = FieldW / 2
	g.ballY = FieldH / 2

	angle := (g.rng.Float64()*2 - 1) * math.Pi / 4
	dir := 1.0
	if toward == 1 {
		dir = -1
	}
	g.ballVX = dir * ballSpeed * math.Cos(angle)
	g.ballVY = ballSpeed * math.Sin(angle)
}

// HandleKey moves paddles immediately; the ball moves on ticks.
func (g *Game) HandleKey(ev core.KeyEvent) core.GameAction {
	if controls.Matches(ev, keys.Quit) {
		return core.ActionQuit
	}
	if g.mode == ModeSelect {
		return g.handleSelect(ev)
	}
	if g.gameOver {
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
	case controls.Matches(ev, keys.P1Up):
		g.paddle1Y = clampPaddle(g.paddle1Y - paddleStep)
	case controls.Matches(ev, keys.P1Down):
		g.paddle1Y = clampPaddle(g.paddle1Y + paddleStep)
	case g.mode == ModeTwoPlayer && controls.Matches(ev, keys.P2Up):
		g.paddle2Y = clampPaddle(g.paddle2Y - paddleStep)
	case g.mode == ModeTwoPlayer && controls.Matches(ev, keys.P2Down):
		g.paddle2Y = clampPaddle(g.paddle2Y + paddleStep)
	}
	return core.ActionContinue
}

func (g *Game) handleSelect(ev core.KeyEvent) core.GameAction {
	switch {
	case ev.Key == core.KeyRune && ev.Rune == '1':
		g.start(ModeSingle)
	case ev.Key == core.KeyRune && ev.Rune == '2':
		g.start(ModeTwoPlayer)
	case controls.Matches(ev, controls.Up, controls.Down):
		g.cursor = 1 - g.cursor
		g.audio.PlaySound(audio.SoundMenuSelect)
	case controls.Matches(ev, controls.Confirm):
		g.start(Mode(g.cursor + 1))
	}
	return core.ActionContinue
}

func clampPaddle(y float64) float64 {
	return core.ClampF(y, 0, FieldH-PaddleHeight)
}

// Update advances the ball and the CPU paddle by one tick.
func (g *Game) Update() core.GameAction {
	if g.mode == ModeSelect || g.gameOver || g.paused {
		return core.ActionContinue
	}
	g.tickCount++

	if g.mode == ModeSingle {
		g.updateAI()
	}
	if g.serving {
		g.serveDelay--
		if g.serveDelay <= 0 {
			g.serving = false
		}
		return core.ActionContinue
	}
	g.updateBall()
	return core.ActionContinue
}

// updateAI tracks the ball when it is heading right, with an aiming error
// that shrinks as skill grows.
func (g *Game) updateAI() {
	g.aiCounter++
	if g.aiCounter < aiEvery {
		return
	}
	g.aiCounter = 0
	if g.ballVX <= 0 {
		return
	}

	errorRows := (g.rng.Float64()*0.6 - 0.3) * (1 - g.aiSkill) * FieldH
	target := g.ballY + errorRows - PaddleHeight/2
	diff := target - g.paddle2Y
	step := paddleStep * g.aiSkill
	if math.Abs(diff) > step {
		diff = math.Copysign(step, diff)
	}
	g.paddle2Y = clampPaddle(g.paddle2Y + diff)
}

func (g *Game) updateBall() {
	g.ballX += g.ballVX
	g.ballY += g.ballVY

	if g.ballY < 0 {
		g.ballY = -g.ballY
		g.ballVY = -g.ballVY
		g.audio.PlaySound(audio.SoundWall)
	}
	if g.ballY > FieldH-1 {
		g.ballY = 2*(FieldH-1) - g.ballY
		g.ballVY = -g.ballVY
		g.audio.PlaySound(audio.SoundWall)
	}

	left := float64(PaddleOffset + 1)
	right := float64(FieldW - PaddleOffset - 1)
	switch {
	case g.ballVX < 0 && g.ballX <= left && g.ballX > left-1-math.Abs(g.ballVX):
		if hitPos, ok := paddleHit(g.ballY, g.paddle1Y); ok {
			g.ballX = left
			g.bounce(hitPos)
		}
	case g.ballVX > 0 && g.ballX >= right && g.ballX < right+1+g.ballVX:
		if hitPos, ok := paddleHit(g.ballY, g.paddle2Y); ok {
			g.ballX = right
			g.bounce(hitPos)
		}
	}

	switch {
	case g.ballX < 0:
		g.point(2)
	case g.ballX >= FieldW:
		g.point(1)
	}
}

// paddleHit reports where on the paddle (0 top, 1 bottom) the ball hit.
func paddleHit(ballY, paddleY float64) (float64, bool) {
	if ballY < paddleY-0.5 || ballY > paddleY+PaddleHeight-0.5 {
		return 0, false
	}
	return core.ClampF((ballY-paddleY+0.5)/PaddleHeight, 0, 1), true
}

// bounce reverses the ball, speeds it up and adds spin from the hit offset.
func (g *Game) bounce(hitPos float64) {
	g.ballVX = -g.ballVX * speedUp
	g.ballVY += (hitPos - 0.5) * spin

	if s := math.Hypot(g.ballVX, g.ballVY); s > maxBallSpeed {
		g.ballVX *= maxBallSpeed / s
		g.ballVY *= maxBallSpeed / s
	}
	g.audio.PlaySound(audio.SoundPaddle)
}

func (g *Game) point(player int) {
	if player == 1 {
		g.score1++
	} else {
		g.score2++
	}
	g.audio.PlaySound(audio.SoundScore)

	switch {
	case g.score1 >= scoring.PongWinningScore:
		g.finish(1)
	case g.score2 >= scoring.PongWinningScore:
		g.finish(2)
	default:
		// Serve toward the side that just lost the point.
		if player == 1 {
			g.startServe(2)
		} else {
			g.startServe(1)
		}
	}
}

func (g *Game) finish(winner int) {
	g.gameOver = true
	g.winner = winner
	if winner == 1 || g.mode == ModeTwoPlayer {
		g.audio.PlaySound(audio.SoundVictory)
	} else {
		g.audio.PlaySound(audio.SoundGameOver)
	}
}
