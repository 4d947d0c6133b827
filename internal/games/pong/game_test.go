package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/registry"
)

func newGame(t *testing.T, mode Mode) (*Game, *audio.Recorder) {
	t.Helper()
	rec := &audio.Recorder{}
	g := New(registry.Env{Audio: rec, Seed: 99})
	if mode != ModeSelect {
		g.start(mode)
		g.serving = false
	}
	return g, rec
}

func TestModeSelection(t *testing.T) {
	g, _ := newGame(t, ModeSelect)

	g.Update()
	if g.Mode() != ModeSelect {
		t.Fatal("Update should not leave the selection screen")
	}

	g.HandleKey(core.KeyPress(core.KeyDown))
	g.HandleKey(core.KeyPress(core.KeyEnter))
	if g.Mode() != ModeTwoPlayer {
		t.Errorf("expected two-player mode, got %v", g.Mode())
	}

	g2, _ := newGame(t, ModeSelect)
	g2.HandleKey(core.RuneKey('1'))
	if g2.Mode() != ModeSingle {
		t.Errorf("expected single mode, got %v", g2.Mode())
	}
	if !g2.serving {
		t.Error("a new match starts with a serve")
	}
}

func TestPaddleControls(t *testing.T) {
	g, _ := newGame(t, ModeTwoPlayer)
	p1, p2 := g.paddle1Y, g.paddle2Y

	g.HandleKey(core.RuneKey('w'))
	g.HandleKey(core.KeyPress(core.KeyDown))

	if g.paddle1Y != p1-paddleStep {
		t.Errorf("left paddle = %v, want %v", g.paddle1Y, p1-paddleStep)
	}
	if g.paddle2Y != p2+paddleStep {
		t.Errorf("right paddle = %v, want %v", g.paddle2Y, p2+paddleStep)
	}

	for i := 0; i < 20; i++ {
		g.HandleKey(core.RuneKey('w'))
	}
	if g.paddle1Y != 0 {
		t.Errorf("left paddle should clamp at the top, got %v", g.paddle1Y)
	}
}

func TestArrowsIgnoredAgainstCPU(t *testing.T) {
	g, _ := newGame(t, ModeSingle)
	p2 := g.paddle2Y
	g.HandleKey(core.KeyPress(core.KeyUp))
	if g.paddle2Y != p2 {
		t.Error("arrow keys should not move the CPU paddle")
	}
}

func TestWallBounce(t *testing.T) {
	g, rec := newGame(t, ModeTwoPlayer)
	g.ballX, g.ballY = 30, 0.5
	g.ballVX, g.ballVY = 0.5, -1

	g.Update()

	if g.ballVY <= 0 {
		t.Errorf("ball should head down after the top wall, vy=%v", g.ballVY)
	}
	if g.ballY < 0 {
		t.Errorf("ball left the field: y=%v", g.ballY)
	}
	if !rec.Played(audio.SoundWall) {
		t.Error("expected wall sound")
	}
}

func TestPaddleBounceSpeedsUp(t *testing.T) {
	g, rec := newGame(t, ModeTwoPlayer)
	g.paddle1Y = 8
	g.ballX, g.ballY = PaddleOffset+1.5, 9.5
	g.ballVX, g.ballVY = -0.8, 0

	g.Update()

	if g.ballVX <= 0 {
		t.Fatalf("ball should bounce right, vx=%v", g.ballVX)
	}
	if want := 0.8 * speedUp; math.Abs(g.ballVX-want) > 1e-9 {
		t.Errorf("vx = %v, want %v", g.ballVX, want)
	}
	if !rec.Played(audio.SoundPaddle) {
		t.Error("expected paddle sound")
	}
}

func TestBallSpeedCapped(t *testing.T) {
	g, _ := newGame(t, ModeTwoPlayer)
	g.ballVX, g.ballVY = -1.9, 0.5
	g.bounce(1)

	if s := math.Hypot(g.ballVX, g.ballVY); s > maxBallSpeed+1e-9 {
		t.Errorf("speed %v exceeds cap %v", s, maxBallSpeed)
	}
}

func TestMissScoresForOpponent(t *testing.T) {
	g, rec := newGame(t, ModeTwoPlayer)
	g.paddle1Y = 0
	g.ballX, g.ballY = 0.5, 15
	g.ballVX, g.ballVY = -1, 0

	g.Update()

	if g.score2 != 1 {
		t.Errorf("score2 = %d, want 1", g.score2)
	}
	if !g.serving {
		t.Error("a point should lead to a new serve")
	}
	if g.ballVX >= 0 {
		t.Error("the serve should head toward the player who lost the point")
	}
	if !rec.Played(audio.SoundScore) {
		t.Error("expected score sound")
	}
}

func TestFirstToFiveWins(t *testing.T) {
	g, rec := newGame(t, ModeSingle)
	g.score1 = 4
	g.point(1)

	if !g.gameOver || g.winner != 1 {
		t.Fatalf("expected player 1 to win, over=%v winner=%d", g.gameOver, g.winner)
	}
	if !rec.Played(audio.SoundVictory) {
		t.Error("expected victory sound")
	}

	res := g.Result()
	if want := 5*100 + 500; res.Score != want || !res.Won {
		t.Errorf("result = %+v, want score %d and won", res, want)
	}

	before := g.Snapshot()
	g.Update()
	g.HandleKey(core.RuneKey('w'))
	if g.Snapshot() != before {
		t.Error("state changed after game over")
	}
	if got := g.HandleKey(core.RuneKey('r')); got != core.ActionRestart {
		t.Errorf("r = %v, want restart", got)
	}
}

func TestTwoPlayerUnranked(t *testing.T) {
	g, _ := newGame(t, ModeTwoPlayer)
	g.score1 = 3
	if got := g.Result().Score; got != 0 {
		t.Errorf("two-player score = %d, want 0", got)
	}
}

func TestCPUTracksBall(t *testing.T) {
	g, _ := newGame(t, ModeSingle)
	g.aiSkill = 1
	g.paddle2Y = 0
	g.ballX, g.ballY = 30, 15
	g.ballVX, g.ballVY = 0.1, 0

	for i := 0; i < 60; i++ {
		g.Update()
	}
	if g.paddle2Y < 5 {
		t.Errorf("CPU paddle did not follow the ball, y=%v", g.paddle2Y)
	}
}

func TestServeDelay(t *testing.T) {
	g, _ := newGame(t, ModeTwoPlayer)
	g.startServe(1)
	x := g.ballX
	for i := 0; i < serveTicks-1; i++ {
		g.Update()
	}
	if g.ballX != x {
		t.Error("ball moved during the serve delay")
	}
	g.Update()
	g.Update()
	if g.ballX == x {
		t.Error("ball did not move after the serve delay")
	}
}

func TestDeterminism(t *testing.T) {
	a, _ := newGame(t, ModeSingle)
	b, _ := newGame(t, ModeSingle)
	for i := 0; i < 500; i++ {
		a.Update()
		b.Update()
	}
	if a.Snapshot() != b.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
}

func TestDraw(t *testing.T) {
	g, _ := newGame(t, ModeSelect)
	s := core.NewScreen(80, 24)
	g.Draw(s)
	if !s.Contains("Two players") {
		t.Errorf("selection screen missing:\n%s", s.String())
	}

	g.start(ModeSingle)
	a, b := core.NewScreen(80, 24), core.NewScreen(80, 24)
	g.Draw(a)
	g.Draw(b)
	if !a.Equal(b) {
		t.Error("Draw is not idempotent")
	}
	if !a.Contains("CPU") {
		t.Error("expected the CPU label")
	}
}
