package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/registry"
)

func newGame(seed int64) (*Game, *audio.Recorder) {
	rec := &audio.Recorder{}
	return New(registry.Env{Audio: rec, Seed: seed}), rec
}

func press(g *Game, names string) {
	for _, ev := range core.Keys(names) {
		g.HandleKey(ev)
	}
}

func TestDeterminism(t *testing.T) {
	g1, _ := newGame(12345)
	g2, _ := newGame(12345)

	for i := 0; i < 100; i++ {
		if i == 5 {
			press(g1, "down")
			press(g2, "down")
		}
		if i == 9 {
			press(g1, "left")
			press(g2, "left")
		}
		g1.Update()
		g2.Update()
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestInitialState(t *testing.T) {
	g, _ := newGame(1)

	if len(g.snake) != startLen {
		t.Fatalf("expected length %d, got %d", startLen, len(g.snake))
	}
	if g.direction != DirRight {
		t.Errorf("expected initial direction right, got %v", g.direction)
	}
	if g.isSnakeAt(g.food) {
		t.Error("food spawned on the snake")
	}
	if got, want := g.TickRate(), 270*time.Millisecond; got != want {
		t.Errorf("tick rate = %v, want %v", got, want)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g, _ := newGame(42)

	press(g, "left")
	if g.nextDir == DirLeft {
		t.Error("should not allow reversal from right to left")
	}

	press(g, "down")
	if g.nextDir != DirDown {
		t.Errorf("expected nextDir down, got %v", g.nextDir)
	}

	// Down then left before the move lands is fine: the reversal check
	// uses the direction of the last move.
	press(g, "a")
	if g.nextDir != DirLeft {
		t.Errorf("expected nextDir left, got %v", g.nextDir)
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g, _ := newGame(999)

	for i := 0; i < 100; i++ {
		g.spawnFood()
		if g.isSnakeAt(g.food) {
			t.Errorf("food spawned on snake at %v", g.food)
		}
		if !inField(g.food) {
			t.Errorf("food spawned out of bounds at %v", g.food)
		}
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g, rec := newGame(7)
	head := g.snake[0]
	g.food = core.Point{X: head.X + 1, Y: head.Y}

	g.Update()

	if len(g.snake) != startLen+1 {
		t.Errorf("expected length %d, got %d", startLen+1, len(g.snake))
	}
	if g.score != 10 {
		t.Errorf("expected score 10, got %d", g.score)
	}
	if !rec.Played(audio.SoundEat) {
		t.Error("expected eat sound")
	}
	if g.isSnakeAt(g.food) {
		t.Error("new food spawned on the snake")
	}
}

func TestMoveKeepsLength(t *testing.T) {
	g, _ := newGame(7)
	g.food = core.Point{X: 0, Y: 0}
	head := g.snake[0]

	g.Update()

	if len(g.snake) != startLen {
		t.Errorf("length changed to %d", len(g.snake))
	}
	if want := (core.Point{X: head.X + 1, Y: head.Y}); g.snake[0] != want {
		t.Errorf("head = %v, want %v", g.snake[0], want)
	}
}

func TestWallCollision(t *testing.T) {
	g, rec := newGame(3)
	g.food = core.Point{X: 0, Y: 0}

	for i := 0; i < FieldW && !g.gameOver; i++ {
		g.Update()
	}

	if !g.gameOver {
		t.Fatal("expected game over after running into the right wall")
	}
	if g.snake[0].X != FieldW-1 {
		t.Errorf("head should stop at the last column, got %v", g.snake[0])
	}
	if !rec.Played(audio.SoundGameOver) {
		t.Error("expected game over sound")
	}
}

func TestSelfCollision(t *testing.T) {
	g, _ := newGame(3)
	g.food = core.Point{X: 0, Y: 0}
	g.snake = []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	g.direction = DirUp
	g.nextDir = DirDown

	g.Update()

	if !g.gameOver {
		t.Error("expected game over after biting the body")
	}
}

func TestChasingTailIsSafe(t *testing.T) {
	g, _ := newGame(3)
	g.food = core.Point{X: 0, Y: 0}
	// A 2x2 loop: the head moves into the cell the tail is leaving.
	g.snake = []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	g.direction = DirUp
	g.nextDir = DirRight

	g.Update()

	if g.gameOver {
		t.Error("moving into the vacating tail cell should be allowed")
	}
}

func TestGameOverOnlyRestartOrQuit(t *testing.T) {
	g, _ := newGame(3)
	g.gameOver = true
	before := g.Snapshot()

	g.Update()
	if got := g.HandleKey(core.KeyPress(core.KeyUp)); got != core.ActionContinue {
		t.Errorf("arrow after game over = %v", got)
	}
	if g.Snapshot() != before {
		t.Error("state changed after game over")
	}
	if got := g.HandleKey(core.RuneKey('r')); got != core.ActionRestart {
		t.Errorf("r = %v, want restart", got)
	}
	if got := g.HandleKey(core.KeyPress(core.KeyEsc)); got != core.ActionQuit {
		t.Errorf("esc = %v, want quit", got)
	}
}

func TestPause(t *testing.T) {
	g, _ := newGame(3)
	press(g, "p")
	head := g.snake[0]
	g.Update()
	if g.snake[0] != head {
		t.Error("snake moved while paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("state = %s", g.Snapshot().State)
	}
}

func TestDraw(t *testing.T) {
	g, _ := newGame(3)
	a := core.NewScreen(80, 24)
	b := core.NewScreen(80, 24)
	g.Draw(a)
	g.Draw(b)
	if !a.Equal(b) {
		t.Error("Draw is not idempotent")
	}
	if !a.Contains("Score: 0") {
		t.Errorf("HUD missing:\n%s", a.String())
	}

	small := core.NewScreen(30, 10)
	g.Draw(small)
	if !small.Contains("Terminal too small") {
		t.Error("expected a too-small warning")
	}
}
