package t2048

import (
	"testing"

	"github.com/vovakirdan/termplay/internal/audio"
	"github.com/vovakirdan/termplay/internal/core"
	"github.com/vovakirdan/termplay/internal/registry"
)

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{"simple merge", [4]int{2, 2, 0, 0}, [4]int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", [4]int{2, 2, 2, 0}, [4]int{4, 2, 0, 0}, 4},
		{"double merge", [4]int{2, 2, 2, 2}, [4]int{4, 4, 0, 0}, 8},
		{"merged tile does not merge again", [4]int{2, 2, 4, 0}, [4]int{4, 4, 0, 0}, 4},
		{"merged tile does not merge again (8)", [4]int{4, 4, 8, 0}, [4]int{8, 8, 0, 0}, 8},
		{"no merge possible", [4]int{2, 4, 8, 16}, [4]int{2, 4, 8, 16}, 0},
		{"slide with gap", [4]int{0, 0, 2, 2}, [4]int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", [4]int{2, 0, 0, 2}, [4]int{4, 0, 0, 0}, 4},
		{"no change needed", [4]int{4, 2, 0, 0}, [4]int{4, 2, 0, 0}, 0},
		{"empty row", [4]int{0, 0, 0, 0}, [4]int{0, 0, 0, 0}, 0},
		{"single tile", [4]int{0, 4, 0, 0}, [4]int{4, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score, _ := slideRow(tt.input)
			if result != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideDirections(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		board    Board
		expected Board
		score    int
	}{
		{
			name: "left",
			dir:  DirLeft,
			board: Board{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Board{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 4 + 8 + 8,
		},
		{
			name: "right",
			dir:  DirRight,
			board: Board{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Board{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 4 + 8 + 8,
		},
		{
			name: "up",
			dir:  DirUp,
			board: Board{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: Board{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4 + 8 + 8,
		},
		{
			name: "down",
			dir:  DirDown,
			board: Board{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: Board{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			score: 4 + 8 + 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Slide(tt.board, tt.dir)
			if m.Board != tt.expected {
				t.Errorf("Slide %s: got\n%v\nwant\n%v", tt.dir, m.Board, tt.expected)
			}
			if !m.Changed {
				t.Error("Slide should report a change")
			}
			if m.Score != tt.score {
				t.Errorf("score = %d, want %d", m.Score, tt.score)
			}
		})
	}
}

func TestMergedCells(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	right := Slide(board, DirRight)
	if len(right.Merged) != 1 || right.Merged[0] != (core.Point{X: 3, Y: 0}) {
		t.Errorf("merged after right = %v, want [(3,0)]", right.Merged)
	}

	down := Slide(transpose(board), DirDown)
	if len(down.Merged) != 1 || down.Merged[0] != (core.Point{X: 0, Y: 3}) {
		t.Errorf("merged after down = %v, want [(0,3)]", down.Merged)
	}
}

func TestNoChange(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
	}
	if Slide(board, DirLeft).Changed {
		t.Error("sliding left-aligned tiles left should not change the board")
	}
}

func TestCanMove(t *testing.T) {
	full := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	if CanMove(full) {
		t.Error("board with no moves should be stuck")
	}

	withMerge := full
	withMerge[0][1] = 2
	if !CanMove(withMerge) {
		t.Error("board with a possible merge should not be stuck")
	}

	withEmpty := full
	withEmpty[2][2] = 0
	if !CanMove(withEmpty) {
		t.Error("board with an empty cell should not be stuck")
	}
}

func TestMaxTileAndEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}
	if got := MaxTile(board); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if got := len(EmptyCells(board)); got != 8 {
		t.Errorf("EmptyCells count = %d, want 8", got)
	}
}

func newGame(seed int64) (*Game, *audio.Recorder) {
	rec := &audio.Recorder{}
	return New(registry.Env{Audio: rec, Seed: seed}), rec
}

func TestNewGameHasTwoTiles(t *testing.T) {
	g, _ := newGame(1)
	if n := BoardSize*BoardSize - len(EmptyCells(g.board)); n != 2 {
		t.Errorf("expected 2 tiles, got %d", n)
	}
}

func TestDeterministicSpawn(t *testing.T) {
	g1, _ := newGame(12345)
	g2, _ := newGame(12345)

	for _, ev := range core.Keys("left up right down left down") {
		g1.HandleKey(ev)
		g2.HandleKey(ev)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("same seed diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestMoveScoresAndSpawns(t *testing.T) {
	g, rec := newGame(5)
	g.board = Board{{2, 2, 0, 0}}

	g.HandleKey(core.KeyPress(core.KeyLeft))

	if g.score != 4 {
		t.Errorf("score = %d, want 4", g.score)
	}
	if g.board[0][0] != 4 {
		t.Errorf("merged tile = %d, want 4", g.board[0][0])
	}
	if n := BoardSize*BoardSize - len(EmptyCells(g.board)); n != 2 {
		t.Errorf("expected one spawned tile, board has %d tiles", n)
	}
	if !rec.Played(audio.SoundMerge) {
		t.Error("expected merge sound")
	}
}

func TestIneffectiveMoveSpawnsNothing(t *testing.T) {
	g, _ := newGame(5)
	g.board = Board{{4, 2, 0, 0}}

	g.HandleKey(core.KeyPress(core.KeyLeft))

	if g.board != (Board{{4, 2, 0, 0}}) {
		t.Errorf("board changed:\n%v", g.board)
	}
	if g.Snapshot().Moves != 0 {
		t.Error("an ineffective move should not count")
	}
}

func TestWinAndContinue(t *testing.T) {
	g, rec := newGame(5)
	g.board = Board{{1024, 1024, 0, 0}}

	g.HandleKey(core.KeyPress(core.KeyLeft))

	if g.Snapshot().State != StateWon {
		t.Fatalf("state = %s, want won", g.Snapshot().State)
	}
	if !rec.Played(audio.SoundVictory) {
		t.Error("expected victory sound")
	}

	before := g.board
	g.HandleKey(core.KeyPress(core.KeyRight))
	if g.board != before {
		t.Error("moves should wait while the win overlay is shown")
	}

	g.HandleKey(core.RuneKey('c'))
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state after continue = %s", g.Snapshot().State)
	}
	if !g.Result().Won {
		t.Error("result should still report the win")
	}
}

func TestGameOver(t *testing.T) {
	g, _ := newGame(5)
	// One left slide fills the last gap with no merges left.
	g.board = Board{
		{0, 2, 4, 8},
		{4, 8, 16, 32},
		{8, 16, 32, 64},
		{16, 32, 64, 128},
	}
	g.HandleKey(core.KeyPress(core.KeyLeft))

	// The spawned 2 or 4 lands in the vacated corner and matches no neighbour.
	if g.board[0][3] == 0 {
		t.Fatal("expected a tile in the vacated cell")
	}
	if !g.gameOver {
		t.Fatalf("expected game over, board:\n%v", g.board)
	}
	if got := g.HandleKey(core.KeyPress(core.KeyUp)); got != core.ActionContinue {
		t.Errorf("arrow after game over = %v", got)
	}
	if got := g.HandleKey(core.RuneKey('r')); got != core.ActionRestart {
		t.Errorf("r = %v, want restart", got)
	}
}

func TestHighlightFades(t *testing.T) {
	g, _ := newGame(5)
	g.board = Board{{2, 2, 0, 0}}
	g.HandleKey(core.KeyPress(core.KeyLeft))

	if !g.anim.isMerged(core.Point{}) {
		t.Fatal("merged tile should be highlighted")
	}
	for range highlightTicks {
		g.Update()
	}
	if g.anim.active() {
		t.Error("highlight should fade after a few ticks")
	}
}

func TestDraw(t *testing.T) {
	g, _ := newGame(5)
	a, b := core.NewScreen(80, 24), core.NewScreen(80, 24)
	g.Draw(a)
	g.Draw(b)
	if !a.Equal(b) {
		t.Error("Draw is not idempotent")
	}
	if !a.Contains("Score: 0") {
		t.Errorf("HUD missing:\n%s", a.String())
	}
}
