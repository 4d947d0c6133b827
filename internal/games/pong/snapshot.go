package pong

import "math"

// Snapshot is the game state rounded to whole cells, for determinism tests.
type Snapshot struct {
	Mode     Mode
	BallX    int
	BallY    int
	BallVX   int // velocity scaled by 1000
	BallVY   int // velocity scaled by 1000
	Paddle1Y int
	Paddle2Y int
	Score1   int
	Score2   int
	GameOver bool
	Winner   int
	Serving  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Mode:     g.mode,
		BallX:    int(math.Round(g.ballX)),
		BallY:    int(math.Round(g.ballY)),
		BallVX:   int(g.ballVX * 1000),
		BallVY:   int(g.ballVY * 1000),
		Paddle1Y: int(math.Round(g.paddle1Y)),
		Paddle2Y: int(math.Round(g.paddle2Y)),
		Score1:   g.score1,
		Score2:   g.score2,
		GameOver: g.gameOver,
		Winner:   g.winner,
		Serving:  g.serving,
	}
}
