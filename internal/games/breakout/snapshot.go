package breakout

// Snapshot contains the game state as plain integers for determinism tests.
type Snapshot struct {
	Tick            uint64
	PaddleX         int
	BallX, BallY    int // fixed-point
	BallVX, BallVY  int
	Score           int
	Lives           int
	Level           int
	BricksRemaining int
	State           string
	Paused          bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.tick,
		PaddleX:         g.paddle.X,
		BallX:           int(g.ball.X),
		BallY:           int(g.ball.Y),
		BallVX:          int(g.ball.VX),
		BallVY:          int(g.ball.VY),
		Score:           g.score,
		Lives:           g.lives,
		Level:           g.level,
		BricksRemaining: g.wall.CountAlive(),
		State:           g.state,
		Paused:          g.paused,
	}
}

// Hash returns a simple hash of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
		snap.Score, snap.Lives, snap.Level, snap.BricksRemaining,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
