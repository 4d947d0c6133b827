package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.snake),
		HeadX:    g.snake[0].X,
		HeadY:    g.snake[0].Y,
		Dir:      g.direction,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		State:    state,
	}
}
