package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateWon      GameStateType = "won"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Moves   uint64
	Score   int
	Board   Board
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.blocked():
		state = StateWon
	}
	return Snapshot{
		Moves:   g.moves,
		Score:   g.score,
		Board:   g.board,
		MaxTile: MaxTile(g.board),
		State:   state,
	}
}
