package core

// GameAction is what a screen asks the runtime to do after handling input
// or advancing a tick.
type GameAction int

const (
	ActionContinue GameAction = iota
	ActionQuit
	ActionRestart
)

// String returns a human-readable name for the action.
func (a GameAction) String() string {
	switch a {
	case ActionContinue:
		return "Continue"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Result is the scoreboard view of a game instance.
type Result struct {
	Score int
	Level int
	Lines int
	Over  bool
	Won   bool
}
