package engine

// State is the game's top-level phase
type State uint8

const (
	StateWelcome State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}
