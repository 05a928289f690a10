package model

// GameState represents the lifecycle of a game.
type GameState int

// Available GameState values. Won and Lost are terminal.
const (
	InProgress GameState = iota
	Won
	Lost
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the game.
func (s GameState) Terminal() bool {
	return s == Won || s == Lost
}
