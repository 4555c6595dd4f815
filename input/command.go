// Package input turns raw key sequences into the discrete commands the game consumes.
package input

// Command is a decoded player intent
type Command uint8

const (
	None Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Confirm
	Quit
)

var commandNames = [...]string{
	None:      "none",
	MoveUp:    "up",
	MoveDown:  "down",
	MoveLeft:  "left",
	MoveRight: "right",
	Confirm:   "confirm",
	Quit:      "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Direction returns the unit vector of a movement command, ok is false for everything else.
// Screen coordinates: y grows downward.
func (c Command) Direction() (dx, dy int, ok bool) {
	switch c {
	case MoveUp:
		return 0, -1, true
	case MoveDown:
		return 0, 1, true
	case MoveLeft:
		return -1, 0, true
	case MoveRight:
		return 1, 0, true
	}
	return 0, 0, false
}

// Source yields at most one command per call without blocking the caller's tick cadence
type Source interface {
	PollCommand() Command
}
