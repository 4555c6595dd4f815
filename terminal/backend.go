package terminal

import (
	"errors"
	"time"
)

// ErrNotTerminal is returned when the input stream is not a tty
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Backend abstracts the platform-specific terminal device
type Backend interface {
	// Init saves the current line discipline and switches to game mode
	Init() error

	// Fini restores the saved line discipline
	Fini() error

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read waits at most timeout for input and reads what is available into p.
	// A timeout or an interrupted wait returns 0, nil.
	Read(p []byte, timeout time.Duration) (int, error)
}
