package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/input"
)

// Terminal is an ANSI canvas and command source over the process tty.
// It holds the terminal in game mode from Open until Close.
type Terminal struct {
	backend Backend
	writer  *bufio.Writer
	timeout time.Duration

	// Single poll read, sized to the longest decodable sequence
	readBuf [input.MaxSequenceLen]byte

	mu       sync.Mutex
	closed   bool
	closeErr error
}

// Open acquires stdin/stdout
func Open() (*Terminal, error) {
	return OpenFiles(os.Stdin, os.Stdout)
}

// OpenFiles acquires the given tty pair
func OpenFiles(in, out *os.File) (*Terminal, error) {
	return open(newBackend(in, out))
}

func open(b Backend) (*Terminal, error) {
	if err := b.Init(); err != nil {
		return nil, err
	}

	t := &Terminal{
		backend: b,
		writer:  bufio.NewWriterSize(writerFunc(b.Write), 16384),
		timeout: constants.InputPollTimeout,
	}

	for _, seq := range sessionEnter {
		t.writer.Write(seq)
	}
	if err := t.writer.Flush(); err != nil {
		b.Fini()
		return nil, err
	}
	return t, nil
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (int, int) {
	return t.backend.Size()
}

// SetContent buffers a positioned rune (0-indexed)
func (t *Terminal) SetContent(x, y int, r rune) {
	writeCursorPos(t.writer, x, y)
	t.writer.WriteRune(r)
}

// Clear buffers a full screen erase
func (t *Terminal) Clear() {
	t.writer.Write(csiClear)
}

// Show writes buffered output to the terminal
func (t *Terminal) Show() {
	t.writer.Flush()
}

// PollCommand reads one pending key sequence, waiting at most the poll timeout
func (t *Terminal) PollCommand() input.Command {
	n, err := t.backend.Read(t.readBuf[:], t.timeout)
	if err != nil || n == 0 {
		return input.None
	}
	return input.Decode(t.readBuf[:n])
}

// Close restores cursor, screen buffer, wrap mode and line discipline.
// Safe to call multiple times; later calls return the first result.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return t.closeErr
	}
	t.closed = true

	for _, seq := range sessionExit {
		t.writer.Write(seq)
	}
	flushErr := t.writer.Flush()
	finiErr := t.backend.Fini()

	t.closeErr = errors.Join(flushErr, finiErr)
	return t.closeErr
}

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if Close cannot be called normally.
func EmergencyReset(w io.Writer) {
	for _, seq := range sessionExit {
		w.Write(seq)
	}

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// writerFunc adapts a write method to io.Writer
type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
