//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"errors"
	"os"
	"time"
)

var errUnsupported = errors.New("terminal: unsupported platform")

type unsupportedBackend struct{}

func newBackend(in, out *os.File) Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Init() error                             { return errUnsupported }
func (unsupportedBackend) Fini() error                             { return nil }
func (unsupportedBackend) Size() (int, int)                        { return 0, 0 }
func (unsupportedBackend) Write(p []byte) (int, error)             { return 0, errUnsupported }
func (unsupportedBackend) Read([]byte, time.Duration) (int, error) { return 0, errUnsupported }

func resetTerminalMode() {}
