// Package tcellterm adapts a tcell screen to the game's canvas and input source contracts.
package tcellterm

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/input"
)

// Screen is a canvas and command source backed by tcell
type Screen struct {
	screen  tcell.Screen
	style   tcell.Style
	timeout time.Duration

	closeOnce sync.Once
}

// Open creates and initializes a tcell screen on the controlling terminal
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init tcell screen: %w", err)
	}
	return New(s), nil
}

// New wraps an already initialized screen
func New(s tcell.Screen) *Screen {
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault)
	return &Screen{
		screen:  s,
		style:   tcell.StyleDefault,
		timeout: constants.InputPollTimeout,
	}
}

// Size returns current screen dimensions
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// SetContent sets a rune in the back buffer (0-indexed)
func (s *Screen) SetContent(x, y int, r rune) {
	s.screen.SetContent(x, y, r, nil, s.style)
}

// Clear blanks the back buffer
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show pushes the back buffer to the terminal
func (s *Screen) Show() {
	s.screen.Show()
}

// PollCommand returns the next pending key as a command, waiting at most one poll timeout
func (s *Screen) PollCommand() input.Command {
	if !s.screen.HasPendingEvent() {
		time.Sleep(s.timeout)
		if !s.screen.HasPendingEvent() {
			return input.None
		}
	}

	switch ev := s.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return input.FromTcell(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return input.None
}

// Close restores the terminal. Safe to call multiple times.
func (s *Screen) Close() error {
	s.closeOnce.Do(func() {
		s.screen.Fini()
	})
	return nil
}
