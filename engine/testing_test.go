package engine

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/snake/input"
)

// scriptInput replays a fixed command list, then polls None forever
type scriptInput struct {
	cmds  []input.Command
	polls int
}

func (s *scriptInput) PollCommand() input.Command {
	s.polls++
	if len(s.cmds) == 0 {
		return input.None
	}
	c := s.cmds[0]
	s.cmds = s.cmds[1:]
	return c
}

type drawCall struct {
	X, Y  int
	Glyph rune
}

// recordSurface captures every display call
type recordSurface struct {
	draws    []drawCall
	scores   []int
	borders  int
	welcome  int
	gameOver int
	flushes  int
}

func (r *recordSurface) DrawCell(x, y int, glyph rune) {
	r.draws = append(r.draws, drawCall{X: x, Y: y, Glyph: glyph})
}
func (r *recordSurface) ClearAndDrawBorder(width, height int) { r.borders++ }
func (r *recordSurface) DrawWelcomeBanner()                   { r.welcome++ }
func (r *recordSurface) DrawGameOverBanner()                  { r.gameOver++ }
func (r *recordSurface) DrawScore(value int)                  { r.scores = append(r.scores, value) }
func (r *recordSurface) Flush()                               { r.flushes++ }

func (r *recordSurface) last() drawCall {
	return r.draws[len(r.draws)-1]
}

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestEngine builds a deterministic engine on a width x height field
func newTestEngine(t *testing.T, width, height int, cmds ...input.Command) (*Engine, *scriptInput, *recordSurface, *MockClock) {
	t.Helper()
	in := &scriptInput{cmds: cmds}
	out := &recordSurface{}
	clock := NewMockClock(testEpoch)
	e := New(width, height, in, out,
		WithClock(clock),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	return e, in, out, clock
}

// newRunningEngine is newTestEngine past the welcome screen
func newRunningEngine(t *testing.T, width, height int, cmds ...input.Command) (*Engine, *scriptInput, *recordSurface, *MockClock) {
	t.Helper()
	e, in, out, clock := newTestEngine(t, width, height, cmds...)
	e.state = StateRunning
	return e, in, out, clock
}

// setBody replaces the snake with cells listed tail first
func setBody(e *Engine, dx, dy int, cells ...Point) {
	s := e.snake
	for i, p := range cells {
		s.xs[i] = p.X
		s.ys[i] = p.Y
	}
	s.tail = 0
	s.head = len(cells) - 1
	s.dx, s.dy = dx, dy
}

func setFood(e *Engine, p Point) {
	e.food = p
	e.foodPresent = true
}
