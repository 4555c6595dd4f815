// Package engine owns the snake, the food and the score, and advances them one tick at a time.
//
// The engine is single-threaded: all state changes happen inside RunTick on the caller's goroutine.
// Suspension happens only in the input poll and the end-of-tick sleep.
package engine

import (
	"context"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/input"
)

// Surface is the display contract the engine drives
type Surface interface {
	DrawCell(x, y int, glyph rune)
	ClearAndDrawBorder(width, height int)
	DrawWelcomeBanner()
	DrawGameOverBanner()
	DrawScore(value int)
	Flush()
}

// Engine is one game session
type Engine struct {
	width  int
	height int

	snake       *snake
	food        Point
	foodPresent bool
	score       int
	state       State
	quit        bool
	ticks       int64

	in    input.Source
	out   Surface
	clock Clock
	rng   *rand.Rand
	log   *zap.Logger
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithLogger sets the structured logger, default is a no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock replaces the system clock
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithRand sets the food placement random source
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// New creates a game on a width x height toroidal field.
// The caller guarantees width >= constants.MinFieldWidth and height >= constants.MinFieldHeight;
// smaller extents are raised to the minimum.
// The snake starts as a single cell at the field center heading right, with no food and zero score.
func New(width, height int, in input.Source, out Surface, opts ...Option) *Engine {
	width = max(width, constants.MinFieldWidth)
	height = max(height, constants.MinFieldHeight)

	e := &Engine{
		width:  width,
		height: height,
		snake:  newSnake(width*height+1, Point{X: width / 2, Y: height / 2}),
		state:  StateWelcome,
		in:     in,
		out:    out,
		clock:  NewSystemClock(),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ShowWelcome draws the title screen and waits for Confirm.
// Returns false when the player quits or ctx is cancelled first.
func (e *Engine) ShowWelcome(ctx context.Context) bool {
	e.out.DrawWelcomeBanner()

	for {
		if ctx.Err() != nil {
			e.requestQuit("context cancelled")
			return false
		}

		switch e.in.PollCommand() {
		case input.Confirm:
			e.state = StateRunning
			return true
		case input.Quit:
			e.requestQuit("quit command")
			return false
		}

		e.clock.Sleep(constants.WelcomePollInterval)
	}
}

// Run draws the field and ticks until quit or game over, then shows the end banner.
// The game must have left the welcome screen through ShowWelcome; otherwise Run returns without drawing.
func (e *Engine) Run(ctx context.Context) {
	if e.state != StateRunning {
		e.log.Warn("run refused", zap.Stringer("state", e.state))
		return
	}

	e.log.Info("game started",
		zap.Int("width", e.width),
		zap.Int("height", e.height),
	)

	e.out.ClearAndDrawBorder(e.width, e.height)
	e.out.DrawScore(e.score)

	for !e.quit && e.state != StateGameOver {
		e.RunTick(ctx)
	}

	e.out.DrawGameOverBanner()

	e.log.Info("game ended",
		zap.Stringer("state", e.state),
		zap.Bool("quit", e.quit),
		zap.Int("score", e.score),
		zap.Int("length", e.snake.length()),
		zap.Int64("ticks", e.ticks),
	)
}

// RunTick executes exactly one simulation step. It is a no-op outside the running state.
func (e *Engine) RunTick(ctx context.Context) {
	if e.quit || e.state != StateRunning {
		return
	}

	cmd := e.in.PollCommand()
	if cmd == input.Quit {
		e.requestQuit("quit command")
		return
	}
	if ctx.Err() != nil {
		e.requestQuit("context cancelled")
		return
	}

	// Reversal onto the body is accepted and collides on this move
	if dx, dy, ok := cmd.Direction(); ok {
		e.snake.dx, e.snake.dy = dx, dy
	}

	if !e.foodPresent && e.placeFood() {
		e.out.DrawCell(e.food.X, e.food.Y, constants.GlyphFood)
		e.log.Debug("food placed", zap.Int("x", e.food.X), zap.Int("y", e.food.Y))
	}

	tail := e.snake.tailPoint()
	e.out.DrawCell(tail.X, tail.Y, constants.GlyphEmpty)

	prev := e.snake.headPoint()
	next := e.wrap(prev.X+e.snake.dx, prev.Y+e.snake.dy)

	if e.foodPresent && next == e.food {
		e.foodPresent = false
		e.score += constants.FoodBonus
		// Tail stays occupied on growth
		e.out.DrawCell(tail.X, tail.Y, constants.GlyphBody)
		e.out.DrawScore(e.score)
		e.log.Debug("food eaten",
			zap.Int("score", e.score),
			zap.Int("length", e.snake.length()+1),
		)
	} else {
		e.snake.advanceTail()
	}

	e.snake.push(next)

	if e.snake.hitsBody(next) {
		e.state = StateGameOver
		e.log.Info("self collision",
			zap.Int("x", next.X),
			zap.Int("y", next.Y),
			zap.Int("score", e.score),
		)
	}

	if e.snake.length() > 1 {
		e.out.DrawCell(prev.X, prev.Y, constants.GlyphBody)
	}
	e.out.DrawCell(next.X, next.Y, constants.GlyphHead)
	e.out.Flush()

	e.ticks++
	e.clock.Sleep(TickInterval(e.score))
}

// AwaitDismiss keeps the end banner up until Confirm, Quit, cancellation or linger elapses
func (e *Engine) AwaitDismiss(ctx context.Context, linger time.Duration) {
	deadline := e.clock.Now().Add(linger)
	for ctx.Err() == nil && e.clock.Now().Before(deadline) {
		switch e.in.PollCommand() {
		case input.Confirm, input.Quit:
			return
		}
		e.clock.Sleep(constants.WelcomePollInterval)
	}
}

// TickInterval is the end-of-tick sleep for a score.
// It shrinks linearly with score and never drops below constants.MinTickInterval.
func TickInterval(score int) time.Duration {
	d := constants.BaseTickInterval - time.Duration(score)*constants.TickDecayPerPoint
	if d < constants.MinTickInterval {
		return constants.MinTickInterval
	}
	return d
}

func (e *Engine) wrap(x, y int) Point {
	return Point{
		X: ((x % e.width) + e.width) % e.width,
		Y: ((y % e.height) + e.height) % e.height,
	}
}

func (e *Engine) requestQuit(reason string) {
	e.quit = true
	e.log.Info("quit requested", zap.String("reason", reason), zap.Stringer("state", e.state))
}

// State returns the current game phase
func (e *Engine) State() State { return e.state }

// Quit reports whether the player asked to stop
func (e *Engine) Quit() bool { return e.quit }

// Score returns the current score
func (e *Engine) Score() int { return e.score }

// Len returns the body length in cells
func (e *Engine) Len() int { return e.snake.length() }

// Head returns the head coordinate
func (e *Engine) Head() Point { return e.snake.headPoint() }

// Body returns the occupied cells from tail to head
func (e *Engine) Body() []Point { return e.snake.cells() }

// Food returns the food coordinate and whether food is present
func (e *Engine) Food() (Point, bool) { return e.food, e.foodPresent }

// Direction returns the current unit direction vector
func (e *Engine) Direction() (dx, dy int) { return e.snake.dx, e.snake.dy }

// Ticks returns the number of completed simulation steps
func (e *Engine) Ticks() int64 { return e.ticks }

// FieldSize returns the playfield extents
func (e *Engine) FieldSize() (width, height int) { return e.width, e.height }
