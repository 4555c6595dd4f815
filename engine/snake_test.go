package engine

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/snake/input"
)

func TestSnakeRingWrapsIndices(t *testing.T) {
	s := newSnake(4, Point{X: 0, Y: 0})

	// Walk far past capacity without growing
	for i := 1; i <= 10; i++ {
		s.advanceTail()
		s.push(Point{X: i, Y: 0})
		require.Equal(t, 1, s.length())
		require.Equal(t, Point{X: i, Y: 0}, s.headPoint())
		require.Equal(t, s.headPoint(), s.tailPoint())
	}

	// Grow to capacity across the wrap point
	s.push(Point{X: 11, Y: 0})
	s.push(Point{X: 12, Y: 0})
	s.push(Point{X: 13, Y: 0})
	assert.Equal(t, 4, s.length())
	assert.Equal(t, []Point{{10, 0}, {11, 0}, {12, 0}, {13, 0}}, s.cells())
}

func TestSnakeOccupiesIncludesHead(t *testing.T) {
	s := newSnake(8, Point{X: 1, Y: 1})
	s.push(Point{X: 2, Y: 1})

	assert.True(t, s.occupies(Point{X: 1, Y: 1}))
	assert.True(t, s.occupies(Point{X: 2, Y: 1}))
	assert.False(t, s.occupies(Point{X: 3, Y: 1}))

	assert.True(t, s.hitsBody(Point{X: 1, Y: 1}))
	assert.False(t, s.hitsBody(Point{X: 2, Y: 1}), "head itself is excluded")
}

func TestPlaceFoodAvoidsSnake(t *testing.T) {
	e, _, _, _ := newTestEngine(t, 4, 4)

	// Occupy all but one cell, row by row
	var cells []Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 3 && y == 3 {
				continue
			}
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	setBody(e, 1, 0, cells...)

	for i := 0; i < 20; i++ {
		e.foodPresent = false
		require.True(t, e.placeFood())
		food, _ := e.Food()
		assert.Equal(t, Point{X: 3, Y: 3}, food)
	}
}

func TestPlaceFoodFullField(t *testing.T) {
	e, _, _, _ := newTestEngine(t, 4, 4)
	var cells []Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	setBody(e, 1, 0, cells...)

	assert.False(t, e.placeFood())
	_, present := e.Food()
	assert.False(t, present)
}

// TestTickInvariants drives random games and checks the per-tick properties
func TestTickInvariants(t *testing.T) {
	moves := []input.Command{input.None, input.None, input.None, input.MoveUp, input.MoveDown, input.MoveLeft, input.MoveRight}

	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7))
		in := &scriptInput{}
		out := &recordSurface{}
		e := New(8, 6, in, out,
			WithClock(NewMockClock(testEpoch)),
			WithRand(rand.New(rand.NewPCG(seed, 99))),
		)
		e.state = StateRunning

		for tick := 0; tick < 500 && e.State() != StateGameOver; tick++ {
			in.cmds = []input.Command{moves[rng.IntN(len(moves))]}

			prevLen := e.Len()
			prevScore := e.Score()
			prevHead := e.Head()

			e.RunTick(context.Background())

			head := e.Head()
			w, h := e.FieldSize()
			require.True(t, head.X >= 0 && head.X < w && head.Y >= 0 && head.Y < h, "head in bounds: %+v", head)

			dx, dy := e.Direction()
			assert.Equal(t, Point{X: ((prevHead.X+dx)%w + w) % w, Y: ((prevHead.Y+dy)%h + h) % h}, head)

			if e.Score() == prevScore {
				require.Equal(t, prevLen, e.Len(), "seed %d tick %d: length constant without food", seed, tick)
			} else {
				require.Equal(t, prevScore+10, e.Score())
				require.Equal(t, prevLen+1, e.Len(), "seed %d tick %d: grows by one", seed, tick)
				_, present := e.Food()
				require.False(t, present, "food absent right after eating")
			}

			body := e.Body()
			if food, present := e.Food(); present {
				for _, p := range body {
					require.NotEqual(t, food, p, "seed %d tick %d: food on snake", seed, tick)
				}
			}

			if e.State() == StateGameOver {
				// The overlap must exist on the tick that ended the game
				assert.True(t, hasDuplicate(body), "seed %d tick %d: game over without overlap", seed, tick)
				break
			}
			require.False(t, hasDuplicate(body), "seed %d tick %d: overlap went undetected", seed, tick)
		}
	}
}

func hasDuplicate(cells []Point) bool {
	seen := make(map[Point]struct{}, len(cells))
	for _, p := range cells {
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}
