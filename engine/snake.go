package engine

// Point is a playfield coordinate
type Point struct {
	X, Y int
}

// snake is a fixed-capacity ring of cells stored in parallel coordinate arrays.
// The body runs from tail to head inclusive; capacity exceeds the field area so head never laps tail.
type snake struct {
	xs   []int
	ys   []int
	head int
	tail int

	dx, dy int
}

func newSnake(capacity int, start Point) *snake {
	s := &snake{
		xs: make([]int, capacity),
		ys: make([]int, capacity),
		dx: 1,
	}
	s.xs[0] = start.X
	s.ys[0] = start.Y
	return s
}

func (s *snake) next(i int) int {
	return (i + 1) % len(s.xs)
}

func (s *snake) at(i int) Point {
	return Point{X: s.xs[i], Y: s.ys[i]}
}

func (s *snake) headPoint() Point {
	return s.at(s.head)
}

func (s *snake) tailPoint() Point {
	return s.at(s.tail)
}

// length counts cells from tail to head inclusive
func (s *snake) length() int {
	n := len(s.xs)
	return (s.head-s.tail+n)%n + 1
}

// push advances head and stores p there
func (s *snake) push(p Point) {
	s.head = s.next(s.head)
	s.xs[s.head] = p.X
	s.ys[s.head] = p.Y
}

// advanceTail drops the oldest cell
func (s *snake) advanceTail() {
	s.tail = s.next(s.tail)
}

// occupies reports whether any body cell, head included, is at p
func (s *snake) occupies(p Point) bool {
	for i := s.tail; ; i = s.next(i) {
		if s.xs[i] == p.X && s.ys[i] == p.Y {
			return true
		}
		if i == s.head {
			return false
		}
	}
}

// hitsBody reports whether p overlaps a cell strictly behind the head
func (s *snake) hitsBody(p Point) bool {
	for i := s.tail; i != s.head; i = s.next(i) {
		if s.xs[i] == p.X && s.ys[i] == p.Y {
			return true
		}
	}
	return false
}

// cells returns the body from tail to head
func (s *snake) cells() []Point {
	out := make([]Point, 0, s.length())
	for i := s.tail; ; i = s.next(i) {
		out = append(out, s.at(i))
		if i == s.head {
			return out
		}
	}
}
