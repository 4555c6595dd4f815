package engine

// placeFood draws uniform candidates until one misses the snake.
// A full field has no free cell, so food stays absent.
func (e *Engine) placeFood() bool {
	if e.snake.length() >= e.width*e.height {
		return false
	}
	for {
		p := Point{X: e.rng.IntN(e.width), Y: e.rng.IntN(e.height)}
		if e.snake.occupies(p) {
			continue
		}
		e.food = p
		e.foodPresent = true
		return true
	}
}
