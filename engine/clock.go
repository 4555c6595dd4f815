package engine

import "time"

// Clock is the engine's only source of time and its only way to suspend
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock provides the real monotonic clock and blocking sleep
type SystemClock struct{}

// NewSystemClock creates a clock backed by the time package
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep suspends the calling goroutine
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
