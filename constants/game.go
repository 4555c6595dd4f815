package constants

import "time"

// Game Loop Timing Constants
const (
	// BaseTickInterval is the tick sleep at score zero
	BaseTickInterval = 100 * time.Millisecond

	// TickDecayPerPoint shortens the tick for every point scored (linear ramp)
	TickDecayPerPoint = 500 * time.Microsecond / 60

	// MinTickInterval floors the ramp so high scores never reach a zero or negative sleep
	MinTickInterval = 40 * time.Millisecond

	// WelcomePollInterval is the sleep between input polls on the welcome screen
	WelcomePollInterval = 5 * time.Millisecond

	// InputPollTimeout is the longest a single input poll may wait for bytes
	InputPollTimeout = 1 * time.Millisecond

	// GameOverLinger is how long the end banner stays up when no key is pressed
	GameOverLinger = 3 * time.Second
)

// Scoring
const (
	// FoodBonus is added to the score for every food eaten
	FoodBonus = 10
)

// Playfield Geometry
const (
	// BorderMarginX is the number of terminal columns taken by the left and right frame
	BorderMarginX = 2

	// BorderMarginY is the number of terminal rows taken by the top and bottom frame plus the score line
	BorderMarginY = 3

	// MinFieldWidth and MinFieldHeight are the smallest playable field extents
	MinFieldWidth  = 4
	MinFieldHeight = 4

	// MinTerminalWidth and MinTerminalHeight are checked at startup before the engine exists.
	// The width fits the longest prompt line.
	MinTerminalWidth  = 32
	MinTerminalHeight = 10
)
