package runner

// Environment tracks the day/night cycle and the background scroll offset.
// Both are rendering inputs; neither affects collisions or scoring.
type Environment struct {
	IsDay   bool
	Counter int     // Ticks into the current phase, [0, cycleLength)
	ScrollX float64 // Background offset, decreases and wraps at -fieldW
}

// NewEnvironment starts at daytime with the background unscrolled.
func NewEnvironment() Environment {
	return Environment{IsDay: true}
}

// Tick advances the cycle counter and scrolls the background. The scroll
// rate grows slowly with score; once a full field width has scrolled past,
// the offset wraps to 0 for a seamless horizontal loop.
func (e *Environment) Tick(score, cycleLength int, fieldW float64) {
	e.Counter++
	if e.Counter >= cycleLength {
		e.IsDay = !e.IsDay
		e.Counter = 0
	}

	e.ScrollX -= 2 + float64(score)/1000
	if e.ScrollX <= -fieldW {
		e.ScrollX = 0
	}
}
