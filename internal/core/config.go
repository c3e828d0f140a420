package core

// RuntimeConfig is passed to the game at initialization. The game simulates
// in world units and only uses the screen dimensions for rendering.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState communicates run status to the platform after each tick.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score this process has seen
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the run is paused or in the leaderboard view
}

// StepResult is returned by the game after each simulation tick.
type StepResult struct {
	State GameState
}
