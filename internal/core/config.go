package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Ticks per second used by the platform loop
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Moves    int  // Accepted moves in the current attempt
	Attempts int  // Attempts started on the current level
	Solved   bool // Current attempt is solved
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	Moved bool // An input changed the game this tick
}
