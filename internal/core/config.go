package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay, 0 means time-based

	ConfigPath string // Custom game config file, empty for the search order
	Difficulty string // Difficulty preset name, empty for the config's own values
	HighScore  int    // Best score known to the platform (from storage)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current score
	HighScore int    // Best score including the current session
	Phase     string // SPLASH, READY, PLAY or GAMEOVER
	GameOver  bool   // Whether the current round has ended
	Paused    bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State  GameState
	Events []Event // Events raised during the frame, in order
}

// Has reports whether the frame raised the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
