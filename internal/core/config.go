package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second the platform drives Step at (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Clock    Clock // Time source sampled once per frame; nil means a StepClock at TickRate
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameClock returns the configured clock, or a StepClock at TickRate.
func (c RuntimeConfig) FrameClock() Clock {
	if c.Clock != nil {
		return c.Clock
	}
	return NewStepClock(c.TickRate)
}

// Phase is the top-level state of a run.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int   // Current score
	Phase  Phase // NotStarted, Running or GameOver
	Paused bool  // Whether a running game is paused
	Ready  bool  // False until the game's renderer has been set up
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Recycled counts obstacles that left the field this tick.
	Recycled int

	// EnteredGameOver is true only on the tick the run ended.
	EnteredGameOver bool
}
