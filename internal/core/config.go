package core

// RuntimeConfig contains host-side settings passed to the simulation.
// Simulation and frame rates live in the YAML configuration.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session.
type GameState struct {
	Score    uint32 // Current score
	GameOver bool   // Whether the terminal state has been reached
	Tick     uint64 // Completed fixed ticks
}

// StepResult is returned after advancing the simulation.
type StepResult struct {
	State  GameState
	Ticks  int  // Fixed ticks run by this call
	Spawns int  // Pillar pairs spawned by this call
	Ended  bool // Whether the session ended during this call
}
