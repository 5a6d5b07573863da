package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// TickDuration returns the nominal interval between two Steps, truncated to
// the nanosecond. Hosts use it to schedule ticks; games measure simulated time
// with Elapsed.
func (c RuntimeConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(c.rate())
}

// Elapsed returns the simulated time after the given number of Steps. It is
// exact at every whole second, so rates that do not divide a second evenly
// do not drift.
func (c RuntimeConfig) Elapsed(ticks int) time.Duration {
	return time.Duration(ticks) * time.Second / time.Duration(c.rate())
}

func (c RuntimeConfig) rate() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Paused bool // Whether the game is paused
	Round  int  // 1-based number of the round in progress
}

// EndCause describes why a round was torn down.
type EndCause string

const (
	EndCauseEnemy      EndCause = "enemy"        // Player touched an enemy
	EndCauseOutOfWorld EndCause = "out_of_world" // Player left the vertical world bounds
	EndCauseRestart    EndCause = "restart"      // Player asked for a restart
)

// RoundSummary is reported once when a round ends.
// Hosts persist it; games never read it back.
type RoundSummary struct {
	RoundID           string
	Score             int
	Cause             EndCause
	Ticks             int
	StarsCollected    int
	CoinsCollected    int
	PowerUpsCollected int
	EnemiesDestroyed  int
	ShotsFired        int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// RoundEnded is set on the tick a round was reinitialized.
	RoundEnded *RoundSummary
}
