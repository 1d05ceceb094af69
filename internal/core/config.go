package core

import "time"

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickMillis returns the length of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	Lives    int
	Feathers int // Feathers collected this run
	Misses   int
	Elapsed  time.Duration // Simulated play time, pauses excluded
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Events names what happened during the tick, in order.
	Events []string
}
