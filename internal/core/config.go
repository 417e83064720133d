package core

import "time"

// DefaultTickRate is the simulation rate the game is tuned for.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game when a session starts.
// Games render to whatever screen they are given, so the size is advisory.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 asks the platform for a time-based seed
}

// DefaultConfig returns an 80x24 screen at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Normalized fills in the tick rate and seed when they are unset.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Seconds converts a tick count to wall-clock seconds at this tick rate.
func (c RuntimeConfig) Seconds(ticks int) float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return float64(ticks) / float64(rate)
}

// GameState is the platform-facing summary of a running game.
type GameState struct {
	Score       int    // Frames survived
	HitsAvoided int    // Projectiles dodged this session
	GameOver    bool   // Whether the session has ended
	Paused      bool   // Whether the game is paused
	EndReason   string // Why the session ended; empty while running
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
