package config

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate rejects configurations that would break the countdown or
// physics logic: non-positive durations and intervals, degenerate sizes,
// and settings outside their operator ranges.
func (c DodgeConfig) Validate() error {
	checks := []func() error{
		c.validateField,
		c.validateActors,
		c.validateTimers,
		c.validateEvents,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c DodgeConfig) validateField() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return invalid("INVALID_FIELD", "field must have positive size, got %gx%g", c.Field.Width, c.Field.Height)
	}
	return nil
}

func (c DodgeConfig) validateActors() error {
	sizes := []struct {
		name string
		v    float64
	}{
		{"player.size", c.Player.Size},
		{"pursuer.size", c.Pursuer.Size},
		{"projectiles.size", c.Projectiles.Size},
		{"powerups.size", c.PowerUps.Size},
	}
	for _, s := range sizes {
		if s.v <= 0 || s.v > c.Field.Width || s.v > c.Field.Height {
			return invalid("INVALID_SIZE", "%s must be in (0, field], got %g", s.name, s.v)
		}
	}

	if c.Player.Speed < MinPlayerSpeed || c.Player.Speed > MaxPlayerSpeed {
		return invalid("INVALID_SPEED", "player.speed must be in [%g, %g], got %g", MinPlayerSpeed, MaxPlayerSpeed, c.Player.Speed)
	}
	if c.Pursuer.Aggressiveness < MinAggressiveness || c.Pursuer.Aggressiveness > MaxAggressiveness {
		return invalid("INVALID_AGGRESSIVENESS", "pursuer.aggressiveness must be in [%g, %g], got %g",
			MinAggressiveness, MaxAggressiveness, c.Pursuer.Aggressiveness)
	}
	if c.Pursuer.BaseSpeed <= 0 {
		return invalid("INVALID_SPEED", "pursuer.base_speed must be positive, got %g", c.Pursuer.BaseSpeed)
	}
	if c.Pursuer.HistorySize < 2 {
		return invalid("INVALID_HISTORY", "pursuer.history_size must be at least 2, got %d", c.Pursuer.HistorySize)
	}
	if c.Projectiles.MinSpeed <= 0 || c.Projectiles.MaxSpeed < c.Projectiles.MinSpeed {
		return invalid("INVALID_SPEED", "projectile speeds must satisfy 0 < min <= max, got [%g, %g]",
			c.Projectiles.MinSpeed, c.Projectiles.MaxSpeed)
	}
	if c.Projectiles.Margin < 0 {
		return invalid("INVALID_MARGIN", "projectiles.margin must not be negative, got %g", c.Projectiles.Margin)
	}
	return nil
}

func (c DodgeConfig) validateTimers() error {
	timers := []struct {
		name string
		v    int
	}{
		{"powerups.spawn_interval", c.PowerUps.SpawnInterval},
		{"powerups.duration", c.PowerUps.Duration},
		{"events.duration", c.Events.Duration},
		{"events.threshold_step", c.Events.ThresholdStep},
	}
	for _, t := range timers {
		if t.v <= 0 {
			return invalid("INVALID_DURATION", "%s must be positive, got %d", t.name, t.v)
		}
	}
	if c.Events.FirstThreshold < 0 {
		return invalid("INVALID_DURATION", "events.first_threshold must not be negative, got %d", c.Events.FirstThreshold)
	}
	m := c.PowerUps.SpawnMargin
	if m < 0 || 2*m+c.PowerUps.Size > c.Field.Width || 2*m+c.PowerUps.Size > c.Field.Height {
		return invalid("INVALID_MARGIN", "powerups.spawn_margin %g leaves no room to spawn", m)
	}
	return nil
}

func (c DodgeConfig) validateEvents() error {
	if c.Events.RainCount < 0 {
		return invalid("INVALID_EVENT", "events.rain_count must not be negative, got %d", c.Events.RainCount)
	}
	if len(c.Events.TimeWarpFactors) == 0 {
		return invalid("INVALID_EVENT", "events.time_warp_factors must not be empty")
	}
	for _, f := range c.Events.TimeWarpFactors {
		if f <= 0 || f == 1 {
			return invalid("INVALID_EVENT", "time warp factor must be positive and not 1, got %g", f)
		}
	}
	w := c.Events.Well
	if w.Reach <= 0 || w.Strength < 0 || w.Radius <= 0 {
		return invalid("INVALID_EVENT", "gravity_well needs positive reach and radius and non-negative strength")
	}
	if w.Margin < w.SpawnOffset {
		return invalid("INVALID_EVENT", "gravity_well.margin %g must not be smaller than spawn_offset %g", w.Margin, w.SpawnOffset)
	}
	return nil
}
