package sim

import "github.com/vovakirdan/dodgemaster/internal/core"

// PowerUpKind identifies a collectible power-up.
type PowerUpKind int

const (
	PowerUpSpeedBoost PowerUpKind = iota // Player moves faster
	PowerUpShield                        // Collisions are not lethal
	PowerUpTimeSlow                      // Pursuer and projectiles slowed once
	PowerUpMagnet                        // Nearby pickups pulled toward the player once
	powerUpKindCount
)

// String returns the display name of the power-up.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeedBoost:
		return "Speed Boost"
	case PowerUpShield:
		return "Shield"
	case PowerUpTimeSlow:
		return "Time Slow"
	case PowerUpMagnet:
		return "Magnet"
	default:
		return "?"
	}
}

// Glyph returns the character used to draw the pickup.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpSpeedBoost:
		return '»'
	case PowerUpShield:
		return 'O'
	case PowerUpTimeSlow:
		return '%'
	case PowerUpMagnet:
		return 'U'
	default:
		return '?'
	}
}

// Color returns the pickup's color tag.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpSpeedBoost:
		return core.ColorOrange
	case PowerUpShield:
		return core.ColorCyan
	case PowerUpTimeSlow:
		return core.ColorPurple
	case PowerUpMagnet:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// EventKind identifies a special event.
type EventKind int

const (
	EventHazardRain  EventKind = iota // Burst of falling projectiles
	EventGravityWell                  // Moving attractor
	EventTimeWarp                     // Global velocity multiplier
	eventKindCount
)

// String returns the banner text for the event.
func (k EventKind) String() string {
	switch k {
	case EventHazardRain:
		return "RAIN OF FIRE!"
	case EventGravityWell:
		return "MOVING BLACK HOLE!"
	case EventTimeWarp:
		return "TIME WARP!"
	default:
		return "?"
	}
}

// Color returns the color used for the event's particles and banner.
func (k EventKind) Color() core.Color {
	switch k {
	case EventHazardRain:
		return core.ColorBrightRed
	case EventGravityWell:
		return core.ColorPurple
	case EventTimeWarp:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

// Player is the avatar controlled by input.
type Player struct {
	Box    core.Box
	Facing core.Vec2 // Last pressed direction
	Speed  float64   // Current speed, including any boost
}

// Pursuer is the AI-controlled hunter.
type Pursuer struct {
	Box    core.Box
	Facing core.Vec2 // Last motion delta
}

// Projectile is a lethal box moving in a straight line.
type Projectile struct {
	Box core.Box
	Vel core.Vec2
}

// Pickup is a power-up waiting to be collected.
type Pickup struct {
	Box   core.Box
	Kind  PowerUpKind
	Phase int // Animation counter, advanced once per frame
}

// Particle is a cosmetic dot with a limited lifetime.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Size  int
	Life  int
	Color core.Color
	Fade  bool // Dims as Life runs out
}

// GravityWell is a moving point attractor.
type GravityWell struct {
	Pos      core.Vec2 // Center
	Vel      core.Vec2
	Radius   float64 // Visual radius
	Strength float64
	Reach    float64 // Distance beyond which the well has no effect
}

// Force returns the attraction strength at the given distance from the
// well's center. It falls off linearly and is zero at or beyond Reach.
func (w GravityWell) Force(dist float64) float64 {
	if dist < 0 {
		dist = 0
	}
	if dist >= w.Reach {
		return 0
	}
	return w.Strength * (1 - dist/w.Reach)
}

// ActivePowerUp is the power-up currently in effect.
type ActivePowerUp struct {
	Kind      PowerUpKind
	Remaining int // Frames left, in (0, Duration]
	Duration  int
}

// Fraction returns the share of the duration still remaining.
func (a ActivePowerUp) Fraction() float64 {
	return fraction(a.Remaining, a.Duration)
}

// ActiveEvent is the special event currently running.
type ActiveEvent struct {
	Kind      EventKind
	Remaining int // Frames left, in (0, Duration]
	Duration  int
}

// Fraction returns the share of the duration still remaining.
func (a ActiveEvent) Fraction() float64 {
	return fraction(a.Remaining, a.Duration)
}

func fraction(remaining, duration int) float64 {
	if duration <= 0 {
		return 0
	}
	return core.ClampF(float64(remaining)/float64(duration), 0, 1)
}
