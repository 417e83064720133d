package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/dodgemaster/internal/config"
	"github.com/vovakirdan/dodgemaster/internal/core"
)

func TestTimeSlowRestoresBaseline(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := newTestSim(t, cfg)
	s.projectiles = append(s.projectiles, Projectile{Vel: core.V(4, -2)})

	s.activatePowerUp(Pickup{Kind: PowerUpTimeSlow})
	if s.BaseEnemySpeed() != cfg.Pursuer.BaseSpeed/2 {
		t.Errorf("base enemy speed = %g, want %g", s.BaseEnemySpeed(), cfg.Pursuer.BaseSpeed/2)
	}
	if s.projectiles[0].Vel != core.V(2, -1) {
		t.Errorf("projectile velocity = %v, want halved", s.projectiles[0].Vel)
	}

	s.deactivatePowerUp()
	s.activatePowerUp(Pickup{Kind: PowerUpTimeSlow})
	s.deactivatePowerUp()

	if s.BaseEnemySpeed() != cfg.Pursuer.BaseSpeed {
		t.Errorf("base enemy speed = %g after two cycles, want %g", s.BaseEnemySpeed(), cfg.Pursuer.BaseSpeed)
	}
	if want := cfg.Pursuer.BaseSpeed * cfg.Pursuer.Aggressiveness; s.AI().EnemySpeed != want {
		t.Errorf("enemy speed = %g, want %g", s.AI().EnemySpeed, want)
	}
}

func TestSpeedBoostDoesNotStack(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := newTestSim(t, cfg)

	s.activatePowerUp(Pickup{Kind: PowerUpSpeedBoost})
	s.activatePowerUp(Pickup{Kind: PowerUpSpeedBoost})
	if want := cfg.Player.Speed * cfg.PowerUps.SpeedMultiplier; s.Player().Speed != want {
		t.Errorf("speed = %g after two boosts, want %g", s.Player().Speed, want)
	}

	s.deactivatePowerUp()
	if s.Player().Speed != cfg.Player.Speed {
		t.Errorf("speed = %g after expiry, want %g", s.Player().Speed, cfg.Player.Speed)
	}
}

func TestNewPowerUpReplacesActive(t *testing.T) {
	s := newTestSim(t, config.DefaultDodgeConfig())

	s.activatePowerUp(Pickup{Kind: PowerUpShield})
	s.activatePowerUp(Pickup{Kind: PowerUpSpeedBoost})

	if s.Shielded() {
		t.Error("shield leaked past its replacement")
	}
	active, ok := s.ActivePowerUp()
	if !ok || active.Kind != PowerUpSpeedBoost {
		t.Errorf("ActivePowerUp = %+v, want speed boost", active)
	}
}

func TestMagnetPullsNearbyPickups(t *testing.T) {
	s := newTestSim(t, config.DefaultDodgeConfig())
	center := s.Player().Box.Center() // (500, 350)

	near := Pickup{Box: core.NewBox(center.X+90, center.Y-10, 20, 20), Kind: PowerUpShield}
	far := Pickup{Box: core.NewBox(50, 50, 20, 20), Kind: PowerUpShield}
	s.pickups = append(s.pickups, near, far)

	s.activatePowerUp(Pickup{Kind: PowerUpMagnet})

	// Near pickup center is 100 units right of the player: 5% is 5 units.
	if got := s.pickups[0].Box.Pos; math.Abs(got.X-(near.Box.Pos.X-5)) > 1e-9 || got.Y != near.Box.Pos.Y {
		t.Errorf("near pickup at %v, want x=%g", got, near.Box.Pos.X-5)
	}
	if s.pickups[1].Box.Pos != far.Box.Pos {
		t.Errorf("far pickup moved to %v", s.pickups[1].Box.Pos)
	}
}

func TestActivationBurst(t *testing.T) {
	s := newTestSim(t, config.DefaultDodgeConfig())
	s.activatePowerUp(Pickup{Box: core.NewBox(100, 100, 20, 20), Kind: PowerUpMagnet})

	ps := s.Particles()
	if len(ps) != pickupBurst {
		t.Fatalf("%d particles, want %d", len(ps), pickupBurst)
	}
	for _, p := range ps {
		if p.Color != core.ColorYellow || p.Pos != core.V(110, 110) {
			t.Fatalf("unexpected particle %+v", p)
		}
		if p.Life < 20 || p.Life > 40 || p.Size < 2 || p.Size > 5 {
			t.Fatalf("particle out of range %+v", p)
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	s := newTestSim(t, config.DefaultDodgeConfig())
	s.particles = append(s.particles,
		Particle{Pos: core.V(0, 0), Vel: core.V(1, 2), Life: 1},
		Particle{Pos: core.V(0, 0), Vel: core.V(1, 2), Life: 3},
	)

	s.updateParticles()
	if len(s.particles) != 1 {
		t.Fatalf("%d particles, want 1", len(s.particles))
	}
	if p := s.particles[0]; p.Pos != core.V(1, 2) || p.Life != 2 {
		t.Errorf("particle = %+v", p)
	}
}

func TestPowerUpKindsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		if k.String() == "?" || k.Glyph() == '?' || k.Color() == core.ColorDefault {
			t.Errorf("kind %d has no presentation", k)
		}
		if seen[k.String()] {
			t.Errorf("duplicate name %q", k.String())
		}
		seen[k.String()] = true
	}
}
