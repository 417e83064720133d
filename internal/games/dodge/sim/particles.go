package sim

import (
	"math"

	"github.com/vovakirdan/dodgemaster/internal/core"
)

// Particle burst sizes.
const (
	pickupBurst   = 50
	deathBurst    = 30
	rainParticles = 100
	wellParticles = 50
)

// burst emits count short-lived particles scattering from at.
func (s *Sim) burst(at core.Vec2, color core.Color, count int) {
	for range count {
		s.particles = append(s.particles, Particle{
			Pos:   at,
			Vel:   core.V(s.uniform(-2, 2), s.uniform(-2, 2)),
			Size:  s.randInt(2, 5),
			Life:  s.randInt(20, 40),
			Color: color,
			Fade:  true,
		})
	}
}

// rain emits falling embers just above the field.
func (s *Sim) rain(color core.Color) {
	for range rainParticles {
		s.particles = append(s.particles, Particle{
			Pos:   core.V(s.uniform(0, s.cfg.Field.Width), s.uniform(-50, 0)),
			Vel:   core.V(s.uniform(-1, 1), s.uniform(2, 5)),
			Size:  s.randInt(2, 6),
			Life:  s.randInt(60, 120),
			Color: color,
		})
	}
}

// swirl emits particles orbiting a freshly spawned well.
func (s *Sim) swirl(w GravityWell, color core.Color) {
	for range wellParticles {
		angle := s.uniform(0, 2*math.Pi)
		dist := s.uniform(30, 100)
		sin, cos := math.Sincos(angle)
		s.particles = append(s.particles, Particle{
			Pos:   w.Pos.Add(core.V(cos*dist, sin*dist)),
			Vel:   core.V(sin*2+w.Vel.X, -cos*2+w.Vel.Y),
			Size:  s.randInt(2, 4),
			Life:  s.randInt(90, 180),
			Color: color,
		})
	}
}

// updateParticles advances particles and drops expired ones.
// Particles are cosmetic and ignore the time-warp factor.
func (s *Sim) updateParticles() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}
