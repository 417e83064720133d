package sim

import "github.com/vovakirdan/dodgemaster/internal/core"

const timeSlowFactor = 0.5

// spawnPickup places a random power-up inside the field margin.
func (s *Sim) spawnPickup() {
	pc := s.cfg.PowerUps
	m := pc.SpawnMargin
	x := s.uniform(m, s.cfg.Field.Width-m)
	y := s.uniform(m, s.cfg.Field.Height-m)
	s.pickups = append(s.pickups, Pickup{
		Box:  core.NewBox(x, y, pc.Size, pc.Size),
		Kind: PowerUpKind(s.rng.Intn(int(powerUpKindCount))),
	})
}

// collectPickup activates the first pickup touching the player, if any.
// At most one pickup is collected per frame.
func (s *Sim) collectPickup() {
	for i, p := range s.pickups {
		if !s.player.Box.Intersects(p.Box) {
			continue
		}
		s.pickups = append(s.pickups[:i], s.pickups[i+1:]...)
		s.activatePowerUp(p)
		return
	}
}

// activatePowerUp fills the power-up slot and applies its effect.
// A power-up already in effect is deactivated first so its changes
// never leak into the new one.
func (s *Sim) activatePowerUp(p Pickup) {
	if s.power != nil {
		s.deactivatePowerUp()
	}

	d := s.cfg.PowerUps.Duration
	s.power = &ActivePowerUp{Kind: p.Kind, Remaining: d, Duration: d}

	switch p.Kind {
	case PowerUpSpeedBoost:
		s.player.Speed *= s.cfg.PowerUps.SpeedMultiplier
	case PowerUpShield:
		s.shielded = true
	case PowerUpTimeSlow:
		s.baseEnemySpeed *= timeSlowFactor
		s.ai.EnemySpeed *= timeSlowFactor
		for i := range s.projectiles {
			s.projectiles[i].Vel = s.projectiles[i].Vel.Scale(timeSlowFactor)
		}
	case PowerUpMagnet:
		target := s.player.Box.Center()
		for i := range s.pickups {
			delta := target.Sub(s.pickups[i].Box.Center())
			if delta.Len() < s.cfg.PowerUps.MagnetRadius {
				s.pickups[i].Box.Pos = s.pickups[i].Box.Pos.Add(delta.Scale(s.cfg.PowerUps.MagnetPull))
			}
		}
	}

	s.burst(p.Box.Center(), p.Kind.Color(), pickupBurst)
	s.log.Debug("power-up activated", "kind", p.Kind, "duration", d, "tick", s.tick)
}

// deactivatePowerUp restores configured baselines and empties the slot.
func (s *Sim) deactivatePowerUp() {
	if s.power == nil {
		return
	}

	switch s.power.Kind {
	case PowerUpSpeedBoost:
		s.player.Speed = s.cfg.Player.Speed
	case PowerUpShield:
		s.shielded = false
	case PowerUpTimeSlow:
		s.baseEnemySpeed = s.cfg.Pursuer.BaseSpeed
		s.ai.EnemySpeed = s.baseEnemySpeed * s.ai.Aggressiveness
	case PowerUpMagnet:
		// One-time pulse, nothing to undo.
	}

	s.log.Debug("power-up expired", "kind", s.power.Kind, "tick", s.tick)
	s.power = nil
}

// tickPowerUp counts down the active power-up.
func (s *Sim) tickPowerUp() {
	if s.power == nil {
		return
	}
	s.power.Remaining--
	if s.power.Remaining <= 0 {
		s.deactivatePowerUp()
	}
}
