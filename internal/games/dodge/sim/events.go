package sim

import (
	"math"

	"github.com/vovakirdan/dodgemaster/internal/core"
)

// minPlayerPullDist keeps the player pull finite at the well's center.
const minPlayerPullDist = 10

// checkEventThreshold starts an event when the score reaches the next
// threshold. The threshold advances even if an event is already running,
// in which case that crossing is skipped.
func (s *Sim) checkEventThreshold() {
	if s.score < s.nextEventScore {
		return
	}
	s.nextEventScore += s.cfg.Events.ThresholdStep
	if s.event != nil {
		s.log.Debug("event threshold skipped", "active", s.event.Kind, "score", s.score)
		return
	}
	s.startEvent(EventKind(s.rng.Intn(int(eventKindCount))))
}

// startEvent fills the event slot and performs the event's spawn effects.
func (s *Sim) startEvent(kind EventKind) {
	d := s.cfg.Events.Duration
	s.event = &ActiveEvent{Kind: kind, Remaining: d, Duration: d}

	switch kind {
	case EventHazardRain:
		size := s.cfg.Projectiles.Size
		for range s.cfg.Events.RainCount {
			s.projectiles = append(s.projectiles, Projectile{
				Box: core.NewBox(s.uniform(0, s.cfg.Field.Width), 0, size, size),
				Vel: core.V(s.uniform(-1, 1), s.uniform(2, 5)),
			})
		}
		s.rain(kind.Color())
	case EventGravityWell:
		w := s.newWell()
		s.well = &w
		s.swirl(w, kind.Color())
	case EventTimeWarp:
		factors := s.cfg.Events.TimeWarpFactors
		s.warp = factors[s.rng.Intn(len(factors))]
	}

	s.log.Debug("event started", "kind", kind, "score", s.score, "warp", s.warp)
}

// endEvent undoes the event's lasting effects and empties the slot.
func (s *Sim) endEvent() {
	if s.event == nil {
		return
	}

	switch s.event.Kind {
	case EventHazardRain:
		// Rain projectiles stay in flight until culled.
	case EventGravityWell:
		s.well = nil
	case EventTimeWarp:
		s.warp = 1.0
	}

	s.log.Debug("event ended", "kind", s.event.Kind, "score", s.score)
	s.event = nil
}

// tickEvent counts down the active event.
func (s *Sim) tickEvent() {
	if s.event == nil {
		return
	}
	s.event.Remaining--
	if s.event.Remaining <= 0 {
		s.endEvent()
	}
}

// newWell creates a well just outside a random edge, drifting inward.
func (s *Sim) newWell() GravityWell {
	wc := s.cfg.Events.Well
	fw, fh := s.cfg.Field.Width, s.cfg.Field.Height
	off, m := wc.SpawnOffset, wc.Margin

	var pos, vel core.Vec2
	switch s.rng.Intn(4) {
	case 0: // top
		pos = core.V(s.uniform(m, fw-m), -off)
		vel = core.V(s.uniform(-1, 1), s.uniform(1, 2))
	case 1: // bottom
		pos = core.V(s.uniform(m, fw-m), fh+off)
		vel = core.V(s.uniform(-1, 1), s.uniform(-2, -1))
	case 2: // left
		pos = core.V(-off, s.uniform(m, fh-m))
		vel = core.V(s.uniform(1, 2), s.uniform(-1, 1))
	default: // right
		pos = core.V(fw+off, s.uniform(m, fh-m))
		vel = core.V(s.uniform(-2, -1), s.uniform(-1, 1))
	}

	return GravityWell{
		Pos:      pos,
		Vel:      vel,
		Radius:   wc.Radius,
		Strength: wc.Strength,
		Reach:    wc.Reach,
	}
}

// applyWell moves the well and pulls the player, projectiles and pickups.
// The pursuer is immune. A well drifting past the off-field margin is
// removed while its event keeps running.
func (s *Sim) applyWell(warp float64) {
	wc := s.cfg.Events.Well
	w := s.well
	w.Pos = w.Pos.Add(w.Vel.Scale(warp))

	if w.Pos.X < -wc.Margin || w.Pos.X > s.cfg.Field.Width+wc.Margin ||
		w.Pos.Y < -wc.Margin || w.Pos.Y > s.cfg.Field.Height+wc.Margin {
		s.well = nil
		s.log.Debug("gravity well left the field", "tick", s.tick)
		return
	}

	delta := w.Pos.Sub(s.player.Box.Center())
	dist := math.Max(minPlayerPullDist, delta.Len())
	if pull := w.Force(dist); pull > 0 {
		s.player.Box.Pos = s.player.Box.Pos.Add(delta.Scale(pull * wc.PlayerPull / dist))
	}

	for i := range s.projectiles {
		s.projectiles[i].Box.Pos = pullToward(*w, s.projectiles[i].Box, wc.ProjectilePull)
	}
	for i := range s.pickups {
		s.pickups[i].Box.Pos = pullToward(*w, s.pickups[i].Box, wc.PickupPull)
	}
}

// pullToward moves b a share of its offset to the well, scaled by the
// well's force at that distance.
func pullToward(w GravityWell, b core.Box, k float64) core.Vec2 {
	delta := w.Pos.Sub(b.Center())
	dist := delta.Len()
	if dist == 0 {
		return b.Pos
	}
	return b.Pos.Add(delta.Scale(k * w.Force(dist)))
}
