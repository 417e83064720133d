package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/dodgemaster/internal/config"
	"github.com/vovakirdan/dodgemaster/internal/core"
)

func TestWellForceFalloff(t *testing.T) {
	w := GravityWell{Strength: 0.7, Reach: 300}

	for _, d := range []float64{300, 301, 1000} {
		if f := w.Force(d); f != 0 {
			t.Errorf("Force(%g) = %g, want 0", d, f)
		}
	}

	prev := math.Inf(1)
	for d := 0.0; d < 300; d += 0.5 {
		f := w.Force(d)
		if f <= 0 {
			t.Fatalf("Force(%g) = %g, want positive", d, f)
		}
		if f >= prev {
			t.Fatalf("Force(%g) = %g not below %g", d, f, prev)
		}
		prev = f
	}
	if w.Force(0) != 0.7 {
		t.Errorf("Force(0) = %g, want strength", w.Force(0))
	}
}

func TestHazardRain(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := newTestSim(t, cfg)
	s.startEvent(EventHazardRain)

	ps := s.Projectiles()
	if len(ps) != cfg.Events.RainCount {
		t.Fatalf("%d projectiles, want %d", len(ps), cfg.Events.RainCount)
	}
	for _, p := range ps {
		if p.Box.Pos.Y != 0 || p.Vel.Y < 2 || p.Vel.Y > 5 || math.Abs(p.Vel.X) > 1 {
			t.Errorf("rain projectile %+v not falling from the top", p)
		}
	}
	if n := len(s.Particles()); n != rainParticles {
		t.Errorf("%d rain particles, want %d", n, rainParticles)
	}

	s.endEvent()
	if len(s.Projectiles()) != cfg.Events.RainCount {
		t.Error("ending the rain removed its projectiles")
	}
}

func TestTimeWarpEvent(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Events.Duration = 5
	s := newTestSim(t, cfg)
	parkPursuer(s)

	s.startEvent(EventTimeWarp)
	warp := s.TimeWarp()
	if warp != 0.5 && warp != 1.5 {
		t.Fatalf("TimeWarp = %g, want a configured factor", warp)
	}

	proj := Projectile{Box: core.NewBox(100, 600, 10, 10), Vel: core.V(3, -1)}
	s.projectiles = append(s.projectiles, proj)
	pursuerStart := s.Pursuer().Box.Pos
	pursuerSpeed := s.AI().EnemySpeed

	start := s.Player().Box.Pos.X
	s.Step(Intent{Right: true})
	if got := s.Player().Box.Pos.X - start; math.Abs(got-5*warp) > 1e-9 {
		t.Errorf("player moved %g, want %g", got, 5*warp)
	}
	if got, want := s.Projectiles()[0].Box.Pos, proj.Box.Pos.Add(proj.Vel.Scale(warp)); got.Dist(want) > 1e-9 {
		t.Errorf("projectile at %v, want %v", got, want)
	}
	if got := s.Pursuer().Box.Pos.Dist(pursuerStart); math.Abs(got-pursuerSpeed*warp) > 1e-9 {
		t.Errorf("pursuer moved %g, want %g", got, pursuerSpeed*warp)
	}

	for range 4 {
		parkPursuer(s)
		s.Step(Intent{})
	}
	if _, ok := s.ActiveEvent(); ok {
		t.Error("event still active after its duration")
	}
	if s.TimeWarp() != 1.0 {
		t.Errorf("TimeWarp = %g after event, want 1", s.TimeWarp())
	}
}

func TestGravityWellSpawnsOffField(t *testing.T) {
	s := newTestSim(t, config.DefaultDodgeConfig())

	for range 50 {
		w := s.newWell()
		var inward bool
		switch {
		case w.Pos.Y == -50:
			inward = w.Vel.Y >= 1
		case w.Pos.Y == 750:
			inward = w.Vel.Y <= -1
		case w.Pos.X == -50:
			inward = w.Vel.X >= 1
		case w.Pos.X == 1050:
			inward = w.Vel.X <= -1
		default:
			t.Fatalf("well spawned inside the field at %v", w.Pos)
		}
		if !inward {
			t.Errorf("well at %v drifts away with %v", w.Pos, w.Vel)
		}
		if w.Radius != 40 || w.Strength != 0.7 || w.Reach != 300 {
			t.Errorf("well parameters = %+v", w)
		}
	}
}

func TestGravityWellPullsButSparesPursuer(t *testing.T) {
	s := newTestSim(t, config.DefaultDodgeConfig())
	s.startEvent(EventGravityWell)

	center := s.player.Box.Center()
	s.well.Pos = center.Add(core.V(100, 0))
	s.well.Vel = core.Vec2{}

	proj := Projectile{Box: core.NewBox(center.X+195, center.Y-5, 10, 10)}
	pick := Pickup{Box: core.NewBox(center.X+190, center.Y-10, 20, 20)}
	s.projectiles = append(s.projectiles[:0], proj)
	s.pickups = append(s.pickups[:0], pick)
	s.pursuer.Box.Pos = center.Add(core.V(60, -15))
	pursuerBefore := s.pursuer.Box.Pos

	s.applyWell(1)

	// Player is 100 units from the well: force 0.7*(200/300), times 3.
	wantShift := 0.7 * 200.0 / 300.0 * 3
	if got := s.player.Box.Center().X - center.X; math.Abs(got-wantShift) > 1e-9 {
		t.Errorf("player pulled %g, want %g", got, wantShift)
	}

	// Projectile and pickup are 100 units past the well on the other side.
	force := 0.7 * (1 - 100.0/300.0)
	if got := s.projectiles[0].Box.Pos.X - proj.Box.Pos.X; math.Abs(got-(-100*0.02*force)) > 1e-9 {
		t.Errorf("projectile pulled %g, want %g", got, -100*0.02*force)
	}
	if got := s.pickups[0].Box.Pos.X - pick.Box.Pos.X; math.Abs(got-(-100*0.015*force)) > 1e-9 {
		t.Errorf("pickup pulled %g, want %g", got, -100*0.015*force)
	}
	if s.pursuer.Box.Pos != pursuerBefore {
		t.Error("gravity well moved the pursuer")
	}
}

func TestGravityWellLeavesField(t *testing.T) {
	s := newTestSim(t, config.DefaultDodgeConfig())
	s.startEvent(EventGravityWell)
	s.well.Pos = core.V(1099, 300)
	s.well.Vel = core.V(2, 0)

	s.applyWell(1)
	if _, ok := s.Well(); ok {
		t.Error("well past the margin not removed")
	}
	if _, ok := s.ActiveEvent(); !ok {
		t.Error("event ended with the well")
	}
}

func TestGravityWellAdvancesWithWarp(t *testing.T) {
	for _, warp := range []float64{0.5, 1, 1.5} {
		s := newTestSim(t, config.DefaultDodgeConfig())
		parkPursuer(s)
		s.startEvent(EventGravityWell)
		s.well.Pos = core.V(800, 150)
		s.well.Vel = core.V(2, -1)

		s.Step(Intent{TimeWarp: warp})
		w, ok := s.Well()
		if !ok {
			t.Fatalf("warp %g: well removed", warp)
		}
		if want := core.V(800+2*warp, 150-warp); w.Pos.Dist(want) > 1e-9 {
			t.Errorf("warp %g: well at %v, want %v", warp, w.Pos, want)
		}
	}
}

func TestGravityWellEndsWithEvent(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Events.Duration = 3
	s := newTestSim(t, cfg)
	s.startEvent(EventGravityWell)
	s.well.Pos = core.V(800, 150)
	s.well.Vel = core.Vec2{}

	for i := range cfg.Events.Duration - 1 {
		parkPursuer(s)
		s.Step(Intent{})
		if _, ok := s.Well(); !ok {
			t.Fatalf("well gone after %d frames", i+1)
		}
	}
	parkPursuer(s)
	s.Step(Intent{})
	if _, ok := s.Well(); ok {
		t.Error("well outlived its event")
	}
	if _, ok := s.ActiveEvent(); ok {
		t.Error("event still active after its duration")
	}
}

func TestThresholdAdvancesWhileEventActive(t *testing.T) {
	s := newTestSim(t, config.DefaultDodgeConfig())
	s.startEvent(EventHazardRain)
	s.score = 600

	s.checkEventThreshold()
	ev, _ := s.ActiveEvent()
	if ev.Kind != EventHazardRain || ev.Remaining != ev.Duration {
		t.Errorf("active event replaced: %+v", ev)
	}
	if s.NextEventScore() != 1200 {
		t.Errorf("NextEventScore = %d, want 1200", s.NextEventScore())
	}
}

func TestEventSelectionCoversAllKinds(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := newTestSim(t, cfg)

	seen := map[EventKind]int{}
	for range 300 {
		s.nextEventScore = s.score
		s.checkEventThreshold()
		ev, ok := s.ActiveEvent()
		if !ok {
			t.Fatal("threshold crossing started no event")
		}
		seen[ev.Kind]++
		s.endEvent()
	}
	for k := EventKind(0); k < eventKindCount; k++ {
		if seen[k] == 0 {
			t.Errorf("event %v never selected", k)
		}
	}
}
