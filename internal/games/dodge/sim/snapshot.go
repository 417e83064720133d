package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"slices"
)

// Snapshot is a detached copy of the world between two steps.
// Renderers may hold on to it while the simulation keeps running.
type Snapshot struct {
	Tick           int
	Score          int
	HitsAvoided    int
	NextEventScore int
	TimeWarp       float64
	Shielded       bool
	BaseEnemySpeed float64
	AI             AI

	Player      Player
	Pursuer     Pursuer
	Projectiles []Projectile
	Pickups     []Pickup
	Particles   []Particle

	Well    *GravityWell
	PowerUp *ActivePowerUp
	Event   *ActiveEvent

	Over Result
}

// Snapshot returns a copy of the current state.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:           s.tick,
		Score:          s.score,
		HitsAvoided:    s.hitsAvoided,
		NextEventScore: s.nextEventScore,
		TimeWarp:       s.warp,
		Shielded:       s.shielded,
		BaseEnemySpeed: s.baseEnemySpeed,
		AI:             s.ai,
		Player:         s.player,
		Pursuer:        s.pursuer,
		Projectiles:    slices.Clone(s.projectiles),
		Pickups:        slices.Clone(s.pickups),
		Particles:      slices.Clone(s.particles),
		Over:           s.over,
	}
	if s.well != nil {
		w := *s.well
		snap.Well = &w
	}
	if s.power != nil {
		p := *s.power
		snap.PowerUp = &p
	}
	if s.event != nil {
		e := *s.event
		snap.Event = &e
	}
	return snap
}

// Hash returns an FNV-1a digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	putBool := func(v bool) {
		if v {
			putInt(1)
		} else {
			putInt(0)
		}
	}

	putInt(snap.Tick)
	putInt(snap.Score)
	putInt(snap.HitsAvoided)
	putInt(snap.NextEventScore)
	putFloat(snap.TimeWarp)
	putBool(snap.Shielded)
	putFloat(snap.BaseEnemySpeed)
	putFloat(snap.AI.EnemySpeed)
	putFloat(snap.AI.PredictionStrength)
	putInt(snap.AI.SpawnInterval)

	putFloat(snap.Player.Box.Pos.X)
	putFloat(snap.Player.Box.Pos.Y)
	putFloat(snap.Player.Speed)
	putFloat(snap.Pursuer.Box.Pos.X)
	putFloat(snap.Pursuer.Box.Pos.Y)

	putInt(len(snap.Projectiles))
	for _, p := range snap.Projectiles {
		putFloat(p.Box.Pos.X)
		putFloat(p.Box.Pos.Y)
		putFloat(p.Vel.X)
		putFloat(p.Vel.Y)
	}
	putInt(len(snap.Pickups))
	for _, p := range snap.Pickups {
		putInt(int(p.Kind))
		putFloat(p.Box.Pos.X)
		putFloat(p.Box.Pos.Y)
	}
	putInt(len(snap.Particles))

	if snap.Well != nil {
		putFloat(snap.Well.Pos.X)
		putFloat(snap.Well.Pos.Y)
	}
	if snap.PowerUp != nil {
		putInt(int(snap.PowerUp.Kind))
		putInt(snap.PowerUp.Remaining)
	}
	if snap.Event != nil {
		putInt(int(snap.Event.Kind))
		putInt(snap.Event.Remaining)
	}
	putInt(int(snap.Over.Reason))

	return h.Sum64()
}
