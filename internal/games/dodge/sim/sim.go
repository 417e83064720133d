// Package sim implements the dodge simulation: a fixed-step world in which a
// player evades a predictive pursuer and projectiles while collecting
// power-ups and surviving special events.
//
// The package has no presentation dependencies. A caller drives it with one
// Step per frame and reads state back through accessors or Snapshot between
// steps.
package sim

import (
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodgemaster/internal/config"
	"github.com/vovakirdan/dodgemaster/internal/core"
)

// Minimum distance between the player and a freshly placed pursuer.
const (
	safeSpawnDist     = 150
	safeSpawnAttempts = 16
)

// Intent is the player's input for one frame.
type Intent struct {
	Up, Down, Left, Right bool

	// TimeWarp, when positive, replaces the time-warp factor for this frame.
	TimeWarp float64
}

// Reason explains why a frame was terminal.
type Reason int

const (
	ReasonNone       Reason = iota // Frame completed normally
	ReasonProjectile               // Player hit by a projectile
	ReasonPursuer                  // Player caught by the pursuer
)

// String returns a human-readable reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonProjectile:
		return "hit by projectile"
	case ReasonPursuer:
		return "caught by pursuer"
	default:
		return "unknown"
	}
}

// Result is returned by Step.
type Result struct {
	Terminal bool
	Reason   Reason
}

// Sim owns all simulation state. It is not safe for concurrent use.
type Sim struct {
	cfg config.DodgeConfig
	rng *rand.Rand
	log *log.Logger

	player      Player
	pursuer     Pursuer
	projectiles []Projectile
	pickups     []Pickup
	particles   []Particle
	well        *GravityWell
	history     *History
	ai          AI

	baseEnemySpeed float64
	shielded       bool
	power          *ActivePowerUp
	event          *ActiveEvent
	warp           float64

	tick            int
	score           int
	hitsAvoided     int
	nextEventScore  int
	pickupTimer     int
	projectileTimer int
	over            Result
}

// New creates a simulation seeded with seed and resets it to session start.
// A nil logger discards log output.
func New(cfg config.DodgeConfig, seed int64, logger *log.Logger) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Sim{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		log: logger,
	}
	s.Reset()
	return s, nil
}

// Configure replaces the configuration. Player speed and aggressiveness take
// effect immediately; everything else applies from the next Reset.
func (s *Sim) Configure(cfg config.DodgeConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	s.cfg = cfg
	s.ai.Aggressiveness = cfg.Pursuer.Aggressiveness
	if s.power == nil || s.power.Kind != PowerUpSpeedBoost {
		s.player.Speed = cfg.Player.Speed
	}
	return nil
}

// Reset returns the world to session start. The random stream continues,
// so consecutive sessions differ.
func (s *Sim) Reset() {
	fw, fh := s.cfg.Field.Width, s.cfg.Field.Height
	ps := s.cfg.Player.Size

	s.player = Player{
		Box:    core.NewBox((fw-ps)/2, (fh-ps)/2, ps, ps),
		Facing: core.V(1, 0),
		Speed:  s.cfg.Player.Speed,
	}
	s.pursuer = Pursuer{Box: s.placePursuer()}

	s.projectiles = s.projectiles[:0]
	s.pickups = s.pickups[:0]
	s.particles = s.particles[:0]
	s.well = nil
	if s.history != nil && s.history.Cap() == s.cfg.Pursuer.HistorySize {
		s.history.Clear()
	} else {
		s.history = NewHistory(s.cfg.Pursuer.HistorySize)
	}

	s.baseEnemySpeed = s.cfg.Pursuer.BaseSpeed
	s.ai = NewAI(s.cfg.Pursuer.Aggressiveness, s.baseEnemySpeed)
	s.shielded = false
	s.power = nil
	s.event = nil
	s.warp = 1.0

	s.tick = 0
	s.score = 0
	s.hitsAvoided = 0
	s.nextEventScore = s.cfg.Events.FirstThreshold
	s.pickupTimer = 0
	s.projectileTimer = 0
	s.over = Result{}
}

// placePursuer picks a random position, avoiding the player's surroundings
// when the field allows it.
func (s *Sim) placePursuer() core.Box {
	size := s.cfg.Pursuer.Size
	maxX := s.cfg.Field.Width - size
	maxY := s.cfg.Field.Height - size

	var b core.Box
	for range safeSpawnAttempts {
		b = core.NewBox(s.uniform(0, maxX), s.uniform(0, maxY), size, size)
		if b.Center().Dist(s.player.Box.Center()) >= safeSpawnDist {
			break
		}
	}
	return b
}

// Step advances the world by one frame. Once a frame has been terminal,
// further calls return the same result without advancing.
func (s *Sim) Step(in Intent) Result {
	if s.over.Terminal {
		return s.over
	}
	s.tick++

	s.updateParticles()
	for i := range s.pickups {
		s.pickups[i].Phase++
	}

	s.pickupTimer++
	if s.pickupTimer >= s.cfg.PowerUps.SpawnInterval {
		s.spawnPickup()
		s.pickupTimer = 0
	}

	s.tickPowerUp()
	s.collectPickup()

	s.checkEventThreshold()
	s.tickEvent()

	warp := s.warp
	if in.TimeWarp > 0 {
		warp = in.TimeWarp
	}

	if s.well != nil {
		s.applyWell(warp)
	}

	s.movePlayer(in, warp)
	s.history.Push(s.player.Box.Center())
	s.movePursuer(warp)

	s.projectileTimer++
	if s.projectileTimer >= s.ai.SpawnInterval {
		s.spawnProjectile(warp)
		s.projectileTimer = 0
	}
	s.advanceProjectiles(warp)

	if reason := s.collide(); reason != ReasonNone {
		s.burst(s.player.Box.Center(), core.ColorRed, deathBurst)
		s.over = Result{Terminal: true, Reason: reason}
		s.log.Debug("session over", "reason", reason, "score", s.score, "hits_avoided", s.hitsAvoided)
		return s.over
	}

	s.score++
	s.ai.AdjustDifficulty(s.score, s.hitsAvoided, warp, s.baseEnemySpeed)
	return Result{}
}

// movePlayer applies the movement intent and keeps the player on the field.
// Facing follows the last direction applied in left, right, up, down order.
func (s *Sim) movePlayer(in Intent, warp float64) {
	step := s.player.Speed * warp
	p := &s.player
	if in.Left {
		p.Box.Pos.X -= step
		p.Facing = core.V(-1, 0)
	}
	if in.Right {
		p.Box.Pos.X += step
		p.Facing = core.V(1, 0)
	}
	if in.Up {
		p.Box.Pos.Y -= step
		p.Facing = core.V(0, -1)
	}
	if in.Down {
		p.Box.Pos.Y += step
		p.Facing = core.V(0, 1)
	}
	p.Box = p.Box.ClampInto(s.Field())
}

// movePursuer heads the pursuer toward the predicted player position.
// Warp scales both the stored speed and the move itself.
func (s *Sim) movePursuer(warp float64) {
	center := s.player.Box.Center()
	target := s.ai.PredictPosition(s.history.Samples(), center)
	delta := s.pursuer.Box.Center().Heading(target).Scale(s.ai.EnemySpeed * warp)

	s.pursuer.Box.Pos = s.pursuer.Box.Pos.Add(delta)
	if delta != (core.Vec2{}) {
		s.pursuer.Facing = delta
	}
}

// spawnProjectile launches a projectile from a random edge, aimed at the
// predicted player position once enough history exists.
func (s *Sim) spawnProjectile(warp float64) {
	pc := s.cfg.Projectiles
	fw, fh := s.cfg.Field.Width, s.cfg.Field.Height

	var origin core.Vec2
	switch s.rng.Intn(4) {
	case 0:
		origin = core.V(s.uniform(0, fw), 0)
	case 1:
		origin = core.V(s.uniform(0, fw), fh)
	case 2:
		origin = core.V(0, s.uniform(0, fh))
	default:
		origin = core.V(fw, s.uniform(0, fh))
	}

	speed := s.uniform(pc.MinSpeed, pc.MaxSpeed) * (1 + s.ai.Aggressiveness) * warp
	target := s.player.Box.Center()
	if s.history.Len() > pc.AimAfter {
		target = s.ai.PredictPosition(s.history.Samples(), target)
	}

	s.projectiles = append(s.projectiles, Projectile{
		Box: core.NewBox(origin.X, origin.Y, pc.Size, pc.Size),
		Vel: origin.Heading(target).Scale(speed),
	})
}

// advanceProjectiles moves projectiles and culls those past the margin.
// Every culled projectile counts as avoided.
func (s *Sim) advanceProjectiles(warp float64) {
	m := s.cfg.Projectiles.Margin
	fw, fh := s.cfg.Field.Width, s.cfg.Field.Height

	alive := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Box.Pos = p.Box.Pos.Add(p.Vel.Scale(warp))
		if p.Box.Pos.X < -m || p.Box.Pos.X > fw+m || p.Box.Pos.Y < -m || p.Box.Pos.Y > fh+m {
			s.hitsAvoided++
			continue
		}
		alive = append(alive, p)
	}
	s.projectiles = alive
}

// collide reports a lethal overlap. The shield blocks projectiles. The
// pursuer is lethal regardless unless ShieldBlocksPursuer is set.
func (s *Sim) collide() Reason {
	if !s.shielded {
		for _, p := range s.projectiles {
			if s.player.Box.Intersects(p.Box) {
				return ReasonProjectile
			}
		}
	}
	if s.player.Box.Intersects(s.pursuer.Box) {
		if !s.shielded || !s.cfg.PowerUps.ShieldBlocksPursuer {
			return ReasonPursuer
		}
	}
	return ReasonNone
}

func (s *Sim) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// randInt returns an int in [lo, hi].
func (s *Sim) randInt(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Field returns the playing field in field units.
func (s *Sim) Field() core.Box {
	return core.NewBox(0, 0, s.cfg.Field.Width, s.cfg.Field.Height)
}

// Config returns the active configuration.
func (s *Sim) Config() config.DodgeConfig {
	return s.cfg
}

// Player returns a copy of the player.
func (s *Sim) Player() Player {
	return s.player
}

// Pursuer returns a copy of the pursuer.
func (s *Sim) Pursuer() Pursuer {
	return s.pursuer
}

// Projectiles returns a copy of the live projectiles.
func (s *Sim) Projectiles() []Projectile {
	return slices.Clone(s.projectiles)
}

// Pickups returns a copy of the uncollected pickups.
func (s *Sim) Pickups() []Pickup {
	return slices.Clone(s.pickups)
}

// Particles returns a copy of the live particles.
func (s *Sim) Particles() []Particle {
	return slices.Clone(s.particles)
}

// Well returns the gravity well, if one exists.
func (s *Sim) Well() (GravityWell, bool) {
	if s.well == nil {
		return GravityWell{}, false
	}
	return *s.well, true
}

// ActivePowerUp returns the power-up in effect, if any.
func (s *Sim) ActivePowerUp() (ActivePowerUp, bool) {
	if s.power == nil {
		return ActivePowerUp{}, false
	}
	return *s.power, true
}

// ActiveEvent returns the running special event, if any.
func (s *Sim) ActiveEvent() (ActiveEvent, bool) {
	if s.event == nil {
		return ActiveEvent{}, false
	}
	return *s.event, true
}

// Score returns the number of frames survived this session.
func (s *Sim) Score() int { return s.score }

// HitsAvoided returns how many projectiles left the field without a hit.
func (s *Sim) HitsAvoided() int { return s.hitsAvoided }

// TimeWarp returns the current time-warp factor; 1 is normal speed.
func (s *Sim) TimeWarp() float64 { return s.warp }

// Shielded reports whether the shield power-up is active.
func (s *Sim) Shielded() bool { return s.shielded }

// Tick returns the number of frames stepped since the last reset.
func (s *Sim) Tick() int { return s.tick }

// NextEventScore returns the score at which the next special event starts.
func (s *Sim) NextEventScore() int { return s.nextEventScore }

// BaseEnemySpeed returns the pursuer base speed, halved while time-slow runs.
func (s *Sim) BaseEnemySpeed() float64 { return s.baseEnemySpeed }

// AI returns a copy of the pursuer controller state.
func (s *Sim) AI() AI { return s.ai }

// Over returns the terminal result of the session, if it has ended.
func (s *Sim) Over() (Result, bool) {
	return s.over, s.over.Terminal
}
