// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the dodge game.
package config

// DodgeConfig contains all tunable parameters of the simulation.
// Distances are in field units, durations and intervals in simulated frames.
type DodgeConfig struct {
	Field       FieldConfig      `yaml:"field"`
	Player      PlayerConfig     `yaml:"player"`
	Pursuer     PursuerConfig    `yaml:"pursuer"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	PowerUps    PowerUpConfig    `yaml:"powerups"`
	Events      EventConfig      `yaml:"events"`
}

// FieldConfig defines the play-field dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player avatar.
type PlayerConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // Units per frame before time warp
}

// PursuerConfig defines the AI-controlled pursuer.
type PursuerConfig struct {
	Size           float64 `yaml:"size"`
	BaseSpeed      float64 `yaml:"base_speed"`
	Aggressiveness float64 `yaml:"aggressiveness"`
	HistorySize    int     `yaml:"history_size"` // Motion history capacity
}

// ProjectileConfig defines edge-spawned projectiles.
type ProjectileConfig struct {
	Size     float64 `yaml:"size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Margin   float64 `yaml:"margin"`    // Off-field distance at which projectiles are culled
	AimAfter int     `yaml:"aim_after"` // History samples required before aiming at the predicted position
}

// PowerUpConfig defines pickup spawning and power-up effects.
type PowerUpConfig struct {
	Size            float64 `yaml:"size"`
	SpawnInterval   int     `yaml:"spawn_interval"`
	Duration        int     `yaml:"duration"`
	SpawnMargin     float64 `yaml:"spawn_margin"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	MagnetRadius    float64 `yaml:"magnet_radius"`
	MagnetPull      float64 `yaml:"magnet_pull"` // Fraction of remaining distance covered by one pulse

	// ShieldBlocksPursuer extends shield protection to pursuer contact.
	// Off by default: the pursuer is lethal through the shield.
	ShieldBlocksPursuer bool `yaml:"shield_blocks_pursuer"`
}

// EventConfig defines special event cadence and physics.
type EventConfig struct {
	Duration        int        `yaml:"duration"`
	FirstThreshold  int        `yaml:"first_threshold"`
	ThresholdStep   int        `yaml:"threshold_step"`
	RainCount       int        `yaml:"rain_count"`
	TimeWarpFactors []float64  `yaml:"time_warp_factors"`
	Well            WellConfig `yaml:"gravity_well"`
}

// WellConfig defines the moving gravity well.
type WellConfig struct {
	Radius         float64 `yaml:"radius"`   // Visual radius
	Strength       float64 `yaml:"strength"` // Peak force scalar
	Reach          float64 `yaml:"reach"`    // No force at or beyond this distance
	SpawnOffset    float64 `yaml:"spawn_offset"`
	Margin         float64 `yaml:"margin"` // Removed beyond this off-field distance
	PlayerPull     float64 `yaml:"player_pull"`
	ProjectilePull float64 `yaml:"projectile_pull"`
	PickupPull     float64 `yaml:"pickup_pull"`
}

// Settings ranges exposed to operators (CLI flags, presets).
const (
	MinAggressiveness = 0.1
	MaxAggressiveness = 2.0
	MinPlayerSpeed    = 3.0
	MaxPlayerSpeed    = 10.0
)
