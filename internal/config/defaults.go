package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default configuration.
// Mirrors defaults/dodge.yaml and is used when the embedded file cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: FieldConfig{
			Width:  1000,
			Height: 700,
		},
		Player: PlayerConfig{
			Size:  30,
			Speed: 5,
		},
		Pursuer: PursuerConfig{
			Size:           30,
			BaseSpeed:      2,
			Aggressiveness: 1.0,
			HistorySize:    20,
		},
		Projectiles: ProjectileConfig{
			Size:     10,
			MinSpeed: 2.0,
			MaxSpeed: 5.0,
			Margin:   50,
			AimAfter: 5,
		},
		PowerUps: PowerUpConfig{
			Size:            20,
			SpawnInterval:   900, // 15 seconds
			Duration:        300, // 5 seconds
			SpawnMargin:     50,
			SpeedMultiplier: 1.5,
			MagnetRadius:    200,
			MagnetPull:      0.05,

			ShieldBlocksPursuer: false,
		},
		Events: EventConfig{
			Duration:        480, // 8 seconds
			FirstThreshold:  600,
			ThresholdStep:   600,
			RainCount:       30,
			TimeWarpFactors: []float64{0.5, 1.5},
			Well: WellConfig{
				Radius:         40,
				Strength:       0.7,
				Reach:          300,
				SpawnOffset:    50,
				Margin:         100,
				PlayerPull:     3,
				ProjectilePull: 0.02,
				PickupPull:     0.015,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDodgeYAML
}
