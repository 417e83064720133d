package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
// Aggressiveness scales the pursuer and prediction; player speed compensates.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Pursuer.Aggressiveness = 0.6
		cfg.Player.Speed = 6
		cfg.PowerUps.SpawnInterval = 600
	case DifficultyNormal:
		cfg.Pursuer.Aggressiveness = 1.0
		cfg.Player.Speed = 5
	case DifficultyHard:
		cfg.Pursuer.Aggressiveness = 1.5
		cfg.Player.Speed = 5
		cfg.Events.ThresholdStep = 450
	}
}
