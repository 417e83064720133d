package sim

import (
	"math"

	"github.com/vovakirdan/dodgemaster/internal/core"
)

// Difficulty tuning constants.
const (
	initialPredictionStrength = 0.5
	maxPredictionStrength     = 0.9
	predictionHorizon         = 10 // Frames of mean motion to extrapolate
	maxBaseFactor             = 3.0
	scorePerBaseFactor        = 5000
	scorePerPrediction        = 10000
	speedDamping              = 0.8
	initialSpawnInterval      = 30
	minSpawnInterval          = 10
	scorePerSpawnStep         = 500
)

// Difficulty is the output of one difficulty recomputation.
type Difficulty struct {
	EnemySpeed         float64
	SpawnInterval      int
	PredictionStrength float64
}

// ComputeDifficulty derives pursuer speed, projectile cadence and prediction
// strength from the session's progress. Players who let fewer projectiles
// leave the field relative to their score face a faster pursuer.
func ComputeDifficulty(score, hitsAvoided int, warp, baseEnemySpeed, aggressiveness float64) Difficulty {
	baseFactor := math.Min(1+float64(score)/scorePerBaseFactor, maxBaseFactor)
	ratio := math.Min(float64(hitsAvoided)/float64(core.Max(score, 1)), 1)
	performance := 1 + (1-ratio)*2

	return Difficulty{
		EnemySpeed:         baseEnemySpeed * baseFactor * performance * speedDamping * aggressiveness * warp,
		SpawnInterval:      core.Max(minSpawnInterval, initialSpawnInterval-score/scorePerSpawnStep),
		PredictionStrength: math.Min(maxPredictionStrength, initialPredictionStrength+float64(score)/scorePerPrediction),
	}
}

// AI holds the pursuer controller state.
type AI struct {
	PredictionStrength float64
	Aggressiveness     float64
	EnemySpeed         float64
	SpawnInterval      int
}

// NewAI returns a controller in its session-start state.
func NewAI(aggressiveness, baseEnemySpeed float64) AI {
	return AI{
		PredictionStrength: initialPredictionStrength,
		Aggressiveness:     aggressiveness,
		EnemySpeed:         baseEnemySpeed,
		SpawnInterval:      initialSpawnInterval,
	}
}

// PredictPosition extrapolates the player's next position from the mean
// per-frame displacement in history. With fewer than two samples there is
// no motion to extrapolate and current is returned unchanged.
func (a *AI) PredictPosition(history []core.Vec2, current core.Vec2) core.Vec2 {
	if len(history) < 2 {
		return current
	}

	var sum core.Vec2
	for i := 1; i < len(history); i++ {
		sum = sum.Add(history[i].Sub(history[i-1]))
	}
	mean := sum.Scale(a.Aggressiveness / float64(len(history)-1))

	return history[len(history)-1].Add(mean.Scale(a.PredictionStrength * predictionHorizon))
}

// AdjustDifficulty recomputes and stores the difficulty outputs.
func (a *AI) AdjustDifficulty(score, hitsAvoided int, warp, baseEnemySpeed float64) {
	d := ComputeDifficulty(score, hitsAvoided, warp, baseEnemySpeed, a.Aggressiveness)
	a.EnemySpeed = d.EnemySpeed
	a.SpawnInterval = d.SpawnInterval
	a.PredictionStrength = d.PredictionStrength
}
