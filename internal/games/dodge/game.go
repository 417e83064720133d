// Package dodge adapts the dodge simulation to the arcade platform:
// pause, restart and game-over handling, input mapping and rendering.
package dodge

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodgemaster/internal/config"
	"github.com/vovakirdan/dodgemaster/internal/core"
	"github.com/vovakirdan/dodgemaster/internal/games/dodge/sim"
	"github.com/vovakirdan/dodgemaster/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "dodge"

// Overrides replace individual settings after presets are applied.
// Zero values leave the setting alone.
type Overrides struct {
	Aggressiveness float64
	PlayerSpeed    float64
}

// Settings chosen on the command line, shared by every game instance.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	overrides        Overrides
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An unknown name clears it
// and is reported.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return err
	}
	difficultyPreset = p
	return nil
}

// SetOverrides sets the per-setting overrides.
func SetOverrides(o Overrides) {
	overrides = o
}

// SetLogger sets the logger handed to new simulations.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig resolves the effective configuration: file or embedded
// defaults, then the difficulty preset, then overrides, then validation.
func LoadConfig() (config.DodgeConfig, error) {
	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyDodgePreset(&cfg, difficultyPreset)
	if overrides.Aggressiveness != 0 {
		cfg.Pursuer.Aggressiveness = overrides.Aggressiveness
	}
	if overrides.PlayerSpeed != 0 {
		cfg.Player.Speed = overrides.PlayerSpeed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Game implements registry.Game on top of the simulation.
type Game struct {
	sim      *sim.Sim
	runtime  core.RuntimeConfig
	paused   bool
	gameOver bool
	reason   sim.Reason

	// configErr is set when the session runs on defaults because the
	// configured settings could not be loaded.
	configErr error
}

// New creates a new dodge game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "DodgeMaster++"
}

// Reset starts a new session. The simulation is rebuilt from the current
// configuration and seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.gameOver = false
	g.reason = sim.ReasonNone

	g.configErr = nil
	cfg, err := LoadConfig()
	if err != nil {
		logger.Error("falling back to default configuration", "err", err)
		g.configErr = err
		cfg = config.DefaultDodgeConfig()
	}

	s, err := sim.New(cfg, runtime.Seed, logger)
	if err != nil {
		// Defaults always validate.
		s, _ = sim.New(config.DefaultDodgeConfig(), runtime.Seed, logger)
	}
	g.sim = s
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.sim.Step(IntentFrom(in))
	if res.Terminal {
		g.gameOver = true
		g.reason = res.Reason
	}
	return core.StepResult{State: g.State()}
}

// restart begins a new session on the same simulation, continuing its
// random stream.
func (g *Game) restart() {
	g.sim.Reset()
	g.paused = false
	g.gameOver = false
	g.reason = sim.ReasonNone
}

// ConfigErr reports why the session fell back to the default configuration,
// or nil when the configured settings are in use.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// IntentFrom maps platform actions to a movement intent.
func IntentFrom(in core.InputFrame) sim.Intent {
	return sim.Intent{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	state := core.GameState{
		Score:       g.sim.Score(),
		HitsAvoided: g.sim.HitsAvoided(),
		GameOver:    g.gameOver,
		Paused:      g.paused,
	}
	if g.gameOver {
		state.EndReason = g.reason.String()
	}
	return state
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
