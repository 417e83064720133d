package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodgemaster/internal/config"
	"github.com/vovakirdan/dodgemaster/internal/core"
	"github.com/vovakirdan/dodgemaster/internal/games/dodge"
	"github.com/vovakirdan/dodgemaster/internal/platform/tui"
	"github.com/vovakirdan/dodgemaster/internal/registry"
	"github.com/vovakirdan/dodgemaster/internal/storage"
)

var (
	flagConfig         string
	flagDifficulty     string
	flagAggressiveness float64
	flagPlayerSpeed    float64
	flagLogFile        string
	flagDebug          bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session in this terminal",
	Long: `Start a DodgeMaster++ session.

Controls:
  Arrows/WASD - Move (keys stay held briefly between terminal repeats)
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot to ~/.dodgemaster/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Calmer pursuer, faster player, more frequent pickups
  normal - The configured defaults
  hard   - Aggressive pursuer, events every 450 points

The terminal is in the alternate screen while playing, so logs go to a
file: --log-file sets it, --debug raises the level and defaults the file
to ~/.dodgemaster/debug.log.

Examples:
  dodge play
  dodge play --difficulty easy
  dodge play --aggressiveness 1.8 --player-speed 4
  dodge play --config ./my-dodge.yaml --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log simulation events at debug level")
}

// addGameFlags registers the flags that shape the game configuration.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().Float64Var(&flagAggressiveness, "aggressiveness", 0,
		fmt.Sprintf("Pursuer aggressiveness (%.1f to %.1f, 0 = config value)", config.MinAggressiveness, config.MaxAggressiveness))
	cmd.Flags().Float64Var(&flagPlayerSpeed, "player-speed", 0,
		fmt.Sprintf("Player speed (%.0f to %.0f, 0 = config value)", config.MinPlayerSpeed, config.MaxPlayerSpeed))
}

// applyGameFlags hands the game flags to the dodge package and returns the
// configuration every new session will use.
func applyGameFlags() (config.DodgeConfig, error) {
	if flagAggressiveness != 0 &&
		(flagAggressiveness < config.MinAggressiveness || flagAggressiveness > config.MaxAggressiveness) {
		return config.DodgeConfig{}, fmt.Errorf("--aggressiveness must be in %.1f..%.1f, got %g",
			config.MinAggressiveness, config.MaxAggressiveness, flagAggressiveness)
	}
	if flagPlayerSpeed != 0 &&
		(flagPlayerSpeed < config.MinPlayerSpeed || flagPlayerSpeed > config.MaxPlayerSpeed) {
		return config.DodgeConfig{}, fmt.Errorf("--player-speed must be in %.0f..%.0f, got %g",
			config.MinPlayerSpeed, config.MaxPlayerSpeed, flagPlayerSpeed)
	}

	dodge.SetConfigPath(flagConfig)
	if err := dodge.SetDifficultyPreset(flagDifficulty); err != nil {
		return config.DodgeConfig{}, err
	}
	dodge.SetOverrides(dodge.Overrides{
		Aggressiveness: flagAggressiveness,
		PlayerSpeed:    flagPlayerSpeed,
	})
	return dodge.LoadConfig()
}

// openLogger returns the logger for a local session and a closer for its file.
func openLogger() (*log.Logger, func(), error) {
	path := flagLogFile
	if path == "" && flagDebug {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot resolve debug log path: %w", err)
		}
		path = filepath.Join(home, ".dodgemaster", "debug.log")
	}
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// terminalSize reports the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if _, err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	dodge.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// A missing database only costs the score history.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
