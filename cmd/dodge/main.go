// dodge is a terminal arcade survival game: evade a pursuer that learns
// where you are heading, dodge projectiles, and survive special events.
//
// Usage:
//
//	dodge play               - Play a session in this terminal
//	dodge scores             - Show the score history
//	dodge serve              - Start SSH server for remote play
//	dodge config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.dodgemaster/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodgemaster/internal/games/dodge"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "DodgeMaster++ - outrun a pursuer that predicts your moves",
	Long: `DodgeMaster++ is a real-time survival game for the terminal.

A pursuer extrapolates your recent movement and heads for where you are
going, projectiles stream in from the edges, and every 600 points a special
event hits the field: a rain of fire, a moving black hole or a time warp.
Power-ups give you a speed boost, a shield, slowed enemies or a magnet.

Examples:
  dodge play
  dodge play --difficulty hard
  dodge play --aggressiveness 1.5 --player-speed 7
  dodge scores
  dodge serve --ssh :2222`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagFPS <= 0 || flagFPS > 240 {
			return fmt.Errorf("--fps must be in 1..240, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodgemaster/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// gameID is the game every command works with.
const gameID = dodge.GameID
