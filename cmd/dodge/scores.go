package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodgemaster/internal/platform/tui"
	"github.com/vovakirdan/dodgemaster/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresAll    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display recorded runs with their score, projectiles dodged and how
the run ended.

In a terminal an interactive table opens (tab switches between the best
and the most recent runs). When output is piped, a plain list is printed.

Examples:
  dodge scores
  dodge scores --recent --limit 20
  dodge scores --all
  dodge scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Print the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Print every recorded run, best first")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Score history cleared.")
		return nil
	}

	interactive := !cmd.Flags().Changed("limit") && !flagScoresRecent && !flagScoresAll
	if interactive && term.IsTerminal(int(os.Stdout.Fd())) {
		w, h := terminalSize()
		return tui.RunScoreboard(store, w, h)
	}

	title, scores, err := selectScores(store)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s - DodgeMaster++\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'dodge play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %-18s  %s\n", "Rank", "Score", "Dodged", "Ended", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %-18s  %s\n", "----", "-----", "------", "-----", "----")
	for i, e := range scores {
		ended := e.EndReason
		if ended == "" {
			ended = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-7d  %-18s  %s\n",
			i+1, e.Score, e.HitsAvoided, ended, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.0f  Total dodged: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalDodged)
	return nil
}

// selectScores picks the runs to print according to the flags.
func selectScores(store *storage.Store) (string, []storage.ScoreEntry, error) {
	switch {
	case flagScoresAll:
		scores, err := store.AllScores(gameID)
		return "All Runs", scores, err
	case flagScoresRecent:
		scores, err := store.RecentScores(gameID, flagScoresLimit)
		return "Recent Runs", scores, err
	default:
		scores, err := store.TopScores(gameID, flagScoresLimit)
		return "High Scores", scores, err
	}
}
