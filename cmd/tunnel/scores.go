package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tunnel/internal/registry"
	"github.com/vovakirdan/tui-tunnel/internal/storage"
)

var (
	flagTop  int
	flagRuns int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores and recent runs",
	Long: `Display the best scores and the most recent runs of a variant.

Examples:
  tunnel scores tunnel
  tunnel scores tunnel-sprites --top 20 --runs 0`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of high scores to show")
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show (0 hides them)")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'tunnel list')", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagTop)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'tunnel play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(out, "\nBest: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}

	if flagRuns <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		fmt.Fprintf(out, "\nRecent runs:\n")
		fmt.Fprintf(out, "  %-10s  %-8s  %-9s  %s\n", "Score", "Ticks", "Time", "Seed")
		for _, r := range runs {
			fmt.Fprintf(out, "  %-10d  %-8d  %-9s  %d\n", r.Score, r.Ticks, r.Duration.Round(100*time.Millisecond), r.Seed)
		}
	}
	return nil
}
