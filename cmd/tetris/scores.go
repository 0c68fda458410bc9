package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best finished runs with lines, level and duration,
followed by overall statistics.

Examples:
  tetris scores
  tetris scores --limit 20
  tetris scores --recent
  tetris scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintf(out, "Cleared all runs for %s.\n", title)
		return nil
	}

	var runs []storage.Run
	heading := "High Scores"
	if flagRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "%s - %s\n\n", heading, title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tetris play' to set the first high score!")
		return nil
	}

	printRuns(out, runs)

	stats, err := store.Stats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.0f  Total lines: %d  Top level: %d\n",
		stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalLines, stats.BestLevel)
	return nil
}

func printRuns(out io.Writer, runs []storage.Run) {
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %-5s  %-8s  %s\n", "Rank", "Score", "Lines", "Level", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %-5s  %-8s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-10d  %-6d  %-5d  %-8s  %s\n",
			i+1, r.Score, r.Lines, r.Level,
			r.Duration.Round(time.Second),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
