package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flowgrid/internal/games/flow"
	"github.com/vovakirdan/flowgrid/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level-id]",
	Short: "Show best solves",
	Long: `Without an argument, summarize every level that has been solved.
With a level id, list its best solves: fewest rotations first, then fastest.

Examples:
  flowgrid scores
  flowgrid scores lvl02 --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of solves to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening solves database: %w", err)
	}
	defer store.Close()

	if len(args) == 1 {
		return printBestSolves(cmd, store, args[0])
	}
	return printLevelStats(cmd, store)
}

func printBestSolves(cmd *cobra.Command, store *storage.Store, levelID string) error {
	solves, err := store.BestSolves(levelID, flagScoresLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Best solves - %s\n", levelID)
	fmt.Fprintln(out)

	if len(solves) == 0 {
		fmt.Fprintln(out, "No solves recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'flowgrid play %s' to set the first record!\n", levelID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-4s  %-5s  %-6s  %s\n", "Rank", "Moves", "Par", "Hints", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-4s  %-5s  %-6s  %s\n", "----", "-----", "---", "-----", "-----", "----")
	for i, s := range solves {
		par := "-"
		if s.Par >= 0 {
			par = fmt.Sprintf("%d", s.Par)
		}
		fmt.Fprintf(out, "  %-4d  %-5d  %-4s  %-5d  %-6d  %s\n",
			i+1, s.Moves, par, s.Hints, s.Score, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printLevelStats(cmd *cobra.Command, store *storage.Store) error {
	stats, err := store.LevelStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Solved levels")
	fmt.Fprintln(out)

	if len(stats) == 0 {
		fmt.Fprintln(out, "No solves recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-12s  %-6s  %-4s  %-6s  %s\n", "Level", "Solves", "Best", "Avg", "Top score")
	fmt.Fprintf(out, "  %-12s  %-6s  %-4s  %-6s  %s\n", "-----", "------", "----", "---", "---------")
	for _, s := range stats {
		fmt.Fprintf(out, "  %-12s  %-6d  %-4d  %-6.1f  %d\n", s.LevelID, s.Solves, s.BestMoves, s.AvgMoves, s.BestScore)
	}

	high, err := store.HighScore(flow.GameID)
	if err == nil && high > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best campaign score: %d\n", high)
	}
	return nil
}
