package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flowgrid/internal/games/flow"
	"github.com/vovakirdan/flowgrid/internal/games/flow/engine"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the levels of the campaign in play order, with the fewest
rotations needed to solve the authored board.

Examples:
  flowgrid levels
  flowgrid levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	layouts, err := flow.LoadCampaign()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Campaign levels:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Fprintf(out, "  %-3s  %-*s  %-20s  %-5s  %s\n", "#", maxIDLen, "ID", "Name", "Size", "Min")
	fmt.Fprintf(out, "  %-3s  %-*s  %-20s  %-5s  %s\n", "-", maxIDLen, "--", "----", "----", "---")

	for i, l := range layouts {
		fmt.Fprintf(out, "  %-3d  %-*s  %-20s  %-5s  %s\n",
			i+1, maxIDLen, l.ID, l.Title(), fmt.Sprintf("%dx%d", l.Size, l.Size), minMoves(l))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flowgrid play <id>' to start at a level.")
	return nil
}

// minMoves is the solver's rotation count from the authored board.
func minMoves(l engine.Layout) string {
	sol, err := engine.Solve(l)
	switch {
	case errors.Is(err, engine.ErrUnsolvable):
		return "unsolvable"
	case err != nil:
		return "?"
	}
	return fmt.Sprintf("%d", sol.Moves)
}

// levelNumber maps a level id to its 1-indexed campaign position.
func levelNumber(id string) (int, error) {
	layouts, err := flow.LoadCampaign()
	if err != nil {
		return 0, err
	}
	for i, l := range layouts {
		if l.ID == id {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q (run 'flowgrid levels' to list them)", id)
}
