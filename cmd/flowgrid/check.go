package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flowgrid/internal/games/flow/engine"
	"github.com/vovakirdan/flowgrid/internal/games/flow/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate and solve a level file",
	Long: `Parse a level file, validate it, and run the solver on the authored
board. Prints the authored and solved boards. Exits non-zero when the file
is invalid or the level cannot be solved.

Examples:
  flowgrid check ./my-level.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	lvl, err := levels.LoadPath(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s) %dx%d\n\n", lvl.Title(), lvl.ID, lvl.Size, lvl.Size)

	grid, err := lvl.Grid()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Authored board:")
	fmt.Fprint(out, engine.RenderASCII(grid, engine.ComputeReachable(grid).Powered))
	fmt.Fprintln(out)

	sol, err := engine.SolveGrid(grid)
	if err != nil {
		if errors.Is(err, engine.ErrUnsolvable) {
			return fmt.Errorf("%s: no rotation of the movable tiles connects source to sink", lvl.ID)
		}
		return err
	}

	sol.Apply(grid)
	fmt.Fprintf(out, "Solved board (%d rotations from authored, path of %d tiles):\n", sol.Moves, len(sol.Path))
	fmt.Fprint(out, engine.RenderASCII(grid, engine.ComputeReachable(grid).Powered))
	return nil
}
