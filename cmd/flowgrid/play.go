package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flowgrid/internal/core"
	"github.com/vovakirdan/flowgrid/internal/platform/tui"
	"github.com/vovakirdan/flowgrid/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play Neural Flow",
	Long: `Start the level picker, or jump straight into a level.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Rotate tile
  H            - Hint (limited per level)
  R            - Reboot the board
  P            - Pause
  Esc/B        - Pause, then back to the level picker
  Ctrl+S       - Screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More hints, gentle move penalty
  normal - Default config
  hard   - Fewer hints, harsher penalty, boards may need every tile turned
  fixed  - No difficulty progression

Examples:
  flowgrid play
  flowgrid play lvl03
  flowgrid play --difficulty hard --seed 42
  flowgrid play --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	level := 0
	if len(args) == 1 {
		n, err := levelNumber(args[0])
		if err != nil {
			return err
		}
		level = n
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// A level argument skips the picker for the first game only.
	if level > 0 {
		back, err := playLevel(store, cfg, level)
		if err != nil || !back {
			return err
		}
	}

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}
		if result.WantsScoreboard {
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
			if err != nil || !back {
				return err
			}
			continue
		}

		back, err := playLevel(store, cfg, result.Level)
		if err != nil || !back {
			return err
		}
	}
}

// playLevel runs one game and reports whether the player went back to the picker.
func playLevel(store *storage.Store, cfg core.RuntimeConfig, level int) (bool, error) {
	game, err := tui.NewFlowGame(level)
	if err != nil {
		return false, err
	}
	log.Info("starting game", "level", level, "seed", cfg.Seed)
	return tui.Run(game, store, cfg)
}
