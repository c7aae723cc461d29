// flowgrid is Neural Flow: a terminal tile-rotation puzzle where circuit
// tiles are turned until the source powers the sink.
//
// Usage:
//
//	flowgrid levels              - List campaign levels
//	flowgrid play [level-id]     - Pick a level and play
//	flowgrid serve               - Start SSH server for remote play
//	flowgrid scores [level-id]   - Show best solves
//	flowgrid check <file>        - Validate and solve a level file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible scrambles
//	--db <path>           - Set database path (default: ~/.arcade/flowgrid.db)
//	--levels <dir>        - Load levels from a directory instead of the built-in campaign
//	--config <file>       - Custom flow config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-file <file>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flowgrid/internal/config"
	"github.com/vovakirdan/flowgrid/internal/core"
	"github.com/vovakirdan/flowgrid/internal/games/flow"
	"github.com/vovakirdan/flowgrid/internal/platform/tui"
	"github.com/vovakirdan/flowgrid/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLevelsDir  string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagTheme      string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flowgrid",
	Short: "Neural Flow - rotate circuit tiles until the flow is stable",
	Long: `Neural Flow is a terminal puzzle. Every level is a square grid of
circuit tiles; rotate them until the source in the top-left corner
powers the sink in the bottom-right corner.

Available commands:
  levels   - List campaign levels
  play     - Pick a level and play
  serve    - Start SSH server for remote play
  scores   - View best solves
  check    - Validate and solve a level file

Examples:
  flowgrid levels
  flowgrid play
  flowgrid play lvl03 --difficulty hard
  flowgrid serve --ssh :2222
  flowgrid scores lvl02
  flowgrid check ./my-level.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to solves database")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in campaign)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom flow config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagTheme, "theme", "default", "Menu theme: default, neon, mono")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}

// setup applies global flags: logging, then game configuration.
func setup(cmd *cobra.Command, _ []string) error {
	if err := configureLogging(cmd); err != nil {
		return err
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset := config.DifficultyPreset("")
	if flagDifficulty != "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		preset = p
	}

	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}
	tui.SetTheme(theme)

	flow.SetConfigPath(flagConfig)
	flow.SetDifficultyPreset(preset)
	flow.SetLevelsDir(flagLevelsDir)
	return nil
}

// configureLogging points the default charmbracelet logger at --log-file.
// Without a file, interactive commands discard logs because Bubble Tea owns the terminal.
func configureLogging(cmd *cobra.Command) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		log.SetOutput(f)
	case cmd == playCmd:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(cmd.ErrOrStderr())
	}
	return nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the solves database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open solves database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
