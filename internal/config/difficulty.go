package config

import "math"

// DifficultyManager derives per-level tuning from campaign progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a campaign level index and elapsed ticks.
func (d *DifficultyManager) Level(levelIndex, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(levelIndex) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MovePenalty scales the base penalty per excess move.
func (d *DifficultyManager) MovePenalty(base, levelIndex, ticks int) int {
	level := d.Level(levelIndex, ticks)
	return int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.PenaltyMultiplier)))
}

// Hints returns how many hints a level grants.
func (d *DifficultyManager) Hints(base, levelIndex, ticks int) int {
	level := d.Level(levelIndex, ticks)
	return max(base-int(level*float64(d.cfg.Scaling.HintReduction)), 0)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
