// Package config loads gameplay tuning for Neural Flow from YAML.
package config

// FlowConfig holds all tunable parameters of the puzzle game.
type FlowConfig struct {
	Generation FlowGeneration   `yaml:"generation"`
	Gameplay   FlowGameplay     `yaml:"gameplay"`
	Scoring    FlowScoring      `yaml:"scoring"`
	Display    FlowDisplay      `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlowGeneration controls how boards are scrambled.
type FlowGeneration struct {
	RequireSolvable     bool `yaml:"require_solvable"`
	AvoidSolvedStart    bool `yaml:"avoid_solved_start"`
	MaxScrambleAttempts int  `yaml:"max_scramble_attempts"`
}

// FlowGameplay controls pacing inside a level.
type FlowGameplay struct {
	AdvanceTicks int `yaml:"advance_ticks"` // Lock delay after a solve before the next level
	Hints        int `yaml:"hints"`         // Hints available per level at difficulty 0
}

// FlowScoring defines level score: max(MinPoints, BasePoints - MovePenalty*excess - HintPenalty*hints).
type FlowScoring struct {
	BasePoints  int `yaml:"base_points"`
	MovePenalty int `yaml:"move_penalty"`
	MinPoints   int `yaml:"min_points"`
	HintPenalty int `yaml:"hint_penalty"`
}

// FlowDisplay controls tile geometry in terminal cells.
type FlowDisplay struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	Gap        int `yaml:"gap"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level index or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	PenaltyMultiplier float64 `yaml:"penalty_multiplier"` // Added to move penalty at max difficulty
	HintReduction     int     `yaml:"hint_reduction"`     // Hints removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
