package config

import (
	_ "embed"
)

//go:embed defaults/flow.yaml
var defaultFlowYAML []byte

// DefaultFlowConfig returns the hardcoded configuration. It mirrors defaults/flow.yaml.
func DefaultFlowConfig() FlowConfig {
	return FlowConfig{
		Generation: FlowGeneration{
			RequireSolvable:     true,
			AvoidSolvedStart:    true,
			MaxScrambleAttempts: 16,
		},
		Gameplay: FlowGameplay{
			AdvanceTicks: 120,
			Hints:        3,
		},
		Scoring: FlowScoring{
			BasePoints:  1000,
			MovePenalty: 25,
			MinPoints:   100,
			HintPenalty: 150,
		},
		Display: FlowDisplay{
			CellWidth:  7,
			CellHeight: 3,
			Gap:        1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				PenaltyMultiplier: 1.0,
				HintReduction:     3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flow":
		return defaultFlowYAML
	default:
		return nil
	}
}
