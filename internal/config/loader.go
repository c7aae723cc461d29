package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlow loads Neural Flow configuration.
// Search order: customPath -> ~/.arcade/configs/flow.yaml -> ./configs/flow.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func LoadFlow(customPath string) (FlowConfig, error) {
	cfg := DefaultFlowConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("flow.yaml"), filepath.Join("configs", "flow.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultFlowConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultFlowYAML, &cfg); err != nil {
		return DefaultFlowConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFlowPreset modifies the config based on a difficulty preset.
func ApplyFlowPreset(cfg *FlowConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Generation.RequireSolvable = true
		cfg.Generation.AvoidSolvedStart = true
		cfg.Gameplay.Hints = 5
		cfg.Scoring.MovePenalty = 10
	case DifficultyHard:
		cfg.Generation.RequireSolvable = false
		cfg.Gameplay.Hints = 1
		cfg.Scoring.MovePenalty = 50
	}
}
