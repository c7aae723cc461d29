package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg FlowConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("flow"), &cfg))
	assert.Equal(t, DefaultFlowConfig(), cfg)
	assert.Nil(t, GetDefaultYAML("snake"))
}

func TestLoadFlowCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  move_penalty: 7\ngameplay:\n  advance_ticks: 30\n"), 0o644))

	cfg, err := LoadFlow(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Scoring.MovePenalty)
	assert.Equal(t, 30, cfg.Gameplay.AdvanceTicks)
	assert.Equal(t, 1000, cfg.Scoring.BasePoints, "unset keys keep defaults")
	assert.True(t, cfg.Generation.RequireSolvable)
}

func TestLoadFlowCustomPathErrors(t *testing.T) {
	_, err := LoadFlow(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("scoring: [\n"), 0o644))
	_, err = LoadFlow(bad)
	assert.Error(t, err)
}

func TestApplyFlowPreset(t *testing.T) {
	cfg := DefaultFlowConfig()
	ApplyFlowPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)
	assert.False(t, cfg.Generation.RequireSolvable)
	assert.Equal(t, 50, cfg.Scoring.MovePenalty)

	cfg = DefaultFlowConfig()
	ApplyFlowPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
	assert.Equal(t, DefaultFlowConfig().Scoring, cfg.Scoring)
}

func TestParsePreset(t *testing.T) {
	p, ok := ParsePreset("easy")
	assert.True(t, ok)
	assert.Equal(t, DifficultyEasy, p)

	_, ok = ParsePreset("insane")
	assert.False(t, ok)
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultFlowConfig().Difficulty
	cfg.Progression.MaxAt = 2
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		levelIndex  int
		wantLevel   float64
		wantPenalty int
		wantHints   int
	}{
		{0, 0.0, 25, 3},
		{1, 0.5, 38, 2},
		{2, 1.0, 50, 0},
		{9, 1.0, 50, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.wantLevel, dm.Level(tt.levelIndex, 0), 1e-9, "Level(%d)", tt.levelIndex)
		assert.Equal(t, tt.wantPenalty, dm.MovePenalty(25, tt.levelIndex, 0), "MovePenalty(%d)", tt.levelIndex)
		assert.Equal(t, tt.wantHints, dm.Hints(3, tt.levelIndex, 0), "Hints(%d)", tt.levelIndex)
	}

	cfg.Enabled = false
	cfg.InitialLevel = 0.5
	fixed := NewDifficultyManager(cfg)
	assert.False(t, fixed.IsEnabled())
	assert.InDelta(t, 0.5, fixed.Level(3, 1000), 1e-9)
}
