package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flowgrid/internal/core"
	"github.com/vovakirdan/flowgrid/internal/games/flow"
	"github.com/vovakirdan/flowgrid/internal/storage"
)

// stubGame records what the platform asks of it.
type stubGame struct {
	resets   int
	steps    []core.InputFrame
	state    core.GameState
	resized  [2]int
	recorder flow.SolveRecorder
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *stubGame) SetRecorder(r flow.SolveRecorder) { g.recorder = r }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextWithColor(0, 0, "STUB", core.ColorBrightCyan)
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg any) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModelEscPausesThenLeaves(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()
	assert.Equal(t, 1, g.resets)

	m = update(t, m, runeKey("b"))
	assert.False(t, m.BackToMenu(), "back during play pauses")
	m = update(t, m, TickMsg{})
	require.Len(t, g.steps, 1)
	assert.True(t, g.steps[0].Has(core.ActionPause))
	assert.True(t, g.state.Paused)

	m = update(t, m, runeKey("b"))
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())
}

func TestModelRestartReachesGameDuringPlay(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	m = update(t, m, runeKey("r"))
	update(t, m, TickMsg{})

	require.Len(t, g.steps, 1)
	assert.True(t, g.steps[0].Has(core.ActionRestart))
	assert.Equal(t, 1, g.resets, "restart during play is handled by the game")
}

func TestModelRestartAfterCampaignResets(t *testing.T) {
	g := &stubGame{state: core.GameState{GameOver: true, Score: 10}}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey("r"))
	update(t, m, TickMsg{})

	assert.Equal(t, 2, g.resets)
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime())
	m = update(t, m, runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestModelResizeUsesResizer(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, [2]int{100, 40}, g.resized)
	assert.Equal(t, 1, g.resets, "resizable games keep their state")
}

func TestModelSavesScoreAndWiresRecorder(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "flow.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &stubGame{state: core.GameState{GameOver: true, Score: 420}}
	m := NewModel(g, store, testRuntime())
	assert.Same(t, store, g.recorder)

	m.Init()
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1, "score is saved once per finished campaign")
	assert.Equal(t, 420, scores[0].Score)
}

func TestModelWithoutStoreSkipsRecorder(t *testing.T) {
	g := &stubGame{}
	NewModel(g, nil, testRuntime())
	assert.Nil(t, g.recorder)
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime())
	out := ansi.Strip(m.View())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "STUB"))
}
