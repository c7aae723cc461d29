package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flowgrid/internal/core"
)

func core80x30() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 3}
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	require.True(t, ok)
	return s
}

func TestMenuListsBuiltinCampaign(t *testing.T) {
	m := NewMenuModel(nil, core80x30())
	require.NoError(t, m.loadErr)
	require.NotEmpty(t, m.items)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Start from Beginning")
	assert.Contains(t, view, "Neural Flow")
}

func TestMenuNavigationClamps(t *testing.T) {
	m := NewMenuModel(nil, core80x30())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	assert.Equal(t, 0, m.cursor)

	for range len(m.items) + 3 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	assert.Equal(t, len(m.items), m.cursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	level, chosen := m.Selected()
	assert.True(t, chosen)
	assert.Equal(t, len(m.items), level)
}

func TestSessionMenuGameMenu(t *testing.T) {
	s := NewSessionModel(nil, core80x30(), "tester")
	s.Init()

	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, s.screen)
	require.NotNil(t, s.game)
	assert.Contains(t, ansi.Strip(s.View()), "SOURCE ACTIVE")

	// Esc pauses first, then leaves the paused game.
	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	s = sessionUpdate(t, s, TickMsg{})
	require.Equal(t, screenGame, s.screen)
	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenMenu, s.screen)
	assert.Nil(t, s.game)
	assert.Contains(t, ansi.Strip(s.View()), "Select a level")
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	s := NewSessionModel(nil, core80x30(), "tester")

	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScoreboard, s.screen)
	assert.Contains(t, ansi.Strip(s.View()), "No solves recorded yet")

	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, s.screen)
}

func TestSessionQuitFromMenu(t *testing.T) {
	s := NewSessionModel(nil, core80x30(), "tester")
	s = sessionUpdate(t, s, runeKey("q"))
	assert.True(t, s.quitting)
	assert.Empty(t, s.View())
}
