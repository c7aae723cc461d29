package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flowgrid/internal/core"
	"github.com/vovakirdan/flowgrid/internal/games/flow"
	"github.com/vovakirdan/flowgrid/internal/games/flow/engine"
	"github.com/vovakirdan/flowgrid/internal/storage"
)

// LevelItem is one level row in the menu.
type LevelItem struct {
	ID        string
	Name      string
	Size      int
	BestMoves int // 0 when never solved
}

// MenuModel is the Bubble Tea model for the level picker.
// Row 0 starts the campaign from the beginning; row i plays from level i.
type MenuModel struct {
	items          []LevelItem
	loadErr        error
	cursor         int
	scrollOffset   int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	theme          Theme
	quitting       bool
	selected       int  // -1 while choosing
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model listing the campaign levels.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
		selected:  -1,
	}

	layouts, err := flow.LoadCampaign()
	if err != nil {
		m.loadErr = err
		return m
	}
	m.items = levelItems(layouts, store)
	return m
}

// levelItems builds menu rows, annotating each level with its best solve.
func levelItems(layouts []engine.Layout, store *storage.Store) []LevelItem {
	items := make([]LevelItem, 0, len(layouts))
	for _, l := range layouts {
		item := LevelItem{ID: l.ID, Name: l.Title(), Size: l.Size}
		if store != nil {
			best, err := store.BestSolves(l.ID, 1)
			if err != nil {
				log.Warn("cannot load best solve", "level", l.ID, "err", err)
			} else if len(best) > 0 {
				item.BestMoves = best[0].Moves
			}
		}
		items = append(items, item)
	}
	return items
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}

	case MenuActionDown:
		if m.cursor < len(m.items) {
			m.cursor++
			m.updateScroll()
		}

	case MenuActionSelect:
		if m.loadErr == nil && len(m.items) > 0 {
			m.selected = m.cursor
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m MenuModel) visibleItems() int {
	return max(m.height-10, 3) // Account for header and footer
}

// updateScroll adjusts scroll offset to keep the cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("N E U R A L   F L O W"), m.width))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText(m.theme.ItemActive.Render("NO LEVELS LOADED"), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.Description.Render(m.loadErr.Error()), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.theme.Controls.Render("Q: Quit"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText(m.theme.Subtitle.Render("Select a level"), m.width))
	b.WriteString("\n\n")

	// Row 0 is "start from beginning", rows 1..n are levels.
	total := len(m.items) + 1
	end := min(m.scrollOffset+m.visibleItems(), total)

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.Description.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	for row := m.scrollOffset; row < end; row++ {
		cursor := "  "
		style := m.theme.ItemNormal
		if row == m.cursor {
			cursor = "> "
			style = m.theme.ItemActive
		}

		var line string
		if row == 0 {
			line = style.Render(cursor + "Start from Beginning")
		} else {
			item := m.items[row-1]
			line = style.Render(fmt.Sprintf("%s%2d. %-18s %dx%d", cursor, row, item.Name, item.Size, item.Size))
			if item.BestMoves > 0 {
				line += m.theme.ItemSolved.Render(fmt.Sprintf("  best %d", item.BestMoves))
			}
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if end < total {
		b.WriteString(centerText(m.theme.Description.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(m.theme.Controls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen start level (0 = from the beginning) and
// whether a choice was made.
func (m MenuModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level           int // 0 = start from beginning
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	level, chosen := m.Selected()
	if m.IsQuitting() || !chosen {
		result.Quit = true
		return result, nil
	}
	result.Level = level
	return result, nil
}
