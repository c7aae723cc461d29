package flow

import "github.com/vovakirdan/flowgrid/internal/games/flow/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateLevelSolved GameStateType = "level_solved"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int // 1-indexed
	LevelID   string
	Score     int
	Moves     int
	Par       int
	HintsLeft int
	CursorX   int
	CursorY   int
	Rotations []int
	Powered   []engine.TileID
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.err != nil:
		state = StateError
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.paused:
		state = StatePaused
	case g.locked:
		state = StateLevelSolved
	}

	snap := Snapshot{
		Tick:      g.tick,
		Level:     g.levelIndex + 1,
		Score:     g.score,
		HintsLeft: g.hintsLeft,
		CursorX:   g.cursorX,
		CursorY:   g.cursorY,
		State:     state,
	}
	if g.session != nil && g.session.Grid() != nil {
		snap.LevelID = g.session.Layout().ID
		snap.Moves = g.session.Moves()
		snap.Par = g.session.Par()
		snap.Rotations = g.session.Grid().Rotations()
		snap.Powered = g.session.CurrentPowered().IDs()
	}
	return snap
}
