package engine

import (
	"errors"
	"math/rand"
)

// State is the lifecycle state of a puzzle session.
type State int

const (
	StateInProgress State = iota
	StateSolved
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// SolvedEvent is delivered once per generated puzzle, when the sink is first powered.
type SolvedEvent struct {
	Moves   int
	Powered PoweredSet
}

// GenerateOptions tunes how a layout is scrambled.
type GenerateOptions struct {
	// RequireSolvable rejects layouts that no rotation assignment can connect.
	RequireSolvable bool
	// AvoidSolvedStart re-rolls scrambles that already connect source and sink.
	AvoidSolvedStart bool
	// MaxScrambleAttempts caps the re-rolls. Values below 1 mean a single attempt.
	MaxScrambleAttempts int
}

// DefaultGenerateOptions returns the options used by the game.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		RequireSolvable:     true,
		AvoidSolvedStart:    true,
		MaxScrambleAttempts: 16,
	}
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSolvedHandler registers a callback for the solved transition.
func WithSolvedHandler(fn func(SolvedEvent)) SessionOption {
	return func(s *Session) {
		s.onSolved = fn
	}
}

// Session owns one puzzle instance from generation until it is solved.
// It is not safe for concurrent use.
type Session struct {
	layout   Layout
	grid     *Grid
	reach    Reach
	state    State
	moves    int
	par      int
	attempts int

	solvedFired bool
	onSolved    func(SolvedEvent)
}

// NewSession creates an empty session. Call Generate before rotating tiles.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{par: -1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates the layout, scrambles every movable tile with rng and
// starts a fresh puzzle. Source and sink keep their authored rotation.
func (s *Session) Generate(layout Layout, rng *rand.Rand, opts GenerateOptions) error {
	if rng == nil {
		return errors.New("engine: generate needs a random source")
	}
	if err := layout.Validate(); err != nil {
		return err
	}
	if opts.RequireSolvable {
		if _, err := Solve(layout); err != nil {
			return err
		}
	}

	attempts := max(opts.MaxScrambleAttempts, 1)
	var (
		grid  *Grid
		reach Reach
		tried int
	)
	for tried = 1; ; tried++ {
		g, err := scramble(layout, rng)
		if err != nil {
			return err
		}
		grid = g
		reach = ComputeReachable(grid)
		if !opts.AvoidSolvedStart || !reach.SinkReached || tried >= attempts {
			break
		}
	}

	s.layout = layout
	s.grid = grid
	s.reach = reach
	s.state = StateInProgress
	s.moves = 0
	s.attempts = tried
	s.solvedFired = false
	s.par = -1
	if sol, err := SolveGrid(grid); err == nil {
		s.par = sol.Moves
	}

	if reach.SinkReached {
		s.markSolved()
	}
	return nil
}

func scramble(layout Layout, rng *rand.Rand) (*Grid, error) {
	cells := make([]LayoutCell, len(layout.Cells))
	last := len(cells) - 1
	for i, c := range layout.Cells {
		if i != 0 && i != last {
			c.Rotation = rng.Intn(4)
		}
		cells[i] = c
	}
	return gridFromCells(layout.Size, cells)
}

// RotateTile turns one tile, recomputes the flow and reports the result.
// Rejected calls leave the powered set and state untouched.
func (s *Session) RotateTile(id TileID) (Reach, error) {
	if s.grid == nil {
		return Reach{}, ErrUnknownTile
	}
	if s.state == StateSolved {
		return s.reach, ErrAlreadySolved
	}
	if err := RotateAt(s.grid, id); err != nil {
		return s.reach, err
	}
	s.moves++
	s.reach = ComputeReachable(s.grid)
	if s.reach.SinkReached {
		s.markSolved()
	}
	return s.reach, nil
}

func (s *Session) markSolved() {
	s.state = StateSolved
	if s.solvedFired {
		return
	}
	s.solvedFired = true
	if s.onSolved != nil {
		s.onSolved(SolvedEvent{Moves: s.moves, Powered: s.reach.Powered})
	}
}

// Hint returns the next tile to turn toward the cheapest known solution.
func (s *Session) Hint() (TileID, bool) {
	if s.grid == nil || s.state == StateSolved {
		return 0, false
	}
	sol, err := SolveGrid(s.grid)
	if err != nil {
		return 0, false
	}
	for _, id := range sol.Path {
		want, ok := sol.Rotations[id]
		if ok && s.grid.tiles[id].Rotation != want {
			return id, true
		}
	}
	return 0, false
}

// CurrentPowered returns the powered set after the latest change.
func (s *Session) CurrentPowered() PoweredSet { return s.reach.Powered }

// Reach returns the latest flood fill result.
func (s *Session) Reach() Reach { return s.reach }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Moves counts accepted rotations since the last Generate.
func (s *Session) Moves() int { return s.moves }

// Par is the fewest turns that solved the board as generated, or -1 when unknown.
func (s *Session) Par() int { return s.par }

// Attempts reports how many scrambles the last Generate rolled.
func (s *Session) Attempts() int { return s.attempts }

// Layout returns the layout of the current puzzle.
func (s *Session) Layout() Layout { return s.layout }

// Grid returns a copy of the board. Nil before the first Generate.
func (s *Session) Grid() *Grid {
	if s.grid == nil {
		return nil
	}
	return s.grid.Clone()
}

// Tile returns one tile of the current board.
func (s *Session) Tile(id TileID) (Tile, bool) {
	if s.grid == nil {
		return Tile{}, false
	}
	return s.grid.Tile(id)
}
