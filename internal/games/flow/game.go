// Package flow implements Neural Flow: rotate circuit tiles until the
// source in the top-left corner powers the sink in the bottom-right corner.
package flow

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/flowgrid/internal/config"
	"github.com/vovakirdan/flowgrid/internal/core"
	"github.com/vovakirdan/flowgrid/internal/games/flow/engine"
	"github.com/vovakirdan/flowgrid/internal/games/flow/levels"
	"github.com/vovakirdan/flowgrid/internal/registry"
)

// GameID is the registry id of Neural Flow.
const GameID = "flow"

const (
	hintHighlightTicks = 90
	flashTicks         = 45
)

// Package-level variables for config
var (
	selectedStartLevel int
	configPath         string
	difficultyPreset   config.DifficultyPreset
	levelsDir          string
)

// SetStartLevel sets the starting level (1-indexed). 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLevelsDir makes games load levels from a directory instead of the built-in campaign.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// LoadCampaign returns the levels games will play, honoring SetLevelsDir.
func LoadCampaign() ([]engine.Layout, error) {
	loader := levels.Builtin()
	if levelsDir != "" {
		loader = levels.NewLoader(levelsDir)
	}
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("no levels found in %s", loader.Root)
	}
	return levels.Layouts(lvls), nil
}

// Option configures a Game.
type Option func(*Game)

// WithLevels fixes the campaign instead of loading it on Reset.
func WithLevels(layouts []engine.Layout) Option {
	return func(g *Game) {
		g.levels = layouts
		g.fixedLevels = true
	}
}

// WithConfig fixes the configuration instead of loading it on Reset.
func WithConfig(cfg config.FlowConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.fixedConfig = true
	}
}

// WithRecorder registers a solve recorder.
func WithRecorder(r SolveRecorder) Option {
	return func(g *Game) {
		g.recorder = r
	}
}

// WithStartLevel starts every run of this game at the given level (1-indexed).
func WithStartLevel(level int) Option {
	return func(g *Game) {
		g.startLevel = level
	}
}

// Game implements the Neural Flow campaign.
type Game struct {
	rng  *rand.Rand
	seed int64
	tick uint64

	cfg         config.FlowConfig
	fixedConfig bool
	difficulty  *config.DifficultyManager

	levels      []engine.Layout
	fixedLevels bool
	levelIndex  int
	startLevel  int
	session     *engine.Session

	runID    string
	recorder SolveRecorder

	score      int
	levelScore int
	levelTicks int
	hintsLeft  int
	hintsUsed  int
	hintTile   engine.TileID
	hintTicks  int
	flash      string
	flashTicks int

	cursorX, cursorY int

	screenW int
	screenH int
	metrics boardMetrics

	locked    bool
	lockTicks int
	won       bool
	paused    bool
	tooSmall  bool
	err       error
}

// New creates a Neural Flow game.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Neural Flow"
}

// Description returns a one-line summary.
func (g *Game) Description() string {
	return "Rotate circuit tiles until the source powers the sink"
}

// SetRecorder replaces the solve recorder.
func (g *Game) SetRecorder(r SolveRecorder) {
	g.recorder = r
}

// StartAt makes the next Reset begin at the given level (1-indexed, 0 = first).
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// RunID identifies the current play run in solve records.
func (g *Game) RunID() string {
	return g.runID
}

// Reset initializes/restarts the campaign.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.seed = cfg.Seed
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.won = false
	g.paused = false
	g.err = nil
	g.runID = newRunID()

	if !g.fixedConfig {
		loaded, err := config.LoadFlow(configPath)
		if err != nil {
			log.Warn("using default flow config", "err", err)
			loaded = config.DefaultFlowConfig()
		}
		if difficultyPreset != "" {
			config.ApplyFlowPreset(&loaded, difficultyPreset)
		}
		g.cfg = loaded
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if !g.fixedLevels {
		layouts, err := LoadCampaign()
		if err != nil {
			g.err = err
			log.Error("cannot load levels", "err", err)
			return
		}
		g.levels = layouts
	}
	if len(g.levels) == 0 {
		g.err = errors.New("no levels to play")
		return
	}

	start := g.startLevel
	if start == 0 && selectedStartLevel > 0 {
		start = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}
	if start > 0 && start <= len(g.levels) {
		g.levelIndex = start - 1
	} else {
		g.levelIndex = 0
	}

	g.session = engine.NewSession(engine.WithSolvedHandler(g.onSolved))
	g.loadLevel()
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// loadLevel generates a fresh scramble of the current level.
func (g *Game) loadLevel() {
	layout := g.levels[g.levelIndex]

	g.levelTicks = 0
	g.levelScore = 0
	g.locked = false
	g.lockTicks = 0
	g.hintsUsed = 0
	g.hintsLeft = g.difficulty.Hints(g.cfg.Gameplay.Hints, g.levelIndex, 0)
	g.hintTile = -1
	g.hintTicks = 0
	g.flash = ""
	g.flashTicks = 0
	g.cursorX, g.cursorY = 0, 0

	opts := engine.GenerateOptions{
		RequireSolvable:     g.cfg.Generation.RequireSolvable,
		AvoidSolvedStart:    g.cfg.Generation.AvoidSolvedStart,
		MaxScrambleAttempts: g.cfg.Generation.MaxScrambleAttempts,
	}
	if err := g.session.Generate(layout, g.rng, opts); err != nil {
		g.err = fmt.Errorf("level %s: %w", layout.ID, err)
		log.Error("cannot generate level", "level", layout.ID, "err", err)
		return
	}
	log.Debug("level generated",
		"level", layout.ID,
		"size", layout.Size,
		"attempts", g.session.Attempts(),
		"par", g.session.Par(),
	)

	g.checkScreenSize()
}

// onSolved runs once per generated board, when the sink first receives flow.
func (g *Game) onSolved(e engine.SolvedEvent) {
	g.locked = true
	g.lockTicks = 0
	g.levelScore = g.scoreFor(e.Moves)
	g.score += g.levelScore

	layout := g.levels[g.levelIndex]
	rec := SolveRecord{
		RunID:      g.runID,
		LevelID:    layout.ID,
		LevelIndex: g.levelIndex,
		Seed:       g.seed,
		Moves:      e.Moves,
		Par:        g.session.Par(),
		Hints:      g.hintsUsed,
		Ticks:      g.levelTicks,
		Score:      g.levelScore,
	}
	log.Info("level solved", "level", rec.LevelID, "moves", rec.Moves, "par", rec.Par, "score", rec.Score)

	if g.recorder != nil {
		if err := g.recorder.RecordSolve(rec); err != nil {
			log.Warn("cannot record solve", "level", rec.LevelID, "err", err)
		}
	}
}

// scoreFor computes the points for solving the current level in the given moves.
func (g *Game) scoreFor(moves int) int {
	excess := moves
	if par := g.session.Par(); par >= 0 {
		excess = moves - par
	}
	excess = max(excess, 0)

	s := g.cfg.Scoring
	penalty := g.difficulty.MovePenalty(s.MovePenalty, g.levelIndex, g.levelTicks)
	points := s.BasePoints - penalty*excess - s.HintPenalty*g.hintsUsed
	return max(points, s.MinPoints)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.err != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.won {
		return core.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
	}

	// Solved boards stay locked until the advance delay elapses.
	if g.locked {
		g.lockTicks++
		if g.lockTicks >= g.cfg.Gameplay.AdvanceTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.levelTicks++
	if g.hintTicks > 0 {
		g.hintTicks--
	}

	if in.Has(core.ActionRestart) {
		g.reboot()
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	if in.Has(core.ActionHint) {
		g.useHint()
	}
	if in.Has(core.ActionRotate) || in.Has(core.ActionConfirm) {
		g.rotateAtCursor()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	n := g.levels[g.levelIndex].Size
	if in.Has(core.ActionUp) {
		g.cursorY--
	}
	if in.Has(core.ActionDown) {
		g.cursorY++
	}
	if in.Has(core.ActionLeft) {
		g.cursorX--
	}
	if in.Has(core.ActionRight) {
		g.cursorX++
	}
	g.cursorX = core.Clamp(g.cursorX, 0, n-1)
	g.cursorY = core.Clamp(g.cursorY, 0, n-1)
}

func (g *Game) cursorTile() engine.TileID {
	return engine.TileID(g.cursorY*g.levels[g.levelIndex].Size + g.cursorX)
}

func (g *Game) rotateAtCursor() {
	id := g.cursorTile()
	_, err := g.session.RotateTile(id)
	switch {
	case errors.Is(err, engine.ErrImmutable):
		g.setFlash("NODE LOCKED")
	case err != nil:
		log.Debug("rotation rejected", "tile", id, "err", err)
	case id == g.hintTile:
		g.hintTicks = 0
	}
}

func (g *Game) useHint() {
	if g.hintsLeft <= 0 {
		g.setFlash("NO HINTS LEFT")
		return
	}
	id, ok := g.session.Hint()
	if !ok {
		return
	}
	g.hintsLeft--
	g.hintsUsed++
	g.hintTile = id
	g.hintTicks = hintHighlightTicks

	n := g.levels[g.levelIndex].Size
	g.cursorX, g.cursorY = int(id)%n, int(id)/n
}

// reboot re-scrambles the current level. The campaign score is kept.
func (g *Game) reboot() {
	log.Debug("level reboot", "level", g.levels[g.levelIndex].ID, "moves", g.session.Moves())
	g.loadLevel()
	g.setFlash("REBOOTED")
}

func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashTicks = flashTicks
}

// advanceLevel moves to the next level, or finishes the campaign.
func (g *Game) advanceLevel() {
	g.locked = false
	g.lockTicks = 0

	if g.levelIndex >= len(g.levels)-1 {
		g.won = true
		log.Info("campaign complete", "run", g.runID, "score", g.score)
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won,
		Paused:   g.paused || g.tooSmall || g.err != nil,
	}
}

// Err reports a fatal setup problem (no levels, unsolvable level).
func (g *Game) Err() error {
	return g.err
}
