package falldown

import (
	"math/rand"

	"github.com/vovakirdan/falldown/internal/config"
	"github.com/vovakirdan/falldown/internal/core"
)

// Game wraps a World for the terminal host: pause handling, session best
// score and rendering on top of the pure simulation.
type Game struct {
	cfg       config.FallConfig
	pending   *config.FallConfig // Replaces cfg at the next Reset
	world     *World
	runtime   core.RuntimeConfig
	paused    bool
	tickCount int // Number of ticks since start
	best      int // Best score this session (not persisted)
}

// New creates a game with the given configuration.
// Call Reset before the first Step.
func New(cfg config.FallConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "falldown"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fall Down"
}

// SetConfig schedules a new configuration. It takes effect at the next Reset
// so a running world never sees its constants change.
func (g *Game) SetConfig(cfg config.FallConfig) {
	g.pending = &cfg
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.FallConfig {
	return g.cfg
}

// Reset initializes or restarts the game with a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.runtime = runtime
	g.world = NewWorld(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.paused = false
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputSnapshot) core.StepResult {
	if g.world.GameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	dir := core.ResolveDirection(in, g.world.Player.Rect().CenterX(), g.cfg.Input.PointerDeadZone)
	g.world.Tick(dir)

	if g.world.Score > g.best {
		g.best = g.world.Score
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		Level:    g.world.Level(),
		GameOver: g.world.GameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns a read-only copy of the world.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Best returns the best score of this session.
func (g *Game) Best() int {
	return g.best
}

// Ticks returns the number of simulated ticks since the last reset.
func (g *Game) Ticks() int {
	return g.tickCount
}
