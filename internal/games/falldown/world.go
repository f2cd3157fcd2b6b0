// Package falldown implements an endless vertical platformer.
// The player falls under gravity onto platforms that scroll up the screen;
// every spawned platform scores a point, and leaving the screen or touching
// a hazard platform ends the run.
package falldown

import (
	"github.com/vovakirdan/falldown/internal/config"
	"github.com/vovakirdan/falldown/internal/core"
)

// PlatformKind tags a platform as walkable or deadly.
type PlatformKind int

const (
	PlatformNormal PlatformKind = iota
	PlatformHazard
)

// String returns a human-readable name for the kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformNormal:
		return "normal"
	case PlatformHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Color returns the display color derived from the kind.
func (k PlatformKind) Color() core.Color {
	if k == PlatformHazard {
		return core.ColorRed
	}
	return core.ColorGreen
}

// PlayerColor is the display color of the player sprite.
const PlayerColor = core.ColorBrightCyan

// Player is the falling sprite. Width and height never change after creation.
type Player struct {
	X, Y     float64
	Width    float64
	Height   float64
	DY       float64 // Vertical velocity, positive = down
	Grounded bool    // Landed on a platform this tick
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Platform is a horizontal ledge scrolling up the screen.
type Platform struct {
	X, Y   float64
	Width  float64
	Height float64
	Kind   PlatformKind
}

// Rect returns the platform's collision rectangle.
func (p Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// World is the complete mutable state of one run.
// Tick and Reset are its only mutators.
type World struct {
	cfg config.FallConfig
	gen *Generator

	Player         Player
	Platforms      []Platform // Spawn order, oldest first
	Score          int
	GameOver       bool
	ScrollSpeed    float64 // Upward platform displacement per tick
	MaxGap         float64 // Upper bound for the next spawn threshold
	SpawnThreshold float64 // Scrolled distance required before the next spawn
	HazardStreak   int     // Consecutive hazards spawned; only the generator reads it
}

// NewWorld creates a world in its initial state.
// cfg must satisfy cfg.Validate(); rng drives platform generation.
func NewWorld(cfg config.FallConfig, rng RNG) *World {
	w := &World{}
	*w = initialWorld(cfg, NewGenerator(rng))
	return w
}

// Reset restores the initial state in one assignment, so no caller ever
// observes a half-reset world. The generator keeps its random stream.
func (w *World) Reset() {
	*w = initialWorld(w.cfg, w.gen)
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.FallConfig {
	return w.cfg
}

// initialWorld builds a fresh world: one centered NORMAL seed platform and a
// player above it.
func initialWorld(cfg config.FallConfig, gen *Generator) World {
	seed := Platform{
		X:      (cfg.Screen.Width - cfg.Platforms.Width) / 2,
		Y:      cfg.Screen.Height - cfg.Platforms.SeedOffset,
		Width:  cfg.Platforms.Width,
		Height: cfg.Platforms.Height,
		Kind:   PlatformNormal,
	}

	return World{
		cfg: cfg,
		gen: gen,
		Player: Player{
			X:      (cfg.Screen.Width - cfg.Player.Width) / 2,
			Y:      cfg.Screen.Height / 4,
			Width:  cfg.Player.Width,
			Height: cfg.Player.Height,
		},
		Platforms:      []Platform{seed},
		ScrollSpeed:    cfg.Difficulty.InitialSpeed,
		MaxGap:         cfg.Platforms.InitialMaxGap,
		SpawnThreshold: cfg.Platforms.MinGap,
	}
}

// Level returns the 1-based difficulty level for the current score.
func (w *World) Level() int {
	return w.cfg.Difficulty.Level(w.Score)
}
