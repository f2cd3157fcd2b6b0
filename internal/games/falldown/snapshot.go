package falldown

import (
	"github.com/vovakirdan/falldown/internal/core"
)

// PlatformView is the read-only render data for one platform.
type PlatformView struct {
	Rect  core.Rect
	Kind  PlatformKind
	Color core.Color
}

// Snapshot is a copy of everything a renderer or policy may read.
// Mutating it does not affect the world.
type Snapshot struct {
	Width, Height float64 // World dimensions
	Player        core.Rect
	PlayerColor   core.Color
	Grounded      bool
	Platforms     []PlatformView // Spawn order, oldest first
	Score         int
	Level         int
	GameOver      bool
	ScrollSpeed   float64
}

// Snapshot returns a copy of the current world state.
func (w *World) Snapshot() Snapshot {
	platforms := make([]PlatformView, len(w.Platforms))
	for i, pl := range w.Platforms {
		platforms[i] = PlatformView{
			Rect:  pl.Rect(),
			Kind:  pl.Kind,
			Color: pl.Kind.Color(),
		}
	}

	return Snapshot{
		Width:       w.cfg.Screen.Width,
		Height:      w.cfg.Screen.Height,
		Player:      w.Player.Rect(),
		PlayerColor: PlayerColor,
		Grounded:    w.Player.Grounded,
		Platforms:   platforms,
		Score:       w.Score,
		Level:       w.Level(),
		GameOver:    w.GameOver,
		ScrollSpeed: w.ScrollSpeed,
	}
}
