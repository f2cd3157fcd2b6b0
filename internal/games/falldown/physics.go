package falldown

import (
	"github.com/vovakirdan/falldown/internal/core"
)

// Tick advances the world by one frame and returns the game-over flag.
// A finished world is left untouched; only Reset leaves that state.
func (w *World) Tick(dir core.Direction) bool {
	if w.GameOver {
		return true
	}

	w.Player.Grounded = false

	w.movePlayer(dir)
	w.gen.MaybeSpawn(w)
	w.scrollPlatforms()
	w.resolveCollisions()
	w.checkBounds()

	return w.GameOver
}

// movePlayer applies input and gravity (semi-implicit Euler).
func (w *World) movePlayer(dir core.Direction) {
	p := &w.Player
	p.X += dir.Sign() * w.cfg.Physics.MoveSpeed
	p.X = core.ClampF(p.X, 0, w.cfg.Screen.Width-p.Width)

	p.DY += w.cfg.Physics.Gravity
	p.Y += p.DY
}

// scrollPlatforms moves every platform up and drops those fully above the
// screen. Filtering in place keeps spawn order and never skips an element.
func (w *World) scrollPlatforms() {
	kept := w.Platforms[:0]
	for _, pl := range w.Platforms {
		pl.Y -= w.ScrollSpeed
		if pl.Y+pl.Height < 0 {
			continue
		}
		kept = append(kept, pl)
	}
	w.Platforms = kept
}

// resolveCollisions lands the player on a normal platform or ends the run on
// a hazard. A landing counts only while falling and only if the player's
// bottom passed the platform top by at most dy plus the tolerance this frame.
// A player falling faster than that can pass through a platform in one tick.
func (w *World) resolveCollisions() {
	p := &w.Player
	if p.DY <= 0 {
		return
	}

	player := p.Rect()
	bottom := player.Bottom()
	for _, pl := range w.Platforms {
		top := pl.Y
		if bottom < top || bottom-top > p.DY+w.cfg.Physics.LandingTolerance {
			continue
		}
		if !player.OverlapsX(pl.Rect()) {
			continue
		}

		if pl.Kind == PlatformHazard {
			// Position is kept as-is for the final frame.
			w.GameOver = true
			return
		}

		p.DY = 0
		p.Y = top - p.Height
		p.Grounded = true
		return
	}
}

// checkBounds ends the run once the player leaves the screen vertically.
func (w *World) checkBounds() {
	if w.Player.Y < 0 || w.Player.Y > w.cfg.Screen.Height {
		w.GameOver = true
	}
}
