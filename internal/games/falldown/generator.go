package falldown

import (
	"github.com/vovakirdan/falldown/internal/config"
)

// RNG is the random source used for platform generation.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type RNG interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Generator spawns platforms below the visible area.
type Generator struct {
	rng RNG
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng RNG) *Generator {
	return &Generator{rng: rng}
}

// MaybeSpawn appends a new platform once enough distance has scrolled since
// the last one, and updates score, difficulty and spawn bookkeeping.
// Random draws happen in a fixed order per spawn: x, kind, next threshold.
// Reports whether a platform was spawned.
func (g *Generator) MaybeSpawn(w *World) bool {
	screenW := w.cfg.Screen.Width
	screenH := w.cfg.Screen.Height
	pc := w.cfg.Platforms

	var prev *Platform
	if n := len(w.Platforms); n > 0 {
		prev = &w.Platforms[n-1]
		if screenH-prev.Y <= w.SpawnThreshold {
			return false
		}
	}

	lo, hi := 0.0, screenW-pc.Width
	if prev != nil {
		// Any x in this window is reachable from the previous platform.
		lo = max(0, prev.X-pc.Reach)
		hi = min(screenW-pc.Width, prev.X+pc.Width+pc.Reach)
	}
	x := g.uniform(lo, hi)

	kind := PlatformNormal
	if r := g.rng.Float64(); w.HazardStreak < 1 && r < pc.HazardChance {
		kind = PlatformHazard
	}
	if kind == PlatformHazard {
		w.HazardStreak++
	} else {
		w.HazardStreak = 0
	}

	w.Platforms = append(w.Platforms, Platform{
		X:      x,
		Y:      screenH,
		Width:  pc.Width,
		Height: pc.Height,
		Kind:   kind,
	})

	w.Score++
	w.ScrollSpeed, w.MaxGap = config.ApplyDifficulty(w.cfg.Difficulty, w.Score, w.ScrollSpeed, w.MaxGap)
	w.SpawnThreshold = g.uniform(pc.MinGap, w.MaxGap)
	return true
}

// uniform returns a value in [lo, hi].
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
