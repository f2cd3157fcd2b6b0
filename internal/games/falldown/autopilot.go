package falldown

import (
	"math"

	"github.com/vovakirdan/falldown/internal/core"
)

// Autopilot is a simple steering policy used by the headless simulator and
// the demo mode. It aims the pointer at the nearest normal platform below the
// player; when standing on a platform it aims past that platform's edge so
// the player drops toward the next one.
func Autopilot(s Snapshot) core.InputSnapshot {
	player := s.Player

	var standing *PlatformView
	if s.Grounded {
		for i := range s.Platforms {
			pl := &s.Platforms[i]
			if math.Abs(pl.Rect.Y-player.Bottom()) < 0.5 && player.OverlapsX(pl.Rect) {
				standing = pl
				break
			}
		}
	}

	target := nearestBelow(s, player.Bottom(), standing)
	if target == nil {
		return core.InputSnapshot{}
	}

	aim := target.Rect.CenterX()
	if standing != nil {
		aim = dropPoint(standing.Rect, target.Rect, player.W, s.Width)
	}
	return core.InputSnapshot{Pointer: true, PointerX: aim}
}

// nearestBelow returns the highest normal platform whose top is below y,
// skipping the one being stood on.
func nearestBelow(s Snapshot, y float64, skip *PlatformView) *PlatformView {
	var best *PlatformView
	for i := range s.Platforms {
		pl := &s.Platforms[i]
		if pl == skip || pl.Kind != PlatformNormal || pl.Rect.Y < y {
			continue
		}
		if best == nil || pl.Rect.Y < best.Rect.Y {
			best = pl
		}
	}
	return best
}

// dropPoint picks an x that clears the current platform but still lands on target.
func dropPoint(current, target core.Rect, playerW, worldW float64) float64 {
	if target.Right() >= current.Right()+playerW {
		lo := max(target.X, current.Right())
		return (lo + target.Right()) / 2
	}
	if target.X <= current.X-playerW {
		hi := min(target.Right(), current.X)
		return (target.X + hi) / 2
	}
	// Target hides under the current platform: step off the side with more room.
	if current.X > worldW-current.Right() {
		return current.X - playerW
	}
	return current.Right() + playerW
}
