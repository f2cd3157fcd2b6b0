package falldown

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/falldown/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	HazardChar   = '▲'
	CeilingChar  = '▔'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64 // Cells per world unit
	top    int     // First playfield row
}

func newViewport(worldW, worldH float64, screenW, screenH int) viewport {
	rows := max(1, screenH-hudRows)
	return viewport{
		sx:  float64(screenW) / worldW,
		sy:  float64(rows) / worldH,
		top: hudRows,
	}
}

// cells converts a world rect to a cell rect, never smaller than one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = v.top + int(math.Floor(r.Y*v.sy))
	w = max(1, int(math.Round(r.W*v.sx)))
	h = max(1, int(math.Round(r.H*v.sy)))
	return x, y, w, h
}

// ColumnToWorldX converts a screen column to the world x at that column's center.
func (g *Game) ColumnToWorldX(col, screenW, screenH int) float64 {
	v := newViewport(g.cfg.Screen.Width, g.cfg.Screen.Height, screenW, screenH)
	return (float64(col) + 0.5) / v.sx
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.world.Snapshot()
	v := newViewport(snap.Width, snap.Height, dst.Width(), dst.Height())

	// The top of the world is deadly too
	dst.DrawHLine(0, v.top, dst.Width(), CeilingChar, core.ColorGray)

	for _, pl := range snap.Platforms {
		x, y, w, h := v.cells(pl.Rect)
		ch := PlatformChar
		if pl.Kind == PlatformHazard {
			ch = HazardChar
		}
		dst.FillRect(x, y, w, h, ch, pl.Color)
	}

	x, y, w, h := v.cells(snap.Player)
	dst.FillRect(x, y, w, h, PlayerChar, snap.PlayerColor)

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	right := fmt.Sprintf(" Lvl: %d  Best: %d ", snap.Level, g.best)
	dst.DrawText(dst.Width()-runewidth.StringWidth(right)-2, 0, right, core.ColorYellow)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleW := runewidth.StringWidth(title)
	subtitleW := runewidth.StringWidth(subtitle)

	boxW := max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle, core.ColorDefault)
}
