package falldown

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/falldown/internal/config"
	"github.com/vovakirdan/falldown/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// play runs the autopilot until game over or the tick limit.
func play(g *Game, ticks int) core.GameState {
	var state core.GameState
	for i := 0; i < ticks; i++ {
		state = g.Step(Autopilot(g.Snapshot())).State
		if state.GameOver {
			break
		}
	}
	return state
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	cfg := config.DefaultFallConfig()

	g1 := New(cfg)
	g1.Reset(testRuntime(12345))
	state1 := play(g1, 3000)

	g2 := New(cfg)
	g2.Reset(testRuntime(12345))
	state2 := play(g2, 3000)

	if state1 != state2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", state1, state2)
	}
	if g1.Ticks() != g2.Ticks() {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", g1.Ticks(), g2.Ticks())
	}
	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("Determinism failed: final snapshots differ")
	}
}

func TestGameReset(t *testing.T) {
	g := New(config.DefaultFallConfig())
	g.Reset(testRuntime(42))

	play(g, 300)
	if g.State().Score == 0 {
		t.Fatal("expected some score after 300 ticks")
	}
	best := g.Best()

	g.Reset(testRuntime(42))

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Reset should clear score, got %d", state.Score)
	}
	if state.GameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if state.Paused {
		t.Error("Reset should clear paused flag")
	}
	if g.Ticks() != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.Ticks())
	}
	if g.Best() != best {
		t.Errorf("best score should survive reset, got %d expected %d", g.Best(), best)
	}
	if n := len(g.Snapshot().Platforms); n != 1 {
		t.Errorf("Reset should leave only the seed platform, got %d", n)
	}
}

func TestGamePause(t *testing.T) {
	g := New(config.DefaultFallConfig())
	g.Reset(testRuntime(1))

	g.Step(core.InputSnapshot{})
	before := g.Snapshot()

	state := g.Step(core.InputSnapshot{Pause: true}).State
	if !state.Paused {
		t.Fatal("pause input should pause the game")
	}
	g.Step(core.InputSnapshot{Right: true})
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("a paused game must not advance")
	}

	state = g.Step(core.InputSnapshot{Pause: true}).State
	if state.Paused {
		t.Error("second pause input should resume")
	}
	if g.Ticks() != 2 {
		t.Errorf("ticks = %d, expected 2 (resume tick runs the simulation)", g.Ticks())
	}
}

func TestGameStepUsesResolvedDirection(t *testing.T) {
	g := New(config.DefaultFallConfig())
	g.Reset(testRuntime(1))
	x0 := g.Snapshot().Player.X

	g.Step(core.InputSnapshot{Right: true})
	if got := g.Snapshot().Player.X; got != x0+5 {
		t.Errorf("right key: x = %v, expected %v", got, x0+5)
	}

	// Pointer to the far left wins over the held right key
	g.Step(core.InputSnapshot{Right: true, Pointer: true, PointerX: 0})
	if got := g.Snapshot().Player.X; got != x0 {
		t.Errorf("pointer: x = %v, expected %v", got, x0)
	}
}

func TestGameStepAfterGameOver(t *testing.T) {
	g := New(config.DefaultFallConfig())
	g.Reset(testRuntime(1))
	g.world.Player.Y = -50

	if !g.Step(core.InputSnapshot{}).State.GameOver {
		t.Fatal("expected game over")
	}
	before := g.Snapshot()
	ticks := g.Ticks()

	g.Step(core.InputSnapshot{Left: true, Pause: true})
	if !reflect.DeepEqual(before, g.Snapshot()) || g.Ticks() != ticks {
		t.Error("steps after game over must not change anything")
	}
	if g.State().Paused {
		t.Error("pause should be ignored after game over")
	}
}

func TestGameSetConfigAppliesOnReset(t *testing.T) {
	g := New(config.DefaultFallConfig())
	g.Reset(testRuntime(1))

	next := config.DefaultFallConfig()
	next.Physics.MoveSpeed = 11
	g.SetConfig(next)

	if g.Config().Physics.MoveSpeed != 5 {
		t.Error("new config must not apply to the running world")
	}

	g.Reset(testRuntime(1))
	if g.Config().Physics.MoveSpeed != 11 {
		t.Errorf("move speed after reset = %v, expected 11", g.Config().Physics.MoveSpeed)
	}
	x0 := g.Snapshot().Player.X
	g.Step(core.InputSnapshot{Left: true})
	if got := g.Snapshot().Player.X; got != x0-11 {
		t.Errorf("x = %v, expected %v", got, x0-11)
	}
}

func TestGameRender(t *testing.T) {
	g := New(config.DefaultFallConfig())
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD should show the score, got %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Lvl: 1") {
		t.Errorf("HUD should show the level, got %q", screen.Row(0))
	}

	// Seed platform: x 150..250 -> columns 30..49, y 500 -> row 1 + floor(500 * 23/600) = 20
	if screen.GetCell(30, 20).Rune != PlatformChar || screen.GetCell(49, 20).Rune != PlatformChar {
		t.Errorf("seed platform not drawn where expected, row 20 = %q", screen.Row(20))
	}
	if screen.GetCell(30, 20).Color != core.ColorGreen {
		t.Error("normal platforms should be green")
	}

	// Player: x 190 -> column 38, y 150 -> row 1 + floor(150 * 23/600) = 6
	if screen.GetCell(38, 6).Rune != PlayerChar {
		t.Errorf("player not drawn where expected, row 6 = %q", screen.Row(6))
	}

	g.world.GameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over message should be drawn")
	}
}

func TestColumnToWorldX(t *testing.T) {
	g := New(config.DefaultFallConfig())
	g.Reset(testRuntime(1))

	if got := g.ColumnToWorldX(0, 80, 24); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("column 0 -> %v, expected 2.5", got)
	}
	if got := g.ColumnToWorldX(79, 80, 24); math.Abs(got-397.5) > 1e-9 {
		t.Errorf("column 79 -> %v, expected 397.5", got)
	}
}
