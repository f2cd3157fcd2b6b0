package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falldown/internal/config"
	"github.com/vovakirdan/falldown/internal/core"
	"github.com/vovakirdan/falldown/internal/games/falldown"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game := falldown.New(config.DefaultFallConfig())
	return NewModel(game, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42},
		Logger:  log.New(io.Discard),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m = update(t, m, TickMsg(time.Time{}))
	}
	return m
}

func playerX(m Model) float64 {
	return m.game.Snapshot().Player.X
}

func TestKeyboardMovesPlayer(t *testing.T) {
	m := newTestModel(t)
	start := playerX(m)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, 1)
	if got := playerX(m); got != start+5 {
		t.Errorf("after right: X = %v, want %v", got, start+5)
	}

	m = update(t, m, runes("a"))
	m = tick(t, m, 2)
	if got := playerX(m); got != start-5 {
		t.Errorf("after left: X = %v, want %v", got, start-5)
	}
}

func TestKeyHoldReleasesAfterTimeout(t *testing.T) {
	m := newTestModel(t)
	hold := m.game.Config().Input.KeyHoldTicks

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, hold)
	x := playerX(m)
	m = tick(t, m, 5)
	if got := playerX(m); got != x {
		t.Errorf("player kept moving after hold expired: %v -> %v", x, got)
	}
}

func TestMouseSteersPlayer(t *testing.T) {
	m := newTestModel(t)
	start := playerX(m)

	m = update(t, m, tea.MouseMsg{X: 79, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, 3)
	if got := playerX(m); got != start+15 {
		t.Errorf("pointer right: X = %v, want %v", got, start+15)
	}

	m = update(t, m, tea.MouseMsg{X: 79, Y: 5, Action: tea.MouseActionRelease})
	x := playerX(m)
	m = tick(t, m, 3)
	if got := playerX(m); got != x {
		t.Errorf("player moved after release: %v -> %v", x, got)
	}
}

func TestPauseToggle(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, runes("p"))
	m = tick(t, m, 1)
	if !m.gameState.Paused {
		t.Fatal("expected paused after p")
	}
	ticks := m.game.Ticks()
	m = tick(t, m, 10)
	if m.game.Ticks() != ticks {
		t.Error("game advanced while paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show the pause box")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m, 1)
	if m.gameState.Paused {
		t.Error("expected resumed after esc")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t)

	// Restart is ignored while playing
	m = update(t, m, runes("r"))
	if m.input.restart {
		t.Fatal("restart accepted during play")
	}

	// An idle player rides the seed platform off the top
	for i := 0; i < 5000 && !m.gameState.GameOver; i++ {
		m = tick(t, m, 1)
	}
	if !m.gameState.GameOver {
		t.Fatal("game never ended")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view should show the game over box")
	}

	m = update(t, m, runes("r"))
	m = tick(t, m, 1)
	if m.gameState.GameOver || m.gameState.Score != 0 {
		t.Errorf("after restart: %+v", m.gameState)
	}
	if m.config.Seed != 42 {
		t.Errorf("fixed seed changed to %d", m.config.Seed)
	}
}

func TestResizeKeepsWorld(t *testing.T) {
	m := newTestModel(t)
	m = tick(t, m, 20)
	before := m.game.Snapshot()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	after := m.game.Snapshot()
	if after.Score != before.Score || after.Player != before.Player {
		t.Error("resize should not reset the world")
	}
}

func TestConfigChangeAppliesOnRestart(t *testing.T) {
	m := newTestModel(t)
	w, err := config.NewWatcher(t.TempDir() + "/falldown.yaml")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = w.Close() })

	reloaded := config.DefaultFallConfig()
	reloaded.Physics.MoveSpeed = 9
	m.opts.Watcher = w
	m.opts.Reload = func() (config.FallConfig, error) { return reloaded, nil }

	m = update(t, m, configChangedMsg{path: "falldown.yaml"})
	if got := m.game.Config().Physics.MoveSpeed; got != 5 {
		t.Fatalf("config applied mid-run: move speed %v", got)
	}

	m.game.Reset(m.config)
	if got := m.game.Config().Physics.MoveSpeed; got != 9 {
		t.Errorf("after reset move speed = %v, want 9", got)
	}
}

func TestConfigReloadErrorKeepsConfig(t *testing.T) {
	m := newTestModel(t)
	w, err := config.NewWatcher(t.TempDir() + "/falldown.yaml")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = w.Close() })

	m.opts.Watcher = w
	m.opts.Reload = func() (config.FallConfig, error) { return config.FallConfig{}, errors.New("bad yaml") }

	m = update(t, m, configChangedMsg{path: "falldown.yaml"})
	m.game.Reset(m.config)
	if got := m.game.Config().Physics.MoveSpeed; got != 5 {
		t.Errorf("move speed = %v, want unchanged 5", got)
	}
}

func TestDemoModePlays(t *testing.T) {
	game := falldown.New(config.DefaultFallConfig())
	m := NewModel(game, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7},
		Logger:  log.New(io.Discard),
		Demo:    true,
	})
	m = tick(t, m, 200)
	if m.game.Ticks() == 0 || m.gameState.Score == 0 {
		t.Errorf("demo did not advance: ticks=%d score=%d", m.game.Ticks(), m.gameState.Score)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'x', core.ColorRed)
	s.SetColored(1, 0, 'y', core.ColorDefault)
	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "x") || !strings.Contains(out, "y") {
		t.Errorf("missing runes in %q", out)
	}
}
