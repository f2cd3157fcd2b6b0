package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falldown/internal/config"
	"github.com/vovakirdan/falldown/internal/core"
	"github.com/vovakirdan/falldown/internal/games/falldown"
)

// helpRows is the number of terminal rows reserved for the key legend.
const helpRows = 1

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// Demo lets the autopilot play instead of the keyboard and mouse.
	Demo bool

	// Watcher and Reload enable config hot reload. Reload is called on
	// every change reported by Watcher; its result applies at the next restart.
	Watcher *config.Watcher
	Reload  func() (config.FallConfig, error)
}

// configChangedMsg reports that the watched config file changed.
type configChangedMsg struct{ path string }

// configWatchErrMsg reports a watcher failure.
type configWatchErrMsg struct{ err error }

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      *falldown.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	fixedSeed bool // Keep the seed on restart
	opts      Options
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	input     inputTracker
	gameState core.GameState
	tick      int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game *falldown.Game, opts Options) Model {
	cfg := opts.Runtime
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpRows)),
		config:    cfg,
		fixedSeed: fixed,
		opts:      opts,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     newInputTracker(game.Config().Input.KeyHoldTicks),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "seed", m.config.Seed, "demo", m.opts.Demo)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.opts.Watcher != nil {
		cmds = append(cmds, waitForConfigChange(m.opts.Watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.mouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configChangedMsg:
		return m.handleConfigChange(msg)

	case configWatchErrMsg:
		m.logger.Warn("config watcher error", "err", msg.err)
		return m, waitForConfigChange(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		m.copyFrame()
	case key.Matches(msg, m.keys.Left):
		m.input.pressLeft(m.tick)
	case key.Matches(msg, m.keys.Right):
		m.input.pressRight(m.tick)
	case key.Matches(msg, m.keys.Stop):
		m.input.stop()
	case key.Matches(msg, m.keys.Pause):
		m.input.pause = true
	case key.Matches(msg, m.keys.Restart):
		if m.gameState.GameOver {
			m.input.restart = true
		}
	}
	return m, nil
}

// handleResize processes window resize events.
// The world is kept; only the projection onto the terminal changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++

	if m.input.restart && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.input = newInputTracker(m.game.Config().Input.KeyHoldTicks)
		m.logger.Info("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	var in core.InputSnapshot
	if m.opts.Demo {
		in = falldown.Autopilot(m.game.Snapshot())
		in.Pause = m.input.pause
	} else {
		in = m.input.snapshot(m.tick, func(col int) float64 {
			return m.game.ColumnToWorldX(col, m.screen.Width(), m.screen.Height())
		})
	}

	result := m.game.Step(in)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over",
			"score", result.State.Score,
			"level", result.State.Level,
			"ticks", m.game.Ticks(),
			"best", m.game.Best())
	}
	m.gameState = result.State

	m.input.endFrame()
	return m, tickCmd(m.config.TickRate)
}

// handleConfigChange reloads the configuration and schedules it for the next run.
func (m Model) handleConfigChange(msg configChangedMsg) (tea.Model, tea.Cmd) {
	if m.opts.Reload != nil {
		cfg, err := m.opts.Reload()
		if err != nil {
			m.logger.Warn("config reload failed", "path", msg.path, "err", err)
		} else {
			m.game.SetConfig(cfg)
			m.logger.Info("config reloaded, applies on restart", "path", msg.path)
		}
	}
	return m, waitForConfigChange(m.opts.Watcher)
}

// copyFrame puts the current frame on the system clipboard as plain text.
func (m *Model) copyFrame() {
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("copy frame failed", "err", err)
		return
	}
	m.logger.Debug("frame copied to clipboard")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// waitForConfigChange blocks until the watcher reports a change or an error.
// It returns nil once the watcher is closed.
func waitForConfigChange(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configWatchErrMsg{err: err}
		}
	}
}

// Run starts the Bubble Tea program for the given game.
func Run(game *falldown.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drag steers the player
	)

	_, err := p.Run()
	return err
}
