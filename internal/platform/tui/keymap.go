package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/falldown/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Stop    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Restart, k.Copy, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Pause, k.Restart, k.Copy, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s", " "),
			key.WithHelp("↓/space", "stop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "copy frame"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// inputTracker turns key presses and mouse events into per-tick snapshots.
// Terminals report presses but not releases, so a press holds its direction
// for holdTicks ticks; auto-repeat keeps extending it while the key is down.
type inputTracker struct {
	holdTicks  int
	leftUntil  int // Left is held while tick < leftUntil
	rightUntil int
	pointer    bool
	pointerCol int
	pause      bool // Pause requested since the last tick
	restart    bool // Restart requested since the last tick
}

func newInputTracker(holdTicks int) inputTracker {
	return inputTracker{holdTicks: max(1, holdTicks)}
}

// pressLeft holds left and cancels right.
func (t *inputTracker) pressLeft(tick int) {
	t.leftUntil = tick + t.holdTicks
	t.rightUntil = 0
}

// pressRight holds right and cancels left.
func (t *inputTracker) pressRight(tick int) {
	t.rightUntil = tick + t.holdTicks
	t.leftUntil = 0
}

// stop releases both directions.
func (t *inputTracker) stop() {
	t.leftUntil = 0
	t.rightUntil = 0
}

// mouse records pointer state from a mouse event.
func (t *inputTracker) mouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			t.pointer = true
			t.pointerCol = msg.X
		}
	case tea.MouseActionMotion:
		if t.pointer {
			t.pointerCol = msg.X
		}
	case tea.MouseActionRelease:
		t.pointer = false
	}
}

// snapshot builds the input for the given tick. toWorldX converts the
// pointer column into world units.
func (t *inputTracker) snapshot(tick int, toWorldX func(col int) float64) core.InputSnapshot {
	in := core.InputSnapshot{
		Left:    tick < t.leftUntil,
		Right:   tick < t.rightUntil,
		Pointer: t.pointer,
		Pause:   t.pause,
	}
	if t.pointer {
		in.PointerX = toWorldX(t.pointerCol)
	}
	return in
}

// endFrame clears the one-shot requests.
func (t *inputTracker) endFrame() {
	t.pause = false
	t.restart = false
}
