package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/falldown/internal/config"
	"github.com/vovakirdan/falldown/internal/core"
	"github.com/vovakirdan/falldown/internal/games/falldown"
	"github.com/vovakirdan/falldown/internal/platform/tui"
)

var (
	flagWatch bool
	flagDemo  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Down/S/Space - Stop
  Mouse drag   - Move toward the pointer
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Copy the current frame to the clipboard
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, fewer hazards
  normal - Config values, progression on
  hard   - Faster start, more hazards
  fixed  - No progression, speed stays at the config's initial value

Examples:
  falldown play
  falldown play --difficulty easy
  falldown play --demo
  falldown play --config ./my-falldown.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file on change (applies on restart)")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if f, fileErr := openLogFile(); fileErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", fileErr)
	} else {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}
	if source.Skipped != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config: %v\n", source.Skipped)
		logger.Warn("ignoring config", "err", source.Skipped)
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	opts := tui.Options{
		Runtime: runtime,
		Logger:  logger,
		Demo:    flagDemo,
	}

	if flagWatch {
		if source.Embedded() {
			return errors.New("--watch needs a config file; pass --config or create one with 'falldown config'")
		}
		watcher, watchErr := config.NewWatcher(source.Path)
		if watchErr != nil {
			return fmt.Errorf("watch %s: %w", source.Path, watchErr)
		}
		defer watcher.Close()

		opts.Watcher = watcher
		opts.Reload = func() (config.FallConfig, error) {
			reloaded, src, loadErr := loadConfig()
			if loadErr == nil && src.Skipped != nil {
				loadErr = src.Skipped
			}
			return reloaded, loadErr
		}
	}

	src := source.Path
	if source.Embedded() {
		src = "embedded"
	}
	logger.Info("starting", "config", src, "difficulty", flagDifficulty, "fps", flagFPS)

	if err := tui.Run(falldown.New(cfg), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
