package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falldown/internal/config"
	"github.com/vovakirdan/falldown/internal/core"
	"github.com/vovakirdan/falldown/internal/games/falldown"
)

var (
	flagTicks int
	flagRuns  int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless games driven by the autopilot",
	Long: `Run games without a terminal UI. The autopilot steers toward the
nearest safe platform below the player. Each run uses seed, seed+1, ...
so results are reproducible with --seed.

Examples:
  falldown sim
  falldown sim --runs 20 --seed 1
  falldown sim --ticks 100000 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Maximum ticks per run")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
}

// simResult is the outcome of one headless run.
type simResult struct {
	Seed     int64
	Score    int
	Level    int
	Ticks    int
	GameOver bool
}

// simulate plays one game with the autopilot until game over or maxTicks.
func simulate(cfg config.FallConfig, seed int64, maxTicks int) simResult {
	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = seed

	game := falldown.New(cfg)
	game.Reset(runtime)

	for game.Ticks() < maxTicks && !game.State().GameOver {
		game.Step(falldown.Autopilot(game.Snapshot()))
	}

	state := game.State()
	return simResult{
		Seed:     seed,
		Score:    state.Score,
		Level:    state.Level,
		Ticks:    game.Ticks(),
		GameOver: state.GameOver,
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagRuns <= 0 || flagTicks <= 0 {
		return fmt.Errorf("--runs and --ticks must be positive")
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if source.Skipped != nil {
		logger.Warn("ignoring config", "err", source.Skipped)
	}
	logger.Debug("config loaded", "source", source.Path)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-20s  %6s  %5s  %7s  %s\n", "Seed", "Score", "Level", "Ticks", "Result")
	fmt.Fprintf(out, "  %-20s  %6s  %5s  %7s  %s\n", "----", "-----", "-----", "-----", "------")

	best, total := 0, 0
	for i := range flagRuns {
		res := simulate(cfg, seed+int64(i), flagTicks)
		logger.Info("run finished", "run", i+1, "seed", res.Seed, "score", res.Score, "ticks", res.Ticks)

		result := "survived"
		if res.GameOver {
			result = "game over"
		}
		fmt.Fprintf(out, "  %-20d  %6d  %5d  %7d  %s\n", res.Seed, res.Score, res.Level, res.Ticks, result)

		best = max(best, res.Score)
		total += res.Score
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d  Mean: %.1f\n", flagRuns, best, float64(total)/float64(flagRuns))
	return nil
}
