// falldown is an endless vertical platformer for the terminal.
//
// Usage:
//
//	falldown play            - Play in the terminal
//	falldown sim             - Run headless games driven by the autopilot
//	falldown config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falldown/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "falldown",
	Short: "Fall Down - an endless falling platformer in your terminal",
	Long: `Fall Down is an endless vertical platformer. Platforms scroll up
from the bottom of the screen; steer the falling player onto them, avoid
red hazard platforms and never leave the screen.

Available commands:
  play     - Play in the terminal
  sim      - Run headless autopilot games
  config   - Print the effective configuration

Examples:
  falldown play
  falldown play --difficulty hard
  falldown play --config ./my-falldown.yaml --watch
  falldown sim --runs 10 --seed 42
  falldown config > ~/.config/falldown/falldown.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration from the flags and applies the difficulty preset.
func loadConfig() (config.FallConfig, config.Source, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FallConfig{}, config.Source{}, err
	}
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return config.FallConfig{}, config.Source{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, source, nil
}
