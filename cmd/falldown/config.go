package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falldown/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that 'play' and 'sim' would use, after the
search path and the difficulty preset are applied. The output is valid
YAML and can be saved as a starting point for a custom config.

With --defaults the embedded default file is printed verbatim.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if source.Skipped != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ignoring config: %v\n", source.Skipped)
	}
	path := source.Path
	if source.Embedded() {
		path = "embedded default"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", path)
	if flagDifficulty != "" {
		fmt.Fprintf(out, "# difficulty: %s\n", flagDifficulty)
	}
	_, err = out.Write(data)
	return err
}
