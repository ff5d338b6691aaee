package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappydof/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a session would run with, after the search
order and command-line overrides are applied. The output is a valid config
file and can be saved to ~/.flappydof/config.yaml as a starting point.

With --defaults, print the embedded default file instead, comments included.

Examples:
  flappydof config
  flappydof config --defaults > ~/.flappydof/config.yaml
  flappydof config --config ./my-flappydof.yaml --tick-rate 128`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config file")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if flagDefaults {
		cmd.OutOrStdout().Write(config.DefaultYAML()) //nolint:errcheck // Best-effort write to stdout
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
}
