package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappydof/internal/sim"
)

var (
	flagTicks     int
	flagJumpEvery int
	flagFormat    string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session and print a summary",
	Long: `Run the simulation without a terminal for a fixed number of ticks,
jumping on every K-th tick, and print a summary of the final state.
The same seed and flags always produce the same summary.

Examples:
  flappydof sim --ticks 1024
  flappydof sim --ticks 4096 --seed 9 --jump-every 24
  flappydof sim --ticks 4096 --format yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1024, "Number of fixed ticks to run")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Jump on every K-th tick (0 = never)")
	simCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or yaml")
}

func runSim(cmd *cobra.Command, _ []string) {
	if flagFormat != "text" && flagFormat != "yaml" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", flagFormat)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close of the log file
	defer closeLog()

	summary, err := sim.Simulate(cfg, sim.Script{
		Seed:      flagSeed,
		Ticks:     flagTicks,
		JumpEvery: flagJumpEvery,
	}, sim.WithLogger(logger))
	if err != nil {
		logger.Error("simulation failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	if flagFormat == "yaml" {
		data, err := yaml.Marshal(summary)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprint(out, string(data))
		return
	}
	fmt.Fprint(out, summary.String())
}
