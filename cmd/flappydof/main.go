// flappydof runs the pillar avoider simulation in the terminal.
//
// Usage:
//
//	flappydof play           - Play interactively
//	flappydof sim            - Run a headless session and print a summary
//	flappydof config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible sessions
//	--tick-rate <hz>    - Fixed simulation rate (default from config: 64)
//	--fps <rate>        - Display frame rate (default from config: 120)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappydof/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagTickRate int
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappydof",
	Short: "Flappydof - dodge scrolling pillars in your terminal",
	Long: `Flappydof is a fixed-step side-scroller: a player under gravity jumps
between pillar pairs that scroll toward it, scoring once per spawned pair
until it hits a pillar or leaves the play field.

Available commands:
  play     - Play interactively
  sim      - Run a headless session and print a summary
  config   - Print the effective configuration as YAML

Examples:
  flappydof play
  flappydof play --seed 42 --log-file flappydof.log --log-level debug
  flappydof sim --ticks 4096 --seed 1 --jump-every 24
  flappydof config --tick-rate 128`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (play: 0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 0, "Fixed simulation ticks per second (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Display frames per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagTickRate > 0 {
		cfg.Timing.TickRate = flagTickRate
	}
	if flagFPS > 0 {
		cfg.Timing.FrameRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to --log-file when set and to
// fallback otherwise. The returned close function releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappydof",
		Level:           level,
	})
	return logger, closeFn, nil
}
