package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappydof/internal/core"
	"github.com/vovakirdan/flappydof/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive session in the terminal.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is set, since the game owns the terminal.

Examples:
  flappydof play
  flappydof play --seed 7
  flappydof play --config ./my-flappydof.yaml --fps 60`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	runErr := tui.Run(cfg, rt, logger)

	//nolint:errcheck // Best-effort close of the log file
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
