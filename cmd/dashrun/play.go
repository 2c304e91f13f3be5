package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tverd/dashrun/internal/core"
	"github.com/tverd/dashrun/internal/game"
	"github.com/tverd/dashrun/internal/platform/tui"
	"github.com/tverd/dashrun/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the runner in the current terminal.

Controls:
  Space/Up/W or mouse click  - Jump (starts a run from the title screen)
  Enter                      - Start / confirm restart
  R                          - Restart after game over
  Q/Ctrl+C                   - Quit

Examples:
  dashrun play
  dashrun play --seed 42
  dashrun play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(game.New(), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
