// dashrun is a terminal endless runner: jump over the obstacles, chase
// the high score.
//
// Usage:
//
//	dashrun play              - Play in the current terminal
//	dashrun scores            - Browse recorded scores
//	dashrun serve             - Serve the game over SSH
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.dashrun/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dashrun",
	Short: "Dash Runner - an endless runner in your terminal",
	Long: `Dash Runner is a terminal arcade game: your character runs on its own,
you jump over the obstacles scrolling in from the right, and the pace
picks up the longer you survive. High scores persist between sessions.

Examples:
  dashrun play
  dashrun play --seed 42
  dashrun scores
  dashrun serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dashrun/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
