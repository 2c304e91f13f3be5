package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tverd/dashrun/internal/platform/tui"
	"github.com/tverd/dashrun/internal/storage"
)

var (
	flagPlain bool
	flagReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse recorded scores",
	Long: `Show the recorded run scores.

By default opens an interactive scoreboard; --plain prints a table to
stdout instead, and --reset wipes the score history.

Examples:
  dashrun scores
  dashrun scores --plain
  dashrun scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores to stdout instead of the interactive board")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Score history cleared.")
		return
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top scores as a plain table.
func printScores(store *storage.Store) {
	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Dash Runner")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dashrun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
