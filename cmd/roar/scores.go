package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roar-runner/internal/leaderboard"
	"github.com/vovakirdan/roar-runner/internal/platform/tui"
	"github.com/vovakirdan/roar-runner/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and run history",
	Long: `Display the top-3 leaderboard and the recorded run history.

By default this opens an interactive browser; --plain prints a plain
text summary instead.

Examples:
  roar scores
  roar scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	board, err := leaderboard.New(flagLeaderboard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if flagPlain {
		printScores(board, store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, board, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the plain text summary.
func printScores(board *leaderboard.Board, store *storage.Store) {
	fmt.Println("Roar Runner - Top 3")
	fmt.Println()
	for i, s := range board.Load() {
		fmt.Printf("  %d. %d\n", i+1, s)
	}

	if store == nil {
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Best runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'roar play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Mult", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "----", "----")
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  x%-5.1f  %s\n", i+1, entry.Score, entry.Multiplier, dateStr)
	}

	stats, err := store.GetStats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f\n", stats.RunCount, stats.HighScore, stats.AvgScore)
}
