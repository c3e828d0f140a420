// roar is a voice-controlled jungle runner for the terminal. Shout (or make
// any loud noise) and the runner jumps in proportion to how loud you were.
//
// Usage:
//
//	roar play                - Play using the microphone
//	roar play --input keys   - Play using the space bar instead
//	roar meter               - Show a live microphone loudness meter
//	roar scores              - Show the leaderboard and run history
//	roar serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible runs
//	--db <path>            - Run history database (default: ~/.roar/scores.db)
//	--leaderboard <path>   - Top scores file (default: ~/.roar/leaderboard.txt)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagLeaderboard string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roar",
	Short: "Roar Runner - a voice-controlled jungle runner for your terminal",
	Long: `Roar Runner is a terminal runner controlled by sound: the louder you
are, the higher the runner jumps. Dodge logs, vines, and bushes, grab
power-ups, and chase the top-3 leaderboard.

Available commands:
  play     - Start a run (microphone or keyboard input)
  meter    - Live microphone loudness meter
  scores   - View the leaderboard and run history
  serve    - Start SSH server for remote play

Examples:
  roar play
  roar play --input keys --difficulty hard
  roar meter
  roar scores
  roar serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roar/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboard, "leaderboard", "~/.roar/leaderboard.txt", "Path to top scores file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(meterCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
