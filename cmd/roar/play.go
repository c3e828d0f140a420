package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roar-runner/internal/config"
	"github.com/vovakirdan/roar-runner/internal/core"
	"github.com/vovakirdan/roar-runner/internal/leaderboard"
	"github.com/vovakirdan/roar-runner/internal/platform/tui"
	"github.com/vovakirdan/roar-runner/internal/runner"
	"github.com/vovakirdan/roar-runner/internal/signal"
	"github.com/vovakirdan/roar-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagInput      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run. By default the microphone drives the jump: the louder
the noise, the higher the runner goes. With --input keys the space bar
stands in for shouting.

Controls:
  Shout/Space - Jump (height follows loudness)
  P           - Pause, R - Resume
  L           - Leaderboard, B/Esc - Back
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty presets:
  easy   - Sparser obstacles, gentler speed ramp
  normal - The default tuning
  hard   - Denser obstacles, steeper speed ramp
  fixed  - No speed ramp at all

Examples:
  roar play
  roar play --input keys
  roar play --difficulty hard
  roar play --config ./my-roar.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagInput, "input", "mic", "Input source: mic or keys")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "roar"})

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&gameCfg, preset)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Pick the signal source. The pulse stays available as the keyboard
	// path; with a working microphone it simply goes unused.
	pulse := signal.NewPulse(gameCfg.Signal.JumpClamp, 400*time.Millisecond)
	var source signal.Source = pulse
	var capture *signal.Capture

	if flagInput == "mic" {
		capCfg := signal.CaptureConfig{
			Gain:       gameCfg.Signal.Gain,
			Clamp:      gameCfg.Signal.Clamp,
			SampleRate: 44100,
		}
		var cell *signal.Cell
		capture, cell, err = signal.StartCapture(capCfg, logger)
		if err != nil {
			logger.Warn("microphone unavailable, falling back to keyboard input", "error", err)
		} else {
			source = cell
			defer capture.Close()
		}
	}

	board, err := leaderboard.New(flagLeaderboard)
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
		board = nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	game := runner.New(gameCfg, source, board)

	runErr := tui.Run(game, pulse, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
