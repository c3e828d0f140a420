package main

import (
	"fmt"
	"os"
	ossignal "os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roar-runner/internal/config"
	"github.com/vovakirdan/roar-runner/internal/signal"
)

var meterCmd = &cobra.Command{
	Use:   "meter",
	Short: "Show a live microphone loudness meter",
	Long: `Show a live loudness meter for the default microphone, using the same
capture pipeline as the game. Useful for checking levels before playing:
a normal speaking voice should read around 1.0, a shout near the top.

Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	Run:  runMeter,
}

func runMeter(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "roar"})

	gameCfg, err := config.Load("")
	if err != nil {
		gameCfg = config.Default()
	}

	capCfg := signal.CaptureConfig{
		Gain:       gameCfg.Signal.Gain,
		Clamp:      gameCfg.Signal.Clamp,
		SampleRate: 44100,
	}

	capture, cell, err := signal.StartCapture(capCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting capture: %v\n", err)
		os.Exit(1)
	}
	defer capture.Close()

	done := make(chan os.Signal, 1)
	ossignal.Notify(done, os.Interrupt, syscall.SIGTERM)

	const barWidth = 40
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	fmt.Printf("Loudness meter (0 .. %.1f). Ctrl+C to stop.\n", gameCfg.Signal.Clamp)
	for {
		select {
		case <-done:
			fmt.Println()
			return
		case <-ticker.C:
			level := cell.Current()
			filled := int(level / gameCfg.Signal.Clamp * barWidth)
			if filled > barWidth {
				filled = barWidth
			}
			bar := strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled)
			fmt.Printf("\r[%s] %4.2f", bar, level)
		}
	}
}
