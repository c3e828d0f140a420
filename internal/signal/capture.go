package signal

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/malgo"
)

// CaptureConfig tunes the microphone loudness pipeline.
type CaptureConfig struct {
	// Gain scales the per-block RMS into the game's intensity range.
	Gain float64
	// Clamp is the ceiling for published readings.
	Clamp float64
	// SampleRate in Hz for the capture device.
	SampleRate uint32
}

// DefaultCaptureConfig returns the tuning used by the reference behavior:
// readings span roughly [0, 3], with a normal speaking voice around 1.
func DefaultCaptureConfig() CaptureConfig {
	return CaptureConfig{
		Gain:       64,
		Clamp:      3,
		SampleRate: 44100,
	}
}

// Capture owns the microphone device and publishes loudness into a Cell.
type Capture struct {
	cell   *Cell
	ctx    *malgo.AllocatedContext
	device *malgo.Device
	logger *log.Logger
}

// StartCapture opens the default capture device and begins publishing
// loudness readings into the returned cell. The caller should fall back to
// a Const source when this returns an error; capture failure must never be
// fatal to the game.
func StartCapture(cfg CaptureConfig, logger *log.Logger) (*Capture, *Cell, error) {
	cell := NewCell(0)

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		logger.Debug("miniaudio", "message", message)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("signal: cannot init audio context: %w", err)
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatS16
	deviceConfig.Capture.Channels = 1
	deviceConfig.SampleRate = cfg.SampleRate

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, frameCount uint32) {
			cell.Store(blockIntensity(input, cfg.Gain, cfg.Clamp))
		},
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, callbacks)
	if err != nil {
		ctx.Uninit()
		ctx.Free()
		return nil, nil, fmt.Errorf("signal: cannot open capture device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		ctx.Uninit()
		ctx.Free()
		return nil, nil, fmt.Errorf("signal: cannot start capture: %w", err)
	}

	logger.Info("microphone capture started", "sample_rate", cfg.SampleRate)

	return &Capture{cell: cell, ctx: ctx, device: device, logger: logger}, cell, nil
}

// Close stops the device and releases the audio context.
func (c *Capture) Close() {
	if c.device != nil {
		c.device.Uninit()
	}
	if c.ctx != nil {
		c.ctx.Uninit()
		c.ctx.Free()
	}
	c.logger.Debug("microphone capture stopped")
}

// blockIntensity converts one block of signed 16-bit mono samples into a
// clamped loudness reading: RMS scaled by gain, capped at clamp.
func blockIntensity(input []byte, gain, clamp float64) float64 {
	n := len(input) / 2
	if n == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		raw := int16(binary.LittleEndian.Uint16(input[i*2:]))
		s := float64(raw) / 32768.0
		sum += s * s
	}

	rms := math.Sqrt(sum / float64(n))
	return math.Min(rms*gain, clamp)
}
