// Package signal provides the loudness input that drives the player's jump.
// A capture subsystem (microphone, keyboard pulses) writes a single scalar
// asynchronously; the simulation reads it once per tick.
package signal

import (
	"math"
	"sync/atomic"
	"time"
)

// Source exposes the most recent loudness reading. Current never blocks and
// always returns a non-negative value; the producer clamps its ceiling.
type Source interface {
	Current() float64
}

// Cell is a torn-read-safe single-value store shared between an async
// producer and the tick loop. Only the most recent completed write needs to
// be visible; no further ordering is required.
type Cell struct {
	bits atomic.Uint64
}

// NewCell creates a cell holding the given initial level.
func NewCell(initial float64) *Cell {
	c := &Cell{}
	c.Store(initial)
	return c
}

// Store publishes a new loudness reading. Negative and NaN values are
// written as zero so Current stays within its contract.
func (c *Cell) Store(v float64) {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	c.bits.Store(math.Float64bits(v))
}

// Current returns the most recently stored reading.
func (c *Cell) Current() float64 {
	return math.Float64frombits(c.bits.Load())
}

// Const is a fixed-level source, used when capture fails to initialize so
// the game still starts (the player hops at a constant height).
type Const float64

// Current returns the constant level.
func (s Const) Current() float64 {
	return float64(s)
}

// Pulse is a keyboard-driven source: each Hit registers a burst of loudness
// that fades out over a short window. It stands in for the microphone in
// SSH sessions and with --input keys.
type Pulse struct {
	level  float64
	window time.Duration
	hit    atomic.Int64 // UnixNano of the last hit
	now    func() time.Time
}

// NewPulse creates a pulse source. A hit reads as level immediately and
// decays linearly to zero over window.
func NewPulse(level float64, window time.Duration) *Pulse {
	return &Pulse{
		level:  level,
		window: window,
		now:    time.Now,
	}
}

// Hit registers a burst, as if the player had shouted.
func (p *Pulse) Hit() {
	p.hit.Store(p.now().UnixNano())
}

// Current returns the decayed level of the most recent hit.
func (p *Pulse) Current() float64 {
	last := p.hit.Load()
	if last == 0 {
		return 0
	}
	elapsed := p.now().Sub(time.Unix(0, last))
	if elapsed >= p.window {
		return 0
	}
	return p.level * (1 - float64(elapsed)/float64(p.window))
}
