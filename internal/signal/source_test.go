package signal

import (
	"encoding/binary"
	"math"
	"testing"
	"time"
)

func TestCellStoreAndCurrent(t *testing.T) {
	c := NewCell(0.5)
	if got := c.Current(); got != 0.5 {
		t.Errorf("Current = %v, want 0.5", got)
	}

	c.Store(2.25)
	if got := c.Current(); got != 2.25 {
		t.Errorf("Current = %v, want 2.25", got)
	}
}

func TestCellSanitizesBadValues(t *testing.T) {
	c := NewCell(1)

	c.Store(-3)
	if got := c.Current(); got != 0 {
		t.Errorf("Current = %v after negative store, want 0", got)
	}

	c.Store(math.NaN())
	if got := c.Current(); got != 0 {
		t.Errorf("Current = %v after NaN store, want 0", got)
	}
}

func TestConstSource(t *testing.T) {
	s := Const(1.5)
	if got := s.Current(); got != 1.5 {
		t.Errorf("Current = %v, want 1.5", got)
	}
}

func TestPulseDecay(t *testing.T) {
	now := time.Unix(1000, 0)
	p := NewPulse(2, time.Second)
	p.now = func() time.Time { return now }

	if got := p.Current(); got != 0 {
		t.Errorf("Current = %v before any hit, want 0", got)
	}

	p.Hit()
	if got := p.Current(); got != 2 {
		t.Errorf("Current = %v at hit time, want 2", got)
	}

	now = now.Add(500 * time.Millisecond)
	if got := p.Current(); got != 1 {
		t.Errorf("Current = %v at half window, want 1", got)
	}

	now = now.Add(600 * time.Millisecond)
	if got := p.Current(); got != 0 {
		t.Errorf("Current = %v past the window, want 0", got)
	}
}

func TestPulseRehitResets(t *testing.T) {
	now := time.Unix(1000, 0)
	p := NewPulse(2, time.Second)
	p.now = func() time.Time { return now }

	p.Hit()
	now = now.Add(900 * time.Millisecond)
	p.Hit()

	if got := p.Current(); got != 2 {
		t.Errorf("Current = %v right after a re-hit, want 2", got)
	}
}

func TestBlockIntensitySilence(t *testing.T) {
	buf := make([]byte, 512)
	if got := blockIntensity(buf, 64, 3); got != 0 {
		t.Errorf("intensity = %v for silence, want 0", got)
	}
}

func TestBlockIntensityEmptyBlock(t *testing.T) {
	if got := blockIntensity(nil, 64, 3); got != 0 {
		t.Errorf("intensity = %v for empty block, want 0", got)
	}
}

func TestBlockIntensityClamped(t *testing.T) {
	// Full-scale square wave; RMS is ~1, gain 64 pushes far past the clamp.
	buf := make([]byte, 512)
	for i := 0; i < len(buf); i += 2 {
		binary.LittleEndian.PutUint16(buf[i:], uint16(int16(32000)))
	}

	if got := blockIntensity(buf, 64, 3); got != 3 {
		t.Errorf("intensity = %v for a loud block, want the clamp 3", got)
	}
}

func TestBlockIntensityScalesWithGain(t *testing.T) {
	// Constant amplitude 3276.8 (~0.1 of full scale), gain 10 -> RMS*gain = 1.
	buf := make([]byte, 512)
	for i := 0; i < len(buf); i += 2 {
		binary.LittleEndian.PutUint16(buf[i:], uint16(int16(3277)))
	}

	got := blockIntensity(buf, 10, 3)
	if math.Abs(got-1) > 0.01 {
		t.Errorf("intensity = %v, want about 1", got)
	}
}
