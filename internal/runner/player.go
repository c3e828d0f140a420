package runner

import (
	"math"

	"github.com/vovakirdan/roar-runner/internal/config"
	"github.com/vovakirdan/roar-runner/internal/core"
)

// Player is the runner's physics body. The world scrolls around a player
// whose x stays on the left half of the field; only y is simulated.
type Player struct {
	X, Y   float64
	VelY   float64
	W, H   float64
	Ground bool // On the floor, eligible to jump

	Invincible      bool
	InvincibleTicks int
	SpeedBoostTicks int
	FlashTimer      int // Cycles [0, flickerPeriod) while invincible

	SpriteFrame int
	frameCount  int

	frameDelay    int
	numFrames     int
	flickerPeriod int
}

// NewPlayer creates the player standing on the floor.
func NewPlayer(cfg config.Config) *Player {
	return &Player{
		X:             cfg.Player.X,
		Y:             cfg.Field.Height - cfg.Player.Height,
		W:             cfg.Player.Width,
		H:             cfg.Player.Height,
		Ground:        true,
		frameDelay:    cfg.Player.FrameDelay,
		numFrames:     cfg.Player.NumFrames,
		flickerPeriod: cfg.PowerUps.FlickerPeriod,
	}
}

// Jump launches the player in proportion to the loudness signal. A no-op
// unless the player is on the ground: there is no double-jump. The signal's
// effect is capped at jumpClamp regardless of the capture ceiling.
func (p *Player) Jump(strength, sig, jumpClamp float64) {
	if !p.Ground {
		return
	}
	p.VelY = -strength * math.Min(sig, jumpClamp)
	if p.VelY != 0 {
		p.Ground = false
	}
}

// Update integrates one tick of vertical physics and advances the power-up
// timers and run animation.
func (p *Player) Update(gravity, fieldW, fieldH float64) {
	p.VelY += gravity
	p.Y += p.VelY

	floor := fieldH - p.H
	if p.Y >= floor {
		p.Y = floor
		p.VelY = 0
		p.Ground = true
	} else if p.Y < 0 {
		// Ceiling clamp. Ground stays false: the player cannot re-jump
		// while pinned at the top.
		p.Y = 0
		p.VelY = 0
	}

	// The player never leaves the left half of the field.
	p.X = core.ClampF(p.X, 0, fieldW/2-p.W)

	if p.Invincible {
		p.InvincibleTicks--
		if p.InvincibleTicks <= 0 {
			p.Invincible = false
			p.InvincibleTicks = 0
			p.FlashTimer = 0
		} else {
			p.FlashTimer++
			if p.FlashTimer >= p.flickerPeriod {
				p.FlashTimer = 0
			}
		}
	}

	if p.SpeedBoostTicks > 0 {
		p.SpeedBoostTicks--
	}

	p.frameCount++
	if p.frameDelay > 0 && p.frameCount%p.frameDelay == 0 {
		p.SpriteFrame = (p.SpriteFrame + 1) % core.Max(p.numFrames, 1)
	}
}

// ApplySpeedBoost resets the speed boost timer to its full duration.
func (p *Player) ApplySpeedBoost(duration int) {
	p.SpeedBoostTicks = duration
}

// ApplyInvincibility grants invincibility for the full duration.
func (p *Player) ApplyInvincibility(duration int) {
	p.Invincible = true
	p.InvincibleTicks = duration
}

// FlickerHidden reports whether the renderer should hide or dim the player
// this tick. Purely a drawing concern; collisions ignore it.
func (p *Player) FlickerHidden() bool {
	return p.Invincible && p.FlashTimer < p.flickerPeriod/2
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.FRect {
	return core.NewFRect(p.X, p.Y, p.W, p.H)
}
