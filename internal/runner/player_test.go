package runner

import (
	"testing"

	"github.com/vovakirdan/roar-runner/internal/config"
)

func TestPlayerStartsOnFloor(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	if !p.Ground {
		t.Error("player should start on the ground")
	}
	wantY := cfg.Field.Height - cfg.Player.Height
	if p.Y != wantY {
		t.Errorf("start Y = %v, want %v", p.Y, wantY)
	}
}

func TestPlayerJumpScalesWithSignal(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	p.Jump(cfg.Physics.JumpStrength, 1.5, cfg.Signal.JumpClamp)

	if p.VelY != -15*1.5 {
		t.Errorf("VelY = %v, want %v", p.VelY, -15*1.5)
	}
	if p.Ground {
		t.Error("player should leave the ground after jumping")
	}
}

func TestPlayerJumpClamped(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	// Signal 5 exceeds the jump clamp of 2.
	p.Jump(cfg.Physics.JumpStrength, 5, cfg.Signal.JumpClamp)

	if p.VelY != -30 {
		t.Errorf("VelY = %v, want -30", p.VelY)
	}
}

func TestPlayerNoDoubleJump(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	p.Jump(cfg.Physics.JumpStrength, 2, cfg.Signal.JumpClamp)
	velAfterFirst := p.VelY

	// Airborne; a louder signal must not relaunch.
	p.Jump(cfg.Physics.JumpStrength, 2, cfg.Signal.JumpClamp)
	if p.VelY != velAfterFirst {
		t.Errorf("airborne jump changed VelY from %v to %v", velAfterFirst, p.VelY)
	}
}

func TestPlayerSilentJumpStaysGrounded(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	p.Jump(cfg.Physics.JumpStrength, 0, cfg.Signal.JumpClamp)

	if !p.Ground {
		t.Error("zero signal should not lift the player off the ground")
	}
}

func TestPlayerLandsOnFloor(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	p.Jump(cfg.Physics.JumpStrength, 2, cfg.Signal.JumpClamp)
	for i := 0; i < 100; i++ {
		p.Update(cfg.Physics.Gravity, cfg.Field.Width, cfg.Field.Height)
	}

	floor := cfg.Field.Height - cfg.Player.Height
	if p.Y != floor {
		t.Errorf("player Y = %v after settling, want %v", p.Y, floor)
	}
	if !p.Ground {
		t.Error("player should be grounded after settling")
	}
	if p.VelY != 0 {
		t.Errorf("VelY = %v after settling, want 0", p.VelY)
	}
}

func TestPlayerCeilingClamp(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	p.Y = 5
	p.VelY = -50
	p.Ground = false
	p.Update(cfg.Physics.Gravity, cfg.Field.Width, cfg.Field.Height)

	if p.Y != 0 {
		t.Errorf("Y = %v at the ceiling, want 0", p.Y)
	}
	if p.VelY != 0 {
		t.Errorf("VelY = %v at the ceiling, want 0", p.VelY)
	}
	if p.Ground {
		t.Error("ceiling clamp must not re-enable jumping")
	}
}

func TestPlayerInvincibilityExpires(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	p.ApplyInvincibility(3)
	for i := 0; i < 3; i++ {
		if !p.Invincible {
			t.Fatalf("invincibility ended early at tick %d", i)
		}
		p.Update(cfg.Physics.Gravity, cfg.Field.Width, cfg.Field.Height)
	}

	if p.Invincible {
		t.Error("invincibility should expire after its duration")
	}
	if p.FlashTimer != 0 {
		t.Errorf("FlashTimer = %d after expiry, want 0", p.FlashTimer)
	}
}

func TestPlayerSpeedBoostCountsDown(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	p.ApplySpeedBoost(2)
	p.Update(cfg.Physics.Gravity, cfg.Field.Width, cfg.Field.Height)
	if p.SpeedBoostTicks != 1 {
		t.Errorf("SpeedBoostTicks = %d, want 1", p.SpeedBoostTicks)
	}
	p.Update(cfg.Physics.Gravity, cfg.Field.Width, cfg.Field.Height)
	if p.SpeedBoostTicks != 0 {
		t.Errorf("SpeedBoostTicks = %d, want 0", p.SpeedBoostTicks)
	}
}

func TestPlayerPickupRefreshesDuration(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	p.ApplyInvincibility(300)
	for i := 0; i < 100; i++ {
		p.Update(cfg.Physics.Gravity, cfg.Field.Width, cfg.Field.Height)
	}
	p.ApplyInvincibility(300)

	if p.InvincibleTicks != 300 {
		t.Errorf("InvincibleTicks = %d after refresh, want 300", p.InvincibleTicks)
	}
}

func TestPlayerAnimationAdvances(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	for i := 0; i < cfg.Player.FrameDelay; i++ {
		p.Update(cfg.Physics.Gravity, cfg.Field.Width, cfg.Field.Height)
	}
	if p.SpriteFrame != 1 {
		t.Errorf("SpriteFrame = %d after one frame delay, want 1", p.SpriteFrame)
	}

	// A full cycle wraps back to frame 0.
	for i := 0; i < cfg.Player.FrameDelay*(cfg.Player.NumFrames-1); i++ {
		p.Update(cfg.Physics.Gravity, cfg.Field.Width, cfg.Field.Height)
	}
	if p.SpriteFrame != 0 {
		t.Errorf("SpriteFrame = %d after full cycle, want 0", p.SpriteFrame)
	}
}
