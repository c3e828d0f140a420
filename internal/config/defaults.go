package config

import (
	_ "embed"
)

//go:embed defaults/roar.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the 800x400 jungle field with
// the reference physics and spawn odds.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 400,
		},
		Physics: PhysicsConfig{
			Gravity:        10,
			JumpStrength:   15,
			BaseSpeed:      5,
			SpeedIncrement: 0.005,
		},
		Player: PlayerConfig{
			X:          100,
			Width:      60,
			Height:     80,
			FrameDelay: 5,
			NumFrames:  4,
		},
		Spawn: SpawnConfig{
			MaxObstacles:   2,
			ObstacleOdds:   50,
			MaxPowerUps:    1,
			PowerUpOdds:    200,
			SpeedJitterMin: 1.2,
			SpeedJitterMax: 1.8,
		},
		PowerUps: PowerUpConfig{
			Duration:      300,
			FlickerPeriod: 10,
		},
		Cycle: CycleConfig{
			Length: 1000,
		},
		Signal: SignalConfig{
			Clamp:     3,
			JumpClamp: 2,
			Gain:      64,
			Fallback:  1.0,
		},
	}
}
