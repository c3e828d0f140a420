// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// Config contains all tuning for a run. Values are in world units: the
// field is a continuous plane scrolled right to left, the renderer scales
// it to the terminal.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
	Cycle    CycleConfig    `yaml:"cycle"`
	Signal   SignalConfig   `yaml:"signal"`
}

// FieldConfig defines the playfield dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player and world movement parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	JumpStrength   float64 `yaml:"jump_strength"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to base speed per point of score
}

// PlayerConfig defines the runner's placement and sprite animation.
type PlayerConfig struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FrameDelay int     `yaml:"frame_delay"` // Ticks between animation frames
	NumFrames  int     `yaml:"num_frames"`
}

// SpawnConfig defines obstacle and power-up generation.
type SpawnConfig struct {
	MaxObstacles   int     `yaml:"max_obstacles"`
	ObstacleOdds   int     `yaml:"obstacle_odds"` // 1-in-N chance per tick
	MaxPowerUps    int     `yaml:"max_powerups"`
	PowerUpOdds    int     `yaml:"powerup_odds"` // 1-in-N chance per tick
	SpeedJitterMin float64 `yaml:"speed_jitter_min"`
	SpeedJitterMax float64 `yaml:"speed_jitter_max"`
}

// PowerUpConfig defines timed effect behavior.
type PowerUpConfig struct {
	Duration      int `yaml:"duration"`       // Effect length in ticks
	FlickerPeriod int `yaml:"flicker_period"` // Invincibility flicker cycle in ticks
}

// CycleConfig defines the day/night rhythm.
type CycleConfig struct {
	Length int `yaml:"length"` // Ticks per day or night phase
}

// SignalConfig defines how the loudness reading maps to jumping.
type SignalConfig struct {
	Clamp     float64 `yaml:"clamp"`      // Capture ceiling for readings
	JumpClamp float64 `yaml:"jump_clamp"` // Max jump multiplier from the signal
	Gain      float64 `yaml:"gain"`       // Microphone RMS scaling
	Fallback  float64 `yaml:"fallback"`   // Constant level when capture fails
}
