package config

// DifficultyPreset is a named difficulty level selectable from the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown values mean "use the
// config as-is".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	}
	return "", false
}

// ApplyPreset adjusts spawn odds and the score-based speed ramp. The normal
// preset leaves the config untouched; fixed disables the ramp entirely so
// runs stay at base speed.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.ObstacleOdds = 80
		cfg.Spawn.PowerUpOdds = 120
		cfg.Physics.SpeedIncrement = 0.003
	case DifficultyHard:
		cfg.Spawn.ObstacleOdds = 35
		cfg.Spawn.MaxObstacles = 3
		cfg.Spawn.PowerUpOdds = 300
		cfg.Physics.SpeedIncrement = 0.008
	case DifficultyFixed:
		cfg.Physics.SpeedIncrement = 0
	}
}
