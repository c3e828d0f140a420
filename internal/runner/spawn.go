package runner

import (
	"math/rand"

	"github.com/vovakirdan/roar-runner/internal/config"
)

// Spawner rolls per-tick spawn trials for obstacles and power-ups,
// respecting the population caps.
type Spawner struct {
	rng *rand.Rand
	cfg config.Config
}

// NewSpawner creates a spawner drawing from the given RNG.
func NewSpawner(rng *rand.Rand, cfg config.Config) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// baseSpeed is the scroll speed floor, ramping with the current score.
func (s *Spawner) baseSpeed(score int) float64 {
	return s.cfg.Physics.BaseSpeed + s.cfg.Physics.SpeedIncrement*float64(score)
}

// MaybeObstacle runs one spawn trial. Returns nil when the population cap
// is reached or the 1-in-N roll misses. Obstacle speed gets a uniform
// random jitter on top of the base speed.
func (s *Spawner) MaybeObstacle(score, population int) *Obstacle {
	if population >= s.cfg.Spawn.MaxObstacles {
		return nil
	}
	if s.rng.Intn(s.cfg.Spawn.ObstacleOdds) != 0 {
		return nil
	}

	kind := ObstacleKind(s.rng.Intn(int(obstacleKindCount)))
	w, h := kind.size()
	jitter := s.cfg.Spawn.SpeedJitterMin +
		s.rng.Float64()*(s.cfg.Spawn.SpeedJitterMax-s.cfg.Spawn.SpeedJitterMin)

	return &Obstacle{
		Kind:  kind,
		X:     s.cfg.Field.Width,
		Y:     kind.spawnY(s.rng, s.cfg.Field.Height),
		W:     w,
		H:     h,
		Speed: s.baseSpeed(score) * jitter,
	}
}

// MaybePowerUp runs one spawn trial. Power-ups move at the unjittered base
// speed and sit in the ground band.
func (s *Spawner) MaybePowerUp(score, population int) *PowerUp {
	if population >= s.cfg.Spawn.MaxPowerUps {
		return nil
	}
	if s.rng.Intn(s.cfg.Spawn.PowerUpOdds) != 0 {
		return nil
	}

	kind := PowerUpKind(s.rng.Intn(int(powerUpKindCount)))

	return &PowerUp{
		Kind:  kind,
		X:     s.cfg.Field.Width,
		Y:     s.cfg.Field.Height - 60,
		W:     40,
		H:     40,
		Speed: s.baseSpeed(score),
	}
}
