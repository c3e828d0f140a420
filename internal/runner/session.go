package runner

import (
	"math/rand"

	"github.com/vovakirdan/roar-runner/internal/config"
)

// Phase is the top-level state of the run.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
	PhaseLeaderboard
)

// String returns the phase name for snapshots and logs.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseLeaderboard:
		return "leaderboard"
	default:
		return "?"
	}
}

// Request is an abstract user intent translated by the host shell from its
// own input mechanism. Requests that are invalid in the current phase are
// silently ignored, never errors.
type Request int

const (
	RequestPause Request = iota
	RequestResume
	RequestLeaderboard
	RequestBack
	RequestRestart
)

// Session aggregates everything a single run owns. It is recreated
// wholesale on restart; nothing in it survives a new run except the
// process-level high score, which lives on Game.
type Session struct {
	Player    *Player
	Obstacles []*Obstacle
	PowerUps  []*PowerUp
	Score     ScoreState
	Env       Environment
	Phase     Phase
	Ticks     int
}

// newSession builds a fresh run in the Running phase.
func newSession(cfg config.Config) *Session {
	return &Session{
		Player:    NewPlayer(cfg),
		Obstacles: make([]*Obstacle, 0, cfg.Spawn.MaxObstacles),
		PowerUps:  make([]*PowerUp, 0, cfg.Spawn.MaxPowerUps),
		Score:     NewScoreState(),
		Env:       NewEnvironment(),
		Phase:     PhaseRunning,
	}
}

// advanceObstacles moves every obstacle one tick and partitions the
// collection into survivors, producing a new slice instead of mutating
// during iteration. Each retired obstacle counts toward the avoidance
// streak exactly once.
func (s *Session) advanceObstacles() {
	alive := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.Advance()
		if o.Alive() {
			alive = append(alive, o)
			continue
		}
		s.Score.ObstacleAvoided()
	}
	s.Obstacles = alive
}

// advancePowerUps moves every power-up one tick, dropping any that have
// scrolled off the left edge.
func (s *Session) advancePowerUps() {
	alive := s.PowerUps[:0]
	for _, u := range s.PowerUps {
		u.Advance()
		if u.Alive() {
			alive = append(alive, u)
		}
	}
	s.PowerUps = alive
}

// resolvePickups applies and removes every power-up overlapping the
// player. Pickup detection is unconditional on invincibility and runs
// before the terminal obstacle check each tick.
func (s *Session) resolvePickups(duration int) {
	playerRect := s.Player.Rect()
	remaining := s.PowerUps[:0]
	for _, u := range s.PowerUps {
		if !playerRect.Intersects(u.Rect()) {
			remaining = append(remaining, u)
			continue
		}
		switch u.Kind {
		case PowerSpeedBoost:
			s.Player.ApplySpeedBoost(duration)
		case PowerInvincibility:
			s.Player.ApplyInvincibility(duration)
		}
	}
	s.PowerUps = remaining
}

// hitObstacle reports whether the player overlaps any obstacle. While
// invincible, obstacle collisions are suppressed entirely: no removal, no
// game over.
func (s *Session) hitObstacle() bool {
	if s.Player.Invincible {
		return false
	}
	playerRect := s.Player.Rect()
	for _, o := range s.Obstacles {
		if playerRect.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// spawn runs this tick's spawn trials against the current populations.
func (s *Session) spawn(sp *Spawner) {
	if o := sp.MaybeObstacle(s.Score.Points, len(s.Obstacles)); o != nil {
		s.Obstacles = append(s.Obstacles, o)
	}
	if u := sp.MaybePowerUp(s.Score.Points, len(s.PowerUps)); u != nil {
		s.PowerUps = append(s.PowerUps, u)
	}
}

// newRNG derives the session RNG from a seed.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
