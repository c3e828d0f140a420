package runner

import (
	"math/rand"

	"github.com/vovakirdan/roar-runner/internal/core"
)

// ObstacleKind is a closed set of jungle hazards.
type ObstacleKind int

const (
	ObstacleLog ObstacleKind = iota
	ObstacleVine
	ObstacleBush
	obstacleKindCount // Sentinel for uniform draws
)

// String returns the kind name for snapshots and logs.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleLog:
		return "log"
	case ObstacleVine:
		return "vine"
	case ObstacleBush:
		return "bush"
	default:
		return "?"
	}
}

// size returns the kind's collision box dimensions in world units.
func (k ObstacleKind) size() (w, h float64) {
	switch k {
	case ObstacleLog:
		return 80, 40
	case ObstacleVine:
		return 100, 20
	default: // bush
		return 70, 50
	}
}

// spawnY places the kind vertically: logs and bushes sit at ground level,
// vines hang in a fixed elevated band.
func (k ObstacleKind) spawnY(rng *rand.Rand, fieldH float64) float64 {
	switch k {
	case ObstacleLog:
		return fieldH - 50
	case ObstacleVine:
		return float64(50 + rng.Intn(21)) // Band [50, 70]
	default: // bush
		return fieldH - 60
	}
}

// PowerUpKind is a closed set of timed pickups.
type PowerUpKind int

const (
	PowerSpeedBoost PowerUpKind = iota
	PowerInvincibility
	powerUpKindCount // Sentinel for uniform draws
)

// String returns the kind name for snapshots and logs.
func (k PowerUpKind) String() string {
	switch k {
	case PowerSpeedBoost:
		return "speed_boost"
	case PowerInvincibility:
		return "invincibility"
	default:
		return "?"
	}
}

// Obstacle is a hazard scrolling right to left across the field.
type Obstacle struct {
	Kind  ObstacleKind
	X, Y  float64
	W, H  float64
	Speed float64
}

// Advance moves the obstacle one tick leftward.
func (o *Obstacle) Advance() {
	o.X -= o.Speed
}

// Alive reports whether any part of the obstacle is still on the field.
func (o *Obstacle) Alive() bool {
	return o.X+o.W >= 0
}

// Rect returns the obstacle's collision box.
func (o *Obstacle) Rect() core.FRect {
	return core.NewFRect(o.X, o.Y, o.W, o.H)
}

// PowerUp is a pickup scrolling right to left across the field.
type PowerUp struct {
	Kind  PowerUpKind
	X, Y  float64
	W, H  float64
	Speed float64
}

// Advance moves the power-up one tick leftward.
func (u *PowerUp) Advance() {
	u.X -= u.Speed
}

// Alive reports whether any part of the power-up is still on the field.
func (u *PowerUp) Alive() bool {
	return u.X+u.W >= 0
}

// Rect returns the power-up's collision box.
func (u *PowerUp) Rect() core.FRect {
	return core.NewFRect(u.X, u.Y, u.W, u.H)
}
