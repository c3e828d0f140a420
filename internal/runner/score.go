package runner

// streakTarget is the number of consecutively avoided obstacles that earns
// a multiplier bump.
const streakTarget = 5

// multiplierStep is added to the multiplier at each completed streak.
const multiplierStep = 0.1

// ScoreState accumulates points per tick and tracks the avoidance streak.
// The multiplier only ever increases; nothing short of a full session
// restart resets it.
type ScoreState struct {
	Points     int
	Multiplier float64
	Streak     int
}

// NewScoreState starts a fresh score at multiplier 1.
func NewScoreState() ScoreState {
	return ScoreState{Multiplier: 1}
}

// Tick awards this tick's points: floor(1 x multiplier).
func (s *ScoreState) Tick() {
	s.Points += int(1 * s.Multiplier)
}

// ObstacleAvoided records an obstacle that left the field without a
// collision. Every streakTarget-th avoidance bumps the multiplier and
// resets the streak.
func (s *ScoreState) ObstacleAvoided() {
	s.Streak++
	if s.Streak >= streakTarget {
		s.Multiplier += multiplierStep
		s.Streak = 0
	}
}
