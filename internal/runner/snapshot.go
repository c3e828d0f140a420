package runner

// PlayerView is the renderer-facing slice of player state.
type PlayerView struct {
	X, Y, W, H      float64
	VelY            float64
	OnGround        bool
	Invincible      bool
	FlickerHidden   bool
	SpriteFrame     int
	InvincibleTicks int
	SpeedBoostTicks int
}

// EntityView is the renderer-facing slice of one entity.
type EntityView struct {
	Kind       string
	X, Y, W, H float64
}

// Snapshot captures everything the renderer consumes for one tick, plus
// enough state for determinism checks in tests.
type Snapshot struct {
	Tick  int
	Phase Phase

	Player    PlayerView
	Obstacles []EntityView
	PowerUps  []EntityView

	Score      int
	Multiplier float64
	Streak     int
	HighScore  int

	IsDay   bool
	ScrollX float64
	Signal  float64

	// TopScores is populated only while the leaderboard view is open.
	TopScores []int
}

// Snapshot returns the current renderer-facing state.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	p := s.Player

	snap := Snapshot{
		Tick:  s.Ticks,
		Phase: s.Phase,
		Player: PlayerView{
			X:               p.X,
			Y:               p.Y,
			W:               p.W,
			H:               p.H,
			VelY:            p.VelY,
			OnGround:        p.Ground,
			Invincible:      p.Invincible,
			FlickerHidden:   p.FlickerHidden(),
			SpriteFrame:     p.SpriteFrame,
			InvincibleTicks: p.InvincibleTicks,
			SpeedBoostTicks: p.SpeedBoostTicks,
		},
		Score:      s.Score.Points,
		Multiplier: s.Score.Multiplier,
		Streak:     s.Score.Streak,
		HighScore:  g.highScore,
		IsDay:      s.Env.IsDay,
		ScrollX:    s.Env.ScrollX,
		Signal:     g.lastSignal,
		TopScores:  g.topScores,
	}

	snap.Obstacles = make([]EntityView, 0, len(s.Obstacles))
	for _, o := range s.Obstacles {
		snap.Obstacles = append(snap.Obstacles, EntityView{
			Kind: o.Kind.String(), X: o.X, Y: o.Y, W: o.W, H: o.H,
		})
	}

	snap.PowerUps = make([]EntityView, 0, len(s.PowerUps))
	for _, u := range s.PowerUps {
		snap.PowerUps = append(snap.PowerUps, EntityView{
			Kind: u.Kind.String(), X: u.X, Y: u.Y, W: u.W, H: u.H,
		})
	}

	return snap
}
