// Package runner implements the voice-controlled jungle runner: a player
// jumps in proportion to ambient loudness, dodging scrolling obstacles and
// collecting timed power-ups. The simulation is pure and tick-driven; the
// platform layer owns the terminal, the microphone, and score persistence.
package runner

import (
	"math"

	"github.com/vovakirdan/roar-runner/internal/config"
	"github.com/vovakirdan/roar-runner/internal/core"
	"github.com/vovakirdan/roar-runner/internal/leaderboard"
	"github.com/vovakirdan/roar-runner/internal/signal"
)

// Game orchestrates one session per run and owns the phase transitions.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig

	session *Session
	spawner *Spawner

	source signal.Source
	board  *leaderboard.Board // May be nil; persistence is best-effort

	highScore  int
	topScores  []int // Cached while the leaderboard view is open
	lastSignal float64
}

// New creates a game reading loudness from source and persisting top
// scores to board. Either collaborator may be a no-op (Const source, nil
// board); the game itself never fails.
func New(cfg config.Config, source signal.Source, board *leaderboard.Board) *Game {
	if source == nil {
		source = signal.Const(cfg.Signal.Fallback)
	}
	return &Game{
		cfg:    cfg,
		source: source,
		board:  board,
	}
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return "roar"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Roar Runner"
}

// Reset initializes or restarts the game. The session is recreated from
// initial values; the process-level high score and the persisted
// leaderboard are left untouched.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	rng := newRNG(runtime.Seed)
	g.spawner = NewSpawner(rng, g.cfg)
	g.session = newSession(g.cfg)
	g.topScores = nil
	g.lastSignal = 0
}

// Apply processes one abstract user request against the phase machine.
// Requests that are invalid in the current phase are ignored.
func (g *Game) Apply(req Request) {
	switch g.session.Phase {
	case PhaseRunning:
		switch req {
		case RequestPause:
			g.session.Phase = PhasePaused
		case RequestLeaderboard:
			// Session state is frozen, not reset.
			g.enterLeaderboardView()
		}
	case PhasePaused:
		if req == RequestResume {
			g.session.Phase = PhaseRunning
		}
	case PhaseLeaderboard:
		if req == RequestBack {
			g.session.Phase = PhaseRunning
			g.topScores = nil
		}
	case PhaseGameOver:
		if req == RequestRestart {
			g.Reset(g.runtime)
		}
	}
}

// Step advances the game by one fixed tick. Simulation only runs in the
// Running phase; every other phase just answers requests.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.applyInput(in)

	if g.session.Phase == PhaseRunning {
		g.tick()
	}

	return core.StepResult{State: g.State()}
}

// applyInput maps triggered actions to state machine requests. The order
// here is irrelevant: at most one of them is valid in any phase.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.Apply(RequestPause)
	}
	if in.Has(core.ActionResume) {
		g.Apply(RequestResume)
	}
	if in.Has(core.ActionLeaderboard) {
		g.Apply(RequestLeaderboard)
	}
	if in.Has(core.ActionBack) {
		g.Apply(RequestBack)
	}
	if in.Has(core.ActionRestart) {
		g.Apply(RequestRestart)
	}
}

// tick runs one simulation step: signal read, jump, physics, spawning,
// entity advancement, pickups, the terminal obstacle check, scoring, and
// the environment cycle.
func (g *Game) tick() {
	s := g.session

	sig := math.Min(math.Max(g.source.Current(), 0), g.cfg.Signal.Clamp)
	g.lastSignal = sig

	s.Player.Jump(g.cfg.Physics.JumpStrength, sig, g.cfg.Signal.JumpClamp)
	s.Player.Update(g.cfg.Physics.Gravity, g.cfg.Field.Width, g.cfg.Field.Height)

	s.spawn(g.spawner)
	s.advanceObstacles()
	s.advancePowerUps()

	// Pickups resolve before the terminal check and regardless of
	// invincibility.
	s.resolvePickups(g.cfg.PowerUps.Duration)

	if s.hitObstacle() {
		g.enterGameOver()
		return
	}

	s.Score.Tick()
	s.Env.Tick(s.Score.Points, g.cfg.Cycle.Length, g.cfg.Field.Width)
	s.Ticks++
}

// enterGameOver transitions to the GameOver phase and, when the run beat
// the process high score, pushes it into the persisted leaderboard.
func (g *Game) enterGameOver() {
	g.session.Phase = PhaseGameOver

	score := g.session.Score.Points
	if score > g.highScore {
		g.highScore = score
		if g.board != nil {
			// Best-effort persistence; a write failure never ends the
			// session.
			_ = g.board.Update(score)
		}
	}
}

// enterLeaderboardView freezes the run and caches the persisted top
// scores for rendering.
func (g *Game) enterLeaderboardView() {
	g.session.Phase = PhaseLeaderboard
	if g.board != nil {
		g.topScores = g.board.Load()
	} else {
		g.topScores = make([]int, leaderboard.Size)
	}
}

// State returns the platform-facing run status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score.Points,
		HighScore: g.highScore,
		GameOver:  g.session.Phase == PhaseGameOver,
		Paused:    g.session.Phase == PhasePaused || g.session.Phase == PhaseLeaderboard,
	}
}

// Session exposes the current run for the platform layer (run statistics
// on game over).
func (g *Game) Session() *Session {
	return g.session
}
