package runner

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/roar-runner/internal/config"
	"github.com/vovakirdan/roar-runner/internal/core"
	"github.com/vovakirdan/roar-runner/internal/leaderboard"
	"github.com/vovakirdan/roar-runner/internal/signal"
)

// closeTo compares floats accumulated in 0.1 steps.
func closeTo(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

// newTestGame builds a game with spawning disabled so tests control the
// entity population directly.
func newTestGame(src signal.Source, board *leaderboard.Board) *Game {
	cfg := config.Default()
	cfg.Spawn.MaxObstacles = 0
	cfg.Spawn.MaxPowerUps = 0
	g := New(cfg, src, board)
	g.Reset(testRuntime())
	return g
}

func step(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

// groundObstacle returns an obstacle overlapping the grounded player.
func groundObstacle(cfg config.Config, speed float64) *Obstacle {
	return &Obstacle{
		Kind:  ObstacleBush,
		X:     cfg.Player.X,
		Y:     cfg.Field.Height - 60,
		W:     70,
		H:     50,
		Speed: speed,
	}
}

func TestScoreAccruesPerTick(t *testing.T) {
	g := newTestGame(signal.Const(0), nil)

	step(g, 10)

	if got := g.State().Score; got != 10 {
		t.Errorf("score = %d after 10 ticks, want 10", got)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	g := newTestGame(signal.Const(0), nil)

	g.session.Obstacles = append(g.session.Obstacles, groundObstacle(g.cfg, 0))
	step(g, 1)

	if g.session.Phase != PhaseGameOver {
		t.Fatalf("phase = %v after collision, want game over", g.session.Phase)
	}

	// The terminal check runs before scoring, so the fatal tick awards
	// nothing, and further steps are frozen.
	if got := g.State().Score; got != 0 {
		t.Errorf("score = %d on the fatal tick, want 0", got)
	}
	step(g, 5)
	if got := g.State().Score; got != 0 {
		t.Errorf("score = %d after game over, want 0", got)
	}
}

func TestInvincibilitySuppressesCollision(t *testing.T) {
	g := newTestGame(signal.Const(0), nil)

	g.session.Player.ApplyInvincibility(100)
	g.session.Obstacles = append(g.session.Obstacles, groundObstacle(g.cfg, 0))
	step(g, 10)

	if g.session.Phase != PhaseRunning {
		t.Errorf("phase = %v while invincible, want running", g.session.Phase)
	}
	if len(g.session.Obstacles) != 1 {
		t.Errorf("overlapped obstacle was removed; invincibility must not consume it")
	}
}

func TestPickupAppliedAndRemoved(t *testing.T) {
	g := newTestGame(signal.Const(0), nil)

	g.session.PowerUps = append(g.session.PowerUps, &PowerUp{
		Kind: PowerInvincibility,
		X:    g.cfg.Player.X,
		Y:    g.cfg.Field.Height - 60,
		W:    40,
		H:    40,
	})
	step(g, 1)

	if len(g.session.PowerUps) != 0 {
		t.Error("collected power-up should be removed from the field")
	}
	if !g.session.Player.Invincible {
		t.Error("invincibility pickup should apply its effect")
	}
	if g.session.Player.InvincibleTicks != g.cfg.PowerUps.Duration {
		t.Errorf("InvincibleTicks = %d, want %d",
			g.session.Player.InvincibleTicks, g.cfg.PowerUps.Duration)
	}
}

func TestPickupShieldsSameTickCollision(t *testing.T) {
	g := newTestGame(signal.Const(0), nil)

	// Pickup and obstacle overlap the player on the same tick. Pickups
	// resolve first, so the run survives.
	g.session.PowerUps = append(g.session.PowerUps, &PowerUp{
		Kind: PowerInvincibility,
		X:    g.cfg.Player.X,
		Y:    g.cfg.Field.Height - 60,
		W:    40,
		H:    40,
	})
	g.session.Obstacles = append(g.session.Obstacles, groundObstacle(g.cfg, 0))
	step(g, 1)

	if g.session.Phase != PhaseRunning {
		t.Errorf("phase = %v, want running; pickups resolve before the obstacle check", g.session.Phase)
	}
}

func TestAvoidedObstaclesBumpMultiplier(t *testing.T) {
	g := newTestGame(signal.Const(0), nil)

	// Each obstacle exits the left edge on its first advance.
	for i := 0; i < 5; i++ {
		g.session.Obstacles = append(g.session.Obstacles, &Obstacle{
			Kind: ObstacleLog, X: 10, Y: 0, W: 5, H: 5, Speed: 100,
		})
	}
	step(g, 1)

	if len(g.session.Obstacles) != 0 {
		t.Fatalf("obstacles left on field: %d, want 0", len(g.session.Obstacles))
	}
	if got := g.session.Score.Multiplier; !closeTo(got, 1.1) {
		t.Errorf("multiplier = %v after 5 avoided, want 1.1", got)
	}
	if g.session.Score.Streak != 0 {
		t.Errorf("streak = %d after bump, want 0", g.session.Score.Streak)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(signal.Const(0), nil)

	step(g, 3)
	g.Apply(RequestPause)
	step(g, 10)

	if got := g.session.Ticks; got != 3 {
		t.Errorf("ticks = %d while paused, want 3", got)
	}
	if !g.State().Paused {
		t.Error("state should report paused")
	}

	g.Apply(RequestResume)
	step(g, 1)
	if got := g.session.Ticks; got != 4 {
		t.Errorf("ticks = %d after resume, want 4", got)
	}
}

func TestInvalidRequestsIgnored(t *testing.T) {
	g := newTestGame(signal.Const(0), nil)

	// Resume, back, and restart mean nothing while running.
	g.Apply(RequestResume)
	g.Apply(RequestBack)
	g.Apply(RequestRestart)
	if g.session.Phase != PhaseRunning {
		t.Errorf("phase = %v, want running", g.session.Phase)
	}

	g.session.Phase = PhaseGameOver
	g.Apply(RequestPause)
	g.Apply(RequestResume)
	g.Apply(RequestLeaderboard)
	if g.session.Phase != PhaseGameOver {
		t.Errorf("phase = %v, want game over", g.session.Phase)
	}
}

func TestLeaderboardViewFreezesAndResumes(t *testing.T) {
	g := newTestGame(signal.Const(0), nil)

	step(g, 7)
	g.Apply(RequestLeaderboard)

	if g.session.Phase != PhaseLeaderboard {
		t.Fatalf("phase = %v, want leaderboard", g.session.Phase)
	}
	if got := len(g.Snapshot().TopScores); got != leaderboard.Size {
		t.Errorf("top scores = %d entries, want %d", got, leaderboard.Size)
	}
	step(g, 10)
	if got := g.session.Ticks; got != 7 {
		t.Errorf("ticks = %d in leaderboard view, want 7", got)
	}

	g.Apply(RequestBack)
	if g.session.Phase != PhaseRunning {
		t.Errorf("phase = %v after back, want running", g.session.Phase)
	}
	if got := g.State().Score; got != 7 {
		t.Errorf("score = %d after back, want 7", got)
	}
}

func TestRestartResetsRunKeepsHighScore(t *testing.T) {
	g := newTestGame(signal.Const(0), nil)

	step(g, 20)
	g.session.Obstacles = append(g.session.Obstacles, groundObstacle(g.cfg, 0))
	step(g, 1)
	if g.session.Phase != PhaseGameOver {
		t.Fatal("setup: expected game over")
	}

	g.Apply(RequestRestart)

	if g.session.Phase != PhaseRunning {
		t.Errorf("phase = %v after restart, want running", g.session.Phase)
	}
	if got := g.State().Score; got != 0 {
		t.Errorf("score = %d after restart, want 0", got)
	}
	if got := g.session.Score.Multiplier; got != 1 {
		t.Errorf("multiplier = %v after restart, want 1", got)
	}
	if len(g.session.Obstacles) != 0 || len(g.session.PowerUps) != 0 {
		t.Error("entities should be cleared on restart")
	}
	if got := g.State().HighScore; got != 20 {
		t.Errorf("high score = %d after restart, want 20", got)
	}
}

func TestGameOverPersistsHighScore(t *testing.T) {
	board, err := leaderboard.New(filepath.Join(t.TempDir(), "scores.txt"))
	if err != nil {
		t.Fatalf("leaderboard.New: %v", err)
	}
	g := newTestGame(signal.Const(0), board)

	step(g, 42)
	g.session.Obstacles = append(g.session.Obstacles, groundObstacle(g.cfg, 0))
	step(g, 1)

	got := board.Load()
	if got[0] != 42 {
		t.Errorf("persisted top score = %d, want 42", got[0])
	}
}

func TestLoudSignalLaunchesPlayer(t *testing.T) {
	cell := signal.NewCell(0)
	g := newTestGame(cell, nil)

	floor := g.cfg.Field.Height - g.cfg.Player.Height
	cell.Store(2)
	step(g, 1)

	if g.session.Player.Y >= floor {
		t.Errorf("player Y = %v after loud tick, want above the floor %v",
			g.session.Player.Y, floor)
	}

	// Quiet again; the player falls back and lands.
	cell.Store(0)
	step(g, 100)
	if g.session.Player.Y != floor {
		t.Errorf("player Y = %v after settling, want %v", g.session.Player.Y, floor)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() Snapshot {
		cfg := config.Default()
		g := New(cfg, signal.Const(1), nil)
		g.Reset(testRuntime())
		step(g, 500)
		return g.Snapshot()
	}

	a, b := run(), run()

	if a.Score != b.Score || a.Tick != b.Tick || a.Phase != b.Phase {
		t.Errorf("runs diverged: score %d/%d tick %d/%d phase %v/%v",
			a.Score, b.Score, a.Tick, b.Tick, a.Phase, b.Phase)
	}
	if a.Player.Y != b.Player.Y {
		t.Errorf("player Y diverged: %v vs %v", a.Player.Y, b.Player.Y)
	}
	if len(a.Obstacles) != len(b.Obstacles) || len(a.PowerUps) != len(b.PowerUps) {
		t.Errorf("entity counts diverged: %d/%d obstacles, %d/%d power-ups",
			len(a.Obstacles), len(b.Obstacles), len(a.PowerUps), len(b.PowerUps))
	}
}

func TestSpawnerRespectsCaps(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.ObstacleOdds = 1 // Every trial hits
	cfg.Spawn.PowerUpOdds = 1
	g := New(cfg, signal.Const(0), nil)
	g.Reset(testRuntime())

	step(g, 200)

	if got := len(g.session.Obstacles); got > cfg.Spawn.MaxObstacles {
		t.Errorf("obstacles = %d, cap is %d", got, cfg.Spawn.MaxObstacles)
	}
	if got := len(g.session.PowerUps); got > cfg.Spawn.MaxPowerUps {
		t.Errorf("power-ups = %d, cap is %d", got, cfg.Spawn.MaxPowerUps)
	}
}

func TestScoreStateMultiplierSteps(t *testing.T) {
	s := NewScoreState()

	for i := 0; i < 12; i++ {
		s.ObstacleAvoided()
	}

	// Two full streaks of five, two left over. The steps accumulate in
	// floating point, so compare within an epsilon.
	if !closeTo(s.Multiplier, 1.2) {
		t.Errorf("multiplier = %v, want 1.2", s.Multiplier)
	}
	if s.Streak != 2 {
		t.Errorf("streak = %d, want 2", s.Streak)
	}

	s.Tick()
	if s.Points != 1 {
		t.Errorf("points = %d with multiplier 1.2, want 1 (floored)", s.Points)
	}
}

func TestEnvironmentCycleAndScroll(t *testing.T) {
	cfg := config.Default()
	env := NewEnvironment()

	for i := 0; i < cfg.Cycle.Length; i++ {
		env.Tick(0, cfg.Cycle.Length, cfg.Field.Width)
	}
	if env.IsDay {
		t.Error("environment should be night after one full cycle")
	}
	for i := 0; i < cfg.Cycle.Length; i++ {
		env.Tick(0, cfg.Cycle.Length, cfg.Field.Width)
	}
	if !env.IsDay {
		t.Error("environment should be day again after two cycles")
	}

	if env.ScrollX > 0 || env.ScrollX <= -cfg.Field.Width {
		t.Errorf("scroll offset %v escaped (-%v, 0]", env.ScrollX, cfg.Field.Width)
	}
}

func TestRenderFitsScreen(t *testing.T) {
	g := newTestGame(signal.Const(1), nil)
	s := core.NewScreen(80, 24)

	step(g, 50)
	g.Render(s)

	out := s.String()
	if out == "" {
		t.Fatal("render produced no output")
	}

	g.Apply(RequestPause)
	g.Render(s)

	g.session.Phase = PhaseGameOver
	g.Render(s)

	g.session.Phase = PhaseLeaderboard
	g.topScores = []int{30, 20, 10}
	g.Render(s)
}
