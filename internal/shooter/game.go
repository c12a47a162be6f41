package shooter

import (
	"github.com/vovakirdan/star-shooter/internal/config"
	"github.com/vovakirdan/star-shooter/internal/core"
)

// Game adapts a Simulation to the platform loop: it turns input frames into
// intents, runs one fixed-length tick per Step and decides when the run ends.
type Game struct {
	tuning config.ShooterConfig
	sim    *Simulation
	snap   Snapshot
	stars  starField
	view   viewport
	dt     float64

	paused   bool
	gameOver bool
}

// New creates a game that builds its ships from tuning.
func New(tuning config.ShooterConfig) *Game {
	return &Game{tuning: tuning}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Shooter"
}

// Reset starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = 1 / float64(tickRate)

	g.sim = NewSimulation(g.tuning, NewRand(cfg.Seed))
	g.snap = g.sim.Snapshot()
	g.stars = newStarField(cfg.Seed)
	g.view = fitViewport(cfg.ScreenW, cfg.ScreenH)
	g.paused = false
	g.gameOver = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.snap = g.sim.Tick(g.dt, g.intent(in))
	if g.snap.Lives < 0 {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// intent maps held actions and the pointer onto player movement.
func (g *Game) intent(in core.InputFrame) Intent {
	intent := Intent{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}

	if in.Pointer.Active && g.view.contains(in.Pointer.X, in.Pointer.Y) {
		intent.TargetX, intent.TargetY = g.view.toWorld(in.Pointer.X, in.Pointer.Y)
		intent.HasTarget = true
	}

	return intent
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Lives:    g.snap.Lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Summary reports the totals of the current run.
func (g *Game) Summary() core.RunSummary {
	st := g.snap.Stats
	return core.RunSummary{
		Score:            g.snap.Score,
		EnemiesDestroyed: st.EnemiesDestroyed,
		HitsTaken:        st.HitsTaken,
		LivesLost:        st.LivesLost,
		ShotsFired:       st.ShotsFired,
		DurationSecs:     st.Elapsed,
	}
}

// Snapshot returns the state after the last tick.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}
