package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/star-shooter/internal/config"
	"github.com/vovakirdan/star-shooter/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%120 < 40:
			inputs[i].Set(core.ActionLeft)
		case i%120 < 80:
			inputs[i].Set(core.ActionRight)
		}
	}

	play := func() (core.GameState, core.RunSummary) {
		g := New(config.DefaultShooterConfig())
		g.Reset(testRuntime())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.State(), g.Summary()
	}

	s1, r1 := play()
	s2, r2 := play()
	if s1 != s2 || r1 != r2 {
		t.Errorf("same seed produced different runs: %+v %+v vs %+v %+v", s1, r1, s2, r2)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New(config.DefaultShooterConfig())
	g.Reset(testRuntime())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(core.NewInputFrame())
	elapsed := g.Summary().DurationSecs

	if !g.Step(pause).State.Paused {
		t.Fatal("pause action did not pause")
	}
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Summary().DurationSecs != elapsed {
		t.Error("simulation advanced while paused")
	}

	if g.Step(pause).State.Paused {
		t.Error("second pause action did not resume")
	}
}

func TestGameOverWhenLivesRunOut(t *testing.T) {
	g := New(config.DefaultShooterConfig())
	g.Reset(testRuntime())

	g.sim.player.Lives = 0
	g.sim.player.Shield = 0
	g.sim.enemyLasers = overlapping(g.sim.player.Box, FactionEnemy, 1)

	state := g.Step(core.NewInputFrame()).State
	if !state.GameOver {
		t.Fatalf("state = %+v, want game over", state)
	}
	if state.Lives != -1 {
		t.Errorf("lives = %d, want -1", state.Lives)
	}

	before := g.Summary()
	g.Step(core.NewInputFrame())
	if g.Summary() != before {
		t.Error("game kept running after game over")
	}
}

func TestGameResetRestoresInitialState(t *testing.T) {
	g := New(config.DefaultShooterConfig())
	g.Reset(testRuntime())

	for i := 0; i < 400; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Reset(testRuntime())

	state := g.State()
	if state.Score != 0 || state.Lives != PlayerStartLives || state.GameOver || state.Paused {
		t.Errorf("state after reset = %+v", state)
	}
	if g.Summary().DurationSecs != 0 {
		t.Error("run totals not cleared")
	}
}

func TestGameKeyboardIntent(t *testing.T) {
	g := New(config.DefaultShooterConfig())
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionUp)

	intent := g.intent(in)
	if !intent.Right || !intent.Up || intent.Left || intent.Down || intent.HasTarget {
		t.Errorf("intent = %+v", intent)
	}
}

func TestGamePointerIntent(t *testing.T) {
	g := New(config.DefaultShooterConfig())
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: g.view.X, Y: g.view.Y + g.view.H - 1, Active: true}

	intent := g.intent(in)
	if !intent.HasTarget {
		t.Fatal("pointer inside the arena should produce a target")
	}
	if intent.TargetX <= 0 || intent.TargetX > WorldWidth/float64(g.view.W) {
		t.Errorf("target x = %v, want inside the leftmost column", intent.TargetX)
	}
	if intent.TargetY <= 0 || intent.TargetY > WorldHeight/float64(g.view.H) {
		t.Errorf("target y = %v, want inside the bottom row", intent.TargetY)
	}

	in.Pointer = core.Pointer{X: 0, Y: 0, Active: true}
	if g.intent(in).HasTarget {
		t.Error("pointer over the HUD should be ignored")
	}
}

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{"wide terminal", 80, 24, 26, 23},
		{"narrow terminal", 20, 60, 20, 18},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := fitViewport(tc.w, tc.h)
			if v.W != tc.wantW || v.H != tc.wantH {
				t.Errorf("viewport = %dx%d, want %dx%d", v.W, v.H, tc.wantW, tc.wantH)
			}
			if v.X < 0 || v.X+v.W > tc.w || v.Y+v.H > tc.h {
				t.Errorf("viewport %+v does not fit %dx%d", v, tc.w, tc.h)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := fitViewport(80, 24)

	for row := v.Y; row < v.Y+v.H; row++ {
		for col := v.X; col < v.X+v.W; col++ {
			x, y := v.toWorld(col, row)
			gotCol, gotRow := v.toCell(x, y)
			if gotCol != col || gotRow != row {
				t.Fatalf("cell (%d, %d) maps back to (%d, %d)", col, row, gotCol, gotRow)
			}
		}
	}
}

func TestViewportFlipsY(t *testing.T) {
	v := fitViewport(80, 24)

	_, bottom := v.toCell(1, 0)
	_, top := v.toCell(1, WorldHeight-0.01)
	if bottom != v.Y+v.H-1 || top != v.Y {
		t.Errorf("y=0 -> row %d, y=H -> row %d; want %d and %d", bottom, top, v.Y+v.H-1, v.Y)
	}
}

func TestRenderHUDAndPlayer(t *testing.T) {
	g := New(config.DefaultShooterConfig())
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score 000000", "Shield 06", "Lives 03"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := New(config.DefaultShooterConfig())
	g.Reset(testRuntime())
	g.gameOver = true

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box not drawn")
	}
}
