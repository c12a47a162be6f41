package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/storage"
)

// stubGame ends after overAt steps and records what it was fed.
type stubGame struct {
	overAt  int
	resets  int
	steps   int
	paused  bool
	inputs  []core.InputFrame
	summary core.RunSummary
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.inputs = nil
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	frame.Pointer = in.Pointer
	g.inputs = append(g.inputs, frame)

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "stub", core.ColorWhite)
}

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Score:    g.summary.Score,
		GameOver: g.overAt > 0 && g.steps >= g.overAt,
		Paused:   g.paused,
	}
}

func (g *stubGame) Summary() core.RunSummary { return g.summary }

func newTestModel(t *testing.T, g *stubGame, store *storage.Store) GameModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 20, Seed: 99}
	m := NewGameModel(g, store, cfg, nil)
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel, n int) GameModel {
	t.Helper()
	for range n {
		m, _ = update(t, m, TickMsg{})
	}
	return m
}

func TestGameOverRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	g := &stubGame{
		overAt: 3,
		summary: core.RunSummary{
			Score:            300,
			EnemiesDestroyed: 3,
			HitsTaken:        7,
			LivesLost:        1,
			ShotsFired:       40,
			DurationSecs:     12.5,
		},
	}
	m := newTestModel(t, g, store)
	m = tick(t, m, 10)

	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 300 {
		t.Errorf("scores = %+v, want a single 300", scores)
	}

	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Seed != 99 || r.EnemiesDestroyed != 3 || r.HitsTaken != 7 || r.ShotsFired != 40 || r.DurationSecs != 12.5 {
		t.Errorf("run = %+v does not match the summary", r)
	}
}

func TestZeroScoreSkipsLeaderboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	m := newTestModel(t, &stubGame{overAt: 1}, store)
	tick(t, m, 2)

	scores, _ := store.TopScores("stub", 10)
	if len(scores) != 0 {
		t.Errorf("zero score should not be ranked, got %+v", scores)
	}
	runs, _ := store.RecentRuns("stub", 10)
	if len(runs) != 1 {
		t.Errorf("got %d runs, want 1", len(runs))
	}
}

func TestHeldMovementReachesGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil) // hold = 5 ticks

	m, _ = update(t, m, runeKey("a"))
	m = tick(t, m, 6)

	for i := range 5 {
		if !g.inputs[i].Has(core.ActionLeft) {
			t.Errorf("tick %d: left not delivered", i)
		}
	}
	if g.inputs[5].Has(core.ActionLeft) {
		t.Error("left delivered after hold expired")
	}
}

func TestPauseIsOneShot(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m, _ = update(t, m, runeKey("p"))
	m = tick(t, m, 2)

	if !g.inputs[0].Has(core.ActionPause) {
		t.Error("pause not delivered on the next tick")
	}
	if g.inputs[1].Has(core.ActionPause) {
		t.Error("pause delivered twice")
	}
	if !m.State().Paused {
		t.Error("model state should be paused")
	}
}

func TestMouseDragSetsPointer(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, 1)
	m, _ = update(t, m, tea.MouseMsg{X: 14, Y: 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = tick(t, m, 1)
	m, _ = update(t, m, tea.MouseMsg{X: 14, Y: 9, Action: tea.MouseActionRelease})
	tick(t, m, 1)

	want := []core.Pointer{
		{X: 12, Y: 7, Active: true},
		{X: 14, Y: 9, Active: true},
		{},
	}
	for i, p := range want {
		if g.inputs[i].Pointer != p {
			t.Errorf("tick %d: pointer = %+v, want %+v", i, g.inputs[i].Pointer, p)
		}
	}
}

func TestBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m, _ = update(t, m, runeKey("b"))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m, _ = update(t, m, runeKey("p"))
	m = tick(t, m, 1)
	m, _ = update(t, m, runeKey("b"))
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}

	_, cmd := update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("ticks should stop once leaving the game")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, &stubGame{}, nil)

	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("expected quitting")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
	if m.View() != "" {
		t.Error("view should be empty when quitting")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &stubGame{overAt: 1}
	m := newTestModel(t, g, nil)

	m, _ = update(t, m, runeKey("r"))
	m = tick(t, m, 1)
	if g.resets != 1 {
		t.Fatalf("restart before game over should be ignored, resets = %d", g.resets)
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m, _ = update(t, m, runeKey("r"))
	m = tick(t, m, 1)

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.State().GameOver {
		t.Error("state should be reset")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("config size = %dx%d, want 100x30", cfg.ScreenW, cfg.ScreenH)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("view should contain the rendered game")
	}
}
