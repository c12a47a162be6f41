package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-shooter/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	for _, s := range []int{300, 900} {
		if _, err := store.SaveScore("shooter", s); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}
	if _, err := store.SaveRun(storage.RunRecord{GameID: "shooter", Score: 900, EnemiesDestroyed: 9, ShotsFired: 77, DurationSecs: 95}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	return store
}

func TestScoreboardTabs(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "shooter", "Star Shooter", 80, 30)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "900") {
		t.Errorf("scores tab missing content:\n%s", view)
	}
	if !strings.Contains(view, "Games 2") {
		t.Errorf("stats line missing:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	view = m.View()
	if !strings.Contains(view, "RECENT RUNS") || !strings.Contains(view, "77") || !strings.Contains(view, "1:35") {
		t.Errorf("runs tab missing content:\n%s", view)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "shooter", "Star Shooter", 80, 30)
	view := m.View()
	if !strings.Contains(view, "No games played yet") || !strings.Contains(view, "Nothing recorded yet.") {
		t.Errorf("empty scoreboard view:\n%s", view)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		back     bool
		quitting bool
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"b", runeKey("b"), true, false},
		{"q", runeKey("q"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, "shooter", "Star Shooter", 80, 30)
			next, cmd := m.Update(tt.msg)
			m = next.(ScoreboardModel)

			if m.IsGoingBack() != tt.back || m.IsQuitting() != tt.quitting {
				t.Errorf("back=%v quitting=%v, want %v %v", m.IsGoingBack(), m.IsQuitting(), tt.back, tt.quitting)
			}
			if cmd == nil {
				t.Error("expected a quit command")
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "0:00"},
		{59.9, "0:59"},
		{95, "1:35"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.secs); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
