package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/storage"
)

func pressMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		mm, ok := next.(MenuModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = mm
	}
	return m, cmd
}

func TestMenuSelection(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name string
		keys []tea.Msg
		want MenuChoice
	}{
		{"play", []tea.Msg{enter}, MenuPlay},
		{"scores", []tea.Msg{down, enter}, MenuScores},
		{"quit item", []tea.Msg{down, down, enter}, MenuQuit},
		{"cursor stops at bottom", []tea.Msg{down, down, down, down, enter}, MenuQuit},
		{"cursor stops at top", []tea.Msg{up, up, enter}, MenuPlay},
		{"vim keys", []tea.Msg{runeKey("j"), runeKey("j"), runeKey("k"), enter}, MenuScores},
		{"q quits", []tea.Msg{runeKey("q")}, MenuQuit},
		{"esc quits", []tea.Msg{tea.KeyMsg{Type: tea.KeyEsc}}, MenuQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, core.DefaultConfig(), "shooter", "Star Shooter")
			m, cmd := pressMenu(t, m, tt.keys...)
			if m.Chosen() != tt.want {
				t.Errorf("Chosen() = %v, want %v", m.Chosen(), tt.want)
			}
			if cmd == nil {
				t.Error("expected the menu to quit after a choice")
			}
		})
	}
}

func TestMenuNavigationKeepsOpen(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "shooter", "Star Shooter")
	m, cmd := pressMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})

	if m.Chosen() != MenuNone {
		t.Errorf("Chosen() = %v, want MenuNone", m.Chosen())
	}
	if cmd != nil {
		t.Error("navigation should not produce a command")
	}
	if !strings.Contains(m.View(), "> High Scores") {
		t.Error("cursor should be on High Scores")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, err := store.SaveScore("shooter", 1200); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig(), "shooter", "Star Shooter")
	if view := m.View(); !strings.Contains(view, "Best 001200") {
		t.Errorf("view should show the best score:\n%s", view)
	}

	empty := NewMenuModel(nil, core.DefaultConfig(), "shooter", "Star Shooter")
	if view := empty.View(); !strings.Contains(view, "No high score yet") {
		t.Errorf("view without a store should say so:\n%s", view)
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "shooter", "Star Shooter")
	m, _ = pressMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config size = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestSpaced(t *testing.T) {
	if got := spaced("ab"); got != "  A B  " {
		t.Errorf("spaced() = %q", got)
	}
}
