package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game: it ticks the
// simulation, feeds it input and records the result when the run ends.
type GameModel struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       heldKeys
	keyMapper  *KeyMapper
	gameState  core.GameState
	standalone bool // Owns the program, so leaving the game quits it
	quitting   bool
	backToMenu bool
	saved      bool // Whether the current run has been recorded
}

// NewGameModel creates a model for the given game. A nil store disables
// score saving; a nil logger discards save errors.
func NewGameModel(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		held:       newHeldKeys(cfg.TickRate),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}

	case isMovement(action):
		m.held.press(action)

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns a held left button into a pointer target.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Pointer = core.Pointer{X: msg.X, Y: msg.Y, Active: true}
		}
	case tea.MouseActionRelease:
		m.inputFrame.Pointer = core.Pointer{}
	}
	return m, nil
}

// handleResize processes window resize events. The world has a fixed size,
// so the run continues and only the drawing area changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.inputFrame.Pointer = core.Pointer{}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.held.releaseAll()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.held.apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.recordRun()
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the score and the run summary. Saving is best-effort;
// the game continues regardless.
func (m GameModel) recordRun() {
	if m.store == nil {
		return
	}

	summary := m.game.Summary()
	if summary.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), summary.Score); err != nil {
			m.warn("could not save score", "error", err)
		}
	}

	runID, err := m.store.SaveRun(storage.RunRecord{
		GameID:           m.game.ID(),
		Seed:             m.config.Seed,
		Score:            summary.Score,
		EnemiesDestroyed: summary.EnemiesDestroyed,
		HitsTaken:        summary.HitsTaken,
		LivesLost:        summary.LivesLost,
		ShotsFired:       summary.ShotsFired,
		DurationSecs:     summary.DurationSecs,
	})
	if err != nil {
		m.warn("could not save run", "error", err)
		return
	}
	if m.logger != nil {
		m.logger.Info("run recorded", "run", runID, "score", summary.Score)
	}
}

func (m GameModel) warn(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, keyvals...)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".shooter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the current runtime config (may have been updated by resize).
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// Run starts a Bubble Tea program for a single game.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Drag to steer
	)

	_, err := p.Run()
	return err
}
