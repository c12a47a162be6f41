package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/storage"
)

// MenuChoice is what the player picked from the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Label: "Play", Choice: MenuPlay},
	{Label: "High Scores", Choice: MenuScores},
	{Label: "Quit", Choice: MenuQuit},
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	title     string
	items     []MenuItem
	cursor    int
	highScore int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	chosen    MenuChoice
}

// NewMenuModel creates a new menu model. The best score for gameID is shown
// under the title when a store is available.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, gameID, title string) MenuModel {
	m := MenuModel{
		title:     title,
		items:     menuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.chosen = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.chosen = m.items[m.cursor].Choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.chosen == MenuQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")

	best := "No high score yet"
	if m.highScore > 0 {
		best = fmt.Sprintf("Best %06d", m.highScore)
	}
	b.WriteString(centerText(menuDimStyle.Render(best), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if i == m.cursor {
			line = menuCursor.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the selected entry, or MenuNone while the menu is open.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// spaced renders "Star" as "S t a r" for the banner.
func spaced(s string) string {
	return "  " + strings.Join(strings.Split(strings.ToUpper(s), ""), " ") + "  "
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, gameID, title string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, gameID, title)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Chosen() == MenuNone {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Chosen(), Config: m.Config()}, nil
}
