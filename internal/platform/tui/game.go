package tui

import "github.com/vovakirdan/star-shooter/internal/core"

// Game is the contract the platform drives. Games never touch the terminal;
// they step on input frames and draw into a Screen.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Summary() core.RunSummary
}
