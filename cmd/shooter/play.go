package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-shooter/internal/config"
	"github.com/vovakirdan/star-shooter/internal/platform/tui"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game straight away.

Your ship fires on its own. Steer it around the lower half of the screen,
either with the keys or by dragging with the mouse.

Controls:
  Arrows/WASD  - Move
  Mouse drag   - Steer toward the pointer
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Leave (when paused or after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Ship tuning is read from --config, ~/.shooter/configs/shooter.yaml or
./configs/shooter.yaml, falling back to the built-in defaults.

Examples:
  shooter play
  shooter play --seed 1234
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom ship tuning YAML")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom ship tuning YAML")
}

func runPlay(_ *cobra.Command, _ []string) error {
	tuning, err := config.LoadShooter(flagConfig)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// The log would draw over the game, so play runs without one
	if err := tui.Run(newGame(tuning)(), store, runtimeConfig(), nil); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
