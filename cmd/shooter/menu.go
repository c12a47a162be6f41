package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-shooter/internal/config"
	"github.com/vovakirdan/star-shooter/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  shooter menu
  shooter menu --fps 30
  shooter menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	tuning, err := config.LoadShooter(flagConfig)
	if err != nil {
		return err
	}
	makeGame := newGame(tuning)
	info := makeGame()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg, info.ID(), info.Title())
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuScores:
			goBack, err := tui.RunScoreboard(store, info.ID(), info.Title(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuPlay:
			if err := tui.Run(makeGame(), store, cfg, nil); err != nil {
				return err
			}
			// Each game after the first gets a fresh seed
			cfg.Seed = time.Now().UnixNano()

		default:
			return nil
		}
	}
}
