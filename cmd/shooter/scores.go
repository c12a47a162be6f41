package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-shooter/internal/config"
	"github.com/vovakirdan/star-shooter/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores and the latest runs.

Examples:
  shooter scores
  shooter scores --db ./scores.db
  shooter scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	game := newGame(config.DefaultShooterConfig())()
	gameID := game.ID()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shooter play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	var errs []error

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	} else {
		errs = append(errs, err)
	}

	runs, err := store.RecentRuns(gameID, 5)
	if err != nil {
		errs = append(errs, err)
	}
	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent runs")
		fmt.Printf("  %-16s  %-8s  %-5s  %-5s  %-5s  %s\n", "Date", "Score", "Kills", "Hits", "Shots", "Time")
		for _, r := range runs {
			fmt.Printf("  %-16s  %-8d  %-5d  %-5d  %-5d  %.0fs\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.EnemiesDestroyed, r.HitsTaken, r.ShotsFired, r.DurationSecs)
		}
	}

	return errors.Join(errs...)
}
