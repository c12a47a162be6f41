// shooter is a vertically scrolling space shooter for the terminal.
//
// Usage:
//
//	shooter play             - Play a game
//	shooter menu             - Start the menu
//	shooter serve            - Start SSH server for remote play
//	shooter scores           - Show high scores and recent runs
//	shooter config           - Print the ship tuning in effect
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.shooter/scores.db)
//
// Flag defaults can also come from the environment or a .env file:
// SHOOTER_DB for --db and SHOOTER_SSH_ADDR for serve --ssh.
package main

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-shooter/internal/config"
	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/platform/tui"
	"github.com/vovakirdan/star-shooter/internal/shooter"
	"github.com/vovakirdan/star-shooter/internal/storage"
)

const defaultDBPath = "~/.shooter/scores.db"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "shooter"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Star Shooter - a space shooter in your terminal",
	Long: `Star Shooter is a vertically scrolling space shooter played in the terminal.
Hold the lower half of the screen, dodge enemy fire and shoot down the
ships that drop in from the top.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  config   - Print the ship tuning in effect

Examples:
  shooter play
  shooter play --seed 42
  shooter menu
  shooter serve --ssh :2222
  shooter scores`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (env SHOOTER_DB)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// envFlags maps flags to the variables that may supply their default.
var envFlags = map[string]string{
	"db":  "SHOOTER_DB",
	"ssh": "SHOOTER_SSH_ADDR",
}

// loadEnv reads an optional .env file and fills every flag the user did not
// set from its environment variable.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not read .env", "error", err)
	}

	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if v, ok := os.LookupEnv(env); ok && v != "" {
			if err := f.Value.Set(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// newGame returns a factory for games built from tuning.
func newGame(tuning config.ShooterConfig) func() tui.Game {
	return func() tui.Game {
		return shooter.New(tuning)
	}
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
