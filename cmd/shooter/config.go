package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/star-shooter/internal/config"
)

var (
	flagTuningPath string
	flagDefaults   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the ship tuning in effect",
	Long: `Print the ship tuning that play, menu and serve would use, as YAML.

The output can be saved and edited, then passed back with --config.

Examples:
  shooter config
  shooter config --defaults > my-shooter.yaml
  shooter config --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagTuningPath, "config", "", "Path to custom ship tuning YAML")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	tuning, err := config.LoadShooter(flagTuningPath)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(tuning)
	if err != nil {
		return fmt.Errorf("encoding tuning: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
