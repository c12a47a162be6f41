package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "shooter.yaml"

// LoadShooter loads ship tuning.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	// A custom path is explicit, so failures are reported instead of skipped
	if customPath != "" {
		cfg, err := readShooter(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if cfg, err := readShooter(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := readShooter(filepath.Join("configs", ConfigFileName)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	var cfg ShooterConfig
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readShooter reads and parses a single config file.
func readShooter(path string) (ShooterConfig, error) {
	var cfg ShooterConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}

// Validate reports every out-of-range field.
func (c ShooterConfig) Validate() error {
	return errors.Join(
		c.Player.validate("player"),
		c.Enemy.validate("enemy"),
		positive("explosions.enemy_duration", c.Explosions.EnemyDuration),
		positive("explosions.player_duration", c.Explosions.PlayerDuration),
	)
}

func (s ShipConfig) validate(name string) error {
	var shieldErr error
	if s.Shield < 0 {
		shieldErr = fmt.Errorf("%s.shield must not be negative, got %d", name, s.Shield)
	}
	return errors.Join(
		positive(name+".movement_speed", s.MovementSpeed),
		shieldErr,
		positive(name+".width", s.Width),
		positive(name+".height", s.Height),
		positive(name+".laser_width", s.LaserWidth),
		positive(name+".laser_height", s.LaserHeight),
		positive(name+".laser_speed", s.LaserSpeed),
		positive(name+".time_between_shots", s.TimeBetweenShots),
	)
}

func positive(field string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v", field, v)
	}
	return nil
}
