package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in ship tuning.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: ShipConfig{
			MovementSpeed:    25,
			Shield:           6,
			Width:            10,
			Height:           10,
			LaserWidth:       0.4,
			LaserHeight:      4,
			LaserSpeed:       45,
			TimeBetweenShots: 0.5,
		},
		Enemy: ShipConfig{
			MovementSpeed:    15,
			Shield:           4,
			Width:            10,
			Height:           10,
			LaserWidth:       0.3,
			LaserHeight:      5,
			LaserSpeed:       30,
			TimeBetweenShots: 0.9,
		},
		Explosions: ExplosionConfig{
			EnemyDuration:  0.7,
			PlayerDuration: 1.6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
