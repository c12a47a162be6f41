// Package config provides YAML-based ship tuning for the shooter.
package config

// ShooterConfig contains all tunable parameters of a session.
// World dimensions and timing constants are fixed by the simulation and
// are not part of this file.
type ShooterConfig struct {
	Player     ShipConfig      `yaml:"player"`
	Enemy      ShipConfig      `yaml:"enemy"`
	Explosions ExplosionConfig `yaml:"explosions"`
}

// ShipConfig describes one ship class and the lasers it fires.
type ShipConfig struct {
	MovementSpeed    float64 `yaml:"movement_speed"` // World units per second
	Shield           int     `yaml:"shield"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	LaserWidth       float64 `yaml:"laser_width"`
	LaserHeight      float64 `yaml:"laser_height"`
	LaserSpeed       float64 `yaml:"laser_speed"`
	TimeBetweenShots float64 `yaml:"time_between_shots"` // Seconds
}

// ExplosionConfig sets how long explosions stay on screen, in seconds.
type ExplosionConfig struct {
	EnemyDuration  float64 `yaml:"enemy_duration"`
	PlayerDuration float64 `yaml:"player_duration"`
}
