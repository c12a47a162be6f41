package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg ShooterConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if cfg != DefaultShooterConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultShooterConfig() %+v", cfg, DefaultShooterConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fast.yaml")

	cfg := DefaultShooterConfig()
	cfg.Player.MovementSpeed = 40
	cfg.Enemy.Shield = 1
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	loaded, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if loaded.Player.MovementSpeed != 40 {
		t.Errorf("player speed = %v, expected 40", loaded.Player.MovementSpeed)
	}
	if loaded.Enemy.Shield != 1 {
		t.Errorf("enemy shield = %d, expected 1", loaded.Enemy.Shield)
	}
}

func TestLoadShooterCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "player: [",
			wantErr: "failed to parse",
		},
		{
			name:    "zero sizes",
			content: "player:\n  movement_speed: 10\n",
			wantErr: "player.width must be positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}

			_, err := LoadShooter(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := LoadShooter(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.Enemy.Shield = -1
	cfg.Player.LaserSpeed = 0
	cfg.Explosions.PlayerDuration = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	for _, field := range []string{"enemy.shield", "player.laser_speed", "explosions.player_duration"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}
