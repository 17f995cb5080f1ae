package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), ".yaml")
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML differs from Default():\n got  %+v\n want %+v", cfg, Default())
	}
}

func TestLoadFileYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 0.25\npipes:\n  spawn_interval_ms: 1000\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("Gravity = %v, expected 0.25", cfg.Physics.Gravity)
	}
	if cfg.Pipes.SpawnInterval() != time.Second {
		t.Errorf("SpawnInterval() = %v, expected 1s", cfg.Pipes.SpawnInterval())
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpImpulse != -6 {
		t.Errorf("JumpImpulse = %v, expected default -6", cfg.Physics.JumpImpulse)
	}
	if cfg.Board.Width != 360 || cfg.Board.Height != 640 {
		t.Errorf("Board = %+v, expected 360x640", cfg.Board)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[physics]\ngravity = 0.3\n\n[scoring]\nhigh_score_key = \"best\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.3 {
		t.Errorf("Gravity = %v, expected 0.3", cfg.Physics.Gravity)
	}
	if cfg.Scoring.HighScoreKey != "best" {
		t.Errorf("HighScoreKey = %q, expected %q", cfg.Scoring.HighScoreKey, "best")
	}
	if cfg.Scoring.PipeValue != 0.5 {
		t.Errorf("PipeValue = %v, expected default 0.5", cfg.Scoring.PipeValue)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadFile() should fail for a missing file")
	}
	if !strings.Contains(err.Error(), "config:") {
		t.Errorf("error should carry the config prefix, got %v", err)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  velocity_x: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a positive velocity_x")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlabirdConfig)
	}{
		{"zero board", func(c *FlabirdConfig) { c.Board.Width = 0 }},
		{"negative bird", func(c *FlabirdConfig) { c.Bird.Height = -1 }},
		{"zero pipe", func(c *FlabirdConfig) { c.Pipes.Width = 0 }},
		{"zero interval", func(c *FlabirdConfig) { c.Pipes.SpawnIntervalMS = 0 }},
		{"pipes moving right", func(c *FlabirdConfig) { c.Physics.VelocityX = 1 }},
		{"negative ceiling", func(c *FlabirdConfig) { c.Physics.Ceiling = -5 }},
		{"zero pipe value", func(c *FlabirdConfig) { c.Scoring.PipeValue = 0 }},
		{"empty key", func(c *FlabirdConfig) { c.Scoring.HighScoreKey = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/scores.db")
	if err != nil || got != "/tmp/scores.db" {
		t.Errorf("ExpandHome(absolute) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.flabird/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".flabird", "scores.db") {
		t.Errorf("ExpandHome() = %q", got)
	}
}
