// Package config provides YAML/TOML-based game configuration loading for
// flabird.
package config

import (
	"fmt"
	"time"
)

// FlabirdConfig contains all configuration for the game.
type FlabirdConfig struct {
	Board   Board   `yaml:"board" toml:"board"`
	Bird    Bird    `yaml:"bird" toml:"bird"`
	Pipes   Pipes   `yaml:"pipes" toml:"pipes"`
	Physics Physics `yaml:"physics" toml:"physics"`
	Scoring Scoring `yaml:"scoring" toml:"scoring"`
	Splash  Splash  `yaml:"splash" toml:"splash"`
	Assets  Assets  `yaml:"assets" toml:"assets"`
}

// Board defines the logical drawing surface.
type Board struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Bird defines the bird's size and spawn position.
type Bird struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Pipes defines obstacle geometry and the spawn cadence.
type Pipes struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	SpawnX float64 `yaml:"spawn_x" toml:"spawn_x"`
	// SpawnIntervalMS is the wall-clock period between pipe pairs.
	SpawnIntervalMS int `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`
}

// SpawnInterval returns the spawn period as a duration.
func (p Pipes) SpawnInterval() time.Duration {
	return time.Duration(p.SpawnIntervalMS) * time.Millisecond
}

// Physics defines per-frame integration constants. Nothing is scaled by
// elapsed time: speeds are per frame tick.
type Physics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	VelocityX   float64 `yaml:"velocity_x" toml:"velocity_x"`
	Ceiling     float64 `yaml:"ceiling" toml:"ceiling"`
	LandY       float64 `yaml:"land_y" toml:"land_y"`
}

// Scoring defines score increments and the persisted high-score key.
type Scoring struct {
	PipeValue    float64 `yaml:"pipe_value" toml:"pipe_value"`
	HighScoreKey string  `yaml:"high_score_key" toml:"high_score_key"`
}

// Splash defines where the start-screen sprite is drawn.
type Splash struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Assets names the sprite files. Dir is optional; when empty the embedded
// glyph art is used.
type Assets struct {
	Dir        string `yaml:"dir" toml:"dir"`
	Bird       string `yaml:"bird" toml:"bird"`
	TopPipe    string `yaml:"top_pipe" toml:"top_pipe"`
	BottomPipe string `yaml:"bottom_pipe" toml:"bottom_pipe"`
	Splash     string `yaml:"splash" toml:"splash"`
}

// Validate reports the first configuration value the game cannot run with.
func (c FlabirdConfig) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("config: board size must be positive, got %vx%v", c.Board.Width, c.Board.Height)
	case c.Bird.Width <= 0 || c.Bird.Height <= 0:
		return fmt.Errorf("config: bird size must be positive, got %vx%v", c.Bird.Width, c.Bird.Height)
	case c.Pipes.Width <= 0 || c.Pipes.Height <= 0:
		return fmt.Errorf("config: pipe size must be positive, got %vx%v", c.Pipes.Width, c.Pipes.Height)
	case c.Pipes.SpawnIntervalMS <= 0:
		return fmt.Errorf("config: spawn_interval_ms must be positive, got %d", c.Pipes.SpawnIntervalMS)
	case c.Physics.VelocityX >= 0:
		return fmt.Errorf("config: velocity_x must be negative, got %v", c.Physics.VelocityX)
	case c.Physics.Ceiling < 0:
		return fmt.Errorf("config: ceiling must not be negative, got %v", c.Physics.Ceiling)
	case c.Scoring.PipeValue <= 0:
		return fmt.Errorf("config: pipe_value must be positive, got %v", c.Scoring.PipeValue)
	case c.Scoring.HighScoreKey == "":
		return fmt.Errorf("config: high_score_key must not be empty")
	}
	return nil
}
