// Package gui runs the game in a desktop window using Ebiten. The window is
// only available when built with the 'ebiten' tag; other builds report an
// error from Run.
package gui

import (
	"errors"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flabird/internal/config"
	"github.com/vovakirdan/flabird/internal/games/flappy"
)

// ErrUnavailable is returned by Run in builds without the 'ebiten' tag.
var ErrUnavailable = errors.New("gui: window support requires building with the 'ebiten' tag")

// SpriteSource supplies sprite images for the window.
type SpriteSource interface {
	Image(id flappy.SpriteID) (image.Image, bool)
	Version() int
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(player, sessionID string, score float64) (int64, error)
}

// Options configures a window.
type Options struct {
	Config   config.FlabirdConfig
	TickRate int   // Update calls per second
	Seed     int64 // 0 seeds from the clock
	Scale    float64

	Scores       flappy.ScoreStore
	Runs         RunRecorder
	Assets       SpriteSource
	Player       string
	SessionID    string
	HighScoreKey string
	Logger       *log.Logger

	Debug bool // Show the measured TPS in the corner
}

func (o Options) withDefaults() Options {
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Player == "" {
		o.Player = "local"
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// newStepper builds the game the window drives.
func newStepper(o Options) *flappy.Stepper {
	gameOpts := []flappy.Option{
		flappy.WithSeed(o.Seed),
		flappy.WithLogger(o.Logger),
	}
	if o.Scores != nil {
		gameOpts = append(gameOpts, flappy.WithScoreStore(o.Scores))
	}
	if o.HighScoreKey != "" {
		gameOpts = append(gameOpts, flappy.WithHighScoreKey(o.HighScoreKey))
	}
	return flappy.NewStepper(o.Config, o.TickRate, gameOpts...)
}

func (o Options) recordRun(score float64) {
	if o.Runs == nil {
		return
	}
	if _, err := o.Runs.SaveRun(o.Player, o.SessionID, score); err != nil {
		o.Logger.Warn("could not save run", "error", err)
	}
}
