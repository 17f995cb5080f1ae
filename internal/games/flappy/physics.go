package flappy

import (
	"math"

	"github.com/vovakirdan/flabird/internal/config"
)

// Physics holds the per-frame integration constants.
type Physics struct {
	Gravity   float64 // Added to the bird's vertical velocity every frame
	VelocityX float64 // Horizontal pipe velocity per frame (negative = left)
	Ceiling   float64 // Lowest Y the bird can reach
	LandY     float64 // Falling below this ends the run
	PipeValue float64 // Score awarded per pipe passed
}

// PhysicsFromConfig extracts the integration constants from a game config.
func PhysicsFromConfig(cfg config.FlabirdConfig) Physics {
	return Physics{
		Gravity:   cfg.Physics.Gravity,
		VelocityX: cfg.Physics.VelocityX,
		Ceiling:   cfg.Physics.Ceiling,
		LandY:     cfg.Physics.LandY,
		PipeValue: cfg.Scoring.PipeValue,
	}
}

// World is the complete mutable simulation state of one game.
// Pipes are kept in spawn order, which is also x order because every pipe
// moves at the same speed.
type World struct {
	Bird      Bird
	VelocityY float64
	Pipes     []Pipe
	Score     float64
	Over      bool
}

// StepResult reports what happened during one frame.
type StepResult struct {
	Passed   int  // Pipes newly passed this frame
	Landed   bool // The bird dropped below the landing line
	Collided bool // The bird overlapped at least one pipe
	Pruned   int  // Pipes removed off the left edge
}

// Step advances the world by one frame. A finished world is left untouched.
func (w *World) Step(p Physics) StepResult {
	var res StepResult
	if w.Over {
		return res
	}

	// Bird
	w.VelocityY += p.Gravity
	w.Bird.Y = math.Max(w.Bird.Y+w.VelocityY, p.Ceiling)

	if w.Bird.Y > p.LandY {
		w.Bird.Y = math.Max(w.Bird.Y, p.LandY)
		w.Over = true
		res.Landed = true
	}

	// Pipes: move, score, collide
	birdBox := w.Bird.Box()
	for i := range w.Pipes {
		pipe := &w.Pipes[i]
		pipe.X += p.VelocityX

		// Top and bottom halves are counted separately.
		if !pipe.Passed && w.Bird.X > pipe.X+pipe.Width {
			w.Score += p.PipeValue
			pipe.Passed = true
			res.Passed++
		}

		if birdBox.Intersects(pipe.Box()) {
			w.Over = true
			res.Collided = true
		}
	}

	// Drop pipes that left the board
	n := 0
	for n < len(w.Pipes) && w.Pipes[n].X+w.Pipes[n].Width < 0 {
		n++
	}
	if n > 0 {
		w.Pipes = append(w.Pipes[:0], w.Pipes[n:]...)
		res.Pruned = n
	}

	return res
}
