package headless

import (
	"github.com/vovakirdan/flabird/internal/config"
	"github.com/vovakirdan/flabird/internal/games/flappy"
)

// autopilot keeps the bird just above the lower edge of the next gap.
type autopilot struct {
	margin float64 // Distance kept between the bird and the lower pipe
	climb  float64 // Flap without waiting for the apex when this far below
	hoverY float64 // Target bottom edge when no pipe is ahead
}

func newAutopilot(cfg config.FlabirdConfig) autopilot {
	return autopilot{
		margin: 24,
		climb:  40,
		hoverY: cfg.Board.Height/2 + cfg.Bird.Height,
	}
}

// wantsFlap decides whether to flap this tick.
func (a autopilot) wantsFlap(w flappy.World) bool {
	target := a.hoverY
	if gap, ok := nextGapBottom(w); ok {
		target = gap - a.margin
	}

	bottom := w.Bird.Y + w.Bird.Height
	if bottom < target {
		return false
	}
	// Far below: climb as fast as possible. Near: wait for the fall.
	return bottom-target > a.climb || w.VelocityY >= 0
}

// nextGapBottom returns the top edge of the first lower pipe the bird has
// not yet cleared.
func nextGapBottom(w flappy.World) (float64, bool) {
	for _, p := range w.Pipes {
		if p.Sprite != flappy.SpritePipeBottom {
			continue
		}
		if p.X+p.Width > w.Bird.X {
			return p.Y, true
		}
	}
	return 0, false
}
