package flappy

import "github.com/vovakirdan/flabird/internal/core"

// SpriteID is an opaque handle to an image resource. The game only passes
// it through to render descriptors; platforms decide how (and whether) the
// image can be drawn yet.
type SpriteID int

const (
	SpriteBird SpriteID = iota
	SpritePipeTop
	SpritePipeBottom
	SpriteSplash
)

// String returns the sprite's name.
func (s SpriteID) String() string {
	switch s {
	case SpriteBird:
		return "bird"
	case SpritePipeTop:
		return "top_pipe"
	case SpritePipeBottom:
		return "bottom_pipe"
	case SpriteSplash:
		return "splash"
	default:
		return "unknown"
	}
}

// Bird is the player. X never changes after construction and only Y is
// restored on restart.
type Bird struct {
	X, Y          float64
	Width, Height float64
}

// Box returns the bird's collision box.
func (b Bird) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}

// Pipe is one half of an obstacle pair.
type Pipe struct {
	Sprite        SpriteID
	X, Y          float64
	Width, Height float64
	Passed        bool // Set once when the bird clears the pipe's right edge
}

// Box returns the pipe's collision box.
func (p Pipe) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}
