package flappy

// RandSource yields uniform values in [0, 1). *rand.Rand from math/rand and
// math/rand/v2 both satisfy it.
type RandSource interface {
	Float64() float64
}

// SpawnPair creates a top/bottom pipe pair at spawnX.
//
// The top pipe hangs between a quarter and three quarters of its height
// above the board; the bottom pipe starts a quarter of the board height below
// the top pipe's lower edge.
func SpawnPair(r RandSource, boardHeight, pipeWidth, pipeHeight, spawnX float64) (top, bottom Pipe) {
	topY := -pipeHeight/4 - r.Float64()*(pipeHeight/2)
	openingSpace := boardHeight / 4

	top = Pipe{
		Sprite: SpritePipeTop,
		X:      spawnX,
		Y:      topY,
		Width:  pipeWidth,
		Height: pipeHeight,
	}
	bottom = Pipe{
		Sprite: SpritePipeBottom,
		X:      spawnX,
		Y:      topY + pipeHeight + openingSpace,
		Width:  pipeWidth,
		Height: pipeHeight,
	}
	return top, bottom
}
