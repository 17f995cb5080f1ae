package flappy

import "github.com/vovakirdan/flabird/internal/core"

// Sprite is a drawable element of a frame.
type Sprite struct {
	ID  SpriteID
	Box core.Box
}

// Text is a line of text anchored at its baseline-left position on the
// board, the way a canvas fillText call places it.
type Text struct {
	X, Y    float64
	Content string
}

// Frame is a render descriptor: everything a front-end needs to draw one
// frame, in board units. It never aliases game state.
type Frame struct {
	State     State
	Board     core.Box
	Splash    *Sprite // Only on the start screen
	Bird      Sprite
	Pipes     []Sprite
	Score     float64
	HighScore float64
	HUD       Text   // Current score, top left
	Overlay   []Text // "GAME OVER", "Score: n", "Best: n" once the run ended
}

// frame builds the render descriptor for the current state.
func (g *Game) frame() Frame {
	boardW, boardH := g.cfg.Board.Width, g.cfg.Board.Height

	f := Frame{
		State:     g.state,
		Board:     core.NewBox(0, 0, boardW, boardH),
		Bird:      Sprite{ID: SpriteBird, Box: g.world.Bird.Box()},
		Score:     g.world.Score,
		HighScore: g.scores.Best(),
	}

	if g.state == StateStartScreen {
		f.Splash = &Sprite{
			ID:  SpriteSplash,
			Box: core.NewBox(g.cfg.Splash.X, g.cfg.Splash.Y, g.cfg.Splash.Width, g.cfg.Splash.Height),
		}
		return f
	}

	f.Pipes = make([]Sprite, 0, len(g.world.Pipes))
	for _, p := range g.world.Pipes {
		f.Pipes = append(f.Pipes, Sprite{ID: p.Sprite, Box: p.Box()})
	}

	f.HUD = Text{X: 5, Y: 45, Content: FormatScore(g.world.Score)}

	if g.state == StateGameOver {
		f.Overlay = []Text{
			{X: boardW / 8, Y: boardH / 2, Content: "GAME OVER"},
			{X: boardW / 4, Y: boardH / 1.75, Content: "Score: " + FormatScore(g.world.Score)},
			{X: boardW / 4, Y: boardH / 1.55, Content: "Best: " + FormatScore(g.scores.Best())},
		}
	}
	return f
}
