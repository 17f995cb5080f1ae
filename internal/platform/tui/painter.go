package tui

import (
	"image"
	"math"

	"github.com/vovakirdan/flabird/internal/assets"
	"github.com/vovakirdan/flabird/internal/core"
	"github.com/vovakirdan/flabird/internal/games/flappy"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// SpriteSource supplies sprite images. Sprites that are not loaded yet are
// skipped when painting.
type SpriteSource interface {
	Image(id flappy.SpriteID) (image.Image, bool)
	Version() int
}

// viewport maps board units onto screen cells.
type viewport struct {
	offX, offY int     // Screen cell of the board's top-left corner
	cols, rows int     // Board size in cells
	sx, sy     float64 // Board units per cell
}

// fitViewport scales the board to fit a w by h cell area, keeping its
// aspect ratio, and centers it. One cell is kept free on every side for the
// border.
func fitViewport(w, h int, boardW, boardH float64) viewport {
	inW, inH := w-2, h-2
	if inW < 1 || inH < 1 {
		return viewport{sx: boardW, sy: boardH}
	}

	sx := math.Max(boardW/float64(inW), boardH/(cellAspect*float64(inH)))
	sy := sx * cellAspect

	vp := viewport{
		cols: int(boardW / sx),
		rows: int(boardH / sy),
		sx:   sx,
		sy:   sy,
	}
	vp.offX = 1 + (inW-vp.cols)/2
	vp.offY = 1 + (inH-vp.rows)/2
	return vp
}

// cell converts a board position to a screen cell.
func (vp viewport) cell(x, y float64) (int, int) {
	return vp.offX + int(math.Floor(x/vp.sx)), vp.offY + int(math.Floor(y/vp.sy))
}

// span converts a board box to a screen rectangle, unclipped.
func (vp viewport) span(b core.Box) core.Rect {
	x0, y0 := vp.cell(b.X, b.Y)
	w := int(math.Round(b.W / vp.sx))
	h := int(math.Round(b.H / vp.sy))
	return core.NewRect(x0, y0, core.Max(w, 1), core.Max(h, 1))
}

// board returns the screen rectangle covered by the board.
func (vp viewport) board() core.Rect {
	return core.NewRect(vp.offX, vp.offY, vp.cols, vp.rows)
}

type spriteKey struct {
	id   flappy.SpriteID
	w, h int
}

// Painter draws frames onto a screen buffer. Scaled sprites are cached
// until the source reports a new version.
type Painter struct {
	sprites SpriteSource
	cache   map[spriteKey]*image.RGBA
	version int
}

// NewPainter creates a painter. sprites may be nil, in which case sprites
// are drawn as solid blocks.
func NewPainter(sprites SpriteSource) *Painter {
	return &Painter{
		sprites: sprites,
		cache:   make(map[spriteKey]*image.RGBA),
	}
}

// Paint clears the screen and draws the frame centered on it.
func (p *Painter) Paint(s *core.Screen, f flappy.Frame) {
	s.Clear()
	vp := fitViewport(s.Width(), s.Height(), f.Board.W, f.Board.H)
	clip := vp.board()

	p.drawBorder(s, clip)

	for _, pipe := range f.Pipes {
		p.drawSprite(s, vp, clip, pipe)
	}
	if f.Splash != nil {
		p.drawSprite(s, vp, clip, *f.Splash)
	}
	p.drawSprite(s, vp, clip, f.Bird)

	if f.State != flappy.StateStartScreen {
		p.drawText(s, vp, clip, f.HUD, core.ColorBrightWhite)
	}
	for i, t := range f.Overlay {
		c := core.ColorBrightWhite
		if i == 0 {
			c = core.ColorBrightRed
		}
		p.drawText(s, vp, clip, t, c)
	}
}

// drawBorder outlines the board when there is room around it.
func (p *Painter) drawBorder(s *core.Screen, clip core.Rect) {
	for y := clip.Y; y < clip.Bottom(); y++ {
		s.SetColored(clip.X-1, y, '│', core.ColorGray)
		s.SetColored(clip.Right(), y, '│', core.ColorGray)
	}
	s.DrawHLine(clip.X, clip.Y-1, clip.W, '─', core.ColorGray)
	s.DrawHLine(clip.X, clip.Bottom(), clip.W, '─', core.ColorGray)
	s.SetColored(clip.X-1, clip.Y-1, '┌', core.ColorGray)
	s.SetColored(clip.Right(), clip.Y-1, '┐', core.ColorGray)
	s.SetColored(clip.X-1, clip.Bottom(), '└', core.ColorGray)
	s.SetColored(clip.Right(), clip.Bottom(), '┘', core.ColorGray)
}

func (p *Painter) drawSprite(s *core.Screen, vp viewport, clip core.Rect, sp flappy.Sprite) {
	r := vp.span(sp.Box)

	img := p.scaled(sp.ID, r.W, r.H)
	if img == nil {
		if p.sprites == nil {
			p.fill(s, r.Intersection(clip), fallbackColor(sp.ID))
		}
		return
	}

	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			sx, sy := r.X+x, r.Y+y
			if !clip.Contains(sx, sy) {
				continue
			}
			px := img.RGBAAt(x, y)
			if px.A < 0x80 {
				continue
			}
			s.SetColored(sx, sy, '█', core.NearestColor(px))
		}
	}
}

func (p *Painter) fill(s *core.Screen, r core.Rect, c core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	s.DrawRect(r, '█', c)
}

// scaled returns the sprite resized to w by h cells, or nil if unready.
func (p *Painter) scaled(id flappy.SpriteID, w, h int) *image.RGBA {
	if p.sprites == nil {
		return nil
	}
	if v := p.sprites.Version(); v != p.version {
		clear(p.cache)
		p.version = v
	}

	k := spriteKey{id: id, w: w, h: h}
	if img, ok := p.cache[k]; ok {
		return img
	}
	src, ok := p.sprites.Image(id)
	if !ok {
		return nil
	}
	img := assets.Scale(src, w, h)
	p.cache[k] = img
	return img
}

func (p *Painter) drawText(s *core.Screen, vp viewport, clip core.Rect, t flappy.Text, c core.Color) {
	if t.Content == "" || clip.W <= 0 || clip.H <= 0 {
		return
	}
	x, y := vp.cell(t.X, t.Y)
	// Text is anchored at its baseline; draw on the row above it
	x = core.Clamp(x, clip.X, clip.Right()-1)
	y = core.Clamp(y-1, clip.Y, clip.Bottom()-1)
	runes := []rune(t.Content)
	if room := clip.Right() - x; len(runes) > room {
		runes = runes[:core.Max(room, 0)]
	}
	s.DrawText(x, y, string(runes), c)
}

func fallbackColor(id flappy.SpriteID) core.Color {
	switch id {
	case flappy.SpriteBird:
		return core.ColorBrightYellow
	case flappy.SpritePipeTop, flappy.SpritePipeBottom:
		return core.ColorGreen
	default:
		return core.ColorOrange
	}
}
