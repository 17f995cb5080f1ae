//go:build ebiten

package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flabird/internal/core"
	"github.com/vovakirdan/flabird/internal/games/flappy"
)

var (
	skyColor     = color.RGBA{R: 0x4e, G: 0xc0, B: 0xca, A: 0xff}
	textColor    = color.White
	overColor    = color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff}
	fallbackBird = core.ColorBrightYellow.RGBA()
	fallbackPipe = core.ColorGreen.RGBA()
	fallbackLogo = core.ColorOrange.RGBA()
)

// Window adapts a game to the ebiten.Game interface. Update runs at the
// configured TPS and drives both game clocks.
type Window struct {
	stepper *flappy.Stepper
	opts    Options

	images  map[flappy.SpriteID]*ebiten.Image
	version int
}

// NewWindow creates a window on the game's start screen.
func NewWindow(opts Options) *Window {
	opts = opts.withDefaults()
	return &Window{
		stepper: newStepper(opts),
		opts:    opts,
		images:  make(map[flappy.SpriteID]*ebiten.Image),
	}
}

// Update handles input and advances the game by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.shutdown()
		return ebiten.Termination
	}
	if flapPressed() {
		w.stepper.Activate()
	}

	res := w.stepper.Tick()
	if res.Ended {
		w.opts.recordRun(w.stepper.Game().Score())
	}
	return nil
}

// shutdown records a run cut short and closes the game.
func (w *Window) shutdown() {
	g := w.stepper.Game()
	if g.Closed() {
		return
	}
	if g.State() == flappy.StatePlaying {
		w.opts.recordRun(g.Score())
	}
	w.stepper.Close()
}

func flapPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	f := w.stepper.Game().Frame()
	screen.Fill(skyColor)

	for _, p := range f.Pipes {
		w.drawSprite(screen, p)
	}
	if f.Splash != nil {
		w.drawSprite(screen, *f.Splash)
	}
	w.drawSprite(screen, f.Bird)

	if f.State != flappy.StateStartScreen {
		drawText(screen, f.HUD, textColor)
	}
	for i, t := range f.Overlay {
		c := color.Color(textColor)
		if i == 0 {
			c = overColor
		}
		drawText(screen, t, c)
	}

	if w.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), 4, int(f.Board.H)-20)
	}
}

// Layout returns the board size as the logical screen size.
func (w *Window) Layout(int, int) (int, int) {
	b := w.opts.Config.Board
	return int(b.Width), int(b.Height)
}

func (w *Window) drawSprite(screen *ebiten.Image, sp flappy.Sprite) {
	img := w.image(sp.ID)
	if img == nil {
		if w.opts.Assets == nil {
			vector.DrawFilledRect(screen,
				float32(sp.Box.X), float32(sp.Box.Y),
				float32(sp.Box.W), float32(sp.Box.H),
				fallbackColor(sp.ID), false)
		}
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sp.Box.W/float64(b.Dx()), sp.Box.H/float64(b.Dy()))
	op.GeoM.Translate(sp.Box.X, sp.Box.Y)
	screen.DrawImage(img, op)
}

// image returns the GPU copy of a sprite, refreshed after a reload.
func (w *Window) image(id flappy.SpriteID) *ebiten.Image {
	if w.opts.Assets == nil {
		return nil
	}
	if v := w.opts.Assets.Version(); v != w.version {
		for _, img := range w.images {
			img.Dispose()
		}
		clear(w.images)
		w.version = v
	}

	if img, ok := w.images[id]; ok {
		return img
	}
	src, ok := w.opts.Assets.Image(id)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	w.images[id] = img
	return img
}

func drawText(screen *ebiten.Image, t flappy.Text, c color.Color) {
	if t.Content == "" {
		return
	}
	text.Draw(screen, t.Content, basicfont.Face7x13, int(t.X), int(t.Y), c)
}

func fallbackColor(id flappy.SpriteID) color.Color {
	switch id {
	case flappy.SpriteBird:
		return fallbackBird
	case flappy.SpritePipeTop, flappy.SpritePipeBottom:
		return fallbackPipe
	default:
		return fallbackLogo
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w := NewWindow(opts)
	defer w.shutdown()

	b := w.opts.Config.Board
	ebiten.SetWindowSize(int(b.Width*w.opts.Scale), int(b.Height*w.opts.Scale))
	ebiten.SetWindowTitle("Flabird")
	ebiten.SetTPS(w.opts.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
