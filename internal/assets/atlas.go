// Package assets loads the game's sprites. Images decode in the background;
// front-ends ask Ready before drawing and skip sprites that are not loaded.
package assets

import (
	"embed"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flabird/internal/config"
	"github.com/vovakirdan/flabird/internal/games/flappy"
)

//go:embed art/*.txt
var artFS embed.FS

// Sprites lists every sprite the game can ask for.
var Sprites = []flappy.SpriteID{
	flappy.SpriteBird,
	flappy.SpritePipeTop,
	flappy.SpritePipeBottom,
	flappy.SpriteSplash,
}

// Atlas holds decoded sprite images keyed by sprite ID.
type Atlas struct {
	fsys   fs.FS
	dir    string // Empty for the embedded art
	files  map[flappy.SpriteID]string
	logger *log.Logger

	mu      sync.RWMutex
	images  map[flappy.SpriteID]image.Image
	version int

	wg sync.WaitGroup
}

// New creates an atlas for the configured sprite files. When cfg.Dir is
// empty the embedded glyph art is used.
func New(cfg config.Assets, logger *log.Logger) (*Atlas, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &Atlas{
		files: map[flappy.SpriteID]string{
			flappy.SpriteBird:       cfg.Bird,
			flappy.SpritePipeTop:    cfg.TopPipe,
			flappy.SpritePipeBottom: cfg.BottomPipe,
			flappy.SpriteSplash:     cfg.Splash,
		},
		logger: logger,
		images: make(map[flappy.SpriteID]image.Image),
	}

	if cfg.Dir == "" {
		sub, err := fs.Sub(artFS, "art")
		if err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		a.fsys = sub
		return a, nil
	}

	dir, err := config.ExpandHome(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", dir)
	}
	a.dir = dir
	a.fsys = os.DirFS(dir)
	return a, nil
}

// Load starts decoding every sprite in the background and returns at once.
func (a *Atlas) Load() {
	for _, id := range Sprites {
		a.wg.Add(1)
		go func(id flappy.SpriteID) {
			defer a.wg.Done()
			a.load(id)
		}(id)
	}
}

// Wait blocks until every load started by Load has finished.
func (a *Atlas) Wait() {
	a.wg.Wait()
}

// load decodes one sprite. On failure the previous image, if any, stays.
func (a *Atlas) load(id flappy.SpriteID) {
	name := a.files[id]
	if name == "" {
		a.logger.Warn("no file configured for sprite", "sprite", id)
		return
	}

	f, err := a.fsys.Open(path.Clean(name))
	if err != nil {
		a.logger.Warn("could not open sprite", "sprite", id, "file", name, "error", err)
		return
	}
	defer f.Close()

	img, err := Decode(name, f)
	if err != nil {
		a.logger.Warn("could not decode sprite", "sprite", id, "error", err)
		return
	}

	a.mu.Lock()
	a.images[id] = img
	a.version++
	a.mu.Unlock()

	a.logger.Debug("sprite loaded", "sprite", id, "size", img.Bounds().Size())
}

// Ready reports whether the sprite has finished loading.
func (a *Atlas) Ready(id flappy.SpriteID) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.images[id]
	return ok
}

// Image returns the decoded sprite, or false if it is not ready.
func (a *Atlas) Image(id flappy.SpriteID) (image.Image, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	img, ok := a.images[id]
	return img, ok
}

// Version increases every time a sprite is (re)loaded. Front-ends that
// cache scaled sprites drop the cache when it changes.
func (a *Atlas) Version() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.version
}

// Dir returns the watched sprite directory, or "" for the embedded art.
func (a *Atlas) Dir() string {
	return a.dir
}
