package assets

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/flabird/internal/games/flappy"
)

// ErrEmbedded is returned by Watch when the atlas uses the embedded art.
var ErrEmbedded = errors.New("assets: embedded sprites cannot be watched")

// Watch reloads sprites when their files in the asset directory are
// created or written. It blocks until ctx is cancelled.
func (a *Atlas) Watch(ctx context.Context) error {
	if a.dir == "" {
		return ErrEmbedded
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("assets: cannot create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(a.dir); err != nil {
		return fmt.Errorf("assets: cannot watch %s: %w", a.dir, err)
	}

	byFile := make(map[string]flappy.SpriteID, len(a.files))
	for id, name := range a.files {
		byFile[filepath.Base(name)] = id
	}

	a.logger.Debug("watching sprites", "dir", a.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			id, ok := byFile[filepath.Base(e.Name)]
			if !ok {
				continue
			}
			a.logger.Info("reloading sprite", "sprite", id, "file", e.Name)
			a.load(id)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("sprite watcher error", "error", err)
		}
	}
}
