//go:build !ebiten

package gui

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flabird/internal/config"
)

func TestRunWithoutEbitenTag(t *testing.T) {
	if err := Run(Options{Config: config.Default()}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Run() = %v, expected ErrUnavailable", err)
	}
}
