package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flabird/internal/platform/gui"
	"github.com/vovakirdan/flabird/internal/storage"
)

var (
	flagScale float64
	flagDebug bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a 360x640 desktop window.

Controls:
  Space/Up/Enter/Left click - Start, flap, and restart after a crash
  Esc/Q                     - Quit

The window is only available in binaries built with the 'ebiten' tag:
  go build -tags ebiten ./cmd/flabird`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
	windowCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the measured TPS")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := stderrLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	atlas := loadAtlas(cfg.Assets, logger)
	watchAtlas(ctx, atlas, logger)

	opts := gui.Options{
		Config:   cfg,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Scale:    flagScale,
		Assets:   atlas,
		Player:   playerName(),
		Logger:   logger,
		Debug:    flagDebug,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("playing without a database", "error", err)
		opts.Scores = storage.NewMemory()
	} else {
		defer store.Close()
		opts.Scores = store
		opts.Runs = store
	}

	if err := gui.Run(opts); err != nil {
		if store != nil {
			store.Close()
		}
		exitf("%v", err)
	}
}
