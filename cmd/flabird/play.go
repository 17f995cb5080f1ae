package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flabird/internal/core"
	"github.com/vovakirdan/flabird/internal/platform/tui"
	"github.com/vovakirdan/flabird/internal/storage"
)

var flagScreenshots string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/Enter/Click - Start, flap, and restart after a crash
  Ctrl+S               - Save a text screenshot
  Q/Esc/Ctrl+C         - Quit

The high score and every finished run are stored in the scores database.
If the database cannot be opened the game still runs and keeps the high
score until it exits.

Examples:
  flabird play
  flabird play --seed 42
  flabird play --config ./my-flabird.toml
  flabird play --assets ./sprites`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshots, "screenshots", "", "Screenshot directory (default: ~/.flabird/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, logFile := fileLogger()
	defer logFile.Close()

	runtimeCfg := core.DefaultConfig()
	runtimeCfg.TickRate = flagFPS
	runtimeCfg.Seed = flagSeed

	// Get terminal size early so the first frame fits
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtimeCfg.ScreenW = w
		runtimeCfg.ScreenH = h
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	atlas := loadAtlas(cfg.Assets, logger)
	watchAtlas(ctx, atlas, logger)

	opts := tui.Options{
		Config:        cfg,
		Runtime:       runtimeCfg,
		Assets:        atlas,
		Player:        playerName(),
		ScreenshotDir: flagScreenshots,
		Logger:        logger,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without a database", "error", err)
		// Continue in memory - game still works
		opts.Scores = storage.NewMemory()
	} else {
		opts.Scores = store
		opts.Runs = store
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
