package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flabird/internal/games/flappy"
	"github.com/vovakirdan/flabird/internal/platform/headless"
	"github.com/vovakirdan/flabird/internal/storage"
)

var (
	flagFrames    int
	flagFlapEvery int
	flagAutopilot bool
	flagRestart   bool
	flagSave      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless simulation",
	Long: `Run the game without a display and print a summary.

The bird flaps every --flap-every ticks, or steers toward the next gap with
--autopilot. A given --seed always produces the same result.

Examples:
  flabird simulate --frames 3600 --autopilot --seed 7
  flabird simulate --flap-every 18 --restart
  flabird simulate --autopilot --restart --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Host ticks to simulate")
	simulateCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Flap every N ticks (0 = never)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer toward the next gap")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new run after each crash")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the runs and high score in the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := stderrLogger()

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	opts := headless.Options{
		Frames:    flagFrames,
		TickRate:  flagFPS,
		Seed:      seed,
		FlapEvery: flagFlapEvery,
		Autopilot: flagAutopilot,
		Restart:   flagRestart,
		Player:    "simulate",
		SessionID: uuid.NewString(),
		Logger:    logger,
	}

	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			exitf("opening scores database: %v", err)
		}
		defer store.Close()
		opts.Scores = store
		opts.Runs = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := headless.Run(ctx, cfg, opts)
	if err != nil {
		logger.Warn("simulation interrupted", "error", err)
	}

	fmt.Printf("Seed:       %d\n", seed)
	fmt.Printf("Ticks:      %d\n", res.Ticks)
	fmt.Printf("Frames:     %d\n", res.Frames)
	fmt.Printf("Runs:       %d\n", res.Runs)
	fmt.Printf("Flaps:      %d\n", res.Flaps)
	fmt.Printf("Spawns:     %d\n", res.Spawns)
	fmt.Printf("Score:      %s\n", flappy.FormatScore(res.Score))
	fmt.Printf("Best run:   %s\n", flappy.FormatScore(res.BestRun))
	fmt.Printf("High score: %s\n", flappy.FormatScore(res.HighScore))
	fmt.Printf("State:      %s\n", res.State)
}
