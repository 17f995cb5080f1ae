// Package headless runs the game without any display, for simulations,
// benchmarks and replaying a fixed input pattern.
package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flabird/internal/config"
	"github.com/vovakirdan/flabird/internal/games/flappy"
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(player, sessionID string, score float64) (int64, error)
}

// Options configures a simulation.
type Options struct {
	Frames    int   // Host ticks to simulate
	TickRate  int   // Host ticks per second, used for the spawn interval
	Seed      int64 // Pipe placement seed
	FlapEvery int   // Flap every N ticks; 0 disables
	Autopilot bool  // Steer toward the next gap instead of FlapEvery
	Restart   bool  // Start a new run after each crash instead of stopping

	Scores    flappy.ScoreStore
	Runs      RunRecorder
	Player    string
	SessionID string
	Logger    *log.Logger
}

// Result summarizes a simulation.
type Result struct {
	Ticks     int          // Host ticks consumed
	Frames    int          // Frames simulated while playing
	Runs      int          // Runs started
	Flaps     int          // Activations sent
	Spawns    int          // Pipe pair spawn ticks
	Score     float64      // Score of the last run
	BestRun   float64      // Best score seen during the simulation
	HighScore float64      // Persisted high score after the simulation
	State     flappy.State // Final game state
}

// Run simulates up to opts.Frames host ticks. It stops early on ctx
// cancellation or, unless opts.Restart is set, when the bird crashes.
func Run(ctx context.Context, cfg config.FlabirdConfig, opts Options) (Result, error) {
	if opts.Frames <= 0 {
		return Result{}, fmt.Errorf("headless: frames must be positive, got %d", opts.Frames)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "simulate"
	}

	gameOpts := []flappy.Option{
		flappy.WithSeed(opts.Seed),
		flappy.WithLogger(opts.Logger),
	}
	if opts.Scores != nil {
		gameOpts = append(gameOpts, flappy.WithScoreStore(opts.Scores))
	}

	s := flappy.NewStepper(cfg, opts.TickRate, gameOpts...)
	defer s.Close()
	g := s.Game()

	var res Result
	pilot := newAutopilot(cfg)

	s.Activate()
	for res.Ticks < opts.Frames {
		if err := ctx.Err(); err != nil {
			res.Spawns = s.Spawns()
			return finish(res, g), fmt.Errorf("headless: %w", err)
		}

		if g.State() == flappy.StateGameOver {
			if !opts.Restart {
				break
			}
			s.Activate()
			res.Flaps++
		} else if shouldFlap(opts, pilot, g, res.Ticks) {
			s.Activate()
			res.Flaps++
		}

		tick := s.Tick()
		res.Ticks++
		if tick.Framed && g.State() != flappy.StateStartScreen {
			res.Frames++
		}
		res.BestRun = max(res.BestRun, g.Score())

		if tick.Ended {
			opts.Logger.Debug("run ended", "tick", res.Ticks, "score", flappy.FormatScore(g.Score()))
			recordRun(opts, g.Score())
		}
	}

	res.Spawns = s.Spawns()
	return finish(res, g), nil
}

func shouldFlap(opts Options, pilot autopilot, g *flappy.Game, tick int) bool {
	if g.State() != flappy.StatePlaying {
		return false
	}
	if opts.Autopilot {
		return pilot.wantsFlap(g.World())
	}
	return opts.FlapEvery > 0 && tick > 0 && tick%opts.FlapEvery == 0
}

func recordRun(opts Options, score float64) {
	if opts.Runs == nil {
		return
	}
	if _, err := opts.Runs.SaveRun(opts.Player, opts.SessionID, score); err != nil {
		opts.Logger.Warn("could not save run", "error", err)
	}
}

func finish(res Result, g *flappy.Game) Result {
	res.Runs = g.Runs()
	res.Score = g.Score()
	res.HighScore = g.HighScore()
	res.State = g.State()
	return res
}
