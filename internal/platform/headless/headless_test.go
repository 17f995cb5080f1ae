package headless

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/flabird/internal/config"
	"github.com/vovakirdan/flabird/internal/games/flappy"
	"github.com/vovakirdan/flabird/internal/storage"
)

type fakeRuns struct {
	scores []float64
	err    error
}

func (f *fakeRuns) SaveRun(_, _ string, score float64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.scores = append(f.scores, score)
	return int64(len(f.scores)), nil
}

func TestRunWithoutFlapsCrashes(t *testing.T) {
	runs := &fakeRuns{}
	res, err := Run(context.Background(), config.Default(), Options{
		Frames: 1000,
		Seed:   1,
		Runs:   runs,
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.State != flappy.StateGameOver {
		t.Errorf("State = %v, expected game over", res.State)
	}
	if res.Ticks >= 1000 {
		t.Errorf("simulation should stop at the crash, ran %d ticks", res.Ticks)
	}
	if res.Runs != 1 || res.Score != 0 || res.Flaps != 0 {
		t.Errorf("unexpected result %+v", res)
	}
	if len(runs.scores) != 1 {
		t.Errorf("expected one recorded run, got %d", len(runs.scores))
	}
}

func TestRunRestartsAfterCrash(t *testing.T) {
	runs := &fakeRuns{}
	res, err := Run(context.Background(), config.Default(), Options{
		Frames:  600,
		Seed:    1,
		Restart: true,
		Runs:    runs,
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Ticks != 600 {
		t.Errorf("Ticks = %d, expected all 600", res.Ticks)
	}
	if res.Runs < 5 {
		t.Errorf("Runs = %d, expected several restarts", res.Runs)
	}
	// Every finished run is recorded; the last one may still be flying
	if n := len(runs.scores); n != res.Runs && n != res.Runs-1 {
		t.Errorf("recorded %d runs for %d started", n, res.Runs)
	}
}

func TestRunAutopilotScores(t *testing.T) {
	store := storage.NewMemory()
	res, err := Run(context.Background(), config.Default(), Options{
		Frames:    400,
		Seed:      42,
		Autopilot: true,
		Scores:    store,
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.BestRun < 1 {
		t.Errorf("autopilot should clear the first pair, best run %v", res.BestRun)
	}
	if res.Flaps == 0 {
		t.Error("autopilot never flapped")
	}
	// Pairs spawn every 90 ticks and the first one is cleared around tick 280
	if res.Spawns < 3 {
		t.Errorf("Spawns = %d, expected at least 3", res.Spawns)
	}
	if stored, _ := store.Get("hightscore"); stored != flappy.FormatScore(res.HighScore) {
		t.Errorf("stored high score %q, expected %v", stored, res.HighScore)
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := Options{Frames: 3000, Seed: 99, Autopilot: true, Restart: true}

	a, err := Run(context.Background(), config.Default(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), config.Default(), opts)
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Errorf("same seed gave different results:\n%+v\n%+v", a, b)
	}
}

func TestRunFlapEvery(t *testing.T) {
	res, err := Run(context.Background(), config.Default(), Options{
		Frames:    100,
		Seed:      1,
		FlapEvery: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	// Flapping every 20 ticks gains more than gravity takes, so the bird survives
	if res.State != flappy.StatePlaying {
		t.Errorf("State = %v, expected the bird to still be flying", res.State)
	}
	if res.Flaps != 4 {
		t.Errorf("Flaps = %d, expected 4 in 100 ticks", res.Flaps)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	if _, err := Run(context.Background(), config.Default(), Options{}); err == nil {
		t.Error("Run() should reject zero frames")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, config.Default(), Options{Frames: 10})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() with a cancelled context = %v, expected context.Canceled", err)
	}
}

func TestRunRecorderFailureIgnored(t *testing.T) {
	_, err := Run(context.Background(), config.Default(), Options{
		Frames: 200,
		Runs:   &fakeRuns{err: errors.New("read-only")},
	})
	if err != nil {
		t.Errorf("a failing recorder should not fail the run: %v", err)
	}
}

func TestAutopilotWantsFlap(t *testing.T) {
	a := newAutopilot(config.Default())
	bird := flappy.Bird{X: 45, Y: 300, Width: 34, Height: 24}
	gap := flappy.Pipe{Sprite: flappy.SpritePipeBottom, X: 200, Y: 400, Width: 64, Height: 512}

	tests := []struct {
		name     string
		y, vy    float64
		pipes    []flappy.Pipe
		expected bool
	}{
		{"above target", 300, 2, []flappy.Pipe{gap}, false},
		{"near target falling", 360, 1, []flappy.Pipe{gap}, true},
		{"near target rising", 360, -3, []flappy.Pipe{gap}, false},
		{"far below rising", 450, -3, []flappy.Pipe{gap}, true},
		{"cleared pipe ignored", 300, 1, []flappy.Pipe{{Sprite: flappy.SpritePipeBottom, X: -30, Y: 200, Width: 64}}, false},
		{"no pipes hovers mid board", 330, 0, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := bird
			b.Y = tc.y
			w := flappy.World{Bird: b, VelocityY: tc.vy, Pipes: tc.pipes}
			if got := a.wantsFlap(w); got != tc.expected {
				t.Errorf("wantsFlap() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
