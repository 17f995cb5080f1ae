package gui

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flabird/internal/config"
	"github.com/vovakirdan/flabird/internal/games/flappy"
	"github.com/vovakirdan/flabird/internal/storage"
)

type fakeRuns struct {
	players []string
	scores  []float64
	err     error
}

func (f *fakeRuns) SaveRun(player, _ string, score float64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.players = append(f.players, player)
	f.scores = append(f.scores, score)
	return int64(len(f.scores)), nil
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{Config: config.Default()}.withDefaults()

	if o.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", o.TickRate)
	}
	if o.Seed == 0 {
		t.Error("Seed should be drawn from the clock")
	}
	if o.Scale != 1 {
		t.Errorf("Scale = %v, expected 1", o.Scale)
	}
	if o.Player != "local" {
		t.Errorf("Player = %q, expected local", o.Player)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	kept := Options{TickRate: 30, Seed: 7, Scale: 2, Player: "ann"}.withDefaults()
	if kept.TickRate != 30 || kept.Seed != 7 || kept.Scale != 2 || kept.Player != "ann" {
		t.Errorf("explicit options were overridden: %+v", kept)
	}
}

func TestNewStepperUsesHighScoreKey(t *testing.T) {
	store := storage.NewMemory()
	if err := store.Set("custom", "4.5"); err != nil {
		t.Fatal(err)
	}

	o := Options{Config: config.Default(), Scores: store, HighScoreKey: "custom"}.withDefaults()
	s := newStepper(o)
	defer s.Close()

	if got := s.Game().HighScore(); got != 4.5 {
		t.Errorf("HighScore() = %v, expected 4.5 from the custom key", got)
	}
	if s.Game().State() != flappy.StateStartScreen {
		t.Errorf("State = %v, expected start screen", s.Game().State())
	}
}

func TestRecordRun(t *testing.T) {
	runs := &fakeRuns{}
	o := Options{Runs: runs}.withDefaults()
	o.recordRun(2.5)

	if len(runs.scores) != 1 || runs.scores[0] != 2.5 || runs.players[0] != "local" {
		t.Errorf("unexpected recorded runs %+v", runs)
	}

	// Failures are logged, not returned
	Options{Runs: &fakeRuns{err: errors.New("disk full")}}.withDefaults().recordRun(1)
	// No recorder is a no-op
	Options{}.withDefaults().recordRun(1)
}
