package flappy

import (
	"github.com/vovakirdan/flabird/internal/config"
	"github.com/vovakirdan/flabird/internal/core"
)

// TickResult reports what one host tick did.
type TickResult struct {
	Framed  bool // A frame was simulated
	Spawned bool // A pipe pair spawn was attempted
	Ended   bool // The run ended on this tick
}

// Stepper drives a Game from a fixed-rate host loop, such as a window's
// update callback or a headless simulation. The frame clock fires on every
// host tick and the spawn clock every spawn interval's worth of ticks.
type Stepper struct {
	game   *Game
	frames *core.StepClock
	spawns *core.StepClock
}

// NewStepper creates a game whose clocks are driven by Tick at tps host
// ticks per second. Clock options in opts are overridden.
func NewStepper(cfg config.FlabirdConfig, tps int, opts ...Option) *Stepper {
	s := &Stepper{
		frames: core.NewStepClock(1),
		spawns: core.NewStepClock(core.TicksFor(cfg.Pipes.SpawnInterval(), tps)),
	}
	opts = append(opts, WithFrameClock(s.frames), WithSpawnClock(s.spawns))
	s.game = New(cfg, opts...)
	return s
}

// Game returns the driven game.
func (s *Stepper) Game() *Game {
	return s.game
}

// Activate forwards the player's input to the game.
func (s *Stepper) Activate() {
	s.game.Activate()
}

// Tick consumes one host tick.
func (s *Stepper) Tick() TickResult {
	var res TickResult
	before := s.game.State()

	if s.frames.Advance() {
		s.game.FrameTick()
		res.Framed = true
	}
	if s.spawns.Advance() {
		s.game.SpawnTick()
		res.Spawned = true
	}

	res.Ended = before == StatePlaying && s.game.State() == StateGameOver
	return res
}

// Spawns returns how many times the spawn clock has fired.
func (s *Stepper) Spawns() int {
	return s.spawns.Fired()
}

// Close stops the game and its clocks.
func (s *Stepper) Close() {
	s.game.Close()
}
