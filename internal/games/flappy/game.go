// Package flappy implements the Flappy Bird game logic.
// The player taps to give a falling bird an upward kick and steers it through
// gaps between scrolling pipe pairs. The package holds no terminal or window
// code: front-ends feed it three events (activate, frame tick, spawn tick)
// and draw the Frame it returns.
package flappy

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flabird/internal/config"
)

// State is the game lifecycle state.
type State int

const (
	StateStartScreen State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStartScreen:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Clock is a recurring callback source owned by a front-end. The game arms
// it when play starts and cancels it on Close; the front-end delivers its
// ticks to FrameTick or SpawnTick and must drop ticks after Stop.
type Clock interface {
	Start()
	Stop()
}

type nopClock struct{}

func (nopClock) Start() {}
func (nopClock) Stop()  {}

// Option configures a Game.
type Option func(*Game)

// WithFrameClock sets the clock that drives FrameTick.
func WithFrameClock(c Clock) Option {
	return func(g *Game) { g.frames = c }
}

// WithSpawnClock sets the clock that drives SpawnTick.
func WithSpawnClock(c Clock) Option {
	return func(g *Game) { g.spawns = c }
}

// WithRand sets the random source used for pipe placement.
func WithRand(r RandSource) Option {
	return func(g *Game) { g.rng = r }
}

// WithSeed seeds a PCG generator for pipe placement.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewPCG(uint64(seed), 0)) }
}

// WithScoreStore sets where the high score is read from and written to.
func WithScoreStore(s ScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithHighScoreKey overrides the configured high-score key.
func WithHighScoreKey(key string) Option {
	return func(g *Game) { g.key = key }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game is the lifecycle state machine. It exclusively owns the World and is
// driven from a single goroutine: Activate, FrameTick and SpawnTick must
// never run concurrently.
type Game struct {
	cfg     config.FlabirdConfig
	physics Physics
	world   World
	state   State

	rng    RandSource
	store  ScoreStore
	key    string
	scores *ScoreKeeper
	logger *log.Logger

	frames        Clock
	spawns        Clock
	framesRunning bool
	spawnsRunning bool
	closed        bool

	frameCount int
	runs       int
}

// New creates a game on its start screen and loads the high score.
func New(cfg config.FlabirdConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		physics: PhysicsFromConfig(cfg),
		state:   StateStartScreen,
		key:     cfg.Scoring.HighScoreKey,
		frames:  nopClock{},
		spawns:  nopClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.world = World{
		Bird: Bird{
			X:      cfg.Bird.X,
			Y:      cfg.Bird.Y,
			Width:  cfg.Bird.Width,
			Height: cfg.Bird.Height,
		},
		Pipes: make([]Pipe, 0, 8),
	}
	g.scores = NewScoreKeeper(g.store, g.key, g.logger)

	return g
}

// Activate handles the single player input. On the start screen it starts
// play; while playing it flaps; after a crash it flaps and restarts.
func (g *Game) Activate() {
	if g.closed {
		return
	}

	switch g.state {
	case StateStartScreen:
		g.state = StatePlaying
		g.runs++
		g.startClocks()
		g.logger.Debug("game started")

	case StatePlaying:
		g.world.VelocityY = g.cfg.Physics.JumpImpulse

	case StateGameOver:
		g.world.VelocityY = g.cfg.Physics.JumpImpulse
		g.reset()
		g.state = StatePlaying
		g.runs++
		g.startClocks()
		g.logger.Debug("game restarted", "run", g.runs)
	}
}

// reset clears per-run state. Velocity is left alone so a restart keeps the
// flap that triggered it.
func (g *Game) reset() {
	g.world.Bird.Y = g.cfg.Bird.Y
	g.world.Pipes = g.world.Pipes[:0]
	g.world.Score = 0
	g.world.Over = false
}

// FrameTick advances the simulation by one frame while playing and returns
// the frame to draw. Outside of play it only describes the current frame.
func (g *Game) FrameTick() Frame {
	if g.closed || g.state != StatePlaying {
		return g.frame()
	}

	g.frameCount++
	res := g.world.Step(g.physics)

	if g.scores.Observe(g.world.Score) {
		g.logger.Debug("new high score", "score", FormatScore(g.world.Score))
	}

	if g.world.Over {
		g.state = StateGameOver
		g.logger.Info("game over",
			"score", FormatScore(g.world.Score),
			"best", FormatScore(g.scores.Best()),
			"landed", res.Landed,
			"collided", res.Collided,
		)
	}

	return g.frame()
}

// SpawnTick adds a new pipe pair at the right edge while playing.
func (g *Game) SpawnTick() {
	if g.closed || g.state != StatePlaying || g.world.Over {
		return
	}

	top, bottom := SpawnPair(g.rng,
		g.cfg.Board.Height,
		g.cfg.Pipes.Width,
		g.cfg.Pipes.Height,
		g.cfg.Pipes.SpawnX,
	)
	g.world.Pipes = append(g.world.Pipes, top, bottom)
}

// Close cancels both clocks. The game ignores all input afterwards.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.frames.Stop()
	g.spawns.Stop()
	g.framesRunning = false
	g.spawnsRunning = false
	g.logger.Debug("game closed")
}

// startClocks arms whichever clock is not already running.
func (g *Game) startClocks() {
	if !g.framesRunning {
		g.frames.Start()
		g.framesRunning = true
	}
	if !g.spawnsRunning {
		g.spawns.Start()
		g.spawnsRunning = true
	}
}

// Frame returns the current render descriptor without advancing anything.
func (g *Game) Frame() Frame {
	return g.frame()
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current run's score.
func (g *Game) Score() float64 {
	return g.world.Score
}

// HighScore returns the best score seen, including the stored one.
func (g *Game) HighScore() float64 {
	return g.scores.Best()
}

// Closed reports whether Close has been called.
func (g *Game) Closed() bool {
	return g.closed
}

// Runs returns how many runs have been started.
func (g *Game) Runs() int {
	return g.runs
}

// Frames returns how many frames have been simulated.
func (g *Game) Frames() int {
	return g.frameCount
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlabirdConfig {
	return g.cfg
}

// World returns a copy of the simulation state.
func (g *Game) World() World {
	w := g.world
	w.Pipes = append([]Pipe(nil), g.world.Pipes...)
	return w
}
