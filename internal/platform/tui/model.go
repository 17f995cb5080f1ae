package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flabird/internal/config"
	"github.com/vovakirdan/flabird/internal/core"
	"github.com/vovakirdan/flabird/internal/games/flappy"
)

// RunRecorder stores finished runs for the scoreboard.
type RunRecorder interface {
	SaveRun(player, sessionID string, score float64) (int64, error)
}

// Options configures a Model.
type Options struct {
	Config  config.FlabirdConfig
	Runtime core.RuntimeConfig

	Scores flappy.ScoreStore // High score; nil keeps it in memory
	Runs   RunRecorder       // Run history; nil disables it
	Assets SpriteSource      // Nil draws solid blocks

	Player       string // Recorded with each run
	SessionID    string
	HighScoreKey string // Overrides the configured key when set

	ScreenshotDir string
	Logger        *log.Logger
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game    *flappy.Game
	frames  *loopClock
	spawns  *loopClock
	painter *Painter
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	opts    Options
	logger  *log.Logger

	lastState flappy.State
	status    string
	quitting  bool
}

// NewModel creates a model and its game. The game stays on the start
// screen until the first flap.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	// A session may start before its terminal size is known
	def := core.DefaultConfig()
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = def.TickRate
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	frames := newFrameClock(opts.Runtime.TickRate)
	spawns := newSpawnClock(opts.Config.Pipes.SpawnInterval())

	gameOpts := []flappy.Option{
		flappy.WithFrameClock(frames),
		flappy.WithSpawnClock(spawns),
		flappy.WithSeed(opts.Runtime.Seed),
		flappy.WithLogger(opts.Logger),
	}
	if opts.Scores != nil {
		gameOpts = append(gameOpts, flappy.WithScoreStore(opts.Scores))
	}
	if opts.HighScoreKey != "" {
		gameOpts = append(gameOpts, flappy.WithHighScoreKey(opts.HighScoreKey))
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:      flappy.New(opts.Config, gameOpts...),
		frames:    frames,
		spawns:    spawns,
		painter:   NewPainter(opts.Assets),
		screen:    core.NewScreen(opts.Runtime.ScreenW, core.Max(opts.Runtime.ScreenH-1, 1)),
		keys:      DefaultKeyMap(),
		help:      h,
		opts:      opts,
		logger:    opts.Logger,
		lastState: flappy.StateStartScreen,
	}
}

// Init does nothing; the loops start with the first flap.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleAction(MouseAction(msg))

	case tea.WindowSizeMsg:
		// Resizing only moves the viewport; the board keeps its size
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		if !m.frames.accept(msg.gen) {
			return m, nil
		}
		m.game.FrameTick()
		m.checkGameOver()
		return m, m.frames.tick()

	case spawnMsg:
		if !m.spawns.accept(msg.gen) {
			return m, nil
		}
		m.game.SpawnTick()
		return m, m.spawns.tick()
	}

	return m, nil
}

func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		m.shutdown()
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + filepath.Base(path)
		}
		return m, nil

	case core.ActionActivate:
		m.game.Activate()
		m.lastState = m.game.State()
		m.status = ""
		return m, tea.Batch(m.frames.take(), m.spawns.take())
	}

	return m, nil
}

// shutdown records a run cut short and closes the game, which stops both
// loops. It is safe to call more than once.
func (m Model) shutdown() {
	if m.game.Closed() {
		return
	}
	if m.game.State() == flappy.StatePlaying {
		m.recordRun(m.game.Score())
	}
	m.game.Close()
}

// checkGameOver records a run once when the game ends.
func (m *Model) checkGameOver() {
	state := m.game.State()
	if state == flappy.StateGameOver && m.lastState != flappy.StateGameOver {
		m.recordRun(m.game.Score())
	}
	m.lastState = state
}

func (m Model) recordRun(score float64) {
	if m.opts.Runs == nil {
		return
	}
	if _, err := m.opts.Runs.SaveRun(m.opts.Player, m.opts.SessionID, score); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot writes the current screen as text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(config.DataDir(), "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	m.painter.Paint(m.screen, m.game.Frame())

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("flabird_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return path, nil
}

// View renders the current frame and a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.painter.Paint(m.screen, m.game.Frame())

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Game returns the running game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	model.shutdown()
	return err
}
