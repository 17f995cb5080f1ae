// flabird is a Flappy Bird style arcade game for the terminal, SSH and the
// desktop.
//
// Usage:
//
//	flabird play             - Play in the terminal (default)
//	flabird serve            - Start SSH server for remote play
//	flabird window           - Play in a desktop window (ebiten builds)
//	flabird simulate         - Run a headless simulation
//	flabird scores           - Show the best runs
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible pipes
//	--db <path>         - Set database path (default: ~/.flabird/scores.db)
//	--config <path>     - Load a YAML or TOML game config
//	--assets <dir>      - Load sprites from a directory and watch it
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Log file for terminal play
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flabird/internal/assets"
	"github.com/vovakirdan/flabird/internal/config"
	"github.com/vovakirdan/flabird/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagAssets   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flabird",
	Short: "Flabird - flap through the pipes in your terminal",
	Long: `Flabird is a Flappy Bird style arcade game. Flap with space, up,
enter or a mouse click, fly through the gaps and beat your high score.

Available commands:
  play      - Play in the terminal (default)
  serve     - Start SSH server for remote play
  window    - Play in a desktop window
  simulate  - Run a headless simulation
  scores    - View the best runs

Examples:
  flabird
  flabird play --seed 42
  flabird serve --ssh :2222
  flabird simulate --frames 3600 --autopilot
  flabird scores --plain`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flabird/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory of sprite files (.png or .txt)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for terminal play (default: ~/.flabird/flabird.log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the game config and applies the --assets override.
func loadConfig() config.FlabirdConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	return cfg
}

// stderrLogger logs to stderr for commands that do not own the terminal.
func stderrLogger() *log.Logger {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		exitf("%v", err)
	}
	return logging.New(os.Stderr, "flabird", level)
}

// fileLogger logs to --log-file or ~/.flabird/flabird.log. Terminal play
// owns the screen, so nothing may be written to stderr while it runs.
func fileLogger() (*log.Logger, io.Closer) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		exitf("%v", err)
	}

	path := flagLogFile
	if path == "" {
		dir := config.DataDir()
		if dir == "" {
			return logging.Discard(), io.NopCloser(nil)
		}
		path = filepath.Join(dir, "flabird.log")
	}
	if path, err = config.ExpandHome(path); err != nil {
		exitf("%v", err)
	}

	logger, closer, err := logging.OpenFile(path, "flabird", level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}

// loadAtlas starts loading sprites in the background. A missing asset
// directory is reported and the game falls back to the embedded art.
func loadAtlas(cfg config.Assets, logger *log.Logger) *assets.Atlas {
	atlas, err := assets.New(cfg, logger)
	if err != nil {
		logger.Warn("using embedded sprites", "error", err)
		cfg.Dir = ""
		if atlas, err = assets.New(cfg, logger); err != nil {
			exitf("%v", err)
		}
	}
	atlas.Load()
	return atlas
}

// watchAtlas reloads sprites from the asset directory until ctx is done.
func watchAtlas(ctx context.Context, atlas *assets.Atlas, logger *log.Logger) {
	if atlas.Dir() == "" {
		return
	}
	go func() {
		if err := atlas.Watch(ctx); err != nil && !errors.Is(err, assets.ErrEmbedded) {
			logger.Warn("sprite watcher stopped", "error", err)
		}
	}()
}

// playerName returns the local user name recorded with each run.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
