package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flabird/internal/core"
	"github.com/vovakirdan/flabird/internal/games/flappy"
	"github.com/vovakirdan/flabird/internal/platform/tui"
	"github.com/vovakirdan/flabird/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs.

Without --plain an interactive table is shown; with --plain the top runs
are printed as text.

Examples:
  flabird scores
  flabird scores --plain --limit 20
  flabird scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text table instead of the interactive view")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (high scores are kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			store.Close()
			exitf("%v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if !flagPlain {
		size := core.DefaultConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			size.ScreenW, size.ScreenH = w, h
		}
		if err := tui.RunScoreboard(store, size.ScreenW, size.ScreenH); err != nil {
			store.Close()
			exitf("%v", err)
		}
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		store.Close()
		exitf("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Flabird")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flabird play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range runs {
		fmt.Printf("  %-4d  %-12s  %-8s  %s\n",
			i+1, entry.Player, flappy.FormatScore(entry.Score), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Summary
	fmt.Println()
	if total, err := store.RunCount(); err == nil && total > len(runs) {
		fmt.Printf("Showing %d of %d runs\n", len(runs), total)
	}
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Best: %s  Average: %.2f  Last played: %s\n",
			stats.Runs, flappy.FormatScore(stats.BestScore), stats.AvgScore,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	player := playerName()
	if best, err := store.BestRun(player); err == nil && best > 0 {
		fmt.Printf("Your best (%s): %s\n", player, flappy.FormatScore(best))
	}
}
