package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit     int
	flagMine      bool
	flagClear     bool
	flagStats     bool
	flagScoresTUI bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best recorded rounds.

Examples:
  flappy scores
  flappy scores --limit 20
  flappy scores --mine --player kim
  flappy scores --stats
  flappy scores --tui
  flappy scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagMine, "mine", false, "Show the best score of --player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregate statistics")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the leaderboard interactively")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(flappy.ID); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
	case flagScoresTUI:
		if err := tui.RunScoreboard(store, flappy.ID, flappy.New().Title(), 80, 24); err != nil {
			fail("running scoreboard: %v", err)
		}
	case flagStats:
		printStats(store)
	case flagMine:
		best, err := store.PlayerBest(flappy.ID, flagPlayer)
		if err != nil {
			fail("reading best score: %v", err)
		}
		fmt.Printf("Best for %s: %d\n", flagPlayer, best)
	default:
		printScores(store)
	}
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(flappy.ID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Flappy Bird")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetGameStats(flappy.ID)
	if err != nil {
		fail("reading statistics: %v", err)
	}

	fmt.Println("Statistics - Flappy Bird")
	fmt.Println()
	fmt.Printf("  Rounds:   %d\n", stats.GamesCount)
	fmt.Printf("  Players:  %d\n", stats.Players)
	fmt.Printf("  Best:     %d\n", stats.HighScore)
	fmt.Printf("  Average:  %.1f\n", stats.AvgScore)
	fmt.Printf("  Pipes:    %d\n", stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last:     %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
