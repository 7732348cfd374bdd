package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/waverider/internal/config"
	"github.com/vovakirdan/waverider/internal/registry"
	"github.com/vovakirdan/waverider/internal/storage"
)

var (
	flagVoyages   int
	flagScoresSea string
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores and voyage totals for a mode",
	Long: `Display the top 10 high scores for the given mode, followed by the
lifetime totals and the most recent voyages from the voyage log.

Use --sea to rank only voyages sailed on one sea state, and --clear to
wipe the mode's scores and voyage log.

Examples:
  waverider scores waverider
  waverider scores waverider --sea storm
  waverider scores waverider_endless --voyages 20
  waverider scores waverider_endless --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagVoyages, "voyages", 5, "Number of recent voyages to list")
	scoresCmd.Flags().StringVar(&flagScoresSea, "sea", "", "Only rank scores sailed on this sea state (calm, moderate, rough, storm)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and voyages for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'waverider list' to see available modes.")
		os.Exit(1)
	}
	title, _ := registry.Title(gameID)

	sea := flagScoresSea
	if sea != "" {
		parsed, err := config.ParseSeaState(sea)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		sea = string(parsed)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		log.Info("cleared scores", "mode", gameID)
		fmt.Printf("Cleared scores and voyages for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, sea, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if sea != "" {
		fmt.Printf("High Scores - %s (%s)\n", title, sea)
	} else {
		fmt.Printf("High Scores - %s\n", title)
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'waverider play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Sea", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "---", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, entry.SeaState, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Scored voyages: %d  |  Average: %.0f  |  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	totals, err := store.VoyageTotals(gameID)
	if err != nil || totals.Voyages == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Voyages: %d  |  Debris: %d  |  Sailed: %.0fm  |  At sea: %s  |  Best: %d\n",
		totals.Voyages, totals.Collected, totals.Distance, formatSeconds(totals.Duration), totals.BestScore)

	if flagVoyages <= 0 {
		return
	}
	voyages, err := store.RecentVoyages(gameID, flagVoyages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving voyages: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("  %-16s  %-10s  %-8s  %-6s  %-8s  %-6s  %s\n", "Date", "Player", "Sea", "Debris", "Distance", "Time", "Score")
	for _, v := range voyages {
		fmt.Printf("  %-16s  %-10s  %-8s  %-6d  %-8s  %-6s  %d\n",
			v.CreatedAt.Format("2006-01-02 15:04"), v.Player, v.SeaState, v.Collected,
			fmt.Sprintf("%.0fm", v.Distance), formatSeconds(v.Duration), v.Score)
	}
}

// formatSeconds renders seconds as m:ss.
func formatSeconds(sec float64) string {
	s := int(sec)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
