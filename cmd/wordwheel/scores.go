package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ssoylu/wordwheel/internal/engine"
	"github.com/ssoylu/wordwheel/internal/storage"
)

var flagScoresTop bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show level results",
	Long: `Display the profile's recent level results and overall stats.

Examples:
  wordwheel scores
  wordwheel scores --top
  wordwheel scores --profile alice`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTop, "top", false, "Show best-scoring levels instead of recent ones")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var results []storage.LevelResult
	if flagScoresTop {
		results, err = store.TopResults(flagProfile, 10)
	} else {
		results, err = store.RecentResults(flagProfile, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	heading := "Recent Levels"
	if flagScoresTop {
		heading = "Best Levels"
	}
	fmt.Printf("%s - %s\n", heading, flagProfile)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No levels finished yet.")
		fmt.Println()
		fmt.Println("Play 'wordwheel play' to finish your first level!")
		return
	}

	fmt.Printf("  %-12s  %-6s  %-7s  %s\n", "Chapter", "Level", "Score", "Date")
	fmt.Printf("  %-12s  %-6s  %-7s  %s\n", "-------", "-----", "-----", "----")
	for _, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-12s  %-6d  %-7d  %s\n", r.Chapter, r.Level, r.Score, dateStr)
	}

	stats, err := store.Stats(flagProfile)
	if err == nil && stats.Levels > 0 {
		fmt.Println()
		fmt.Printf("Levels finished: %d   Best level: %d   Average: %.0f\n",
			stats.Levels, stats.BestLevel, stats.AvgScore)
	}

	quiet := log.New(io.Discard)
	kv := storage.NewKV(store, flagProfile, quiet)
	if high := kv.GetInt(engine.KeyHighScore, 0); high > 0 {
		fmt.Printf("High score: %d\n", high)
	}
}
