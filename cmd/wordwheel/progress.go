package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ssoylu/wordwheel/internal/content"
	"github.com/ssoylu/wordwheel/internal/engine"
	"github.com/ssoylu/wordwheel/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show curriculum progress",
	Long: `Show where the profile currently stands: chapter, level, question,
scores, gold and unlocked hints.

Examples:
  wordwheel progress
  wordwheel progress --profile alice`,
	Run: runProgress,
}

func runProgress(_ *cobra.Command, _ []string) {
	cfg := loadGameConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	quiet := log.New(io.Discard)
	kv := storage.NewKV(store, flagProfile, quiet)

	progression := engine.NewProgression(kv, cfg.Curriculum, content.Chapters())
	scoring := engine.NewScoring(kv, cfg.Scoring, nil, nil)
	ledger := engine.NewLedger(kv, cfg.Gold, nil)

	coords := progression.Coordinates()
	fmt.Printf("Profile: %s\n", flagProfile)
	fmt.Println()
	fmt.Printf("  Chapter:   %s\n", progression.ChapterName())
	fmt.Printf("  Level:     %d of %d\n", coords.Level, cfg.Curriculum.LevelsPerChapter)
	fmt.Printf("  Question:  %d of %d\n", coords.Question, cfg.Curriculum.QuestionsPerLevel)
	fmt.Printf("  Overall:   %d of %d questions\n", progression.Counter(), cfg.Curriculum.TotalQuestions)
	fmt.Println()
	fmt.Printf("  Score:     %d (level %d, best %d)\n", scoring.Total(), scoring.LevelScore(), scoring.High())
	fmt.Printf("  Gold:      %d\n", ledger.Balance())

	hints := engine.NewHints(kv, cfg.Hints, nil)
	var unlocked []string
	for _, tier := range []engine.HintTier{engine.TierSingle, engine.TierMulti, engine.TierWord} {
		if hints.Unlocked(tier) {
			unlocked = append(unlocked, tier.String())
		}
	}
	if len(unlocked) == 0 {
		fmt.Println("  Hints:     none unlocked yet")
	} else {
		fmt.Printf("  Hints:     %s\n", strings.Join(unlocked, ", "))
	}

	if progression.Complete() {
		fmt.Println()
		fmt.Println("Curriculum complete! Run 'wordwheel reset' to start over.")
	}
}
