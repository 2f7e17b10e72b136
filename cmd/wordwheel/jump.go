package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ssoylu/wordwheel/internal/engine"
	"github.com/ssoylu/wordwheel/internal/storage"
)

var jumpCmd = &cobra.Command{
	Use:   "jump <question>",
	Short: "Jump to a question index (debug)",
	Long: `Move the global question counter directly to the given index,
bypassing normal progression. Intended for testing content packs.

The jump is suppressed once immediately after a reset, so a fresh game
cannot be accidentally skipped forward.

Examples:
  wordwheel jump 150     # First question of the second chapter
  wordwheel jump 0       # Back to the very start (scores untouched)`,
	Args: cobra.ExactArgs(1),
	Run:  runJump,
}

func runJump(_ *cobra.Command, args []string) {
	counter, err := strconv.Atoi(args[0])
	if err != nil || counter < 0 {
		fmt.Fprintf(os.Stderr, "Error: %q is not a valid question index\n", args[0])
		os.Exit(1)
	}

	cfg := loadGameConfig()
	if counter >= cfg.Curriculum.TotalQuestions {
		fmt.Fprintf(os.Stderr, "Error: index %d is past the last question (%d)\n",
			counter, cfg.Curriculum.TotalQuestions-1)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	quiet := log.New(io.Discard)
	session := engine.NewSession(engine.Options{
		Store:  storage.NewKV(store, flagProfile, quiet),
		Pack:   loadPack(),
		Config: cfg,
		Logger: quiet,
	})

	if !session.JumpTo(counter) {
		fmt.Println("Jump suppressed: the game was just reset.")
		return
	}

	coords := session.Progression().Coordinates()
	fmt.Printf("Jumped to question %d: %s, level %d, question %d.\n",
		counter, session.Progression().ChapterName(), coords.Level, coords.Question)
}
