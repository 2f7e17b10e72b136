package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ssoylu/wordwheel/internal/content"
	"github.com/ssoylu/wordwheel/internal/storage"
	"github.com/ssoylu/wordwheel/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a play session in the current terminal.

Controls:
  a-z        - Select the next tile with that letter
  Backspace  - Walk the trail back one letter
  Enter      - Submit the assembled word
  Esc        - Abandon the current selection
  1/2/3      - Buy a hint (once unlocked)
  Ctrl+W     - Spin the reward wheel
  Ctrl+R     - Restart the game
  Ctrl+C     - Quit

Progress, scores and gold persist in the database between sessions.

Examples:
  wordwheel play
  wordwheel play --profile alice
  wordwheel play --pack ./history-pack.yaml --seed 42`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal (try 'wordwheel serve' for remote play)")
		os.Exit(1)
	}

	cfg := loadGameConfig()
	pack := loadPack()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open game database: %v\n", err)
		// Continue without storage; progress will not persist.
		store = nil
	}

	runErr := tui.Run(tui.SessionOptions{
		DB:      store,
		Profile: flagProfile,
		Pack:    pack,
		Facts:   content.DefaultFacts(),
		Config:  cfg,
		Seed:    flagSeed,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
