package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ssoylu/wordwheel/internal/engine"
	"github.com/ssoylu/wordwheel/internal/storage"
)

var (
	flagResetYes     bool
	flagResetHistory bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restart the game from question one",
	Long: `Reset the profile: question counter, scores and gold return to their
starting values. The high score survives a reset.

Level-result history is kept unless --history is given.

Examples:
  wordwheel reset
  wordwheel reset --yes
  wordwheel reset --history`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Skip the confirmation prompt")
	resetCmd.Flags().BoolVar(&flagResetHistory, "history", false, "Also delete level-result history")
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagResetYes {
		fmt.Printf("Reset profile %q? Progress, scores and gold will restart. [y/N] ", flagProfile)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return
		}
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
		Config: loadGameConfig(),
		Logger: quiet,
	})
	session.ResetAll()

	if flagResetHistory {
		if err := store.ClearResults(flagProfile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not clear level history: %v\n", err)
		}
	}

	fmt.Printf("Profile %q reset. Good luck!\n", flagProfile)
}
