// wordwheel is a word-connect puzzle game for the terminal: drag-style
// letter selection, a 1500-question curriculum of chapters and levels,
// time-based scoring and a gold-gated hint economy.
//
// Usage:
//
//	wordwheel play               - Play in the current terminal
//	wordwheel serve              - Start SSH server for remote play
//	wordwheel progress           - Show where you are in the curriculum
//	wordwheel scores             - Show level results and stats
//	wordwheel jump <question>    - Jump to a question index (debug)
//	wordwheel reset              - Restart the game from question one
//
// Global flags:
//
//	--db <path>       - Database path (default: ~/.wordwheel/game.db)
//	--profile <name>  - Play profile within the database
//	--config <path>   - Custom game config YAML
//	--pack <path>     - Question pack file or directory
//	--seed <value>    - RNG seed for reproducible tile deals
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssoylu/wordwheel/internal/config"
	"github.com/ssoylu/wordwheel/internal/content"
)

var (
	// Global flags
	flagDBPath  string
	flagProfile string
	flagConfig  string
	flagPack    string
	flagSeed    int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordwheel",
	Short: "Word-connect puzzle game for your terminal",
	Long: `wordwheel is a terminal word-connect game: assemble the answer to each
prompt by walking across a ring of shuffled letters. Solve fast for a
bigger score, spend gold on hints when you are stuck, and work through
ten chapters of the curriculum.

Examples:
  wordwheel play
  wordwheel play --pack ./my-questions.yaml
  wordwheel serve --ssh :2222
  wordwheel progress
  wordwheel scores`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordwheel/game.db", "Path to game database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "default", "Play profile within the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "", "Question pack file or directory (default: built-in pack)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(jumpCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadGameConfig resolves the game configuration from the flag chain.
func loadGameConfig() config.Game {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// loadPack resolves the question pack: an explicit file or directory, or the
// embedded default.
func loadPack() *content.Pack {
	if flagPack == "" {
		return content.DefaultPack()
	}

	info, err := os.Stat(flagPack)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading pack %s: %v\n", flagPack, err)
		os.Exit(1)
	}

	var pack *content.Pack
	if info.IsDir() {
		pack, err = content.LoadDir(flagPack)
	} else {
		pack, err = content.LoadFile(flagPack)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading pack: %v\n", err)
		os.Exit(1)
	}
	return pack
}
