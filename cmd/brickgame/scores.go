package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmoroz/brickgame/internal/registry"
	"github.com/pmoroz/brickgame/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the score history for a game",
	Long: `Display the stored best and the top 10 plays for the specified game.

Examples:
  brickgame scores snake
  brickgame scores tetris`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickgame list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	best, err := store.Best(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best score: %v\n", err)
		os.Exit(1)
	}

	plays, err := store.TopPlays(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving plays: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scores - %s\n", title)
	fmt.Println()

	if len(plays) == 0 && best == 0 {
		fmt.Println("No plays recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'brickgame play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-9s  %s\n", "Rank", "Score", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-9s  %s\n", "----", "-----", "-------", "----")

	for i, entry := range plays {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-9s  %s\n", i+1, entry.Score, entry.Outcome, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
}
