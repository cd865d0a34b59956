// brickgame is a terminal rendition of the classic brick-game handheld:
// four games on one 10x20 block playfield.
//
// Usage:
//
//	brickgame list              - List available games
//	brickgame play <game>       - Play a game
//	brickgame menu              - Start menu to pick games interactively
//	brickgame serve             - Start SSH server for remote play
//	brickgame scores <game>     - Show the score history for a game
//
// Global flags:
//
//	--fps <rate>     - Override the tick rate
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Override the database path
//	--config <path>  - Load a specific config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmoroz/brickgame/internal/config"
	"github.com/pmoroz/brickgame/internal/registry"
	"github.com/pmoroz/brickgame/internal/storage"

	// Import games to register them
	_ "github.com/pmoroz/brickgame/internal/games/asteroids"
	_ "github.com/pmoroz/brickgame/internal/games/breakout"
	_ "github.com/pmoroz/brickgame/internal/games/snake"
	_ "github.com/pmoroz/brickgame/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brick Game - the classic handheld in your terminal",
	Long: `Brick Game brings the classic handheld console to the terminal:
snake, breakout, asteroids, and tetris, all played on the same
10x20 block playfield.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View the score history

Examples:
  brickgame list
  brickgame play snake
  brickgame menu
  brickgame serve
  brickgame scores tetris`,
}

func init() {
	// Global persistent flags; zero values defer to the config file.
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database path override")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openScores opens the scores database and seeds a row per registered game.
// Returns nil (with a warning) when the database is unavailable; gameplay
// continues without persistence.
func openScores(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}

	games := registry.List()
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	if err := store.EnsureGames(ids); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return store
}

// loadConfig resolves the configuration with flag overrides applied.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}
	return cfg, nil
}
