package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pmoroz/brickgame/internal/platform/tui"
	"github.com/pmoroz/brickgame/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space        - Boost / launch / instant drop
  C            - Swap the falling piece (tetris)
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  brickgame play snake
  brickgame play tetris --seed 42
  brickgame play breakout --fps 30`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickgame list' to see available games.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "brickgame"})

	store := openScores(cfg)

	_, runErr := tui.RunGame(gameID, store, cfg, logger, flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
