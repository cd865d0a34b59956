package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmoroz/brickgame/internal/platform/tui"
)

var (
	flagSSHPort     int
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, the key from the config is used and auto-generated on
    first start

Examples:
  brickgame serve                          # Listen per config (port 2222)
  brickgame serve --port 2345              # Listen on port 2345
  brickgame serve --host-key ./host_key    # Use specific host key
  brickgame serve --db ./scores.db         # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&flagSSHPort, "port", 0, "SSH port override (0 = from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSSHPort > 0 {
		cfg.Server.Port = flagSSHPort
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}

	server, err := tui.NewSSHServer(cfg, time.Duration(flagIdleTimeout)*time.Minute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %d\n", cfg.Server.Port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
