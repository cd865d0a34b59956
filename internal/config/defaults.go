package config

import (
	_ "embed"
)

//go:embed defaults/app.yaml
var defaultAppYAML []byte

// DefaultConfig returns the built-in configuration: the classic 10x20
// portrait playfield at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Cols: 10,
			Rows: 20,
		},
		TickRate: 60,
		Database: DatabaseConfig{
			Path: "~/.brickgame/scores.db",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2222,
			HostKeyPath: "~/.brickgame/ssh_host_key",
		},
		Input: InputConfig{
			ReleaseAfterMs: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for
// writing a starter config.
func DefaultYAML() []byte {
	return defaultAppYAML
}
