// Package config provides YAML-based configuration loading for the
// brick-game platform: the playfield grid, the tick rate, score storage,
// and the SSH server.
package config

import (
	"fmt"

	"github.com/pmoroz/brickgame/internal/engine"
)

// Config is the full platform configuration.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	TickRate int            `yaml:"tick_rate"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Input    InputConfig    `yaml:"input"`
}

// GridConfig defines the playfield dimensions in blocks.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// DatabaseConfig defines where scores are persisted.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines the SSH server for remote play.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// InputConfig tunes the key-release synthesis for terminals, which only
// deliver key presses. A held key auto-repeats; once no repeat arrives for
// release_after_ms the key counts as released.
type InputConfig struct {
	ReleaseAfterMs int `yaml:"release_after_ms"`
}

// Validate checks the configuration for values the engine would refuse.
func (c Config) Validate() error {
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		return fmt.Errorf("config: grid %dx%d is not a valid playfield", c.Grid.Cols, c.Grid.Rows)
	}
	if c.Grid.Rows < c.Grid.Cols {
		return fmt.Errorf("config: grid %dx%d must be taller than wide", c.Grid.Cols, c.Grid.Rows)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick rate %d must be positive", c.TickRate)
	}
	if c.Input.ReleaseAfterMs <= 0 {
		return fmt.Errorf("config: release_after_ms %d must be positive", c.Input.ReleaseAfterMs)
	}
	return nil
}

// Runtime converts the configuration into an engine runtime config with the
// given RNG seed.
func (c Config) Runtime(seed int64) engine.RuntimeConfig {
	return engine.RuntimeConfig{
		Grid:     engine.Grid{Cols: c.Grid.Cols, Rows: c.Grid.Rows},
		TickRate: c.TickRate,
		Seed:     seed,
	}
}
