package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := DefaultConfig()
	if cfg.Grid != def.Grid {
		t.Errorf("embedded grid %+v differs from built-in %+v", cfg.Grid, def.Grid)
	}
	if cfg.TickRate != def.TickRate {
		t.Errorf("embedded tick rate %d differs from built-in %d", cfg.TickRate, def.TickRate)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
grid:
  cols: 12
  rows: 24
tick_rate: 30
database:
  path: /tmp/scores.db
input:
  release_after_ms: 200
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Cols != 12 || cfg.Grid.Rows != 24 {
		t.Errorf("grid = %+v, expected 12x24", cfg.Grid)
	}
	if cfg.TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Database.Path != "/tmp/scores.db" {
		t.Errorf("db path = %s", cfg.Database.Path)
	}
	// Unset sections keep their defaults
	if cfg.Server.Port != DefaultConfig().Server.Port {
		t.Errorf("server port = %d, expected the default", cfg.Server.Port)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero cols", func(c *Config) { c.Grid.Cols = 0 }, false},
		{"negative rows", func(c *Config) { c.Grid.Rows = -1 }, false},
		{"landscape grid", func(c *Config) { c.Grid.Cols, c.Grid.Rows = 20, 10 }, false},
		{"square grid", func(c *Config) { c.Grid.Cols, c.Grid.Rows = 15, 15 }, true},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, false},
		{"zero release window", func(c *Config) { c.Input.ReleaseAfterMs = 0 }, false},
	}

	for _, tc := range tests {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultConfig()
	rc := cfg.Runtime(42)

	if rc.Grid.Cols != 10 || rc.Grid.Rows != 20 {
		t.Errorf("runtime grid = %+v, expected 10x20", rc.Grid)
	}
	if rc.TickRate != 60 {
		t.Errorf("runtime tick rate = %d, expected 60", rc.TickRate)
	}
	if rc.Seed != 42 {
		t.Errorf("runtime seed = %d, expected 42", rc.Seed)
	}
}
