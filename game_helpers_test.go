package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"rows": 12, "cols": 14, "tick_interval": 100000000}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := parseConfig([]string{"-config", path, "-cols", "20", "-run"})
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config.Rows != 12 {
		t.Fatalf("rows = %d, want 12 from file", config.Rows)
	}
	if config.Cols != 20 || !config.StartRunning {
		t.Fatalf("flags not applied: %+v", config)
	}
	if config.TickInterval != 100*time.Millisecond {
		t.Fatalf("tick = %v, want 100ms from file", config.TickInterval)
	}
}

func TestParseConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := parseConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.json")})
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config.Rows != 30 || config.Cols != 40 {
		t.Fatalf("defaults not used: %+v", config)
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	if _, err := parseConfig([]string{"-config", "", "-rows", "0"}); err == nil {
		t.Fatalf("expected error for zero rows")
	}
	if _, err := parseConfig([]string{"-unknown"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
