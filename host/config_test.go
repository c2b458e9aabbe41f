package host

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ClockMHz != 72 {
		t.Fatalf("expected 72MHz, got %d", cfg.ClockMHz)
	}
	if cfg.MoveBudgetMillis != 1000 {
		t.Fatalf("expected a 1000ms move budget, got %d", cfg.MoveBudgetMillis)
	}
	if cfg.SearchDepth != 6 {
		t.Fatalf("expected search depth 6, got %d", cfg.SearchDepth)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.toml")

	const contents = `
clock_mhz = 16
move_budget_millis = 500
search_depth = 4
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ClockMHz != 16 || cfg.MoveBudgetMillis != 500 || cfg.SearchDepth != 4 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestMaxElapsedCycles(t *testing.T) {
	cfg := Config{ClockMHz: 72, MoveBudgetMillis: 1000}
	if got := cfg.MaxElapsedCycles(); got != 72000000 {
		t.Fatalf("expected 72,000,000 cycles, got %d", got)
	}
}
