/*
Package host implements a software stand-in for the embedded board's
peripheral contract: the MCU clock/time-budget configuration, the
cycle-counter-driven deadline, and the bitboard diffing that turns two
occupancy snapshots into a single physical move. It is the one place in
this module that performs I/O (logging, config loading) — the core
packages stay side-effect-free.
*/
package host

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Hardware7253/ElectronicChessBoard/clock"
)

// Config is the typed MCU/search configuration loaded from a TOML file,
// mirroring the constants main.rs hardcodes in the original firmware
// (clock_mhz = 72, a fixed per-move millisecond budget, a fixed search
// depth).
type Config struct {
	ClockMHz         uint64 `toml:"clock_mhz"`
	MoveBudgetMillis uint64 `toml:"move_budget_millis"`
	SearchDepth      int    `toml:"search_depth"`
}

// DefaultConfig mirrors Code/chess2/src/main.rs's hardcoded values.
func DefaultConfig() Config {
	return Config{ClockMHz: 72, MoveBudgetMillis: 1000, SearchDepth: 6}
}

// LoadConfig reads a Config from a TOML file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("host: loading config: %w", err)
	}
	return cfg, nil
}

// MaxElapsedCycles is the per-move search budget expressed in clock
// cycles, per clock.MillisToCycles.
func (c Config) MaxElapsedCycles() uint64 {
	return clock.MillisToCycles(c.MoveBudgetMillis, c.ClockMHz)
}
