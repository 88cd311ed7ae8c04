package kdtree

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Config controls tree construction and batch querying.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Strategy picks the splitting axis for every node. Built-in:
	// RoundRobin and MaxSpread. Use SplitFunc to wrap a custom function.
	// Default: RoundRobin.
	Strategy SplitStrategy

	// Workers controls the number of goroutines KNearestBatch and
	// WithinBatch fan queries out to. Single queries never use more than
	// the calling goroutine. 0 means use runtime.NumCPU(). Must be >= 0.
	Workers int

	// Logger receives one debug record per build. Default: discard.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Strategy: RoundRobin{},
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", ErrInvalidConfig, cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Strategy == nil {
		cfg.Strategy = RoundRobin{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}
