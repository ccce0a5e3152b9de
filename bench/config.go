package bench

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultTrials = 50
	DefaultCases  = 20000
)

var (
	// ErrInvalidConfig indicates an invalid benchmark configuration.
	ErrInvalidConfig = errors.New("invalid benchmark configuration")

	// ErrNoTrials indicates that aggregation was asked to average nothing.
	ErrNoTrials = errors.New("no trial results")

	// ErrMissingTimings indicates a strategy that never received a timing.
	ErrMissingTimings = errors.New("strategy has no timings")
)

// Config holds benchmark configuration.
type Config struct {
	// Trials is the number of trials to run.
	// Default: 50
	Trials int

	// Cases is the number of test cases generated per trial. Needle
	// collisions can leave a batch with fewer entries.
	// Default: 20000
	Cases int

	// Seed seeds the test case generator.
	// Default: current time in nanoseconds
	Seed int64
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Trials: DefaultTrials,
		Cases:  DefaultCases,
		Seed:   time.Now().UnixNano(),
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	}
	if c.Cases < 0 {
		return fmt.Errorf("%w: cases must be non-negative, got %d", ErrInvalidConfig, c.Cases)
	}
	return nil
}
