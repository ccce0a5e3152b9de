package bench

import (
	"PrefixBench/prefix"
	"PrefixBench/utils"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Progress is told about every trial before it starts and once after the
// last one.
type Progress interface {
	Step()
	Done()
}

type noProgress struct{}

func (noProgress) Step() {}
func (noProgress) Done() {}

// Report is the outcome of a full run.
type Report struct {
	Trials int   `json:"trials" yaml:"trials"`
	Cases  int   `json:"cases" yaml:"cases"`
	Seed   int64 `json:"seed" yaml:"seed"`
	// TotalCases is the number of cases actually run per strategy, summed
	// over trials. It is below Trials*Cases when needles collided.
	TotalCases int              `json:"total_cases" yaml:"total_cases"`
	Elapsed    time.Duration    `json:"elapsed_ns" yaml:"elapsed"`
	Batch      utils.SizeReport `json:"last_batch" yaml:"last_batch"`
	Averages   []Average        `json:"averages" yaml:"averages"`
}

type Option func(*Benchmark)

func WithProgress(p Progress) Option {
	return func(b *Benchmark) {
		if p != nil {
			b.progress = p
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Benchmark) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithBatchSource replaces the seeded generator. source is called once per
// trial with the configured case count.
func WithBatchSource(source func(count int) *Batch) Option {
	return func(b *Benchmark) {
		if source != nil {
			b.batches = source
		}
	}
}

type Benchmark struct {
	cfg        Config
	strategies prefix.Registry
	runner     *Runner
	batches    func(count int) *Batch
	progress   Progress
	logger     *slog.Logger
}

func New(cfg *Config, strategies prefix.Registry, opts ...Option) (*Benchmark, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("%w: no strategies to run", ErrInvalidConfig)
	}

	b := &Benchmark{
		cfg:        *cfg,
		strategies: strategies,
		runner:     NewRunner(strategies),
		batches:    NewGenerator(cfg.Seed).Batch,
		progress:   noProgress{},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Run executes all trials and aggregates them.
func (b *Benchmark) Run() (*Report, error) {
	b.logger.Info("starting benchmark",
		"trials", b.cfg.Trials,
		"cases", b.cfg.Cases,
		"strategies", len(b.strategies),
		"seed", b.cfg.Seed)

	debug := b.logger.Enabled(context.Background(), slog.LevelDebug)
	start := time.Now()

	rep := &Report{
		Trials: b.cfg.Trials,
		Cases:  b.cfg.Cases,
		Seed:   b.cfg.Seed,
	}
	results := make([]TrialResult, 0, b.cfg.Trials)
	for trial := 1; trial <= b.cfg.Trials; trial++ {
		b.progress.Step()

		batch := b.batches(b.cfg.Cases)
		result := b.runner.RunTrial(batch)
		results = append(results, result)
		rep.TotalCases += result.Cases

		if debug {
			b.logger.Debug("trial finished",
				"trial", trial,
				"cases", result.Cases,
				"digest", fmt.Sprintf("%016x", batch.Digest()),
				"elapsed", result.Total())
		}
		if trial == b.cfg.Trials {
			rep.Batch = batch.Size()
		}
	}
	b.progress.Done()

	averages, err := Aggregate(b.strategies.Names(), results)
	if err != nil {
		return nil, fmt.Errorf("aggregate %d trials: %w", len(results), err)
	}
	rep.Averages = averages
	rep.Elapsed = time.Since(start)

	b.logger.Info("benchmark finished", "elapsed", rep.Elapsed, "total_cases", rep.TotalCases)
	return rep, nil
}
