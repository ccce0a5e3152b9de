package bench

import (
	"PrefixBench/utils"
	"fmt"
	"time"
)

// Average is one strategy's mean cost across all trials.
type Average struct {
	Name string `json:"name" yaml:"name"`
	// Mean is the mean of the rounded per-trial seconds, rounded to 3
	// decimals.
	Mean float64 `json:"mean_seconds" yaml:"mean_seconds"`
	// Elapsed is the mean of the unrounded per-trial wall times.
	Elapsed time.Duration `json:"mean_elapsed_ns" yaml:"mean_elapsed"`
	Matches int           `json:"matches" yaml:"matches"`
	Errors  int           `json:"errors" yaml:"errors"`
	Samples int           `json:"samples" yaml:"samples"`
}

type accumulator struct {
	seconds float64
	elapsed time.Duration
	matches int
	errors  int
	samples int
}

// Aggregate averages trial timings per strategy. Results follow names;
// strategies missing from names are appended in the order first seen.
// Means divide by the number of trials, not by a strategy's own sample
// count.
func Aggregate(names []string, trials []TrialResult) ([]Average, error) {
	if len(trials) == 0 {
		return nil, ErrNoTrials
	}

	order := append([]string(nil), names...)
	acc := make(map[string]*accumulator, len(names))
	for _, name := range names {
		acc[name] = &accumulator{}
	}

	for _, trial := range trials {
		for _, t := range trial.Timings {
			a, ok := acc[t.Name]
			if !ok {
				a = &accumulator{}
				acc[t.Name] = a
				order = append(order, t.Name)
			}
			a.seconds += t.Seconds
			a.elapsed += t.Elapsed
			a.matches += t.Matches
			a.errors += t.Errors
			a.samples++
		}
	}

	n := len(trials)
	averages := make([]Average, 0, len(order))
	for _, name := range order {
		a := acc[name]
		if a.samples == 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingTimings, name)
		}
		averages = append(averages, Average{
			Name:    name,
			Mean:    utils.Round(a.seconds/float64(n), 3),
			Elapsed: a.elapsed / time.Duration(n),
			Matches: a.matches,
			Errors:  a.errors,
			Samples: a.samples,
		})
	}
	return averages, nil
}
