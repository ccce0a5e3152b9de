package bench

import (
	"PrefixBench/prefix"
	"PrefixBench/utils"
	"time"
)

// Timing is one strategy's cost over one batch.
type Timing struct {
	Name string
	// Elapsed is the measured wall time.
	Elapsed time.Duration
	// Seconds is Elapsed in seconds rounded to 2 decimals.
	Seconds float64
	// Matches counts calls that answered true.
	Matches int
	// Errors counts calls that produced no result.
	Errors int
}

// TrialResult holds the timings of one trial in registry order.
type TrialResult struct {
	Cases   int
	Timings []Timing
}

func (r TrialResult) Timing(name string) (Timing, bool) {
	for _, t := range r.Timings {
		if t.Name == name {
			return t, true
		}
	}
	return Timing{}, false
}

func (r TrialResult) Total() time.Duration {
	var total time.Duration
	for _, t := range r.Timings {
		total += t.Elapsed
	}
	return total
}

type Runner struct {
	strategies prefix.Registry
}

func NewRunner(strategies prefix.Registry) *Runner {
	return &Runner{strategies: strategies}
}

// RunTrial times every strategy over the whole batch.
func (r *Runner) RunTrial(batch *Batch) TrialResult {
	cases := batch.Cases()
	result := TrialResult{
		Cases:   len(cases),
		Timings: make([]Timing, 0, len(r.strategies)),
	}
	for _, s := range r.strategies {
		result.Timings = append(result.Timings, measure(s, cases))
	}
	return result
}

// measure keeps failed calls inside the timed region: their cost up to the
// failure is part of the strategy's time.
func measure(s prefix.Strategy, cases []TestCase) Timing {
	t := Timing{Name: s.Name}

	start := time.Now()
	for _, c := range cases {
		ok, err := s.Check.HasPrefix(c.Haystack, c.Needle)
		if err != nil {
			t.Errors++
			continue
		}
		if ok {
			t.Matches++
		}
	}
	t.Elapsed = time.Since(start)
	t.Seconds = utils.Round(t.Elapsed.Seconds(), 2)

	return t
}
