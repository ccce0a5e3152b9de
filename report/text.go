package report

import (
	"PrefixBench/bench"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/slices"
)

// WriteHeader writes the banner printed before the first trial.
func WriteHeader(w io.Writer, trials, cases int) error {
	_, err := fmt.Fprintf(w, "Running %d benchmarks with %d tests for each\n\n", trials, cases)
	return err
}

// WriteText writes the results block: one "name: mean" line per strategy in
// report order. verbose appends a detail table, a ranking and the run
// parameters.
func WriteText(w io.Writer, rep *bench.Report, verbose bool) error {
	if _, err := io.WriteString(w, "\nResults\n----------\n\nname: time (average)\n\n"); err != nil {
		return err
	}
	for _, a := range rep.Averages {
		if _, err := fmt.Fprintf(w, "%s: %s\n", a.Name, FormatSeconds(a.Mean)); err != nil {
			return err
		}
	}
	if !verbose {
		return nil
	}
	return writeDetails(w, rep)
}

// FormatSeconds renders v with the fewest digits that read back exactly.
func FormatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeDetails(w io.Writer, rep *bench.Report) error {
	perTrial := 0
	if rep.Trials > 0 {
		perTrial = rep.TotalCases / rep.Trials
	}

	if _, err := io.WriteString(w, "\nDetails\n----------\n\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tmean\tns/case\trate\tmatches\terrors\t")
	for _, a := range rep.Averages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			a.Name,
			a.Elapsed,
			nsPerCase(a.Elapsed, perTrial),
			rate(a.Elapsed, perTrial),
			humanize.Comma(int64(a.Matches)),
			humanize.Comma(int64(a.Errors)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\nRanking (fastest first)\n----------\n\n"); err != nil {
		return err
	}
	for i, a := range Ranking(rep.Averages) {
		if _, err := fmt.Fprintf(w, "%2d. %s (%s)\n", i+1, a.Name, a.Elapsed); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nseed: %d\ntrials: %d\ncases run: %s\nwall time: %s\nlast batch:\n%s",
		rep.Seed,
		rep.Trials,
		humanize.Comma(int64(rep.TotalCases)),
		rep.Elapsed.Round(time.Millisecond),
		rep.Batch)
	return err
}

// Ranking returns a copy of averages ordered by unrounded mean time,
// fastest first. Ties keep report order.
func Ranking(averages []bench.Average) []bench.Average {
	ranked := slices.Clone(averages)
	slices.SortStableFunc(ranked, func(a, b bench.Average) bool {
		return a.Elapsed < b.Elapsed
	})
	return ranked
}

func nsPerCase(d time.Duration, cases int) string {
	if cases == 0 {
		return "-"
	}
	return humanize.CommafWithDigits(float64(d.Nanoseconds())/float64(cases), 1)
}

func rate(d time.Duration, cases int) string {
	if cases == 0 || d <= 0 {
		return "-"
	}
	return humanize.SIWithDigits(float64(cases)/d.Seconds(), 2, "cases/s")
}
