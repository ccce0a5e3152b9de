package main

import (
	"PrefixBench/bench"
	"PrefixBench/logging"
	"PrefixBench/prefix"
	"PrefixBench/report"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

type options struct {
	trials     int
	cases      int
	seed       int64
	extended   bool
	strategies []string
	format     string
	progress   string
	verbose    bool
	logLevel   string
	logJSON    bool
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fail("prefixbench: %v", err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	defaults := bench.DefaultConfig()
	opts := &options{
		trials: defaults.Trials,
		cases:  defaults.Cases,
		seed:   defaults.Seed,
	}

	cmd := &cobra.Command{
		Use:   "prefixbench [trials] [cases]",
		Short: "Compare the speed of byte-string prefix checks",
		Long: `Generate random haystack/needle pairs and time every prefix-check
strategy over the same batch, repeated for a number of trials.

Positional arguments override --trials and --cases.

Examples:
  prefixbench                     # 50 trials of 20000 cases
  prefixbench 10 5000             # 10 trials of 5000 cases
  prefixbench --extended -v       # include the extra strategies, with details
  prefixbench -s index -s slice   # only the named strategies
  prefixbench --format json       # machine-readable report on stdout`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyArgs(opts, args); err != nil {
				return err
			}
			return run(opts, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.trials, "trials", "t", opts.trials, "number of trials")
	f.IntVarP(&opts.cases, "cases", "c", opts.cases, "test cases generated per trial")
	f.Int64Var(&opts.seed, "seed", opts.seed, "generator seed (default: time-based)")
	f.BoolVar(&opts.extended, "extended", false, "also run the extra strategies")
	f.StringSliceVarP(&opts.strategies, "strategy", "s", nil, "run only the named strategies (repeatable)")
	f.StringVar(&opts.format, "format", "text", "output format: text, json or yaml")
	f.StringVar(&opts.progress, "progress", "dots", "progress display: dots, bar or none")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "print a detail table after the results")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level on stderr: debug, info, warn or error")
	f.BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")
	return cmd
}

func applyArgs(opts *options, args []string) error {
	targets := []*int{&opts.trials, &opts.cases}
	names := []string{"trials", "cases"}
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", bench.ErrInvalidConfig, names[i], arg)
		}
		*targets[i] = v
	}
	return nil
}

func registry(opts *options) (prefix.Registry, error) {
	reg := prefix.Default()
	if opts.extended {
		reg = prefix.Extended()
	}
	if len(opts.strategies) == 0 {
		return reg, nil
	}
	return reg.Select(opts.strategies...)
}

func run(opts *options, stdout, stderr io.Writer) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(logging.Config{
		Level:   level,
		JSON:    opts.logJSON,
		Service: "prefixbench",
		Writer:  stderr,
	})

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	reg, err := registry(opts)
	if err != nil {
		return err
	}

	// Structured output keeps stdout a single document.
	progressOut := stdout
	if format.Structured() {
		progressOut = stderr
	}
	progress, err := report.ParseProgress(opts.progress, progressOut, opts.trials)
	if err != nil {
		return err
	}

	cfg := &bench.Config{Trials: opts.trials, Cases: opts.cases, Seed: opts.seed}
	b, err := bench.New(cfg, reg, bench.WithLogger(logger), bench.WithProgress(progress))
	if err != nil {
		return err
	}

	if !format.Structured() {
		if err := report.WriteHeader(stdout, cfg.Trials, cfg.Cases); err != nil {
			return err
		}
	}
	rep, err := b.Run()
	if err != nil {
		return err
	}
	return report.Write(stdout, format, rep, opts.verbose)
}
