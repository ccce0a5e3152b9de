package report

import (
	"PrefixBench/bench"
	"errors"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

var ErrUnknownProgress = errors.New("unknown progress style")

type dots struct {
	w io.Writer
}

// Dots prints one '.' per trial straight to w, so the dot is visible before
// the trial's work begins.
func Dots(w io.Writer) bench.Progress {
	return dots{w: w}
}

func (d dots) Step() { _, _ = io.WriteString(d.w, ".") }
func (d dots) Done() {}

type none struct{}

// None discards progress.
func None() bench.Progress {
	return none{}
}

func (none) Step() {}
func (none) Done() {}

type bar struct {
	pb *progressbar.ProgressBar
}

// Bar renders a terminal progress bar with one step per trial.
func Bar(w io.Writer, trials int) bench.Progress {
	return &bar{pb: progressbar.NewOptions(trials,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("trials"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)}
}

func (b *bar) Step() { _ = b.pb.Add(1) }
func (b *bar) Done() { _ = b.pb.Finish() }

// ParseProgress maps a --progress value to a Progress writing to w.
func ParseProgress(kind string, w io.Writer, trials int) (bench.Progress, error) {
	switch kind {
	case "dots", "":
		return Dots(w), nil
	case "bar":
		return Bar(w, trials), nil
	case "none":
		return None(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want dots, bar or none)", ErrUnknownProgress, kind)
	}
}
