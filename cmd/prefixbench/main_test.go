package main

import (
	"PrefixBench/bench"
	"PrefixBench/prefix"
	"PrefixBench/report"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_TextLayout(t *testing.T) {
	out, errOut, err := execute(t, "3", "50", "--seed", "1")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	require.True(t, strings.HasPrefix(out, "Running 3 benchmarks with 50 tests for each\n\n...\nResults\n----------\n\nname: time (average)\n\n"), out)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	names := prefix.Default().Names()
	require.GreaterOrEqual(t, len(lines), len(names))
	for i, line := range lines[len(lines)-len(names):] {
		assert.True(t, strings.HasPrefix(line, names[i]+": "), line)
	}
}

func TestRun_FlagsAndSelection(t *testing.T) {
	out, _, err := execute(t, "-t", "2", "-c", "10", "--progress", "none", "-s", "slice", "-s", "index")
	require.NoError(t, err)

	// Registry order, not flag order.
	assert.True(t, strings.HasSuffix(out, "name: time (average)\n\nindex: 0\nslice: 0\n"), out)
	assert.NotContains(t, out, ".\n")
}

func TestRun_JSONKeepsStdoutClean(t *testing.T) {
	out, errOut, err := execute(t, "2", "20", "--format", "json", "--extended", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, "..", errOut)

	var rep bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 2, rep.Trials)
	assert.Equal(t, int64(5), rep.Seed)
	assert.Len(t, rep.Averages, len(prefix.Extended()))
}

func TestRun_DebugLogsGoToStderr(t *testing.T) {
	out, errOut, err := execute(t, "1", "5", "--progress", "none", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "starting benchmark")
	assert.Contains(t, errOut, "trial finished")
	assert.NotContains(t, out, "starting benchmark")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "abc")
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	_, _, err = execute(t, "0", "10")
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	_, _, err = execute(t, "1", "1", "--format", "xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)

	_, _, err = execute(t, "1", "1", "--progress", "spinner")
	require.ErrorIs(t, err, report.ErrUnknownProgress)

	_, _, err = execute(t, "1", "1", "-s", "nope")
	require.ErrorIs(t, err, prefix.ErrUnknownStrategy)

	_, _, err = execute(t, "1", "1", "--log-level", "loud")
	require.Error(t, err)

	_, _, err = execute(t, "1", "2", "3")
	require.Error(t, err)
}

func TestRun_InvalidConfigPrintsNothing(t *testing.T) {
	out, _, err := execute(t, "--", "-1")
	require.Error(t, err)
	assert.Empty(t, out)
}
