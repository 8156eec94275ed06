package demo

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/eaugeas/bst/concurrent"
	errs "github.com/eaugeas/bst/errors"
	"github.com/eaugeas/bst/logs"
	"github.com/eaugeas/bst/source"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logger = logs.NewLogrus(logs.LogrusLoggerProperties{
	Level:  logrus.DebugLevel,
	Output: io.Discard,
})

const classicOutput = "" +
	" [+]- 8\n" +
	"    [L]- 3\n" +
	"       [L]- 1\n" +
	"       [R]- 6\n" +
	"          [L]- 4\n" +
	"          [R]- 7\n" +
	"    [R]- 10\n" +
	"       [R]- 14\n" +
	"          [R]- 16\n" +
	"----------------------------------------\n" +
	" [+]- 8\n" +
	"    [L]- 6\n" +
	"       [L]- 4\n" +
	"          [L]- 1\n" +
	"       [R]- 7\n" +
	"    [R]- 10\n" +
	"       [R]- 14\n" +
	"          [R]- 16\n" +
	"----------------------------------------\n" +
	" [+]- 10\n" +
	"    [L]- 6\n" +
	"       [L]- 4\n" +
	"          [L]- 1\n" +
	"       [R]- 7\n" +
	"    [R]- 14\n" +
	"       [R]- 16\n"

func TestNewRunnerErrNoLoggerPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRunner(RunnerProperties{})
	})
}

func TestRunnerRunClassic(t *testing.T) {
	out := &bytes.Buffer{}
	runner := NewRunner(RunnerProperties{Logger: logger, Output: out, Check: true})

	report, err := runner.Run(context.Background(), source.NewSliceSource(ClassicValues...), ClassicRemovals)

	require.NoError(t, err)
	assert.Equal(t, classicOutput, out.String())
	assert.Equal(t, 7, report.Len)
	assert.Len(t, report.Steps, 11)
	assert.Equal(t, Step{Op: OpRemove, Value: 8, Applied: true, Len: 7}, report.Steps[10])
}

func TestRunnerRunDuplicatesAndMissing(t *testing.T) {
	runner := NewRunner(RunnerProperties{Logger: logger, Check: true})

	report, err := runner.Run(context.Background(), source.NewSliceSource(2, 1, 2, 3), []int{9, 1})

	require.NoError(t, err)
	assert.Equal(t, []Step{
		{Op: OpInsert, Value: 2, Applied: true, Len: 1},
		{Op: OpInsert, Value: 1, Applied: true, Len: 2},
		{Op: OpInsert, Value: 2, Applied: false, Len: 2},
		{Op: OpInsert, Value: 3, Applied: true, Len: 3},
		{Op: OpRemove, Value: 9, Applied: false, Len: 3},
		{Op: OpRemove, Value: 1, Applied: true, Len: 2},
	}, report.Steps)
	assert.Equal(t, " [+]- 2\n    [R]- 3\n", report.Shape)
}

func TestRunnerRunRemoveFromEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	runner := NewRunner(RunnerProperties{Logger: logger, Output: out})

	report, err := runner.Run(context.Background(), source.NewSliceSource[int](), []int{1})

	require.NoError(t, err)
	assert.Equal(t, 0, report.Len)
	assert.False(t, report.Steps[0].Applied)
	assert.Equal(t, "----------------------------------------\n", out.String())
}

func TestRunnerRunWarnsOnlyWhenEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	runner := NewRunner(RunnerProperties{
		Logger: logs.NewLogrus(logs.LogrusLoggerProperties{
			Level:  logrus.WarnLevel,
			Output: buf,
		}),
	})

	_, err := runner.Run(context.Background(), source.NewSliceSource(1), []int{2, 1, 1})

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "remove from empty tree"))
}

func TestRunnerRunRandomSourceKeepsInvariants(t *testing.T) {
	src, err := source.NewRandomSource(source.RandomOpts{Seed: 11, Count: 300, Min: -50, Max: 50})
	require.NoError(t, err)
	runner := NewRunner(RunnerProperties{Logger: logger, Check: true})

	report, err := runner.Run(context.Background(), src, []int{0, -50, 50, 25, -25})

	require.NoError(t, err)
	assert.LessOrEqual(t, report.Len, 101)
}

func TestRunnerRunErrCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := NewRunner(RunnerProperties{Logger: logger})

	_, err := runner.Run(ctx, source.NewSliceSource(1, 2), nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerRunTrials(t *testing.T) {
	runner := NewRunner(RunnerProperties{Logger: logger, Check: true})

	reports, err := runner.RunTrials(context.Background(), TrialOpts{
		Seed:        100,
		Trials:      8,
		Count:       50,
		Min:         0,
		Max:         40,
		Concurrency: 3,
	})

	require.NoError(t, err)
	require.Len(t, reports, 8)
	for i, report := range reports {
		assert.Equal(t, int64(100+i), report.Seed)
		assert.Len(t, report.Steps, 75)
	}

	again, err := runner.RunTrials(context.Background(), TrialOpts{
		Seed:   100,
		Trials: 1,
		Count:  50,
		Min:    0,
		Max:    40,
	})
	require.NoError(t, err)
	assert.Equal(t, reports[0].Shape, again[0].Shape)
}

func TestRunnerRunTrialsErrInvalidRange(t *testing.T) {
	runner := NewRunner(RunnerProperties{Logger: logger})

	_, err := runner.RunTrials(context.Background(), TrialOpts{
		Trials:      6,
		Count:       5,
		Min:         10,
		Max:         0,
		Concurrency: 1,
	})

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.ErrorCodeInvalidSource, e.ErrorCode)
	assert.ErrorAs(t, err, &concurrent.ErrCannotRecover{})
	assert.Contains(t, err.Error(), "trial 0 failed")
}

func TestReportTable(t *testing.T) {
	runner := NewRunner(RunnerProperties{Logger: logger})
	report, err := runner.Run(context.Background(), source.NewSliceSource(5, 5), []int{5})
	require.NoError(t, err)

	table := report.Table()

	assert.Contains(t, table, "insert")
	assert.Contains(t, table, "remove")
	assert.Contains(t, table, "false")
	assert.Contains(t, TrialsTable([]*Report{report}), "SEED")
}
