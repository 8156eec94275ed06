// Package demo builds trees from a source of values, prints them
// and removes values from them, reporting every step.
package demo

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/eaugeas/bst/container/tree"
	errs "github.com/eaugeas/bst/errors"
	"github.com/eaugeas/bst/logs"
	"github.com/eaugeas/bst/source"
	"github.com/pkg/errors"
)

// ruleWidth is the width of the line printed between two trees
const ruleWidth = 40

// Op is an operation applied to the tree
type Op uint8

const (
	OpInsert Op = iota
	OpRemove
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Step records one operation and its outcome
type Step struct {
	Op    Op
	Value int

	// Applied is false for an insert of a value already in the
	// tree and for a remove of a value not in the tree
	Applied bool

	// Len is the number of nodes after the operation
	Len int
}

// Log implementation of logs.Loggable
func (s Step) Log(fields logs.Fields) {
	fields.Add("op", s.Op.String())
	fields.Add("value", s.Value)
	fields.Add("applied", s.Applied)
	fields.Add("len", s.Len)
}

// Report of a run
type Report struct {
	// Seed of the random source of a trial
	Seed int64

	Steps []Step

	// Len is the final number of nodes
	Len int

	// Shape is the final dump of the tree
	Shape string
}

// RunnerProperties configures a Runner
type RunnerProperties struct {
	// Logger is required
	Logger logs.Logger

	// Output receives the printed trees. Defaults to io.Discard
	Output io.Writer

	// Check verifies the tree after every operation
	Check bool
}

// Runner executes scenarios. Every run builds its own tree, so a
// Runner can be used from multiple goroutines as long as Output is
// safe for concurrent use.
type Runner struct {
	logger logs.Logger
	out    io.Writer
	check  bool
}

// NewRunner creates a new Runner
func NewRunner(props RunnerProperties) *Runner {
	if props.Logger == nil {
		panic("logger must be set")
	}
	if props.Output == nil {
		props.Output = io.Discard
	}

	return &Runner{
		logger: props.Logger.ForClass("demo", "Runner"),
		out:    props.Output,
		check:  props.Check,
	}
}

// Run inserts every value of src into a new tree and prints it. Each
// value in remove is then removed, printing the tree again after a
// separating rule.
func (r *Runner) Run(ctx context.Context, src source.Source[int], remove []int) (*Report, error) {
	t := tree.NewOrderedTree[int]()
	report := &Report{}

	for v, ok := src.Next(); ok; v, ok = src.Next() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "run interrupted")
		}

		before := t.Len()
		t.Insert(v)
		if err := r.record(ctx, t, report, Step{Op: OpInsert, Value: v, Applied: t.Len() > before}); err != nil {
			return nil, err
		}
	}

	if err := t.Fprint(r.out); err != nil {
		return nil, errors.Wrap(err, "failed to print tree")
	}

	for _, v := range remove {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "run interrupted")
		}

		if t.Empty() {
			r.logger.Warn(ctx, "remove from empty tree", errs.New(errs.ErrorCodeEmptyTree, tree.ErrEmptyTree{}))
		}

		removed := t.RemoveValue(v)
		if err := r.record(ctx, t, report, Step{Op: OpRemove, Value: v, Applied: removed}); err != nil {
			return nil, err
		}

		if _, err := fmt.Fprintln(r.out, strings.Repeat("-", ruleWidth)); err != nil {
			return nil, errors.Wrap(err, "failed to print rule")
		}
		if err := t.Fprint(r.out); err != nil {
			return nil, errors.Wrap(err, "failed to print tree")
		}
	}

	report.Len = t.Len()
	report.Shape = t.String()

	r.logger.Info(ctx, "run completed", logs.MapFields{
		"len":   report.Len,
		"steps": len(report.Steps),
	})

	return report, nil
}

func (r *Runner) record(ctx context.Context, t *tree.Tree[int], report *Report, step Step) error {
	step.Len = t.Len()
	report.Steps = append(report.Steps, step)
	r.logger.Debug(ctx, step.Op.String(), step)

	if !r.check {
		return nil
	}

	if err := t.Check(); err != nil {
		e := errs.New(errs.ErrorCodeCorruptedTree, err)
		r.logger.Error(ctx, "tree check failed", e)
		return e
	}

	return nil
}
