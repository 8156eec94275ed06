package demo

import (
	"context"
	"io"

	"github.com/eaugeas/bst/concurrent"
	errs "github.com/eaugeas/bst/errors"
	"github.com/eaugeas/bst/logs"
	"github.com/eaugeas/bst/source"
	"github.com/pkg/errors"
)

// TrialOpts configures RunTrials
type TrialOpts struct {
	// Seed of the first trial. Trial i uses Seed + i
	Seed int64

	// Trials is the number of trees built
	Trials int

	// Count, Min and Max configure the random values of each trial
	Count int
	Min   int
	Max   int

	// Remove lists the values removed from every tree. When empty,
	// each trial removes the first half of the values it inserted
	Remove []int

	// Concurrency bounds the number of trials run at once
	Concurrency int
}

// RunTrials builds opts.Trials independent random trees concurrently.
// Each trial owns its tree and source, and prints nothing. The reports
// are returned in trial order.
func (r *Runner) RunTrials(ctx context.Context, opts TrialOpts) ([]*Report, error) {
	trial := &Runner{logger: r.logger, out: io.Discard, check: r.check}

	suppliers := make([]concurrent.Supplier[*Report], opts.Trials)
	for i := range suppliers {
		seed := opts.Seed + int64(i)
		traceID := int64(i + 1)

		suppliers[i] = concurrent.SupplierFunc[*Report](func() (*Report, error) {
			src, err := source.NewRandomSource(source.RandomOpts{
				Seed:  seed,
				Count: opts.Count,
				Min:   opts.Min,
				Max:   opts.Max,
			})
			if err != nil {
				// every trial shares the range
				return nil, concurrent.ErrCannotRecover{
					Cause: errs.New(errs.ErrorCodeInvalidSource, err),
				}
			}

			values := source.Drain[int](src)
			remove := opts.Remove
			if len(remove) == 0 {
				remove = values[:len(values)/2]
			}

			report, err := trial.Run(logs.WithTraceID(ctx, traceID), source.NewSliceSource(values...), remove)
			if err != nil {
				return nil, err
			}

			report.Seed = seed
			return report, nil
		})
	}

	results := concurrent.BatchSlice(ctx, suppliers, concurrent.BatchOpts{
		Concurrency: opts.Concurrency,
	})
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "trials interrupted")
	}

	for i, res := range results {
		if res.Err() != nil {
			return nil, errors.Wrapf(res.Err(), "trial %d failed", i)
		}
	}

	reports := make([]*Report, len(results))
	for i, res := range results {
		if !res.Done() {
			return nil, errors.Errorf("trial %d was not run", i)
		}

		reports[i] = res.Value()
	}

	return reports, nil
}
