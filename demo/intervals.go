package demo

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/eaugeas/bst/container/interval"
	"github.com/eaugeas/bst/logs"
	"github.com/pkg/errors"
)

// ParseInterval parses an interval written as min:max. A single
// number n is the interval [n, n]
func ParseInterval(s string) (interval.Int, error) {
	lo, hi, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		hi = lo
	}

	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return interval.Int{}, errors.Wrapf(err, "invalid interval %q", s)
	}

	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return interval.Int{}, errors.Wrapf(err, "invalid interval %q", s)
	}

	if min > max {
		return interval.Int{}, errors.Errorf("invalid interval %q: min %d greater than max %d", s, min, max)
	}

	return interval.NewInt(min, max), nil
}

// MergeIntervals inserts ints in order into an interval set and
// prints the tree of the disjoint intervals that remain
func (r *Runner) MergeIntervals(ctx context.Context, ints []interval.Int) (*interval.IntSet, error) {
	set := interval.NewIntSet()

	for _, i := range ints {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "merge interrupted")
		}

		set.Insert(i)
		r.logger.Debug(ctx, "insert interval", logs.MapFields{
			"interval": i.String(),
			"len":      set.Len(),
		})
	}

	if _, err := io.WriteString(r.out, set.String()); err != nil {
		return nil, errors.Wrap(err, "failed to print intervals")
	}

	r.logger.Info(ctx, "intervals merged", logs.MapFields{
		"inserted": len(ints),
		"len":      set.Len(),
	})

	return set, nil
}
