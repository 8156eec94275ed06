package concurrent

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

var defaultConcurrency = runtime.NumCPU()

// batchInput to a batch operation
type batchInput[R any] struct {
	Supplier Supplier[R]
	Index    int
}

// BatchResult of a batch operation
type BatchResult[R any] struct {
	Result[R]
	index int

	// done is false when the supplier was never run because
	// the batch was cancelled
	done bool
}

// Index is the position of the result within the batch
// of operations
func (r BatchResult[R]) Index() int {
	return r.index
}

// Done returns true if the supplier of this result was run
func (r BatchResult[R]) Done() bool {
	return r.done
}

// BatchOpts are the options to configure how a batch of
// operations will be executed
type BatchOpts struct {
	// Concurrency specifies the maximum number of goroutines
	// that will be used to run all the operations in the batch
	Concurrency int
}

// Run runs all the operations provided by the input channel
// with at most opts.Concurrency goroutines. The results may be
// sent in a different order compared to the order in which the
// inputs are received. The returned channel is closed once all
// the inputs have been processed or ctx is done. A supplier that
// fails with ErrCannotRecover stops the batch.
func Run[R any](
	ctx context.Context,
	inC <-chan Supplier[R],
	opts BatchOpts,
) <-chan BatchResult[R] {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}

	ctx, cancel := context.WithCancel(ctx)
	outC := make(chan BatchResult[R])
	argC := make(chan batchInput[R], opts.Concurrency)

	wg := &sync.WaitGroup{}
	wg.Add(opts.Concurrency)
	for i := 0; i < opts.Concurrency; i++ {
		go run(ctx, cancel, argC, outC, wg)
	}

	go func() {
		sendInputs(ctx, inC, argC)
		close(argC)
		wg.Wait()
		cancel()
		close(outC)
	}()

	return outC
}

func sendInputs[R any](
	ctx context.Context,
	inC <-chan Supplier[R],
	argC chan<- batchInput[R],
) {
	for counter := 0; ; counter++ {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inC:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case argC <- batchInput[R]{Supplier: in, Index: counter}:
			}
		}
	}
}

func run[R any](
	ctx context.Context,
	cancel context.CancelFunc,
	inC <-chan batchInput[R],
	outC chan<- BatchResult[R],
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inC:
			if !ok || ctx.Err() != nil {
				return
			}

			value, err := in.Supplier.Supply()
			if errors.As(err, &ErrCannotRecover{}) {
				cancel()
			}

			outC <- BatchResult[R]{
				Result: Result[R]{value: value, err: err},
				index:  in.Index,
				done:   true,
			}
		}
	}
}

// BatchSlice runs all the operations in the slice as a batch
// and returns a slice with the results in the same order
func BatchSlice[R any](
	ctx context.Context,
	in []Supplier[R],
	opts BatchOpts,
) []BatchResult[R] {
	inC := make(chan Supplier[R])

	go func() {
		defer close(inC)
		for i := 0; i < len(in); i++ {
			select {
			case <-ctx.Done():
				return
			case inC <- in[i]:
			}
		}
	}()

	results := make([]BatchResult[R], len(in))
	for i := range results {
		results[i].index = i
	}

	for res := range Run[R](ctx, inC, opts) {
		results[res.Index()] = res
	}

	return results
}
