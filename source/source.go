// Package source provides the sequences of values that are fed
// into a tree.
package source

import (
	"fmt"
	"math"
	"math/rand"
)

// Source produces a finite sequence of values. Next returns false
// once the sequence is exhausted
type Source[T any] interface {
	Next() (T, bool)
}

// Drain reads all the remaining values of src
func Drain[T any](src Source[T]) []T {
	var res []T
	for v, ok := src.Next(); ok; v, ok = src.Next() {
		res = append(res, v)
	}

	return res
}

// SliceSource yields the values of a fixed slice in order
type SliceSource[T any] struct {
	values []T
	index  int
}

// NewSliceSource creates a source over values
func NewSliceSource[T any](values ...T) *SliceSource[T] {
	return &SliceSource[T]{values: values}
}

// Next is the implementation of Source.Next for SliceSource
func (s *SliceSource[T]) Next() (T, bool) {
	if s.index >= len(s.values) {
		var zero T
		return zero, false
	}

	v := s.values[s.index]
	s.index++
	return v, true
}

// ErrInvalidRange is returned when the lower bound of a
// range is greater than its upper bound
type ErrInvalidRange struct {
	Min int
	Max int
}

func (e ErrInvalidRange) Error() string {
	return fmt.Sprintf("min %d cannot be greater than max %d", e.Min, e.Max)
}

// ErrRangeTooWide is returned when the number of values in a
// range does not fit in an int
type ErrRangeTooWide struct {
	Min int
	Max int
}

func (e ErrRangeTooWide) Error() string {
	return fmt.Sprintf("range [%d, %d] is too wide", e.Min, e.Max)
}

// CheckRange returns an error if [lo, hi] cannot bound the
// values of a RandomSource
func CheckRange(lo, hi int) error {
	if lo > hi {
		return ErrInvalidRange{Min: lo, Max: hi}
	}

	if width := hi - lo; width < 0 || width == math.MaxInt {
		return ErrRangeTooWide{Min: lo, Max: hi}
	}

	return nil
}

// RandomOpts configures a RandomSource
type RandomOpts struct {
	// Seed of the generator. The same seed always yields the
	// same sequence
	Seed int64

	// Count is the number of values generated
	Count int

	// Min and Max are the inclusive bounds of the values
	Min int
	Max int
}

// RandomSource yields pseudo random integers. Each instance owns
// its generator so sources never share state.
type RandomSource struct {
	opts    RandomOpts
	rng     *rand.Rand
	emitted int
}

// NewRandomSource creates a new RandomSource with the given options
func NewRandomSource(opts RandomOpts) (*RandomSource, error) {
	if err := CheckRange(opts.Min, opts.Max); err != nil {
		return nil, err
	}

	return &RandomSource{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}, nil
}

// Next is the implementation of Source.Next for RandomSource
func (s *RandomSource) Next() (int, bool) {
	if s.emitted >= s.opts.Count {
		return 0, false
	}

	s.emitted++
	return s.opts.Min + s.rng.Intn(s.opts.Max-s.opts.Min+1), true
}

// BalancedSource yields the midpoints of [0, Highest] level by level,
// so that inserting them in order builds a balanced tree
type BalancedSource struct {
	level uint
	index uint

	// Highest sets the maximum value an element can have
	Highest uint
}

// Next is the implementation of Source.Next for BalancedSource
func (g *BalancedSource) Next() (int, bool) {
	if (math.Pow(2, float64(g.level)) + float64(g.index)) > float64(g.Highest) {
		return 0, false
	}

	levelElements := uint(math.Pow(2, float64(g.level)))
	value := (g.Highest * (2*g.index + 1)) / (2 * levelElements)

	g.index += 1
	if g.index >= levelElements {
		g.index = 0
		g.level += 1
	}

	return int(value), true
}
