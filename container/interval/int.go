package interval

import (
	"fmt"

	"github.com/eaugeas/bst/container/tree"
)

// Lesser orders intervals within a tree by their
// lower bound only
type Lesser struct{}

// Less implementation of tree.Lesser for Int
func (Lesser) Less(a, b Int) int {
	switch {
	case a.min < b.min:
		return -1
	case a.min > b.min:
		return 1
	default:
		return 0
	}
}

// Int represents a closed interval of integers [a, b].
// An interval is immutable.
type Int struct {
	min int
	max int
}

// NewInt returns a new interval. It panics if min is
// greater than max
func NewInt(min, max int) Int {
	if min > max {
		panic("min cannot be greater than max")
	}

	return Int{min: min, max: max}
}

// Min returns the a of the interval [a, b]
func (i Int) Min() int {
	return i.min
}

// Max returns the b of the interval [a, b]
func (i Int) Max() int {
	return i.max
}

// Len returns the number of integers in the interval
func (i Int) Len() int {
	return i.max - i.min + 1
}

// Contains returns true if j lies within i
func (i Int) Contains(j Int) bool {
	return i.min <= j.min && j.max <= i.max
}

// Disjoints returns true if i and j share no integer
func (i Int) Disjoints(j Int) bool {
	return i.max < j.min || j.max < i.min
}

// Intersection returns the integers shared by i and j.
// It panics if they are disjoint
func (i Int) Intersection(j Int) Int {
	if i.Disjoints(j) {
		panic("intersection between two disjoint intervals")
	}

	return Int{min: max(i.min, j.min), max: min(i.max, j.max)}
}

// CanMerge returns true if i and j overlap or are adjacent,
// as in [a, b] and [b + 1, c]
func (i Int) CanMerge(j Int) bool {
	return !i.Disjoints(j) || i.min == j.max+1 || i.max+1 == j.min
}

// Merge returns the smallest interval covering i and j.
// It panics if the two cannot be merged
func (i Int) Merge(j Int) Int {
	if !i.CanMerge(j) {
		panic("cannot merge intervals")
	}

	return Int{min: min(i.min, j.min), max: max(i.max, j.max)}
}

func (i Int) String() string {
	return fmt.Sprintf("[%d, %d]", i.min, i.max)
}

// IntSet keeps a set of disjoint intervals. Adjacent or
// overlapping intervals are merged on insertion, so that
// inserting [1, 3], [5] and then [4] leaves the single
// interval [1, 5].
type IntSet struct {
	intervals *tree.Tree[Int]
}

// NewIntSet creates a new empty interval set
func NewIntSet() *IntSet {
	return &IntSet{intervals: tree.NewTree[Int](Lesser{})}
}

// Len returns the number of disjoint intervals
func (s *IntSet) Len() int {
	return s.intervals.Len()
}

// Contains returns true if a single interval of the
// set contains i
func (s *IntSet) Contains(i Int) bool {
	lower, ok := s.lower(i)
	return ok && lower.Contains(i)
}

// Insert adds i to the set, merging it with every interval
// of the set it overlaps or touches
func (s *IntSet) Insert(i Int) {
	if lower, ok := s.lower(i); ok && i.CanMerge(lower) {
		if !s.intervals.RemoveValue(lower) {
			panic("failed to remove lower interval")
		}

		i = i.Merge(lower)
	}

	for {
		higher, ok := s.higher(i)
		if !ok || !i.CanMerge(higher) {
			break
		}

		if !s.intervals.RemoveValue(higher) {
			panic("failed to remove higher interval")
		}

		i = i.Merge(higher)
	}

	s.intervals.Insert(i)
}

// String returns the tree dump of the intervals in the set
func (s *IntSet) String() string {
	return s.intervals.String()
}

func (s *IntSet) higher(i Int) (Int, bool) {
	node := s.intervals.Higher(i)
	if node == nil {
		return Int{}, false
	}

	return node.Value(), true
}

func (s *IntSet) lower(i Int) (Int, bool) {
	node := s.intervals.Lower(i)
	if node == nil {
		return Int{}, false
	}

	return node.Value(), true
}
