package tree

import "fmt"

// ErrEmptyTree is returned when a search has no node to start from
type ErrEmptyTree struct{}

func (e ErrEmptyTree) Error() string {
	return "tree is empty"
}

// ErrCorrupted is returned by Check when one of the structural
// properties of the tree does not hold
type ErrCorrupted struct {
	// Node is the textual value of the node where the problem was found
	Node string

	// Reason describes the broken property
	Reason string
}

// Error implementation of error for ErrCorrupted
func (e ErrCorrupted) Error() string {
	return fmt.Sprintf("tree corrupted at node %s: %s", e.Node, e.Reason)
}
