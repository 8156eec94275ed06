package tree

import "fmt"

// Side tells which child of its parent a node is
type Side uint8

const (
	// SideNone is the side of a node without a parent
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// marker is the tag used by Print for a node on side s
func (s Side) marker() string {
	switch s {
	case SideLeft:
		return "L"
	case SideRight:
		return "R"
	default:
		return "+"
	}
}

// Node of a tree. A node owns its children. The parent
// is only a back link to the node that owns it.
type Node[T any] struct {
	value T

	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

// NewNode creates a detached node holding v
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the value held by the node
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the node's left child
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Parent returns the node's parent
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Side returns SideNone when the node has no parent, SideLeft when
// it is owned by its parent's left slot and SideRight otherwise
func (n *Node[T]) Side() Side {
	switch {
	case n.parent == nil:
		return SideNone
	case n.parent.left == n:
		return SideLeft
	default:
		return SideRight
	}
}

// String returns the textual representation of the node's value
func (n *Node[T]) String() string {
	return fmt.Sprint(n.value)
}

// detach clears all the links of the node
func (n *Node[T]) detach() {
	n.left, n.right, n.parent = nil, nil, nil
}

// size counts the nodes of the subtree rooted at n
func (n *Node[T]) size() int {
	if n == nil {
		return 0
	}

	count := 0
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if curr.left != nil {
			stack = append(stack, curr.left)
		}
		if curr.right != nil {
			stack = append(stack, curr.right)
		}
	}

	return count
}
