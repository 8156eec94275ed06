package tree

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
)

// indentWidth is the number of spaces Print adds per level
const indentWidth = 3

// Tree represents a binary search tree without duplicate values.
// A Tree is not safe for concurrent use.
type Tree[T any] struct {
	root *Node[T]
	cmp  Lesser[T]
	len  int
}

// NewTree creates an empty tree that orders its values with cmp
func NewTree[T any](cmp Lesser[T]) *Tree[T] {
	if cmp == nil {
		panic("lesser must be set")
	}

	return &Tree[T]{cmp: cmp}
}

// NewOrderedTree creates an empty tree that uses the natural
// order of T
func NewOrderedTree[T cmp.Ordered]() *Tree[T] {
	return NewTree[T](OrderedLesser[T]{})
}

// Len returns the number of nodes in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Min returns the node in the tree with the
// lowest value. It returns nil if the tree
// is empty
func (t *Tree[T]) Min() *Node[T] {
	curr := t.root
	for curr != nil && curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the tree with the
// highest value. It returns nil if tree
// is empty
func (t *Tree[T]) Max() *Node[T] {
	curr := t.root
	for curr != nil && curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Insert a value into the tree. It returns the node that holds
// the value, which is the already existing node if the tree
// contained an equal value
func (t *Tree[T]) Insert(v T) *Node[T] {
	n := NewNode(v)
	res := t.insert(n, t.root)
	if res == n {
		t.len++
	}

	return res
}

// InsertNode attaches n, together with the subtree it owns, at the
// position found by walking down from start, or from the root if
// start is nil. Only the parent link of n is modified. If a node
// with an equal value is found during the walk, that node is returned
// and n is left untouched. The caller must make sure every value of
// the subtree fits the position in which n ends up.
func (t *Tree[T]) InsertNode(n *Node[T], start *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	if n.parent != nil {
		panic("attempt to insert a node that is owned by another node")
	}

	res := t.insert(n, start)
	if res == n {
		t.len += n.size()
	}

	return res
}

// Find returns the node in the tree that holds a value equal to v.
// It returns ErrEmptyTree if the tree has no nodes and a nil
// node if no node is equal to v
func (t *Tree[T]) Find(v T) (*Node[T], error) {
	return t.FindFrom(v, nil)
}

// FindFrom works as Find but only searches the subtree rooted at start.
// A nil start searches the whole tree.
func (t *Tree[T]) FindFrom(v T, start *Node[T]) (*Node[T], error) {
	if start == nil {
		start = t.root
	}
	if start == nil {
		return nil, ErrEmptyTree{}
	}

	for curr := start; curr != nil; {
		res := t.cmp.Less(v, curr.value)
		switch {
		case res == 0:
			return curr, nil
		case res < 0:
			curr = curr.left
		default:
			curr = curr.right
		}
	}

	return nil, nil
}

// Contains returns true if the tree contains a
// node with value v
func (t *Tree[T]) Contains(v T) bool {
	n, err := t.Find(v)
	return err == nil && n != nil
}

// Higher returns the node in the tree that has the
// smallest value which is higher than or equal to v
func (t *Tree[T]) Higher(v T) *Node[T] {
	var higher *Node[T]

	for curr := t.root; curr != nil; {
		if t.cmp.Less(v, curr.value) <= 0 {
			higher = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return higher
}

// Lower returns the node in the tree that has the
// highest value which is lower than or equal to v
func (t *Tree[T]) Lower(v T) *Node[T] {
	var lower *Node[T]

	for curr := t.root; curr != nil; {
		if t.cmp.Less(v, curr.value) < 0 {
			curr = curr.left
		} else {
			lower = curr
			curr = curr.right
		}
	}

	return lower
}

// Remove the node from the tree. A nil node, or a parentless node
// other than the root, is ignored. n must otherwise be a node of t:
// a child node of another tree is unlinked from that tree and still
// counted as removed from t
func (t *Tree[T]) Remove(n *Node[T]) {
	if n == nil || (n.parent == nil && n != t.root) {
		return
	}

	t.remove(n)
	t.len--
}

// RemoveValue removes the node on the tree that has value
// equal to v. It returns false if there was no such node
func (t *Tree[T]) RemoveValue(v T) bool {
	n, err := t.Find(v)
	if err != nil || n == nil {
		return false
	}

	t.Remove(n)
	return true
}

// Print writes the tree to the standard output
func (t *Tree[T]) Print() error {
	return t.Fprint(os.Stdout)
}

// Fprint writes a pre order dump of the tree to w, one node per line.
// Each line is the indentation of the node's depth followed by
// "[+]" for the root, "[L]" or "[R]" for children, and the value.
func (t *Tree[T]) Fprint(w io.Writer) error {
	type frame struct {
		node  *Node[T]
		depth int
	}

	if t.root == nil {
		return nil
	}

	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		indent := strings.Repeat(" ", f.depth*indentWidth)
		if _, err := fmt.Fprintf(w, "%s [%s]- %s\n", indent, f.node.Side().marker(), f.node); err != nil {
			return err
		}

		// right is pushed first so that left is printed first
		if f.node.right != nil {
			stack = append(stack, frame{node: f.node.right, depth: f.depth + 1})
		}
		if f.node.left != nil {
			stack = append(stack, frame{node: f.node.left, depth: f.depth + 1})
		}
	}

	return nil
}

// String returns the same dump that Print writes
func (t *Tree[T]) String() string {
	var b strings.Builder
	_ = t.Fprint(&b)
	return b.String()
}
