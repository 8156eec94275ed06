package tree

import "fmt"

// Check verifies that the tree is well formed: the root has no parent,
// every child links back to the node that owns it, no node is reachable
// twice, values are strictly increasing in order and Len matches the
// number of reachable nodes. It returns an ErrCorrupted describing the
// first violation found.
func (t *Tree[T]) Check() error {
	if t.root == nil {
		if t.len != 0 {
			return ErrCorrupted{Node: "<nil>", Reason: fmt.Sprintf("empty tree reports %d nodes", t.len)}
		}
		return nil
	}

	if t.root.parent != nil {
		return corrupted(t.root, "root has a parent")
	}

	var prev *Node[T]
	count := 0

	err := walkInOrder(t.root, func(n *Node[T]) error {
		if n.left != nil && n.left.parent != n {
			return corrupted(n.left, "left child does not link back to its parent")
		}
		if n.right != nil && n.right.parent != n {
			return corrupted(n.right, "right child does not link back to its parent")
		}
		if prev != nil && t.cmp.Less(prev.value, n.value) >= 0 {
			return corrupted(n, fmt.Sprintf("out of order after %s", prev))
		}

		prev = n
		count++
		return nil
	})
	if err != nil {
		return err
	}

	if count != t.len {
		return corrupted(t.root, fmt.Sprintf("tree reports %d nodes but %d are reachable", t.len, count))
	}

	return nil
}

func corrupted[T any](n *Node[T], reason string) error {
	return ErrCorrupted{Node: n.String(), Reason: reason}
}

// walkInOrder visits the subtree rooted at n in order until fn returns
// an error. It fails instead of looping when a node is reachable twice.
func walkInOrder[T any](n *Node[T], fn func(*Node[T]) error) error {
	seen := make(map[*Node[T]]struct{})
	var stack []*Node[T]

	for curr := n; curr != nil || len(stack) > 0; {
		for ; curr != nil; curr = curr.left {
			if _, ok := seen[curr]; ok {
				return corrupted(curr, "node reachable twice")
			}
			seen[curr] = struct{}{}
			stack = append(stack, curr)
		}

		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(curr); err != nil {
			return err
		}

		curr = curr.right
	}

	return nil
}
