package tree

// insert walks down from curr, or from the root if curr is nil, and
// attaches n in the first empty slot that preserves the Binary Search
// Tree properties. No balancing algorithm is applied. The node already
// holding a value equal to n's is returned instead when found.
func (t *Tree[T]) insert(n *Node[T], curr *Node[T]) *Node[T] {
	if t.root == nil {
		t.root = n
		n.parent = nil
		return n
	}

	if curr == nil {
		curr = t.root
	}

	for {
		res := t.cmp.Less(n.value, curr.value)
		switch {
		case res == 0:
			return curr
		case res < 0:
			if curr.left == nil {
				curr.left = n
				n.parent = curr
				return n
			}
			curr = curr.left
		default:
			if curr.right == nil {
				curr.right = n
				n.parent = curr
				return n
			}
			curr = curr.right
		}
	}
}

// remove unlinks n from the tree. When n has both children the
// right child takes its place and the left subtree is inserted
// again below the right child. The root is handled differently:
// it keeps its identity, takes over the value and children of its
// right child, and the old left subtree is inserted again below it.
func (t *Tree[T]) remove(n *Node[T]) {
	switch {
	case n.left == nil && n.right == nil:
		t.transplant(n, nil)
	case n.left == nil:
		t.transplant(n, n.right)
	case n.right == nil:
		t.transplant(n, n.left)
	case n.parent != nil:
		left, right := n.left, n.right
		t.transplant(n, right)
		left.parent = nil
		t.insert(left, right)
	default:
		t.absorbRight(n)
		return
	}

	n.detach()
}

// absorbRight replaces the value of the root n with the value of
// its right child, which is dropped from the tree
func (t *Tree[T]) absorbRight(n *Node[T]) {
	left, right := n.left, n.right

	n.value = right.value
	n.left, n.right = right.left, right.right
	if n.left != nil {
		n.left.parent = n
	}
	if n.right != nil {
		n.right.parent = n
	}

	right.detach()
	left.parent = nil
	t.insert(left, n)
}

// transplant replaces one subtree as a child of its parent
// with another subtree
func (t *Tree[T]) transplant(u *Node[T], v *Node[T]) {
	switch u.Side() {
	case SideNone:
		t.root = v
	case SideLeft:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}
