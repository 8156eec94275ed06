package tree

import (
	"math"
	"testing"

	"github.com/eaugeas/bst/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeMaxValue = 10

func levels(tree *Tree[int]) [][]*Node[int] {
	result := [][]*Node[int]{[]*Node[int]{tree.root}}
	currLevel := 0

	for {
		nels := int(math.Pow(2, float64(currLevel+1)))
		result = append(result, make([]*Node[int], nels))
		nodesAdded := 0

		for i := 0; i < nels/2; i++ {
			if result[currLevel][i] == nil {
				result[currLevel+1][2*i] = nil
				result[currLevel+1][2*i+1] = nil
			} else {
				nodesAdded += 1
				result[currLevel+1][2*i] = result[currLevel][i].left
				result[currLevel+1][2*i+1] = result[currLevel][i].right
			}
		}

		currLevel += 1
		if nodesAdded == 0 {
			break
		}
	}

	// the last level is empty so it can be removed
	return result[:currLevel-1]
}

func assertEqualTree(t *testing.T, expected [][]interface{}, tree *Tree[int]) {
	levels := levels(tree)
	assert.Equal(t, len(expected), len(levels))
	for level := 0; level < len(expected) && level < len(levels); level++ {
		assert.Equal(t, len(expected[level]), len(levels[level]))
		for col := 0; col < len(expected[level]) && col < len(levels[level]); col++ {
			if expected[level][col] == nil {
				assert.Nil(t, levels[level][col])
			} else if assert.NotNil(t, levels[level][col]) {
				assert.Equal(t, expected[level][col], levels[level][col].Value())
			}
		}
	}

	assert.NoError(t, tree.Check())
}

func values[T any](tree *Tree[T]) []T {
	var res []T
	_ = walkInOrder(tree.root, func(n *Node[T]) error {
		res = append(res, n.value)
		return nil
	})

	return res
}

func prePopulateTree(tree *Tree[int]) {
	if tree.Len() != 0 {
		panic("attempt to prepopulate non-emtpy tree")
	}

	it := source.BalancedSource{Highest: treeMaxValue}
	for {
		value, ok := it.Next()
		if !ok {
			break
		}

		tree.Insert(value)
	}
}

func prePopulatedTree() *Tree[int] {
	tree := NewOrderedTree[int]()
	prePopulateTree(tree)
	return tree
}

// classicTree inserts 8, 3, 10, 1, 6, 4, 7, 14, 16
func classicTree() *Tree[int] {
	tree := NewOrderedTree[int]()
	for _, v := range []int{8, 3, 10, 1, 6, 4, 7, 14, 16} {
		tree.Insert(v)
	}

	return tree
}

func TestNewTreeErrNilLesserPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewTree[int](nil)
	})
}

func TestTreeWithLesserFunc(t *testing.T) {
	tree := NewTree[string](LesserFunc[string](func(a, b string) int {
		switch {
		case len(a) < len(b):
			return -1
		case len(a) > len(b):
			return 1
		default:
			return 0
		}
	}))

	tree.Insert("ccc")
	tree.Insert("a")
	tree.Insert("bb")
	n := tree.Insert("zzz")

	assert.Equal(t, "ccc", n.Value())
	assert.Equal(t, []string{"a", "bb", "ccc"}, values(tree))
	require.NoError(t, tree.Check())
}

func TestPrePopulatedTreeShape(t *testing.T) {
	tree := prePopulatedTree()

	assert.Equal(t, 8, tree.Len())
	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{1, 3, 6, 8},
		{0, nil, nil, nil, nil, nil, nil, nil},
	}, tree)
}

func TestTreePrintClassic(t *testing.T) {
	tree := classicTree()

	expected := "" +
		" [+]- 8\n" +
		"    [L]- 3\n" +
		"       [L]- 1\n" +
		"       [R]- 6\n" +
		"          [L]- 4\n" +
		"          [R]- 7\n" +
		"    [R]- 10\n" +
		"       [R]- 14\n" +
		"          [R]- 16\n"

	assert.Equal(t, expected, tree.String())
}

func TestTreePrintEmpty(t *testing.T) {
	tree := NewOrderedTree[int]()
	assert.Equal(t, "", tree.String())
}

func TestTreeCheckDetectsBrokenParent(t *testing.T) {
	tree := classicTree()
	n, err := tree.Find(6)
	require.NoError(t, err)

	n.left.parent = tree.root

	var corrupted ErrCorrupted
	require.ErrorAs(t, tree.Check(), &corrupted)
	assert.Equal(t, "4", corrupted.Node)
}

func TestTreeCheckDetectsBrokenOrder(t *testing.T) {
	tree := classicTree()
	n, err := tree.Find(4)
	require.NoError(t, err)

	n.value = 9

	assert.Error(t, tree.Check())
}

func TestTreeCheckDetectsSharedNode(t *testing.T) {
	tree := classicTree()
	one, err := tree.Find(1)
	require.NoError(t, err)

	one.right = tree.root.left

	var corrupted ErrCorrupted
	require.ErrorAs(t, tree.Check(), &corrupted)
}

func TestTreeCheckDetectsWrongLen(t *testing.T) {
	tree := classicTree()
	tree.len++

	assert.Error(t, tree.Check())
}

func TestTreeCheckEmptyWithLen(t *testing.T) {
	tree := NewOrderedTree[int]()
	tree.len = 1

	assert.Error(t, tree.Check())
}
