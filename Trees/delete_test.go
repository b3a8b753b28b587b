package Trees

import (
	"github.com/stretchr/testify/require"
	"testing"
)

// sevenKeys builds the canonical workload: 25 roots the tree, 20 and 30
// root the subtrees, 15/22/27/35 are the leaves.
func sevenKeys() *BSTree[int] {
	tree := New[int]()
	for _, v := range []int{25, 20, 30, 15, 22, 27, 35} {
		tree.Insert(v)
	}
	return tree
}

func inOrderKeys(tree *BSTree[int]) []int {
	s := make([]int, 0, tree.Size())
	tree.InOrder(func(v *int) bool {
		s = append(s, *v)
		return true
	})
	return s
}

func TestBSTree_SevenKeys(t *testing.T) {
	tree := sevenKeys()
	require.Equal(t, []int{15, 20, 22, 25, 27, 30, 35}, inOrderKeys(tree))
	require.EqualValues(t, 7, tree.Size())
	require.NotNil(t, tree.Get(27))
	require.Equal(t, 27, *tree.Get(27))
	require.Nil(t, tree.Get(100))
	mi, ok := tree.Minimum()
	require.True(t, ok)
	require.Equal(t, 15, mi)
	ma, ok := tree.Maximum()
	require.True(t, ok)
	require.Equal(t, 35, ma)
}

func TestBSTree_TraversalOrders(t *testing.T) {
	tree := sevenKeys()
	var pre, post []int
	tree.PreOrder(func(v *int) bool {
		pre = append(pre, *v)
		return true
	})
	tree.PostOrder(func(v *int) bool {
		post = append(post, *v)
		return true
	})
	require.Equal(t, []int{25, 20, 15, 22, 30, 27, 35}, pre)
	require.Equal(t, []int{15, 22, 20, 27, 35, 30, 25}, post)
	pre, post = pre[:0], post[:0]
	tree.PreOrder(func(v *int) bool {
		pre = append(pre, *v)
		return len(pre) < 3
	})
	tree.PostOrder(func(v *int) bool {
		post = append(post, *v)
		return len(post) < 3
	})
	require.Equal(t, []int{25, 20, 15}, pre)
	require.Equal(t, []int{15, 22, 20}, post)
}

func TestBSTree_RemoveCases(t *testing.T) {
	tests := []struct {
		name      string
		insert    []int
		remove    int
		removed   bool
		wantOrder []int
	}{
		{
			name:      "leaf",
			insert:    []int{25, 20, 30, 15, 22, 27, 35},
			remove:    15,
			removed:   true,
			wantOrder: []int{20, 22, 25, 27, 30, 35},
		},
		{
			name:      "only left child",
			insert:    []int{25, 20, 15},
			remove:    20,
			removed:   true,
			wantOrder: []int{15, 25},
		},
		{
			name:      "only right child",
			insert:    []int{25, 30, 35},
			remove:    30,
			removed:   true,
			wantOrder: []int{25, 35},
		},
		{
			name:      "two children at the root",
			insert:    []int{25, 20, 30, 15, 22, 27, 35},
			remove:    25,
			removed:   true,
			wantOrder: []int{15, 20, 22, 27, 30, 35},
		},
		{
			name:      "two children below the root",
			insert:    []int{25, 20, 30, 15, 22, 27, 35},
			remove:    20,
			removed:   true,
			wantOrder: []int{15, 22, 25, 27, 30, 35},
		},
		{
			name:      "predecessor has a left child",
			insert:    []int{25, 20, 30, 15, 22, 21},
			remove:    25,
			removed:   true,
			wantOrder: []int{15, 20, 21, 22, 30},
		},
		{
			name:      "lone root",
			insert:    []int{25},
			remove:    25,
			removed:   true,
			wantOrder: []int{},
		},
		{
			name:      "absent value",
			insert:    []int{25, 20, 30, 15, 22, 27, 35},
			remove:    100,
			removed:   false,
			wantOrder: []int{15, 20, 22, 25, 27, 30, 35},
		},
		{
			name:      "empty tree",
			insert:    nil,
			remove:    5,
			removed:   false,
			wantOrder: []int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New[int]()
			for _, v := range tt.insert {
				tree.Insert(v)
			}
			require.Equal(t, tt.removed, tree.Remove(tt.remove))
			require.Equal(t, tt.wantOrder, inOrderKeys(tree))
			require.EqualValues(t, len(tt.wantOrder), tree.Size())
			require.False(t, tree.Has(tt.remove))
		})
	}
}

// Removing a node with two children must keep the node and change its
// value to the in-order predecessor, unlinking the predecessor's node
// from the left subtree instead.
func TestBSTree_RemoveSplicesPredecessor(t *testing.T) {
	tree := sevenKeys()
	oldRoot := tree.root
	require.True(t, tree.Remove(25))
	require.Same(t, oldRoot, tree.root)
	require.Equal(t, 22, tree.root.v)
	require.Nil(t, tree.root.l.r)
	require.Equal(t, []int{15, 20, 22, 27, 30, 35}, inOrderKeys(tree))
}

func TestBSTree_RemoveKeepsStructuralPosition(t *testing.T) {
	tree := sevenKeys()
	pos := tree.root.l
	require.Equal(t, 20, pos.v)
	require.True(t, tree.Remove(20))
	require.Same(t, pos, tree.root.l)
	require.Equal(t, 15, tree.root.l.v)
	require.Nil(t, tree.root.l.l)
	require.Equal(t, []int{15, 22, 25, 27, 30, 35}, inOrderKeys(tree))
}

func TestBSTree_RemoveIsIsolated(t *testing.T) {
	tree := sevenKeys()
	require.True(t, tree.Remove(25))
	for _, v := range []int{15, 20, 22, 27, 30, 35} {
		require.NotNil(t, tree.Get(v), "key %d lost by an unrelated removal", v)
	}
	require.Nil(t, tree.Get(25))
}
