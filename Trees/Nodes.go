package Trees

import "golang.org/x/exp/constraints"

// A node in the BSTree: one element and the roots of its two subtrees.
// Each node is owned by exactly one link, either l or r of its parent or
// the root link of the facade; there are no parent or back references, so
// unlinking A node orphans its whole subtree at once.
// The zero value is meaningless.
type node[T constraints.Ordered] struct {
	v    T
	l, r *node[T]
}

// leaf is the state every node is created in; links grow by later inserts.
func leaf[T constraints.Ordered](v T) *node[T] {
	return &node[T]{v: v}
}

// minLink walks l links and returns the address of the link holding the
// smallest node of the subtree hung on *n. n must be the address of A
// non nil link; the result may be n itself.
// Time: O(D); Space: O(1)
func minLink[T constraints.Ordered](n **node[T]) **node[T] {
	for (*n).l != nil {
		n = &(*n).l
	}
	return n
}

// maxLink is minLink mirrored over r links: the link holding the largest
// node of the subtree. The largest node never has an r child, which is
// what makes it the splice candidate for two children removals.
// Time: O(D); Space: O(1)
func maxLink[T constraints.Ordered](n **node[T]) **node[T] {
	for (*n).r != nil {
		n = &(*n).r
	}
	return n
}
