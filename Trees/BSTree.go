package Trees

import (
	"golang.org/x/exp/constraints"
	"math/bits"
)

// BSTree is an unbalanced binary search tree with no repeated values: for
// every node, the left subtree holds only smaller values and the right
// subtree only larger ones, so an in-order walk yields ascending order.
// T is the type of values it will hold.
// No rebalancing is ever performed, so the height D of the tree depends
// entirely on the insertion order: D is O(log n) on average for random
// orders, but adversarial orders(such as strictly ascending) degrade D,
// and with it every operation, to O(n). This is the intended trade for
// zero bookkeeping per node; pick A self balancing tree when inputs are
// adversarial.
// The zero value is an empty tree ready for use.
type BSTree[T constraints.Ordered] struct {
	root *node[T] //nil when the tree holds no values.
	sz   uint
}

// New returns an empty BSTree.
func New[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// Insert [Tree.Insert]. The new value always starts as A leaf on the
// bottom of the tree; nothing above it moves.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) bool {
	curI := &u.root
	for *curI != nil {
		if cur := *curI; v < cur.v {
			curI = &cur.l
		} else if v > cur.v {
			curI = &cur.r
		} else {
			return false
		}
	}
	*curI = leaf(v)
	u.sz++
	return true
}

// Remove [Tree.Remove]. A node with two children isn't unlinked: it takes
// over the value of its in-order predecessor(the maximum of its left
// subtree, which by the ordering sits between both subtrees), and the
// predecessor's node, having no r child, is unlinked by promoting its l
// child. A node with fewer children is unlinked directly by promoting
// whichever child exists. The root link is walked like any other, so
// removing the root needs no special case.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) bool {
	curI := &u.root
	for *curI != nil {
		if cur := *curI; v < cur.v {
			curI = &cur.l
		} else if v > cur.v {
			curI = &cur.r
		} else {
			if cur.l == nil {
				*curI = cur.r
			} else if cur.r == nil {
				*curI = cur.l
			} else {
				pl := maxLink(&cur.l)
				cur.v = (*pl).v
				*pl = (*pl).l
			}
			u.sz--
			return true
		}
	}
	return false
}

// Get [Tree.Get]. The search never backtracks: when the side where v
// would live has no child, v isn't present anywhere in the tree.
// Time: O(D); Space: O(1)
func (u BSTree[T]) Get(v T) *T {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return &cur.v
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return (*minLink(&u.root)).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return (*maxLink(&u.root)).v, true
}

// InOrder [Tree.InOrder]. Pending ancestors wait on an explicit stack
// whose backing starts at A balanced depth guess and grows by append
// when the tree is deeper, so depth costs heap, never call stack.
// Time: O(n); Space: O(D)
func (u BSTree[T]) InOrder(f func(*T) bool) {
	st := make([]*node[T], 0, bits.Len(u.sz))
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(&cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// PreOrder [Tree.PreOrder]. The r child is stacked before the l child so
// the left side pops first.
// Time: O(n); Space: O(D)
func (u BSTree[T]) PreOrder(f func(*T) bool) {
	if u.root == nil {
		return
	}
	st := append(make([]*node[T], 0, bits.Len(u.sz)), u.root)
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(&cur.v) {
			return
		}
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
}

// PostOrder [Tree.PostOrder]. A node stays stacked until its r subtree is
// exhausted; last remembers the most recently visited node to tell A
// finished r subtree from an unvisited one.
// Time: O(n); Space: O(D)
func (u BSTree[T]) PostOrder(f func(*T) bool) {
	st := make([]*node[T], 0, bits.Len(u.sz))
	var last *node[T]
	for cur := u.root; cur != nil || len(st) > 0; {
		if cur != nil {
			st = append(st, cur)
			cur = cur.l
		} else if top := st[len(st)-1]; top.r != nil && top.r != last {
			cur = top.r
		} else {
			if !f(&top.v) {
				return
			}
			last, st = top, st[:len(st)-1]
		}
	}
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u BSTree[T]) Size() uint {
	return u.sz
}

// Clear [Tree.Clear]. Every node becomes unreachable at once; reclaiming
// them is the garbage collector's.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}
