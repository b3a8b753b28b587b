package Trees

import "golang.org/x/exp/constraints"

// Tree represents an ordered set implemented using binary search tree nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and mustn't be mistaken for A stored
// element; emptiness is always reported through the bool, never through
// A sentinel value.
// No receiver here is implemented using call stack recursion: lookups and
// mutations walk child links in A loop and traversals keep their pending
// nodes on an explicit heap allocated stack, so A heavily skewed tree
// costs time, not stack frames.
type Tree[T constraints.Ordered] interface {
	//Insert v to the Tree. Returning true if v was absent and A node was
	//created, false if v was already present. The Tree is A set, not A
	//multiset: repeating an Insert is suppressed silently, it is not an
	//error.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if A node was removed, false
	//if v wasn't present. Removing A missing value, or removing from an
	//empty Tree, is A no-op.
	Remove(v T) bool
	//Has element v. Note that even though utilizing the return values of
	//Get achieves the same functionality, it is encouraged to use Has for
	//the purposes of checking if some value exists, as Has should be
	//optimized for this purpose in implementations.
	Has(v T) bool
	//Get the pointer to the element that's equal to v, nil if v isn't
	//present. The pointed storage belongs to the node holding v; writing
	//A value that compares differently through it corrupts the Tree.
	Get(v T) *T
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//InOrder calls f with A pointer to every element in ascending
	//order(left subtree, node, right subtree) until f returns false.
	//The Tree must not be modified during the walk, otherwise it could
	//corrupt the tree. There will be no panic if such cases happens so
	//design the algorithm with this in mind.
	InOrder(f func(*T) bool)
	//PreOrder calls f with A pointer to every element in node, left
	//subtree, right subtree order until f returns false. Inserting the
	//produced sequence into an empty Tree reproduces the exact shape, so
	//this is the order for cloning. Same modification rule as InOrder.
	PreOrder(f func(*T) bool)
	//PostOrder calls f with A pointer to every element in left subtree,
	//right subtree, node order until f returns false. Children always
	//come before their parent, the order for safe teardown. Same
	//modification rule as InOrder.
	PostOrder(f func(*T) bool)
	//Size of the tree.
	Size() uint
	//Clear the tree, unlinking every node at once.
	Clear()
}
