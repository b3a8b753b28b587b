package Lists

// A node in the LinkedList. Owned by its neighbors' links and the list
// ends; nodes are never shared between lists.
// The zero value is meaningless.
type node[T any] struct {
	v      T
	pv, nx *node[T]
}

// LinkedList is a doubly linked List. Both ends are direct pointers, so
// pushes and pops cost O(1) at either side; walks cost O(n).
// The zero value is an empty list ready for use.
type LinkedList[T any] struct {
	head, tail *node[T]
	sz         uint
}

func MakeLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// PushFront [List.PushFront]
// Time: O(1); Space: O(1)
func (u *LinkedList[T]) PushFront(item T) {
	n := &node[T]{v: item, nx: u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.pv = n
	}
	u.head = n
	u.sz++
}

// PushBack [List.PushBack]
// Time: O(1); Space: O(1)
func (u *LinkedList[T]) PushBack(item T) {
	n := &node[T]{v: item, pv: u.tail}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.nx = n
	}
	u.tail = n
	u.sz++
}

// PopFront [List.PopFront]
// Time: O(1); Space: O(1)
func (u *LinkedList[T]) PopFront() (T, error) {
	if u.head == nil {
		return *new(T), &EmptyListError{}
	}
	t := u.head.v
	u.head = u.head.nx
	if u.head == nil {
		u.tail = nil
	} else {
		u.head.pv = nil
	}
	u.sz--
	return t, nil
}

// PopBack [List.PopBack]
// Time: O(1); Space: O(1)
func (u *LinkedList[T]) PopBack() (T, error) {
	if u.tail == nil {
		return *new(T), &EmptyListError{}
	}
	t := u.tail.v
	u.tail = u.tail.pv
	if u.tail == nil {
		u.head = nil
	} else {
		u.tail.nx = nil
	}
	u.sz--
	return t, nil
}

// Front [List.Front]
// Time: O(1); Space: O(1)
func (u LinkedList[T]) Front() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	return u.head.v, true
}

// Back [List.Back]
// Time: O(1); Space: O(1)
func (u LinkedList[T]) Back() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.v, true
}

// Size [List.Size]
// Time: O(1); Space: O(1)
func (u LinkedList[T]) Size() uint {
	return u.sz
}

// Empty [List.Empty]
// Time: O(1); Space: O(1)
func (u LinkedList[T]) Empty() bool {
	return u.head == nil
}

// Clear [List.Clear]. Every node becomes unreachable at once.
// Time: O(1); Space: O(1)
func (u *LinkedList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

// All [List.All]
// Time: O(n); Space: O(1)
func (u LinkedList[T]) All(f func(*T) bool) {
	for cur := u.head; cur != nil; cur = cur.nx {
		if !f(&cur.v) {
			return
		}
	}
}

// Reversed [List.Reversed]
// Time: O(n); Space: O(1)
func (u LinkedList[T]) Reversed(f func(*T) bool) {
	for cur := u.tail; cur != nil; cur = cur.pv {
		if !f(&cur.v) {
			return
		}
	}
}
