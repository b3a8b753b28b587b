package Lists

// List is a sequence with O(1) insertion and removal at both ends.
// Reads follow the same conventions as the rest of the module: Front and
// Back report emptiness through A second bool return, PopFront and
// PopBack through an error value.
type List[T any] interface {
	PushFront(item T)
	PushBack(item T)
	PopFront() (T, error)
	PopBack() (T, error)
	Front() (T, bool)
	Back() (T, bool)
	Size() uint
	Empty() bool
	Clear()
	//All calls f with A pointer to every element from front to back until
	//f returns false. The List must not be modified during the walk.
	All(f func(*T) bool)
	//Reversed is All from back to front.
	Reversed(f func(*T) bool)
}

type EmptyListError struct {
}

func (e *EmptyListError) Error() string {
	return "List is Empty: cannot Pop."
}
