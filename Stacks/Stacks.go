package Stacks

// Stack is a last in, first out sequence. Pop and Peek report emptiness
// instead of blocking or panicking: Pop with an error value, Peek with
// the comma-ok bool.
type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, bool)
	Empty() bool
}

// ArrayStack is a Stack backed by one contiguous array, with control over
// that array's footprint.
type ArrayStack[T any] interface {
	Stack[T]
	Shrink()
	Clear()
	Size() uint
	resize(newCap uint)
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
