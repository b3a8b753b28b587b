package Stacks

type node[T any] struct {
	v  T
	nx *node[T]
}

type linkedStack[T any] struct {
	top *node[T]
}

func MakeLinkedStack[T any]() Stack[T] {
	return &linkedStack[T]{}
}

func (this linkedStack[T]) Empty() bool {
	return this.top == nil
}

func (this *linkedStack[T]) Push(item T) {
	this.top = &node[T]{item, this.top}
}

func (this *linkedStack[T]) Pop() (T, error) {
	if this.top == nil {
		return *new(T), &EmptyStackError{}
	} else {
		t := this.top.v
		this.top = this.top.nx
		return t, nil
	}
}

func (this linkedStack[T]) Peek() (T, bool) {
	if this.top == nil {
		return *new(T), false
	}
	return this.top.v, true
}
