package Queues

import "github.com/g-m-twostay/go-containers/Lists"

// linked serves items from the head of l; the policies differ in where they push.
type linked[T any] struct {
	l *Lists.List[T]
}

func (u linked[T]) Empty() bool {
	return u.l.Empty()
}

func (u linked[T]) Size() uint {
	return u.l.Size()
}

// Peek at the next item, the zero value if empty.
func (u linked[T]) Peek() (item T) {
	if h := u.l.Head(); h != nil {
		item = h.Value
	}
	return
}

// Pop the next item. The item is not destroyed.
func (u linked[T]) Pop() (T, error) {
	if v, ok := u.l.Unlink(u.l.Head()); ok {
		return v, nil
	}
	return *new(T), &EmptyQueueError{}
}

// Free destroys every item left.
func (u linked[T]) Free() {
	u.l.Free()
}

type linkedStack[T any] struct {
	linked[T]
}

// MakeLinkedStack returns a LIFO LinkedQueue. destroy is called on the items left at Free and
// may be nil.
func MakeLinkedStack[T any](destroy func(T)) LinkedQueue[T] {
	return linkedStack[T]{linked[T]{Lists.New(destroy)}}
}

func (u linkedStack[T]) Push(item T) {
	u.l.InsertBefore(u.l.Head(), item)
}

type linkedQ[T any] struct {
	linked[T]
}

// MakeLinkedQueue returns a FIFO LinkedQueue. destroy is called on the items left at Free and
// may be nil.
func MakeLinkedQueue[T any](destroy func(T)) LinkedQueue[T] {
	return linkedQ[T]{linked[T]{Lists.New(destroy)}}
}

func (u linkedQ[T]) Push(item T) {
	u.l.InsertAfter(u.l.Tail(), item)
}
