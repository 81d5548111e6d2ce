// Package Queues implements LIFO and FIFO policies over Lists.List. Both keep the list's ownership
// rules: Pop hands the value back to the caller, Free destroys whatever is left.
package Queues

// Queue is the policy shared by stacks and queues: Push adds an item, Pop and Peek look at the
// item the policy serves next.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// LinkedQueue is a Queue backed by a linked list.
type LinkedQueue[T any] interface {
	Queue[T]
	Size() uint
	Free()
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
