// Package Lists implements a doubly linked list of owned nodes.
//
// # Ownership
// A list owns its nodes, and optionally the values they hold. Values leave the list in one of two
// ways: Unlink hands the value back to the caller, while Delete passes it to the destroy callback
// given at construction. Free deletes every node.
//
// # Nil lists
// All receivers accept a nil *List and behave as a failed operation on it.
package Lists

import (
	"iter"

	"github.com/g-m-twostay/go-containers/internal/diag"
)

var log = diag.For("lists")

// Node is an element of a List. A node belongs to at most one list; once it is unlinked or
// deleted it's detached and can no longer be used as an anchor.
type Node[T any] struct {
	Value      T
	prev, next *Node[T]
	list       *List[T]
}

// Next node towards the tail, nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// Prev node towards the head, nil at the head.
func (n *Node[T]) Prev() *Node[T] {
	if n == nil {
		return nil
	}
	return n.prev
}

// List is a doubly linked list. The zero value is an empty list without a destroy callback.
type List[T any] struct {
	head, tail *Node[T]
	size       uint
	destroy    func(T)
}

// New empty list. destroy is called on the value of every deleted node and may be nil.
func New[T any](destroy func(T)) *List[T] {
	return &List[T]{destroy: destroy}
}

func (u *List[T]) Size() uint {
	if u == nil {
		return 0
	}
	return u.size
}

func (u *List[T]) Empty() bool {
	return u.Size() == 0
}

func (u *List[T]) Head() *Node[T] {
	if u == nil {
		return nil
	}
	return u.head
}

func (u *List[T]) Tail() *Node[T] {
	if u == nil {
		return nil
	}
	return u.tail
}

// anchors reports whether at can be used as an insertion point: nil on an empty list, or a live
// node of u otherwise.
func (u *List[T]) anchors(at *Node[T]) bool {
	if u == nil {
		return false
	}
	if at == nil {
		return u.size == 0
	}
	return at.list == u
}

// InsertAfter at a new node holding v and returns it. at must be nil when the list is empty and a
// node of this list otherwise, else nil is returned and the list is unchanged.
func (u *List[T]) InsertAfter(at *Node[T], v T) *Node[T] {
	if !u.anchors(at) {
		if diag.Debug() {
			log.WithField("size", u.Size()).Debug("InsertAfter rejected: anchor is not a node of the list")
		}
		return nil
	}
	n := &Node[T]{Value: v, prev: at, list: u}
	if at != nil {
		n.next, at.next = at.next, n
	}
	if n.next != nil {
		n.next.prev = n
	} else {
		u.tail = n
	}
	if n.prev == nil {
		u.head = n
	}
	u.size++
	return n
}

// InsertBefore at a new node holding v and returns it. The anchor rules of InsertAfter apply.
func (u *List[T]) InsertBefore(at *Node[T], v T) *Node[T] {
	if !u.anchors(at) {
		if diag.Debug() {
			log.WithField("size", u.Size()).Debug("InsertBefore rejected: anchor is not a node of the list")
		}
		return nil
	}
	n := &Node[T]{Value: v, next: at, list: u}
	if at != nil {
		n.prev, at.prev = at.prev, n
	}
	if n.prev != nil {
		n.prev.next = n
	} else {
		u.head = n
	}
	if n.next == nil {
		u.tail = n
	}
	u.size++
	return n
}

// detach n from the chain, repairing its neighbours and head/tail. Returns the value n held.
func (u *List[T]) detach(n *Node[T]) (v T, ok bool) {
	if u == nil || n == nil || n.list != u {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		u.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		u.tail = n.prev
	}
	v = n.Value
	n.Value, n.prev, n.next, n.list = *new(T), nil, nil, nil
	u.size--
	return v, true
}

// Unlink n from the list without destroying its value, which is returned to the caller.
func (u *List[T]) Unlink(n *Node[T]) (T, bool) {
	return u.detach(n)
}

// Delete n from the list and destroy its value.
func (u *List[T]) Delete(n *Node[T]) bool {
	v, ok := u.detach(n)
	if ok && u.destroy != nil {
		u.destroy(v)
	}
	return ok
}

// Free deletes every node, from tail to head. The list stays usable afterward.
func (u *List[T]) Free() {
	if u == nil {
		return
	}
	for n := u.tail; n != nil; {
		prev := n.prev
		u.Delete(n)
		n = prev
	}
}

// Values from head to tail.
func (u *List[T]) Values() []T {
	vs := make([]T, 0, u.Size())
	for n := u.Head(); n != nil; n = n.next {
		vs = append(vs, n.Value)
	}
	return vs
}

// All values from head to tail. The list must not be modified during the iteration.
func (u *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := u.Head(); n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}
