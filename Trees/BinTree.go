package Trees

import (
	"github.com/g-m-twostay/go-containers/internal/diag"
	"golang.org/x/exp/constraints"
)

var log = diag.For("trees")

// Node in a BinTree.
type Node[T any] struct {
	Value T
	l, r  *Node[T]
	tree  *BinTree[T]
}

func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.r
}

// BinTree is a binary tree whose shape is decided entirely by the caller. The zero value is an
// empty tree without a destroy callback.
type BinTree[T any] struct {
	root    *Node[T]
	size    uint
	destroy func(T)
}

// NewBinTree returns an empty tree. destroy is called on the value of every deleted node and may
// be nil.
func NewBinTree[T any](destroy func(T)) *BinTree[T] {
	return &BinTree[T]{destroy: destroy}
}

func (u *BinTree[T]) Size() uint {
	if u == nil {
		return 0
	}
	return u.size
}

func (u *BinTree[T]) Root() *Node[T] {
	if u == nil {
		return nil
	}
	return u.root
}

// child returns the slot under p that a new node goes to, or nil if the insertion isn't allowed:
// p must be nil on an empty tree, or a node of u whose slot is still empty.
func (u *BinTree[T]) child(p *Node[T], left bool) **Node[T] {
	switch {
	case u == nil:
		return nil
	case p == nil:
		if u.root != nil {
			return nil
		}
		return &u.root
	case p.tree != u:
		return nil
	case left && p.l == nil:
		return &p.l
	case !left && p.r == nil:
		return &p.r
	}
	return nil
}

func (u *BinTree[T]) insert(p *Node[T], v T, left bool) *Node[T] {
	slot := u.child(p, left)
	if slot == nil {
		if diag.Debug() {
			log.WithField("left", left).Debug("insert rejected: parent is not an open node of the tree")
		}
		return nil
	}
	*slot = &Node[T]{Value: v, tree: u}
	u.size++
	return *slot
}

// InsertLeft creates the left child of p holding v, or the root when p is nil and the tree is
// empty. Returns nil if p is not a node of the tree or already has a left child.
func (u *BinTree[T]) InsertLeft(p *Node[T], v T) *Node[T] {
	return u.insert(p, v, true)
}

// InsertRight is InsertLeft for the right child.
func (u *BinTree[T]) InsertRight(p *Node[T], v T) *Node[T] {
	return u.insert(p, v, false)
}

// remove the subtree at *slot, destroying every value in pre-order, and clear the slot.
// Implemented iteratively since a caller built tree can be as deep as it is large.
func (u *BinTree[T]) remove(slot **Node[T]) {
	st := []*Node[T]{*slot}
	*slot = nil
	for len(st) > 0 {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if u.destroy != nil {
			u.destroy(n.Value)
		}
		if n.r != nil {
			st = append(st, n.r)
		}
		if n.l != nil {
			st = append(st, n.l)
		}
		n.Value, n.l, n.r, n.tree = *new(T), nil, nil, nil
		u.size--
	}
}

// DeleteLeft removes the left subtree of p. Returns false if there is none.
func (u *BinTree[T]) DeleteLeft(p *Node[T]) bool {
	if u == nil || p == nil || p.tree != u || p.l == nil {
		return false
	}
	u.remove(&p.l)
	return true
}

// DeleteRight removes the right subtree of p. Returns false if there is none.
func (u *BinTree[T]) DeleteRight(p *Node[T]) bool {
	if u == nil || p == nil || p.tree != u || p.r == nil {
		return false
	}
	u.remove(&p.r)
	return true
}

// Free removes every node. The tree stays usable afterward.
func (u *BinTree[T]) Free() {
	if u == nil || u.root == nil {
		return
	}
	u.remove(&u.root)
}

// PreOrder returns a closure f acting like an iterator: val, valid = f(). When valid is false
// f is exhausted. The tree must not be modified during the iteration.
func (u *BinTree[T]) PreOrder() func() (T, bool) {
	var st []*Node[T]
	if r := u.Root(); r != nil {
		st = append(st, r)
	}
	return func() (v T, ok bool) {
		if len(st) == 0 {
			return
		}
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if n.r != nil {
			st = append(st, n.r)
		}
		if n.l != nil {
			st = append(st, n.l)
		}
		return n.Value, true
	}
}

// InOrder is PreOrder for the in-order traversal.
func (u *BinTree[T]) InOrder() func() (T, bool) {
	var st []*Node[T]
	for n := u.Root(); n != nil; n = n.l {
		st = append(st, n)
	}
	return func() (v T, ok bool) {
		if len(st) == 0 {
			return
		}
		n := st[len(st)-1]
		st = st[:len(st)-1]
		for c := n.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return n.Value, true
	}
}

// PostOrder is PreOrder for the post-order traversal.
func (u *BinTree[T]) PostOrder() func() (T, bool) {
	var st []*Node[T]
	var last *Node[T]
	cur := u.Root()
	return func() (v T, ok bool) {
		for cur != nil || len(st) > 0 {
			if cur != nil {
				st = append(st, cur)
				cur = cur.l
				continue
			}
			top := st[len(st)-1]
			if top.r != nil && top.r != last {
				cur = top.r
				continue
			}
			st = st[:len(st)-1]
			last = top
			return top.Value, true
		}
		return
	}
}

// Push v into t as in an unbalanced binary search tree: smaller values go left, others right.
// t must have been built by Push only for the ordering to hold.
func Push[T constraints.Ordered](t *BinTree[T], v T) *Node[T] {
	if t == nil {
		return nil
	}
	n := t.root
	if n == nil {
		return t.InsertLeft(nil, v)
	}
	for {
		if v < n.Value {
			if n.l == nil {
				return t.InsertLeft(n, v)
			}
			n = n.l
		} else {
			if n.r == nil {
				return t.InsertRight(n, v)
			}
			n = n.r
		}
	}
}
