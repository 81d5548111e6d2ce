// Package ChainTable implements a fixed size, separate chaining hash table with bounded string
// keys.
//
// # Layout
// The table is an array of Lists.List chains, one per slot. A key lives in slot
// hash(bound(key)) % Length(), where bound cuts the key at its first NUL byte and to MaxKeyLength
// bytes. Two keys with the same bounded form are the same key; the table never reports that a
// key was cut. Collisions are resolved by a linear scan of the slot's chain, and new entries are
// appended at the chain's tail. The array is never resized.
//
// # Ownership
// The table owns its copy of every key. Values are the caller's, except that a table built with a
// destroy callback passes every value still stored at Free to it. Remove hands the value back
// without destroying it.
//
// # Concurrency
// None. A Table must not be used by multiple goroutines without external synchronization.
package ChainTable

import (
	"strings"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Lists"
	"github.com/g-m-twostay/go-containers/Maps"
	"github.com/g-m-twostay/go-containers/internal/diag"
	"github.com/pkg/errors"
)

const (
	MaxKeyLength  = 16   // bytes of a key that are stored and compared.
	DefaultLength = 1699 // slots of a table made with New.
)

var (
	ErrInvalidLength = errors.New("table length must be positive")
	ErrNilHash       = errors.New("hash function is nil")
)

var log = diag.For("chaintable")

var _ Maps.Table[int] = (*Table[int])(nil)

type Table[V any] struct {
	size    uint
	buckets []*Lists.List[*entry[V]]
	h       Maps.HashFunc
	match   Maps.MatchFunc
	destroy func(V)
}

// New table of DefaultLength slots hashed with Go_Containers.Weinberger. match and destroy may be
// nil; see NewCustom.
func New[V any](match Maps.MatchFunc, destroy func(V)) *Table[V] {
	return MustNewCustom(DefaultLength, Go_Containers.Weinberger, match, destroy)
}

// NewCustom table of length slots using hash function h.
// match decides whether a stored key and a probe key are equal, and is used by every operation;
// nil means the bounded keys must be identical.
// destroy receives every value still in the table when it's freed; nil means values are left alone.
func NewCustom[V any](length uint, h Maps.HashFunc, match Maps.MatchFunc, destroy func(V)) (*Table[V], error) {
	if length == 0 {
		return nil, errors.WithStack(ErrInvalidLength)
	}
	if h == nil {
		return nil, errors.WithStack(ErrNilHash)
	}
	if match == nil {
		match = boundedEqual
	}
	var release func(*entry[V])
	if destroy != nil {
		release = func(e *entry[V]) {
			destroy(e.val)
		}
	}
	t := &Table[V]{buckets: make([]*Lists.List[*entry[V]], length), h: h, match: match, destroy: destroy}
	for i := range t.buckets {
		t.buckets[i] = Lists.New(release)
	}
	return t, nil
}

// MustNewCustom is NewCustom that reports a diagnostic and terminates on failure.
func MustNewCustom[V any](length uint, h Maps.HashFunc, match Maps.MatchFunc, destroy func(V)) *Table[V] {
	t, err := NewCustom(length, h, match, destroy)
	if err != nil {
		diag.Die("ChainTable.NewCustom()", errors.Wrapf(err, "length %d", length))
	}
	return t
}

// Size is the number of entries.
func (u *Table[V]) Size() uint {
	if u == nil {
		return 0
	}
	return u.size
}

// Length is the number of slots, 0 once the table is freed.
func (u *Table[V]) Length() uint {
	if u == nil {
		return 0
	}
	return uint(len(u.buckets))
}

// slot of a bounded key.
func (u *Table[V]) slot(key string) *Lists.List[*entry[V]] {
	return u.buckets[u.h(key)%uint(len(u.buckets))]
}

// find the node holding bounded key in its slot's chain. Returns the chain either way.
func (u *Table[V]) find(key string) (*Lists.List[*entry[V]], *Lists.Node[*entry[V]]) {
	c := u.slot(key)
	for n := c.Head(); n != nil; n = n.Next() {
		if e := n.Value; e != nil && u.match(e.key, key) {
			return c, n
		}
	}
	return c, nil
}

// Store val under key. Fails if the table is nil or freed, or if key is already stored, in which
// case the stored value is left untouched.
func (u *Table[V]) Store(key string, val V) bool {
	if u == nil || u.buckets == nil {
		return false
	}
	key = bound(key)
	c, n := u.find(key)
	if n != nil {
		if diag.Debug() {
			log.WithField("key", key).Debug("Store rejected: key exists")
		}
		return false
	}
	if c.InsertAfter(c.Tail(), &entry[V]{strings.Clone(key), val}) == nil {
		return false
	}
	u.size++
	return true
}

// Fetch the value stored under key.
func (u *Table[V]) Fetch(key string) (val V, ok bool) {
	if u == nil || u.buckets == nil {
		return
	}
	if _, n := u.find(bound(key)); n != nil {
		return n.Value.val, true
	}
	return
}

// Remove key and hand its value back to the caller. The destroy callback is not called: the
// value belongs to the caller again.
func (u *Table[V]) Remove(key string) (val V, ok bool) {
	if u == nil || u.buckets == nil {
		return
	}
	c, n := u.find(bound(key))
	if n == nil {
		return
	}
	e, _ := c.Unlink(n)
	val, e.val = e.val, *new(V)
	u.size--
	return val, true
}

// Range calls f on every entry in slot order, then chain order, until f returns false. The keys
// given to f are the stored, bounded ones. The table must not be modified during the iteration.
func (u *Table[V]) Range(f func(key string, val V) bool) {
	if u == nil {
		return
	}
	for _, c := range u.buckets {
		for n := c.Head(); n != nil; n = n.Next() {
			if !f(n.Value.key, n.Value.val) {
				return
			}
		}
	}
}

// Chains returns the length of every slot's chain.
func (u *Table[V]) Chains() []uint {
	if u == nil {
		return nil
	}
	lens := make([]uint, len(u.buckets))
	for i, c := range u.buckets {
		lens[i] = c.Size()
	}
	return lens
}

// Free every entry, passing the values to the destroy callback, and release the slots. A freed
// table is empty and rejects Store.
func (u *Table[V]) Free() {
	if u == nil {
		return
	}
	for _, c := range u.buckets {
		c.Free()
	}
	u.buckets, u.size = nil, 0
}
