package HashSet

import (
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Maps/ChainTable"
	"github.com/g-m-twostay/go-containers/Sets"
)

var _ Sets.Set[string] = (*HashSet)(nil)

// HashSet of strings, stored in a ChainTable. Elements are bounded the way table keys are, so
// two strings sharing their first ChainTable.MaxKeyLength bytes are the same element.
type HashSet struct {
	t *ChainTable.Table[struct{}]
}

// New HashSet with length slots, hashed by h. length 0 means ChainTable.DefaultLength and a nil h
// means Go_Containers.Weinberger.
func New(length uint, h func(string) uint) *HashSet {
	if length == 0 {
		length = ChainTable.DefaultLength
	}
	if h == nil {
		h = Go_Containers.Weinberger
	}
	return &HashSet{t: ChainTable.MustNewCustom[struct{}](length, h, nil, nil)}
}

// Size of the set.
func (u *HashSet) Size() uint {
	return u.t.Size()
}

// Put e in the set. Returns false if e is already in the set.
func (u *HashSet) Put(e string) bool {
	return u.t.Store(e, struct{}{})
}

func (u *HashSet) Has(e string) bool {
	_, ok := u.t.Fetch(e)
	return ok
}

// Remove e from the set. Returns true if the removal is successful.
func (u *HashSet) Remove(e string) bool {
	_, ok := u.t.Remove(e)
	return ok
}

// Take any element without removing it, "" if the set is empty.
func (u *HashSet) Take() (e string) {
	u.t.Range(func(k string, _ struct{}) bool {
		e = k
		return false
	})
	return
}

// Range calls f on every element until f returns false. Elements are given in their bounded form.
func (u *HashSet) Range(f func(string) bool) {
	u.t.Range(func(k string, _ struct{}) bool {
		return f(k)
	})
}

// Free the set. It can't be used afterward.
func (u *HashSet) Free() {
	u.t.Free()
}
