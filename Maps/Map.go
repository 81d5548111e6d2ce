package Maps

// HashFunc maps a key to an unbounded hash; tables reduce it modulo their length. It must be
// deterministic for the lifetime of the table.
type HashFunc func(key string) uint

// MatchFunc reports whether the key stored in an entry and a probe key name the same entry. Both
// have already been bounded to the table's maximum key length.
type MatchFunc func(stored, probe string) bool

// Table is a string keyed table that never overwrites: Store of an existing key fails.
type Table[V any] interface {
	Store(key string, val V) bool
	Fetch(key string) (V, bool)
	Remove(key string) (V, bool)
	Size() uint
	Range(func(key string, val V) bool)
	Free()
}
