package ChainTable

import "strings"

// entry is the key/value pair a chain node holds. The table owns key; val is only handed to the
// destroy callback.
type entry[V any] struct {
	key string
	val V
}

// bound cuts key at its first NUL byte and then to MaxKeyLength bytes, without copying. Keys that
// agree on their bounded form are the same key to the table.
func bound(key string) string {
	if i := strings.IndexByte(key, 0); i >= 0 {
		key = key[:i]
	}
	if len(key) > MaxKeyLength {
		key = key[:MaxKeyLength]
	}
	return key
}

// boundedEqual is the default MatchFunc. It expects keys already passed through bound and
// compares them byte for byte.
func boundedEqual(stored, probe string) bool {
	return stored == probe
}
