package Go_Containers

import (
	"hash/maphash"
	_ "runtime"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

//go:linkname rtStrHash runtime.strhash
//go:noescape
func rtStrHash(ptr unsafe.Pointer, seed uint) uint

// Weinberger is the default string hash of the chained tables, credited to P. J. Weinberger in
// "Compilers: Principles, Techniques, and Tools". Each byte is shifted into the accumulator and
// any bits that reach the top nibble are folded back in, so the result always fits in 28 bits.
// Bytes are read as unsigned values, so keys with bytes of 0x80 and above hash differently than
// in implementations that add a signed char.
func Weinberger(key string) uint {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = h<<4 + uint32(key[i])
		if top := h & 0xf0000000; top != 0 {
			h ^= top >> 24
			h ^= top
		}
	}
	return uint(h)
}

// XXHash hashes key with xxh64. Use it instead of Weinberger when keys share long prefixes.
func XXHash(key string) uint {
	return uint(xxhash.Sum64String(key))
}

// Hasher seeds the runtime's string hash. Make one with NewHasher. Slots computed with it differ
// between processes, so tables using it must not be compared across runs.
type Hasher uint

// NewHasher returns a Hasher with a random seed.
func NewHasher() Hasher {
	return Hasher(maphash.String(maphash.MakeSeed(), ""))
}

// HashString hashes v with the runtime's string hash. It satisfies Maps.HashFunc.
func (u Hasher) HashString(v string) uint {
	return rtStrHash(unsafe.Pointer(&v), uint(u))
}
