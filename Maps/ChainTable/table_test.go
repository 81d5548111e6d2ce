package ChainTable

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	godsmap "github.com/emirpasic/gods/maps/hashmap"
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/internal/diag"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

const (
	opN      = 1 << 14
	keyRange = 1 << 10
)

// check verifies that every entry sits in the slot its key hashes to, that no two entries match
// and that size is the number of entries.
func (u *Table[V]) check(t *testing.T) {
	t.Helper()
	var n uint
	seen := make(map[string]struct{})
	for i, c := range u.buckets {
		for nd := c.Head(); nd != nil; nd = nd.Next() {
			k := nd.Value.key
			if s := u.h(k) % uint(len(u.buckets)); s != uint(i) {
				t.Errorf("key %q in slot %d, hashes to %d", k, i, s)
			}
			if _, in := seen[k]; in {
				t.Errorf("key %q stored twice", k)
			}
			seen[k] = struct{}{}
			n++
		}
	}
	if n != u.size {
		t.Errorf("size is %d, %d entries in chains", u.size, n)
	}
}

func TestTable_Harness(t *testing.T) {
	tb := New[string](nil, nil)
	require.True(t, tb.Store("part1", "hello"))
	require.True(t, tb.Store("part2", ", "))
	require.True(t, tb.Store("junk!!!", "this is some junk!!"))
	require.True(t, tb.Store("part3", "world!"))
	require.Equal(t, uint(4), tb.Size())

	require.False(t, tb.Store("part2", "this won't insert!"))
	v, ok := tb.Fetch("part2")
	require.True(t, ok)
	require.Equal(t, ", ", v)

	v, ok = tb.Remove("junk!!!")
	require.True(t, ok)
	require.Equal(t, "this is some junk!!", v)
	_, ok = tb.Fetch("junk!!!")
	require.False(t, ok)
	require.Equal(t, uint(3), tb.Size())

	var b strings.Builder
	for _, k := range []string{"part1", "part2", "part3"} {
		v, _ := tb.Fetch(k)
		b.WriteString(v)
	}
	require.Equal(t, "hello, world!", b.String())
	tb.check(t)
	tb.Free()
}

func TestTable_Ownership(t *testing.T) {
	destroyed := make(map[int]int)
	tb := MustNewCustom[*int](7, Go_Containers.Weinberger, nil, func(v *int) { destroyed[*v]++ })
	vs := make([]int, 64)
	for i := range vs {
		vs[i] = i
		require.True(t, tb.Store(string(rune('A'+i)), &vs[i]))
	}
	require.False(t, tb.Store("A", &vs[1]), "duplicate store")
	for i := 0; i < 16; i++ {
		v, ok := tb.Remove(string(rune('A' + i)))
		require.True(t, ok)
		require.Same(t, &vs[i], v)
	}
	require.Empty(t, destroyed, "remove destroyed a value")
	require.Equal(t, uint(48), tb.Size())
	tb.check(t)

	tb.Free()
	require.Zero(t, tb.Size())
	require.Zero(t, tb.Length())
	require.Len(t, destroyed, 48)
	for i := 16; i < 64; i++ {
		require.Equal(t, 1, destroyed[i], "value %d", i)
	}
	require.False(t, tb.Store("A", &vs[0]), "store after free")
	_, ok := tb.Fetch("Z")
	require.False(t, ok)
	_, ok = tb.Remove("Z")
	require.False(t, ok)
	tb.Free()
}

func TestBoundedEqual(t *testing.T) {
	require.True(t, boundedEqual(bound("0123456789abcdefX"), bound("0123456789abcdefY")))
	require.True(t, boundedEqual(bound("ab\x00cd"), bound("ab")))
	require.False(t, boundedEqual("0123456789abcdefX", "0123456789abcdefY"), "unbounded keys are compared whole")
	require.False(t, boundedEqual(bound("ab"), bound("abc")))
}

func TestTable_Truncation(t *testing.T) {
	var hashed []string
	h := func(k string) uint {
		hashed = append(hashed, k)
		return Go_Containers.Weinberger(k)
	}
	tb := MustNewCustom[int](DefaultLength, h, nil, nil)
	long := "0123456789abcdefTAIL"
	require.True(t, tb.Store(long, 1))
	require.False(t, tb.Store("0123456789abcdefOTHER", 2), "keys equal in their first MaxKeyLength bytes")
	v, ok := tb.Fetch("0123456789abcdef")
	require.True(t, ok)
	require.Equal(t, 1, v)
	for _, k := range hashed {
		require.Equal(t, "0123456789abcdef", k, "hashed an unbounded key")
	}
	_, ok = tb.Fetch("0123456789abcde")
	require.False(t, ok)

	require.True(t, tb.Store("ab\x00cd", 3))
	v, ok = tb.Fetch("ab")
	require.True(t, ok)
	require.Equal(t, 3, v)
	tb.Range(func(k string, _ int) bool {
		require.LessOrEqual(t, len(k), MaxKeyLength)
		return true
	})
	tb.check(t)
}

func TestTable_Chain(t *testing.T) {
	tb := MustNewCustom[int](1, Go_Containers.Weinberger, nil, nil)
	keys := []string{"d", "a", "c", "b", "e"}
	for i, k := range keys {
		require.True(t, tb.Store(k, i))
	}
	var got []string
	tb.Range(func(k string, v int) bool {
		require.Equal(t, keys[v], k)
		got = append(got, k)
		return true
	})
	require.Equal(t, keys, got, "entries are appended to the chain")
	require.Equal(t, []uint{5}, tb.Chains())

	_, ok := tb.Remove("c")
	require.True(t, ok)
	require.True(t, tb.Store("c", 9))
	got = got[:0]
	tb.Range(func(k string, _ int) bool {
		got = append(got, k)
		return len(got) < 4
	})
	require.Equal(t, []string{"d", "a", "b", "e"}, got)
	tb.check(t)
}

func TestTable_Match(t *testing.T) {
	fold := func(k string) uint { return Go_Containers.Weinberger(strings.ToLower(k)) }
	tb := MustNewCustom[int](31, fold, strings.EqualFold, nil)
	require.True(t, tb.Store("Hello", 1))
	require.False(t, tb.Store("HELLO", 2))
	v, ok := tb.Fetch("hello")
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = tb.Remove("hElLo")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Zero(t, tb.Size())
}

func TestTable_Construction(t *testing.T) {
	_, err := NewCustom[int](0, Go_Containers.Weinberger, nil, nil)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = NewCustom[int](3, nil, nil, nil)
	require.ErrorIs(t, err, ErrNilHash)

	code := -1
	out, exit := diag.Log.Out, diag.Log.ExitFunc
	diag.Log.Out, diag.Log.ExitFunc = io.Discard, func(c int) { code = c }
	defer func() { diag.Log.Out, diag.Log.ExitFunc = out, exit }()
	require.Nil(t, MustNewCustom[int](0, Go_Containers.Weinberger, nil, nil))
	require.Equal(t, 1, code)

	tb := New[int](nil, nil)
	require.Equal(t, uint(DefaultLength), tb.Length())
	require.Len(t, tb.Chains(), DefaultLength)
}

func TestTable_Nil(t *testing.T) {
	var tb *Table[int]
	require.False(t, tb.Store("a", 1))
	_, ok := tb.Fetch("a")
	require.False(t, ok)
	_, ok = tb.Remove("a")
	require.False(t, ok)
	require.Zero(t, tb.Size())
	require.Nil(t, tb.Chains())
	tb.Range(func(string, int) bool { t.Error("ranged a nil table"); return true })
	tb.Free()
}

func randKey() string {
	b := make([]byte, 1+rg.Intn(MaxKeyLength+8))
	for i := range b {
		b[i] = "ab"[rg.Intn(2)]
	}
	return string(b)
}

func TestTable_Oracle(t *testing.T) {
	for _, h := range []func(string) uint{Go_Containers.Weinberger, Go_Containers.XXHash} {
		tb, o := MustNewCustom[int](61, h, nil, nil), godsmap.New()
		keys := make([]string, keyRange)
		for i := range keys {
			keys[i] = randKey()
		}
		for i := 0; i < opN; i++ {
			k := keys[rg.Intn(len(keys))]
			want, in := o.Get(bound(k))
			switch rg.Intn(3) {
			case 0:
				if tb.Store(k, i) == in {
					t.Fatalf("Store(%q) disagrees with oracle, present %t", k, in)
				}
				if !in {
					o.Put(bound(k), i)
				}
			case 1:
				if v, ok := tb.Fetch(k); ok != in || (in && v != want) {
					t.Fatalf("Fetch(%q) = %d, %t; want %v, %t", k, v, ok, want, in)
				}
			case 2:
				if v, ok := tb.Remove(k); ok != in || (in && v != want) {
					t.Fatalf("Remove(%q) = %d, %t; want %v, %t", k, v, ok, want, in)
				}
				o.Remove(bound(k))
			}
			if tb.Size() != uint(o.Size()) {
				t.Fatalf("size %d, oracle %d", tb.Size(), o.Size())
			}
		}
		tb.check(t)
		var chained uint
		for _, l := range tb.Chains() {
			chained += l
		}
		require.Equal(t, tb.Size(), chained)
	}
}

func BenchmarkTable_StoreFetch(b *testing.B) {
	keys := make([]string, keyRange)
	for i := range keys {
		keys[i] = randKey()
	}
	b.ResetTimer()
	for range b.N {
		tb := New[int](nil, nil)
		for i, k := range keys {
			tb.Store(k, i)
		}
		for _, k := range keys {
			tb.Fetch(k)
		}
		tb.Free()
	}
}
