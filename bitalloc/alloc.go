package bitalloc

import "fmt"

// Fanout is the branching factor of the cascade: every composite allocator
// has sixteen children and summarizes them in one 16-bit word.
const Fanout = 16

// Allocator is the capability set shared by every allocator in this package.
//
// Implementations:
//   - Alloc16: the sixteen-unit leaf over a single uint16
//   - Cascade16: sixteen children of equal capacity plus a summary word
//   - CountingAllocator: wrapper that counts operations passing through
//
// Keys are dense indices in [0, Cap()). The zero value of every
// implementation is fully allocated; nothing is free until Insert or Free
// makes it so.
type Allocator interface {
	// Cap returns the fixed capacity in units.
	Cap() int

	// Any reports whether at least one key is free.
	Any() bool

	// Test reports whether key is currently free.
	// It panics when key is outside [0, Cap()).
	Test(key int) bool

	// Next returns the smallest free key >= key, with ok false when no such
	// key exists. Keys at or past Cap() yield ok false; negative keys panic.
	Next(key int) (next int, ok bool)

	// Alloc reserves the highest free key and returns it, with ok false
	// when nothing is free.
	Alloc() (key int, ok bool)

	// AllocContiguous reserves size consecutive keys whose base is a
	// multiple of 1<<alignLog2, preferring the lowest such run. ok is false
	// when no aligned run fits, in which case the allocator is untouched.
	AllocContiguous(size, alignLog2 int) (base int, ok bool)

	// Free returns key to the free set.
	// It panics when key is already free or outside [0, Cap()).
	Free(key int)

	// Insert marks every key in [start, end) free.
	// It panics unless 0 <= start <= end <= Cap().
	Insert(start, end int)

	// Remove marks every key in [start, end) allocated, regardless of the
	// previous state. It panics unless 0 <= start <= end <= Cap().
	Remove(start, end int)
}

func checkKey(key, capacity int) {
	if key < 0 || key >= capacity {
		panic(fmt.Sprintf("bitalloc: key %d out of range [0,%d)", key, capacity))
	}
}

func checkSpan(start, end, capacity int) {
	if start < 0 || start > end || end > capacity {
		panic(fmt.Sprintf("bitalloc: invalid key range [%d,%d) for capacity %d", start, end, capacity))
	}
}
