// Package bitalloc provides fixed-capacity bitmap allocators that hand out
// integer keys, built from 16-way cascades over 16-bit words.
//
// # Overview
//
// An allocator tracks which keys in [0, Cap()) are free. The leaf allocator
// Alloc16 keeps sixteen units in a single uint16, bit k set meaning key k is
// free. Cascade16 composes sixteen child allocators under a 16-bit summary
// word whose bit i caches children[i].Any(), so every level narrows the
// search with one word scan. Nesting cascades multiplies capacity by 16 per
// level; the predefined types span:
//
//	Alloc16       16 units
//	Alloc256     256 units
//	Alloc4K     4096 units
//	Alloc64K   65536 units
//	Alloc1M  1048576 units
//	Alloc16M       16Mi units
//	Alloc256M     256Mi units
//
// The zero value of every allocator has nothing free. Seed it with Insert
// before allocating:
//
//	var a bitalloc.Alloc4K
//	a.Insert(0, a.Cap())
//
//	key, ok := a.Alloc()          // highest free key
//	run, ok := a.AllocContiguous(16, 4) // 16 keys, 16-aligned, lowest run
//	a.Free(key)
//
// # Allocation Policy
//
// Alloc always returns the highest free key: the summary word names the
// highest child with space and the child applies the same rule one level
// down. AllocContiguous is the opposite: it returns the lowest aligned run
// that fits, scanning upward with Next and skipping over allocated gaps.
//
// # Contract
//
// Exhaustion and absence are ordinary outcomes, reported with a false second
// result from Alloc, AllocContiguous, and Next. Contract violations are
// caller bugs and panic: freeing a key that is already free, keys outside
// [0, Cap()), ranges that invert or overrun the capacity, negative
// alignments.
//
// # Thread Safety
//
// Allocators are not thread-safe. Callers must synchronize access
// externally.
package bitalloc
