package bitalloc

import (
	"fmt"
	"math/bits"

	"github.com/joshuapare/bitkit/internal/bitword"
)

// leafCap is the capacity of a leaf, the width of its word.
const leafCap = 16

// Alloc16 is the leaf allocator: sixteen units tracked in a single uint16,
// bit k set meaning key k is free. The zero value has nothing free.
type Alloc16 struct {
	bits uint16
}

var _ Allocator = (*Alloc16)(nil)

// Cap returns 16.
func (a *Alloc16) Cap() int { return leafCap }

// Any reports whether at least one key is free.
func (a *Alloc16) Any() bool { return a.bits != 0 }

// Test reports whether key is free. Keys outside [0, 16) panic.
func (a *Alloc16) Test(key int) bool {
	checkKey(key, leafCap)
	return bitword.Get(a.bits, key)
}

// Next returns the smallest free key >= key, with ok false when none exists.
func (a *Alloc16) Next(key int) (int, bool) {
	if key < 0 {
		panic(fmt.Sprintf("bitalloc: key %d out of range [0,%d)", key, leafCap))
	}
	if key >= leafCap {
		return 0, false
	}
	rest := a.bits >> key
	if rest == 0 {
		return 0, false
	}
	return key + bits.TrailingZeros16(rest), true
}

// Alloc reserves the highest free key.
func (a *Alloc16) Alloc() (int, bool) {
	if a.bits == 0 {
		return 0, false
	}
	key := bitword.MSB(a.bits)
	a.bits = bitword.Set(a.bits, key, false)
	return key, true
}

// AllocContiguous reserves size consecutive keys whose base is a multiple of
// 1<<alignLog2, preferring the lowest run that fits.
func (a *Alloc16) AllocContiguous(size, alignLog2 int) (int, bool) {
	base, ok := findContiguous(a, leafCap, size, alignLog2)
	if !ok {
		return 0, false
	}
	a.Remove(base, base+size)
	return base, true
}

// Free returns key to the free set, panicking if it is already free.
func (a *Alloc16) Free(key int) {
	checkKey(key, leafCap)
	if bitword.Get(a.bits, key) {
		panic(fmt.Sprintf("bitalloc: Free(%d): key is already free", key))
	}
	a.bits = bitword.Set(a.bits, key, true)
}

// Insert marks every key in [start, end) free.
func (a *Alloc16) Insert(start, end int) {
	checkSpan(start, end, leafCap)
	a.bits = bitword.SetRange(a.bits, start, end, ^uint16(0))
}

// Remove marks every key in [start, end) allocated.
func (a *Alloc16) Remove(start, end int) {
	checkSpan(start, end, leafCap)
	a.bits = bitword.SetRange(a.bits, start, end, 0)
}
