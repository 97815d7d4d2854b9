package bitalloc

import (
	"fmt"

	"github.com/joshuapare/bitkit/internal/bitword"
)

// ChildPtr constrains a cascade child: a *T must itself be an Allocator.
// *Alloc16 satisfies it, and so does every pointer to an already-admitted
// cascade, which is what lets Cascade16 nest.
type ChildPtr[T any] interface {
	*T
	Allocator
}

// Cascade16 composes sixteen children of capacity C into one allocator of
// capacity 16*C. Bit i of the summary word caches children[i].Any(), an
// invariant every mutating operation restores before returning, so each
// level of a lookup costs one word scan no matter the total capacity.
//
// The zero value has nothing free.
type Cascade16[T any, PT ChildPtr[T]] struct {
	summary  uint16
	children [Fanout]T
}

func (c *Cascade16[T, PT]) child(i int) PT { return PT(&c.children[i]) }

func (c *Cascade16[T, PT]) childCap() int { return c.child(0).Cap() }

// Cap returns sixteen times the child capacity.
func (c *Cascade16[T, PT]) Cap() int { return c.childCap() * Fanout }

// Any reports whether at least one key anywhere in the cascade is free.
func (c *Cascade16[T, PT]) Any() bool { return c.summary != 0 }

// Test reports whether key is free. Keys outside [0, Cap()) panic.
func (c *Cascade16[T, PT]) Test(key int) bool {
	checkKey(key, c.Cap())
	cc := c.childCap()
	return c.child(key/cc).Test(key % cc)
}

// Next returns the smallest free key >= key, with ok false when none exists.
// The child holding key is consulted first, then the summary word picks the
// next child with anything free.
func (c *Cascade16[T, PT]) Next(key int) (int, bool) {
	if key < 0 {
		panic(fmt.Sprintf("bitalloc: key %d out of range [0,%d)", key, c.Cap()))
	}
	cc := c.childCap()
	i := key / cc
	if i < Fanout && bitword.Get(c.summary, i) {
		if k, ok := c.child(i).Next(key % cc); ok {
			return i*cc + k, true
		}
	}
	for j := i + 1; j < Fanout; j++ {
		if !bitword.Get(c.summary, j) {
			continue
		}
		if k, ok := c.child(j).Next(0); ok {
			return j*cc + k, true
		}
	}
	return 0, false
}

// Alloc reserves the highest free key: the summary word names the highest
// child with space and the child applies the same rule one level down.
func (c *Cascade16[T, PT]) Alloc() (int, bool) {
	if c.summary == 0 {
		return 0, false
	}
	i := bitword.MSB(c.summary)
	ch := c.child(i)
	key, ok := ch.Alloc()
	if !ok {
		panic(fmt.Sprintf("bitalloc: summary bit %d set but child has nothing free", i))
	}
	c.summary = bitword.Set(c.summary, i, ch.Any())
	return i*c.childCap() + key, true
}

// AllocContiguous reserves size consecutive keys whose base is a multiple of
// 1<<alignLog2, preferring the lowest run that fits.
func (c *Cascade16[T, PT]) AllocContiguous(size, alignLog2 int) (int, bool) {
	base, ok := findContiguous(c, c.Cap(), size, alignLog2)
	if !ok {
		return 0, false
	}
	c.Remove(base, base+size)
	return base, true
}

// Free returns key to the free set, panicking if it is already free. The
// child performs the double-free check; the summary bit for that child is
// set unconditionally since the child now has at least one free key.
func (c *Cascade16[T, PT]) Free(key int) {
	checkKey(key, c.Cap())
	cc := c.childCap()
	i := key / cc
	c.child(i).Free(key % cc)
	c.summary = bitword.Set(c.summary, i, true)
}

// Insert marks every key in [start, end) free.
func (c *Cascade16[T, PT]) Insert(start, end int) {
	c.forRange(start, end, func(ch PT, lo, hi int) { ch.Insert(lo, hi) })
}

// Remove marks every key in [start, end) allocated.
func (c *Cascade16[T, PT]) Remove(start, end int) {
	c.forRange(start, end, func(ch PT, lo, hi int) { ch.Remove(lo, hi) })
}

// forRange splits [start, end) across the children it touches, applies op to
// each local sub-range, and refreshes the summary bit of every child
// visited. Empty ranges are no-ops.
func (c *Cascade16[T, PT]) forRange(start, end int, op func(ch PT, lo, hi int)) {
	checkSpan(start, end, c.Cap())
	if start == end {
		return
	}
	cc := c.childCap()
	for i := start / cc; i <= (end-1)/cc; i++ {
		lo, hi := 0, cc
		if start/cc == i {
			lo = start % cc
		}
		if end/cc == i {
			hi = end % cc
		}
		ch := c.child(i)
		op(ch, lo, hi)
		c.summary = bitword.Set(c.summary, i, ch.Any())
	}
}
