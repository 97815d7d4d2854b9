package bitalloc

import "fmt"

// findContiguous searches a for the lowest run of size consecutive free keys
// whose base is a multiple of 1<<alignLog2. capacity bounds the search
// window; it is a parameter rather than a.Cap() so a caller can narrow the
// window, and so the cheap capacity-versus-alignment rejection happens
// before touching the allocator. A window smaller than 1<<alignLog2 can
// never hold an aligned run and fails immediately.
//
// The scan walks free keys with Next, one key at a time while the current
// run keeps extending. The moment a gap appears, every aligned base between
// the current one and the gap is poisoned (any run from there would cross
// the gap, since the run so far is shorter than size), so the search
// re-anchors at the first aligned key past the gap.
func findContiguous(a Allocator, capacity, size, alignLog2 int) (int, bool) {
	if capacity>>alignLog2 == 0 || !a.Any() {
		return 0, false
	}
	base := 0
	for offset := base; offset < capacity; {
		next, ok := a.Next(offset)
		if !ok {
			return 0, false
		}
		if next != offset {
			if next < offset {
				panic(fmt.Sprintf("bitalloc: Next(%d) went backward to %d", offset, next))
			}
			base = ((next-1)>>alignLog2 + 1) << alignLog2
			offset = base
			continue
		}
		offset++
		if offset-base == size {
			return base, true
		}
	}
	return 0, false
}
