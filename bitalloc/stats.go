package bitalloc

// Stats is a snapshot of the operation counters kept by a CountingAllocator.
type Stats struct {
	Allocs       int // successful Alloc calls
	AllocFails   int // Alloc calls that found nothing free
	ContigAllocs int // successful AllocContiguous calls
	ContigFails  int // AllocContiguous calls that found no run
	Frees        int // Free calls
	Inserts      int // Insert calls
	Removes      int // Remove calls
}

// CountingAllocator wraps another Allocator and counts the mutating
// operations that pass through it. Read-only calls (Cap, Any, Test, Next)
// are forwarded untouched by the embedded interface. Useful for workload
// instrumentation and for asserting operation mixes in tests.
type CountingAllocator struct {
	Allocator
	stats Stats
}

var _ Allocator = (*CountingAllocator)(nil)

// NewCounting wraps a in a CountingAllocator with zeroed counters.
func NewCounting(a Allocator) *CountingAllocator {
	return &CountingAllocator{Allocator: a}
}

// Stats returns the counters accumulated so far.
func (c *CountingAllocator) Stats() Stats { return c.stats }

// Alloc reserves the highest free key, counting the outcome.
func (c *CountingAllocator) Alloc() (int, bool) {
	key, ok := c.Allocator.Alloc()
	if ok {
		c.stats.Allocs++
	} else {
		c.stats.AllocFails++
	}
	return key, ok
}

// AllocContiguous reserves an aligned run, counting the outcome.
func (c *CountingAllocator) AllocContiguous(size, alignLog2 int) (int, bool) {
	base, ok := c.Allocator.AllocContiguous(size, alignLog2)
	if ok {
		c.stats.ContigAllocs++
	} else {
		c.stats.ContigFails++
	}
	return base, ok
}

// Free returns key to the free set, counting the call.
func (c *CountingAllocator) Free(key int) {
	c.Allocator.Free(key)
	c.stats.Frees++
}

// Insert marks [start, end) free, counting the call.
func (c *CountingAllocator) Insert(start, end int) {
	c.Allocator.Insert(start, end)
	c.stats.Inserts++
}

// Remove marks [start, end) allocated, counting the call.
func (c *CountingAllocator) Remove(start, end int) {
	c.Allocator.Remove(start, end)
	c.stats.Removes++
}
