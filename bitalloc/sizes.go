package bitalloc

// The predefined capacities, each one cascade level above the last. Names
// carry the capacity in units.
type (
	// Alloc256 tracks 256 units: sixteen Alloc16 leaves.
	Alloc256 = Cascade16[Alloc16, *Alloc16]

	// Alloc4K tracks 4096 units.
	Alloc4K = Cascade16[Alloc256, *Alloc256]

	// Alloc64K tracks 65536 units.
	Alloc64K = Cascade16[Alloc4K, *Alloc4K]

	// Alloc1M tracks 1048576 units.
	Alloc1M = Cascade16[Alloc64K, *Alloc64K]

	// Alloc16M tracks 16777216 units. At this size the value is a few
	// megabytes of state; prefer new(Alloc16M) over a stack value.
	Alloc16M = Cascade16[Alloc1M, *Alloc1M]

	// Alloc256M tracks 268435456 units (about 34 MB of state).
	Alloc256M = Cascade16[Alloc16M, *Alloc16M]
)

var (
	_ Allocator = (*Alloc256)(nil)
	_ Allocator = (*Alloc256M)(nil)
)
