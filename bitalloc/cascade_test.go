package bitalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_Cascade_Caps tests the capacity of every predefined cascade.
func Test_Cascade_Caps(t *testing.T) {
	assert.Equal(t, 256, new(Alloc256).Cap())
	assert.Equal(t, 4096, new(Alloc4K).Cap())
	assert.Equal(t, 65536, new(Alloc64K).Cap())
	assert.Equal(t, 1<<20, new(Alloc1M).Cap())
	assert.Equal(t, 1<<24, new(Alloc16M).Cap())
	assert.Equal(t, 1<<28, new(Alloc256M).Cap())
}

// Test_Cascade_ZeroValue tests that a zero cascade has nothing free.
func Test_Cascade_ZeroValue(t *testing.T) {
	var c Alloc256
	assert.False(t, c.Any())
	_, ok := c.Alloc()
	assert.False(t, ok)
	_, ok = c.Next(0)
	assert.False(t, ok)
	_, ok = c.AllocContiguous(4, 0)
	assert.False(t, ok)
	validateAllocator(t, &c)
}

// Test_Cascade_4KScenario tests the full insert/remove/alloc/free cycle at
// 4096 units: with 8..4094 removed, allocations come out 4095, 4094, 7, and
// after freeing those back, ten allocations drain the set.
func Test_Cascade_4KScenario(t *testing.T) {
	ba := new(Alloc4K)
	require.Equal(t, 4096, ba.Cap())
	ba.Insert(0, 4096)
	for i := range 4096 {
		require.True(t, ba.Test(i), "key %d should be free", i)
	}
	ba.Remove(8, 4094)
	for i := range 4096 {
		require.Equal(t, i < 8 || i >= 4094, ba.Test(i), "key %d", i)
	}

	for _, want := range []int{4095, 4094, 7} {
		key, ok := ba.Alloc()
		require.True(t, ok)
		require.Equal(t, want, key)
	}
	ba.Free(4095)
	ba.Free(4094)
	ba.Free(7)

	for i := range 10 {
		_, ok := ba.Alloc()
		require.True(t, ok, "alloc %d should succeed", i)
	}
	_, ok := ba.Alloc()
	assert.False(t, ok, "allocator should be drained")
	validateAllocator(t, ba)
}

// Test_Cascade_AllocDescending tests that draining a full cascade yields
// every key exactly once, from the top down.
func Test_Cascade_AllocDescending(t *testing.T) {
	c := new(Alloc256)
	c.Insert(0, 256)
	for i := range 256 {
		key, ok := c.Alloc()
		require.True(t, ok)
		require.Equal(t, 255-i, key, "allocation %d", i)
	}
	assert.False(t, c.Any())
	validateAllocator(t, c)
}

// Test_Cascade_CrossChildRanges tests Insert and Remove spans that cover a
// partial child, a whole child, and another partial child.
func Test_Cascade_CrossChildRanges(t *testing.T) {
	c := new(Alloc256)
	c.Insert(12, 36)
	for i := range 256 {
		require.Equal(t, i >= 12 && i < 36, c.Test(i), "key %d", i)
	}
	validateAllocator(t, c)

	c.Remove(14, 33)
	for i := range 256 {
		require.Equal(t, (i >= 12 && i < 14) || (i >= 33 && i < 36), c.Test(i), "key %d", i)
	}
	validateAllocator(t, c)

	// removing an already-removed span is allowed and changes nothing
	c.Remove(0, 256)
	assert.False(t, c.Any())
	validateAllocator(t, c)
}

// Test_Cascade_NextDelegation tests Next across child boundaries: within the
// key's own child, in a later child, and past the last free key.
func Test_Cascade_NextDelegation(t *testing.T) {
	c := new(Alloc256)
	c.Insert(20, 21)
	c.Insert(250, 251)

	next, ok := c.Next(0)
	require.True(t, ok)
	assert.Equal(t, 20, next)

	next, ok = c.Next(20)
	require.True(t, ok)
	assert.Equal(t, 20, next)

	next, ok = c.Next(21)
	require.True(t, ok)
	assert.Equal(t, 250, next)

	_, ok = c.Next(251)
	assert.False(t, ok)

	_, ok = c.Next(256)
	assert.False(t, ok, "keys past Cap yield no result")
	_, ok = c.Next(1 << 20)
	assert.False(t, ok)
}

// Test_Cascade_FreeSetsSummary tests that Free revives an exhausted child in
// the summary word and that a deep double free still panics.
func Test_Cascade_FreeSetsSummary(t *testing.T) {
	c := new(Alloc256)
	c.Insert(0, 16) // child 0 only
	for range 16 {
		_, ok := c.Alloc()
		require.True(t, ok)
	}
	require.False(t, c.Any())

	c.Free(5)
	assert.True(t, c.Any())
	next, ok := c.Next(0)
	require.True(t, ok)
	assert.Equal(t, 5, next)
	validateAllocator(t, c)

	require.Panics(t, func() { c.Free(5) }, "double free must panic")
}

// Test_Cascade_Contracts tests fail-fast panics for bad keys and ranges at
// cascade level.
func Test_Cascade_Contracts(t *testing.T) {
	c := new(Alloc256)
	c.Insert(0, 256)
	require.Panics(t, func() { c.Test(-1) })
	require.Panics(t, func() { c.Test(256) })
	require.Panics(t, func() { c.Free(-1) })
	require.Panics(t, func() { c.Free(300) })
	require.Panics(t, func() { c.Next(-1) })
	require.Panics(t, func() { c.Insert(100, 40) }, "inverted range")
	require.Panics(t, func() { c.Insert(0, 257) }, "range past capacity")
	require.Panics(t, func() { c.Remove(-2, 4) }, "negative start")
}

// Test_Cascade_EmptyRange tests that empty in-bounds ranges change nothing.
func Test_Cascade_EmptyRange(t *testing.T) {
	c := new(Alloc256)
	c.Insert(0, 0)
	assert.False(t, c.Any())
	c.Insert(0, 256)
	c.Remove(256, 256)
	c.Remove(77, 77)
	for i := range 256 {
		require.True(t, c.Test(i), "key %d", i)
	}
	validateAllocator(t, c)
}

// Test_Cascade_DeepScenario tests a three-level cascade end to end.
func Test_Cascade_DeepScenario(t *testing.T) {
	c := new(Alloc64K)
	c.Insert(1000, 50000)

	key, ok := c.Alloc()
	require.True(t, ok)
	assert.Equal(t, 49999, key)

	c.Remove(1000, 49000)
	next, ok := c.Next(0)
	require.True(t, ok)
	assert.Equal(t, 49000, next)

	c.Free(20000)
	next, ok = c.Next(0)
	require.True(t, ok)
	assert.Equal(t, 20000, next)
	validateAllocator(t, c)
}
