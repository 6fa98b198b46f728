package small_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/storkit/mem"
	"github.com/joshuapare/storkit/store"
	"github.com/joshuapare/storkit/store/small"
)

// TestElement_InlineBelowThreshold tests that fitting values never reach the
// allocator.
func TestElement_InlineBelowThreshold(t *testing.T) {
	spy := mem.NewSpy(mem.NewHeap())
	e := small.NewElement[[2]uint64](spy)

	h, err := store.Create[small.ElementHandle](&e, uint64(11))
	require.NoError(t, err)
	assert.Zero(t, spy.Allocs)
	assert.Equal(t, uint64(11), *store.Get[uint64](&e, h))

	store.Destroy[uint64](&e, h)
	assert.True(t, spy.Balanced())
}

// TestElement_SpillAboveThreshold tests the allocator fallback for oversized
// values.
func TestElement_SpillAboveThreshold(t *testing.T) {
	spy := mem.NewSpy(mem.NewHeap())
	e := small.NewElement[[2]uint64](spy)

	big := [6]uint64{1, 2, 3, 4, 5, 6}
	h, err := store.Create[small.ElementHandle](&e, big)
	require.NoError(t, err)
	assert.Equal(t, 1, spy.Allocs)
	assert.Equal(t, big, *store.Get[[6]uint64](&e, h))

	store.Destroy[[6]uint64](&e, h)
	assert.True(t, spy.Balanced())
}

// TestRange_GrowSpills tests a range outgrowing its inline region and
// carrying its contents onto the allocator.
func TestRange_GrowSpills(t *testing.T) {
	spy := mem.NewSpy(mem.NewHeap())
	r := small.NewRange[[4]uint64](spy)

	h, err := store.AllocateRange[small.RangeHandle, uint64](&r, 4)
	require.NoError(t, err)
	assert.Zero(t, spy.Allocs, "4 elements fill the region exactly")

	s := store.Slice[uint64](&r, h)
	for i := range s {
		s[i] = uint64(i + 1)
	}

	h, err = store.Grow[uint64](&r, h, 16)
	require.NoError(t, err)
	assert.NotZero(t, spy.Allocs, "growth past the region needs the allocator")

	s = store.Slice[uint64](&r, h)
	require.Len(t, s, 16)
	for i := range 4 {
		assert.Equal(t, uint64(i+1), s[i], "occupied bytes must survive the spill")
	}

	r.Deallocate(h)
	assert.True(t, spy.Balanced())
}

// TestRange_ConstructorCarriesAllocator tests the constructor contract:
// storages built by NewRange carry their allocator, ready for the spill.
func TestRange_ConstructorCarriesAllocator(t *testing.T) {
	r := small.NewRange[[2]uint64](mem.NewHeap())

	h, err := store.AllocateRange[small.RangeHandle, byte](&r, 16)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.MaximumCapacity(store.LayoutOf[byte]()), store.Capacity(16))

	r.Deallocate(h)
}
