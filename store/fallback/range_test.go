package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/storkit/mem"
	"github.com/joshuapare/storkit/store"
	"github.com/joshuapare/storkit/store/alloc"
	"github.com/joshuapare/storkit/store/fallback"
	"github.com/joshuapare/storkit/store/inline"
)

type smallRange = fallback.Range[
	inline.Range[[2]uint64], alloc.Range,
	inline.RangeHandle, alloc.RangeHandle,
	*inline.Range[[2]uint64], *alloc.Range,
]

type smallRangeHandle = fallback.RangeHandle[inline.RangeHandle, alloc.RangeHandle]

func newSmallRange(a mem.Allocator) smallRange {
	return fallback.NewRange[
		inline.Range[[2]uint64], alloc.Range,
		inline.RangeHandle, alloc.RangeHandle,
		*inline.Range[[2]uint64], *alloc.Range,
	](inline.Range[[2]uint64]{}, alloc.NewRange(a))
}

// TestRange_MaximumCapacitySums tests the pooled capacity bound over two
// fixed regions.
func TestRange_MaximumCapacitySums(t *testing.T) {
	r := fallback.NewRange[
		inline.Range[[2]uint64], inline.Range[[4]uint64],
		inline.RangeHandle, inline.RangeHandle,
		*inline.Range[[2]uint64], *inline.Range[[4]uint64],
	](inline.Range[[2]uint64]{}, inline.Range[[4]uint64]{})

	assert.Equal(t, store.Capacity(6), r.MaximumCapacity(store.LayoutOf[uint64]()))
}

// TestRange_GrowMovesToSecond tests the cross-child move: growth past the
// inline region lands the occupied bytes on the allocator child.
func TestRange_GrowMovesToSecond(t *testing.T) {
	spy := mem.NewSpy(mem.NewHeap())
	r := newSmallRange(spy)

	h, err := store.AllocateRange[smallRangeHandle, uint64](&r, 2)
	require.NoError(t, err)
	assert.Zero(t, spy.Allocs, "a fitting range starts inline")

	s := store.Slice[uint64](&r, h)
	s[0], s[1] = 7, 8

	h, err = r.TryGrow(h, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, spy.Allocs)

	s = store.Slice[uint64](&r, h)
	require.Len(t, s, 6)
	assert.Equal(t, uint64(7), s[0], "the move must carry the occupied bytes")
	assert.Equal(t, uint64(8), s[1])

	r.Deallocate(h)
	assert.True(t, spy.Balanced())
}

// TestRange_ShrinkMovesBackInline tests reclaiming the cheap child: when the
// owning child cannot shrink, the data moves to the other child, which for a
// fitting capacity is the inline region.
func TestRange_ShrinkMovesBackInline(t *testing.T) {
	// A 32-byte bump region: the 24-byte allocation exhausts it enough that
	// the allocator child cannot relocate for the shrink.
	r := newSmallRange(mem.NewBump(32))

	h, err := store.AllocateRange[smallRangeHandle, uint64](&r, 3)
	require.NoError(t, err, "3 elements overflow the 16-byte region and land on the bump")
	s := store.Slice[uint64](&r, h)
	s[0], s[1] = 10, 20

	h, err = r.TryShrink(h, 2)
	require.NoError(t, err, "the shrunk range fits the inline region again")

	s = store.Slice[uint64](&r, h)
	require.Len(t, s, 2)
	assert.Equal(t, uint64(10), s[0], "the move back must carry the bytes within bound")
	assert.Equal(t, uint64(20), s[1])
}

// TestRange_IndependentRanges tests that ranges in different children do not
// interfere.
func TestRange_IndependentRanges(t *testing.T) {
	spy := mem.NewSpy(mem.NewHeap())
	r := newSmallRange(spy)

	h1, err := store.AllocateRange[smallRangeHandle, uint64](&r, 2)
	require.NoError(t, err)
	h2, err := store.AllocateRange[smallRangeHandle, uint64](&r, 4)
	require.NoError(t, err, "the second range overflows to the allocator")
	assert.Equal(t, 1, spy.Allocs)

	store.Slice[uint64](&r, h1)[0] = 1
	store.Slice[uint64](&r, h2)[0] = 2

	assert.Equal(t, uint64(1), store.Slice[uint64](&r, h1)[0])
	assert.Equal(t, uint64(2), store.Slice[uint64](&r, h2)[0])

	r.Deallocate(h2)
	assert.True(t, spy.Balanced())
	r.Deallocate(h1)
}

// TestRange_ResizeDirectionGuards tests that wrong-direction resizes fail at
// the composite surface instead of escaping through the cross-child move: a
// shrink must never end up with more capacity and a grow must never end up
// with less.
func TestRange_ResizeDirectionGuards(t *testing.T) {
	spy := mem.NewSpy(mem.NewHeap())
	r := newSmallRange(spy)

	h, err := store.AllocateRange[smallRangeHandle, uint64](&r, 2)
	require.NoError(t, err)
	s := store.Slice[uint64](&r, h)
	s[0], s[1] = 1, 2

	_, err = r.TryShrink(h, 8)
	require.ErrorIs(t, err, store.ErrNoSpace, "shrink to a larger capacity must fail, not move")
	_, err = r.TryGrow(h, 1)
	require.ErrorIs(t, err, store.ErrNoSpace, "grow to a smaller capacity must fail, not move")
	assert.Zero(t, spy.Allocs, "rejected resizes must never reach the allocator")

	s = store.Slice[uint64](&r, h)
	require.Len(t, s, 2, "the capacity must be unchanged")
	assert.Equal(t, uint64(1), s[0])
	assert.Equal(t, uint64(2), s[1])

	h2, err := store.AllocateRange[smallRangeHandle, uint64](&r, 8)
	require.NoError(t, err, "the second range lands on the allocator")

	_, err = r.TryGrow(h2, 1)
	assert.ErrorIs(t, err, store.ErrNoSpace, "the guard must hold for second-owned ranges too")
	_, err = r.TryShrink(h2, 9)
	assert.ErrorIs(t, err, store.ErrNoSpace)
	_, c := r.Resolve(h2)
	assert.Equal(t, store.Capacity(8), c)

	r.Deallocate(h2)
	r.Deallocate(h)
	assert.True(t, spy.Balanced())
}

// TestRange_SecondSmallRangeDoesNotAlias tests that a second request fitting
// the inline region is routed to the allocator while the region is occupied,
// instead of handing out the same bytes twice.
func TestRange_SecondSmallRangeDoesNotAlias(t *testing.T) {
	spy := mem.NewSpy(mem.NewHeap())
	r := newSmallRange(spy)

	h1, err := store.AllocateRange[smallRangeHandle, uint64](&r, 2)
	require.NoError(t, err)
	h2, err := store.AllocateRange[smallRangeHandle, uint64](&r, 2)
	require.NoError(t, err, "the occupied region must overflow, not fail")
	assert.Equal(t, 1, spy.Allocs, "the second small range must come from the allocator")

	store.Slice[uint64](&r, h1)[0] = 111
	store.Slice[uint64](&r, h2)[0] = 222
	assert.Equal(t, uint64(111), store.Slice[uint64](&r, h1)[0], "ranges must not share bytes")
	assert.Equal(t, uint64(222), store.Slice[uint64](&r, h2)[0])

	// Releasing the inline range makes the region available again.
	r.Deallocate(h1)
	h3, err := store.AllocateRange[smallRangeHandle, uint64](&r, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, spy.Allocs, "the freed region must be preferred over the allocator")
	assert.Equal(t, uint64(222), store.Slice[uint64](&r, h2)[0], "the live range must survive the reuse")

	r.Deallocate(h3)
	r.Deallocate(h2)
	assert.True(t, spy.Balanced())
}

// TestRange_GrowFailsWhenBothExhausted tests totality of the failure case
// with the old range left intact.
func TestRange_GrowFailsWhenBothExhausted(t *testing.T) {
	r := newSmallRange(mem.Null{})

	h, err := store.AllocateRange[smallRangeHandle, uint64](&r, 2)
	require.NoError(t, err)
	store.Slice[uint64](&r, h)[0] = 3

	_, err = r.TryGrow(h, 8)
	require.ErrorIs(t, err, store.ErrNoSpace)
	assert.Equal(t, uint64(3), store.Slice[uint64](&r, h)[0], "a failed grow leaves the range readable")
}
