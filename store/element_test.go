package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/storkit/mem"
	"github.com/joshuapare/storkit/store"
	"github.com/joshuapare/storkit/store/alloc"
)

// TestCreateGetDestroy tests the typed element layer over an allocator-backed
// storage, with allocator traffic balanced at the end.
func TestCreateGetDestroy(t *testing.T) {
	spy := mem.NewSpy(mem.NewHeap())
	e := alloc.NewElement(spy)

	h, err := store.Create[alloc.Handle](&e, uint64(42))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), *store.Get[uint64](&e, h))

	*store.Get[uint64](&e, h) = 43
	assert.Equal(t, uint64(43), *store.Get[uint64](&e, h), "writes through the reference must stick")

	store.Destroy[uint64](&e, h)
	assert.True(t, spy.Balanced(), "destroy must return the block")
}

// TestAllocateThenInitialize tests the two-phase path: reserve uninitialized,
// write through the reference, then read.
func TestAllocateThenInitialize(t *testing.T) {
	e := alloc.NewElement(mem.NewHeap())

	h, err := store.Allocate[alloc.Handle, uint64](&e)
	require.NoError(t, err)

	*store.Get[uint64](&e, h) = 7
	assert.Equal(t, uint64(7), *store.Get[uint64](&e, h))

	store.Destroy[uint64](&e, h)
}

// TestDestroyZeroesSlot tests that destruction clears the slot bytes. A bump
// allocator keeps the memory readable after the free.
func TestDestroyZeroesSlot(t *testing.T) {
	e := alloc.NewElement(mem.NewBump(64))

	h, err := store.Create[alloc.Handle](&e, uint64(0xFFFF))
	require.NoError(t, err)

	p := store.Get[uint64](&e, h)
	store.Destroy[uint64](&e, h)
	assert.Zero(t, *p, "destroy must clear the slot")
}

// TestCreateFailurePropagates tests that allocator failure surfaces unchanged
// and leaves the caller's value alone.
func TestCreateFailurePropagates(t *testing.T) {
	e := alloc.NewElement(mem.Null{})

	value := uint64(5)
	_, err := store.Create[alloc.Handle](&e, value)
	assert.ErrorIs(t, err, store.ErrNoSpace)
	assert.Equal(t, uint64(5), value)
}

// TestElementMixedTypes tests that one storage value serves several element
// types at once.
func TestElementMixedTypes(t *testing.T) {
	spy := mem.NewSpy(mem.NewHeap())
	e := alloc.NewElement(spy)

	hi, err := store.Create[alloc.Handle](&e, int32(-9))
	require.NoError(t, err)
	hs, err := store.Create[alloc.Handle](&e, [3]byte{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, int32(-9), *store.Get[int32](&e, hi))
	assert.Equal(t, [3]byte{1, 2, 3}, *store.Get[[3]byte](&e, hs))

	store.Destroy[int32](&e, hi)
	store.Destroy[[3]byte](&e, hs)
	assert.True(t, spy.Balanced())
}
