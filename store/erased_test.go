package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/storkit/mem"
	"github.com/joshuapare/storkit/store"
	"github.com/joshuapare/storkit/store/alloc"
)

// TestCreateAnyRoundTrip tests storing and reading a value whose type is
// carried in the handle, not the storage.
func TestCreateAnyRoundTrip(t *testing.T) {
	spy := mem.NewSpy(mem.NewHeap())
	e := alloc.NewElement(spy)

	h, err := store.CreateAny(&e, uint64(7))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), store.GetAny(&e, h))

	store.DestroyAny(&e, h)
	assert.True(t, spy.Balanced())
}

// TestCreateAnyStruct tests erased storage of a composite value.
func TestCreateAnyStruct(t *testing.T) {
	e := alloc.NewElement(mem.NewHeap())

	type point struct{ X, Y int32 }

	h, err := store.CreateAny(&e, point{X: 3, Y: -4})
	require.NoError(t, err)
	assert.Equal(t, point{X: 3, Y: -4}, store.GetAny(&e, h))

	store.DestroyAny(&e, h)
}

// TestCreateAnyFailurePropagates tests that allocator failure surfaces on the
// erased path.
func TestCreateAnyFailurePropagates(t *testing.T) {
	e := alloc.NewElement(mem.Null{})

	_, err := store.CreateAny(&e, uint64(1))
	assert.ErrorIs(t, err, store.ErrNoSpace)
}

// TestCoerceSharesMemory tests that widening a typed handle yields an erased
// view of the same slot, with no relocation.
func TestCoerceSharesMemory(t *testing.T) {
	e := alloc.NewElement(mem.NewHeap())

	h, err := store.Create[alloc.Handle](&e, uint32(5))
	require.NoError(t, err)

	ah := store.Coerce[uint32](h)
	assert.Equal(t, h, ah.Inner(), "coercion must keep the inner handle")
	assert.Equal(t, uint32(5), store.GetAny(&e, ah))

	// Writes through the typed reference are visible through the erased view.
	*store.Get[uint32](&e, h) = 6
	assert.Equal(t, uint32(6), store.GetAny(&e, ah))

	store.DestroyAny(&e, ah)
}
