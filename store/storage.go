package store

import (
	"math"
	"unsafe"
)

// Capacity counts elements in a range allocation. It is deliberately
// narrower than int so collections can keep capacity-related bookkeeping
// compact; it is ordered and comparable like any unsigned integer.
type Capacity uint32

// MaxCapacity is the largest representable capacity.
const MaxCapacity Capacity = math.MaxUint32

// ElementStorage is the single-slot allocation contract.
//
// Implementations hold at most one element per handle and are generic over
// the handle type H only; the element shape is described per call by a
// Layout. Whether a storage supports one live handle at a time (inline
// Element) or many (alloc Element, inline Pool) is a property of the
// implementation, documented there.
type ElementStorage[H any] interface {
	// Allocate reserves uninitialized space for one element of layout l.
	// The caller must initialize the slot before reading through it and
	// must release it with exactly one Deallocate (or typed Destroy).
	Allocate(l Layout) (H, error)

	// Deallocate releases the slot without touching its contents.
	// The handle, and every copy of it, is invalid afterwards.
	Deallocate(h H)

	// Resolve returns the current address of the slot. The address is
	// valid only until the next mutating call on this storage or a
	// relocation of the storage value; the handle stays valid throughout.
	Resolve(h H) unsafe.Pointer
}

// RangeStorage is the contiguous-capacity allocation contract.
//
// A range is a run of uninitialized slots for one element layout. The
// storage never tracks which slots are live; callers keep that split.
type RangeStorage[H any] interface {
	// MaximumCapacity reports the largest capacity this storage can ever
	// satisfy for elements of layout elem. Callers use it to pre-validate
	// growth requests and to clamp doubling strategies.
	MaximumCapacity(elem Layout) Capacity

	// Allocate reserves room for c elements of layout elem, all
	// uninitialized.
	Allocate(elem Layout, c Capacity) (H, error)

	// Deallocate releases the whole range. Any initialized elements must
	// already have been destroyed by the caller.
	Deallocate(h H)

	// Resolve returns the base address of the range and its capacity.
	// Validity follows the same rules as ElementStorage.Resolve.
	Resolve(h H) (unsafe.Pointer, Capacity)

	// TryGrow attempts in-place or relocating growth to newCap elements,
	// preserving existing bytes. On success the old handle is replaced by
	// the returned one; on failure the old handle and contents are
	// untouched and the caller falls back to allocate-copy-deallocate.
	// Growing to a smaller capacity fails.
	TryGrow(h H, newCap Capacity) (H, error)

	// TryShrink mirrors TryGrow for shrinking. When it succeeds it never
	// loses initialized data within the new capacity bound. Shrinking to
	// a larger capacity fails.
	TryShrink(h H, newCap Capacity) (H, error)
}

// ElementPtr constrains a pointer to a concrete element storage S issuing
// handles of type H. Composites and collections use it to embed child
// storages by value - required for the relocation guarantees - while still
// calling the contract methods through the pointer receiver.
type ElementPtr[S any, H any] interface {
	*S
	ElementStorage[H]
}

// RangePtr is the RangeStorage counterpart of ElementPtr.
type RangePtr[S any, H any] interface {
	*S
	RangeStorage[H]
}
