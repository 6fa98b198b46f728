package inline

import (
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

// Element is a single-slot storage backed by one in-value region of type B.
// It holds at most one element at a time; allocating again while a handle is
// live reuses the same region and invalidates the previous contents, so
// callers release first.
//
// The zero value is ready to use.
type Element[B any] struct {
	buf B
}

// Handle is the unit handle of Element. It carries no address on purpose:
// the region moves wherever the storage value moves.
type Handle struct{}

// Allocate checks the requested layout against the region and hands out the
// slot. Fails with store.ErrNoSpace when size or alignment exceed B.
func (e *Element[B]) Allocate(l store.Layout) (Handle, error) {
	if !l.FitsIn(store.LayoutOf[B]()) {
		return Handle{}, store.ErrNoSpace
	}
	return Handle{}, nil
}

// Deallocate releases the slot. Nothing to return to: the region is part of
// the storage value.
func (e *Element[B]) Deallocate(Handle) {}

// Resolve recomputes the slot address from the receiver, so it is correct
// even after the storage value has been copied elsewhere.
func (e *Element[B]) Resolve(Handle) unsafe.Pointer {
	return unsafe.Pointer(&e.buf)
}
