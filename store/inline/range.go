package inline

import (
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

// Range is a single-range storage over one in-value region of type B. It
// holds at most one range at a time.
//
// The zero value is ready to use.
type Range[B any] struct {
	buf B
}

// RangeHandle identifies the one live range. It records the element layout
// and the granted capacity - bookkeeping, not an address.
type RangeHandle struct {
	elem store.Layout
	cap  store.Capacity
}

// MaximumCapacity reports how many elements of layout elem the region can
// hold. Zero when the region's alignment is too weak for elem.
func (r *Range[B]) MaximumCapacity(elem store.Layout) store.Capacity {
	region := store.LayoutOf[B]()
	if elem.Align > region.Align {
		return 0
	}
	if elem.Size == 0 {
		return store.MaxCapacity
	}
	n := region.Size / elem.Size
	if n > uintptr(store.MaxCapacity) {
		return store.MaxCapacity
	}
	return store.Capacity(n)
}

// Allocate grants a range of c uninitialized slots within the region.
func (r *Range[B]) Allocate(elem store.Layout, c store.Capacity) (RangeHandle, error) {
	if c > r.MaximumCapacity(elem) {
		return RangeHandle{}, store.ErrNoSpace
	}
	return RangeHandle{elem: elem, cap: c}, nil
}

// Deallocate releases the range.
func (r *Range[B]) Deallocate(RangeHandle) {}

// Resolve returns the region's current base address and the granted
// capacity.
func (r *Range[B]) Resolve(h RangeHandle) (unsafe.Pointer, store.Capacity) {
	return unsafe.Pointer(&r.buf), h.cap
}

// TryGrow grows in place while the new capacity still fits the region;
// otherwise it fails, signaling the caller (typically an alternative or
// fallback composite) to escalate. Existing bytes are untouched either way.
func (r *Range[B]) TryGrow(h RangeHandle, newCap store.Capacity) (RangeHandle, error) {
	if newCap < h.cap || newCap > r.MaximumCapacity(h.elem) {
		return RangeHandle{}, store.ErrNoSpace
	}
	return RangeHandle{elem: h.elem, cap: newCap}, nil
}

// TryShrink narrows the granted capacity in place. Data within the new
// bound is untouched.
func (r *Range[B]) TryShrink(h RangeHandle, newCap store.Capacity) (RangeHandle, error) {
	if newCap > h.cap {
		return RangeHandle{}, store.ErrNoSpace
	}
	return RangeHandle{elem: h.elem, cap: newCap}, nil
}
