package alloc

import (
	"math"
	"unsafe"

	"github.com/joshuapare/storkit/internal/memops"
	"github.com/joshuapare/storkit/mem"
	"github.com/joshuapare/storkit/store"
)

// Range is an allocator-backed range storage.
type Range struct {
	a mem.Allocator
}

// RangeHandle carries the block address plus the element layout and
// capacity needed to size copies and frees.
type RangeHandle struct {
	ptr  unsafe.Pointer
	elem store.Layout
	cap  store.Capacity
}

// NewRange returns a range storage drawing from a.
func NewRange(a mem.Allocator) Range {
	return Range{a: a}
}

// MaximumCapacity is bounded only by the address space and the capacity
// type.
func (r *Range) MaximumCapacity(elem store.Layout) store.Capacity {
	if elem.Size == 0 {
		return store.MaxCapacity
	}
	n := uintptr(math.MaxInt) / elem.Size
	if n > uintptr(store.MaxCapacity) {
		return store.MaxCapacity
	}
	return store.Capacity(n)
}

// Allocate reserves one block sized for c elements of layout elem.
func (r *Range) Allocate(elem store.Layout, c store.Capacity) (RangeHandle, error) {
	total, err := elem.Array(c)
	if err != nil {
		return RangeHandle{}, err
	}
	p, err := r.a.Alloc(total)
	if err != nil {
		return RangeHandle{}, err
	}
	return RangeHandle{ptr: p, elem: elem, cap: c}, nil
}

// Deallocate returns the block to the allocator.
func (r *Range) Deallocate(h RangeHandle) {
	total, err := h.elem.Array(h.cap)
	if err != nil {
		return
	}
	r.a.Free(h.ptr, total)
}

// Resolve returns the block address and the granted capacity.
func (r *Range) Resolve(h RangeHandle) (unsafe.Pointer, store.Capacity) {
	return h.ptr, h.cap
}

// TryGrow relocates to a fresh block of the new capacity, preserving the
// old contents. On failure the old handle and contents are untouched.
func (r *Range) TryGrow(h RangeHandle, newCap store.Capacity) (RangeHandle, error) {
	if newCap < h.cap {
		return RangeHandle{}, store.ErrNoSpace
	}
	return r.relocate(h, newCap)
}

// TryShrink relocates to a smaller block, keeping all bytes within the new
// capacity bound.
func (r *Range) TryShrink(h RangeHandle, newCap store.Capacity) (RangeHandle, error) {
	if newCap > h.cap {
		return RangeHandle{}, store.ErrNoSpace
	}
	return r.relocate(h, newCap)
}

func (r *Range) relocate(h RangeHandle, newCap store.Capacity) (RangeHandle, error) {
	nh, err := r.Allocate(h.elem, newCap)
	if err != nil {
		return RangeHandle{}, store.ErrNoSpace
	}
	memops.Move(nh.ptr, h.ptr, uintptr(min(h.cap, newCap))*h.elem.Size)
	r.Deallocate(h)
	return nh, nil
}
