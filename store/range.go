package store

import (
	"unsafe"

	"github.com/joshuapare/storkit/internal/memops"
)

// Typed layer over RangeStorage.

// AllocateRange reserves room for c elements of type T, all uninitialized.
func AllocateRange[H any, T any](s RangeStorage[H], c Capacity) (H, error) {
	return s.Allocate(LayoutOf[T](), c)
}

// Slice returns the full allocated capacity behind h as a []T. The slice
// spans uninitialized slots too; the caller knows which part it has
// initialized. Validity follows the same rules as Get.
func Slice[T any, H any](s RangeStorage[H], h H) []T {
	p, c := s.Resolve(h)
	return unsafe.Slice((*T)(p), int(c))
}

// Grow grows the range behind h to newCap elements, preserving existing
// bytes. It first attempts TryGrow; when the storage cannot grow, it falls
// back to allocating a fresh range, copying the old contents, and releasing
// the old range. On failure the old handle and contents are untouched.
func Grow[T any, H any](s RangeStorage[H], h H, newCap Capacity) (H, error) {
	if _, cur := s.Resolve(h); newCap < cur {
		var zero H
		return zero, ErrNoSpace
	}
	if nh, err := s.TryGrow(h, newCap); err == nil {
		return nh, nil
	}
	return relocate[T](s, h, newCap)
}

// Shrink mirrors Grow for shrinking. A successful shrink preserves all bytes
// within the new capacity bound.
func Shrink[T any, H any](s RangeStorage[H], h H, newCap Capacity) (H, error) {
	if _, cur := s.Resolve(h); newCap > cur {
		var zero H
		return zero, ErrNoSpace
	}
	if nh, err := s.TryShrink(h, newCap); err == nil {
		return nh, nil
	}
	return relocate[T](s, h, newCap)
}

func relocate[T any, H any](s RangeStorage[H], h H, newCap Capacity) (H, error) {
	elem := LayoutOf[T]()

	nh, err := s.Allocate(elem, newCap)
	if err != nil {
		var zero H
		return zero, err
	}

	src, oldCap := s.Resolve(h)
	dst, _ := s.Resolve(nh)
	memops.Move(dst, src, uintptr(min(oldCap, newCap))*elem.Size)

	s.Deallocate(h)
	return nh, nil
}
