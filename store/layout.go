package store

import (
	"math"
	"unsafe"

	"github.com/modern-go/reflect2"
)

// Layout describes the memory requirements of an allocation request: a size
// in bytes and a power-of-two alignment. It is the request vocabulary of both
// storage contracts.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the layout of T.
func LayoutOf[T any]() Layout {
	var v T
	return Layout{Size: unsafe.Sizeof(v), Align: unsafe.Alignof(v)}
}

// LayoutOfType returns the layout of the runtime type t.
func LayoutOfType(t reflect2.Type) Layout {
	t1 := t.Type1()
	return Layout{Size: t1.Size(), Align: uintptr(t1.Align())}
}

// Array returns the layout of n contiguous elements of layout l.
// Fails with ErrNoSpace when the total byte count overflows.
func (l Layout) Array(n Capacity) (Layout, error) {
	if l.Size > 0 && uintptr(n) > (math.MaxInt-l.Align)/l.Size {
		return Layout{}, ErrNoSpace
	}
	return Layout{Size: l.Size * uintptr(n), Align: l.Align}, nil
}

// FitsIn reports whether an element of layout l fits a region of layout
// region, both in size and in alignment.
func (l Layout) FitsIn(region Layout) bool {
	return l.Size <= region.Size && l.Align <= region.Align
}

// AlignUp returns n rounded up to the next multiple of align.
// align must be a power of two.
//
// Example:
//
//	AlignUp(1, 8)  = 8
//	AlignUp(8, 8)  = 8
//	AlignUp(9, 8)  = 16
func AlignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}
