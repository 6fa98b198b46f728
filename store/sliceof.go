package store

import "unsafe"

// Slice-shaped elements. The metadata of a slice is its length; as with
// AnyHandle it lives in the handle so the storage stays shape-agnostic.

// SliceHandle pairs a storage handle with the element count needed to
// reconstruct a []T over the slot's memory.
type SliceHandle[H any] struct {
	inner H
	len   int
}

// Inner returns the underlying storage handle.
func (h SliceHandle[H]) Inner() H { return h.inner }

// Len returns the stored element count.
func (h SliceHandle[H]) Len() int { return h.len }

// CreateSliceOf copies values into a freshly allocated slot sized for all of
// them and returns a handle carrying the length.
func CreateSliceOf[H any, T any](s ElementStorage[H], values []T) (SliceHandle[H], error) {
	if uint64(len(values)) > uint64(MaxCapacity) {
		return SliceHandle[H]{}, ErrNoSpace
	}
	l, err := LayoutOf[T]().Array(Capacity(len(values)))
	if err != nil {
		return SliceHandle[H]{}, err
	}
	h, err := s.Allocate(l)
	if err != nil {
		return SliceHandle[H]{}, err
	}
	copy(unsafe.Slice((*T)(s.Resolve(h)), len(values)), values)
	return SliceHandle[H]{inner: h, len: len(values)}, nil
}

// GetSliceOf reconstructs the stored elements as a []T over the slot's
// current memory.
func GetSliceOf[T any, H any](s ElementStorage[H], h SliceHandle[H]) []T {
	return unsafe.Slice((*T)(s.Resolve(h.inner)), h.len)
}

// DestroySliceOf clears every stored element and releases the slot.
func DestroySliceOf[T any, H any](s ElementStorage[H], h SliceHandle[H]) {
	dst := GetSliceOf[T](s, h)
	var zero T
	for i := range dst {
		dst[i] = zero
	}
	s.Deallocate(h.inner)
}

// CoerceArray widens a handle created for the array type A into a slice
// handle over its elements of type T, without relocating anything. A must be
// an array of T; the length is derived from the two layouts.
func CoerceArray[T any, A any, H any](h H) SliceHandle[H] {
	elem := LayoutOf[T]()
	n := 0
	if elem.Size > 0 {
		n = int(LayoutOf[A]().Size / elem.Size)
	}
	return SliceHandle[H]{inner: h, len: n}
}
