package store

// Typed layer over ElementStorage. The element type is bound at each call
// site, so one storage value serves any number of element types over its
// lifetime.

// Create stores value in a fresh slot and returns its handle.
//
// On failure the caller's value is untouched and no storage state changes;
// nothing is ever silently dropped. The handle type H usually needs to be
// named explicitly, the value type is inferred:
//
//	h, err := store.Create[inline.Handle](&s, int64(7))
func Create[H any, T any](s ElementStorage[H], value T) (H, error) {
	h, err := s.Allocate(LayoutOf[T]())
	if err != nil {
		var zero H
		return zero, err
	}
	*(*T)(s.Resolve(h)) = value
	return h, nil
}

// Allocate reserves an uninitialized slot for one T. The caller must
// initialize the slot before any Get-based read, and release it with Destroy
// once initialized (or Deallocate if initialization never happened).
func Allocate[H any, T any](s ElementStorage[H]) (H, error) {
	return s.Allocate(LayoutOf[T]())
}

// Get reconstructs a reference to the element behind h. The pointer is valid
// until the next mutating call on s or a relocation of s's owner; h itself
// stays valid.
func Get[T any, H any](s ElementStorage[H], h H) *T {
	return (*T)(s.Resolve(h))
}

// Destroy clears the slot behind h and releases it. Clearing is the Go
// analog of running the destructor: it severs any pointers the element held
// so the referenced objects become collectable. The slot must hold a live,
// initialized T.
func Destroy[T any, H any](s ElementStorage[H], h H) {
	p := (*T)(s.Resolve(h))
	var zero T
	*p = zero
	s.Deallocate(h)
}
