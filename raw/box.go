package raw

import "github.com/joshuapare/storkit/store"

// Box owns a single value held in an embedded element storage.
type Box[T any, H any, S any, PS store.ElementPtr[S, H]] struct {
	storage S
	handle  H
	live    bool
}

// NewBox stores value in storage and returns the owning box. On failure the
// zero box and the error are returned; the caller keeps its value.
func NewBox[T any, H any, S any, PS store.ElementPtr[S, H]](storage S, value T) (Box[T, H, S, PS], error) {
	b := Box[T, H, S, PS]{storage: storage}
	h, err := store.Create[H](PS(&b.storage), value)
	if err != nil {
		return Box[T, H, S, PS]{}, err
	}
	b.handle = h
	b.live = true
	return b, nil
}

// Get resolves the boxed value. The pointer is valid until the box is
// mutated, closed or relocated; resolve again after any of those.
func (b *Box[T, H, S, PS]) Get() *T {
	return store.Get[T](PS(&b.storage), b.handle)
}

// Set overwrites the boxed value.
func (b *Box[T, H, S, PS]) Set(value T) {
	*b.Get() = value
}

// Live reports whether the box currently holds a value.
func (b *Box[T, H, S, PS]) Live() bool { return b.live }

// Close destroys the boxed value. Closing an empty box is a no-op.
func (b *Box[T, H, S, PS]) Close() {
	if !b.live {
		return
	}
	store.Destroy[T](PS(&b.storage), b.handle)
	b.live = false
}
