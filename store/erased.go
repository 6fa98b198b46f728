package store

import (
	"reflect"

	"github.com/modern-go/reflect2"
)

// Type-erased element layer. Elements whose concrete type is only known at
// run time keep the describing metadata - a runtime type descriptor - in the
// handle, never in the storage. Reconstructing a reference is the pairing of
// the storage's current address with that metadata; the split and the
// reconstruction are pure format conversions with no ownership implications.

// AnyHandle pairs a storage handle with the runtime type of the stored
// element. Like every handle it is copyable and meaningful only to the
// storage that issued the inner handle.
type AnyHandle[H any] struct {
	inner H
	typ   reflect2.Type
}

// Inner returns the underlying storage handle.
func (h AnyHandle[H]) Inner() H { return h.inner }

// CreateAny stores the dynamic value behind v in a fresh slot. The concrete
// type's layout drives the allocation; v must not be nil.
func CreateAny[H any](s ElementStorage[H], v any) (AnyHandle[H], error) {
	t := reflect2.TypeOf(v)
	h, err := s.Allocate(LayoutOfType(t))
	if err != nil {
		return AnyHandle[H]{}, err
	}
	t.UnsafeSet(s.Resolve(h), reflect2.PtrOf(v))
	return AnyHandle[H]{inner: h, typ: t}, nil
}

// GetAny reconstructs the stored element as an interface value addressing
// the slot's current memory. The view follows the same validity rules as
// Get: any mutating call or relocation invalidates it, the handle survives.
func GetAny[H any](s ElementStorage[H], h AnyHandle[H]) any {
	return h.typ.UnsafeIndirect(s.Resolve(h.inner))
}

// DestroyAny clears the slot behind h and releases it.
func DestroyAny[H any](s ElementStorage[H], h AnyHandle[H]) {
	h.typ.UnsafeSet(s.Resolve(h.inner), h.typ.UnsafeNew())
	s.Deallocate(h.inner)
}

// Coerce widens a handle created for a concrete T into a type-erased handle
// addressing exactly the same memory. Nothing is relocated or reallocated;
// the result remains valid exactly as long as h is.
func Coerce[T any, H any](h H) AnyHandle[H] {
	t := reflect2.Type2(reflect.TypeOf((*T)(nil)).Elem())
	return AnyHandle[H]{inner: h, typ: t}
}
