package mem

import (
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

// Null never allocates. It stands in for an exhausted backend when testing
// failure paths and composite fallback policies.
type Null struct{}

func (Null) Alloc(l store.Layout) (unsafe.Pointer, error) {
	return nil, store.ErrNoSpace
}

// Free panics: Null never issued a block, so any call is a caller bug.
func (Null) Free(p unsafe.Pointer, l store.Layout) {
	panic("mem: Free on Null allocator")
}
