package mem

import (
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

// Allocator is the general allocation capability.
//
// Alloc never returns memory satisfying less than the requested size and
// alignment. Free must be called with the exact layout passed to Alloc, at
// most once per block.
type Allocator interface {
	Alloc(l store.Layout) (unsafe.Pointer, error)
	Free(p unsafe.Pointer, l store.Layout)
}

// normalize clamps degenerate layouts so implementations can assume a
// non-zero size and alignment.
func normalize(l store.Layout) store.Layout {
	if l.Size == 0 {
		l.Size = 1
	}
	if l.Align == 0 {
		l.Align = 1
	}
	return l
}
