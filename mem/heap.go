package mem

import (
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

// Heap allocates from the Go runtime. Each block is retained in an internal
// table until freed, which keeps the block's bytes reachable for as long as
// a storage holds its handle.
//
// The zero value is ready to use.
type Heap struct {
	blocks map[unsafe.Pointer][]byte
}

// NewHeap returns an empty Heap allocator.
func NewHeap() *Heap { return &Heap{} }

// Alloc returns a zeroed block of at least l.Size bytes aligned to l.Align.
// Alignments beyond the runtime's natural alignment are met by
// over-allocating and offsetting into the block.
func (h *Heap) Alloc(l store.Layout) (unsafe.Pointer, error) {
	l = normalize(l)

	buf := make([]byte, l.Size+l.Align-1)
	base := uintptr(unsafe.Pointer(&buf[0]))
	off := store.AlignUp(base, l.Align) - base
	p := unsafe.Pointer(&buf[off])

	if h.blocks == nil {
		h.blocks = make(map[unsafe.Pointer][]byte)
	}
	h.blocks[p] = buf
	return p, nil
}

// Free drops the block, making it collectable.
func (h *Heap) Free(p unsafe.Pointer, l store.Layout) {
	delete(h.blocks, p)
}

// Live returns the number of blocks currently allocated.
func (h *Heap) Live() int { return len(h.blocks) }
