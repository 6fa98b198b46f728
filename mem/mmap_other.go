//go:build !unix

package mem

import (
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

// Mmap falls back to the Heap allocator on platforms without anonymous
// mappings. The interface and lifecycle rules are identical.
type Mmap struct {
	heap Heap
}

// NewMmap returns an empty Mmap allocator.
func NewMmap() *Mmap { return &Mmap{} }

func (m *Mmap) Alloc(l store.Layout) (unsafe.Pointer, error) { return m.heap.Alloc(l) }

func (m *Mmap) Free(p unsafe.Pointer, l store.Layout) { m.heap.Free(p, l) }

// Live returns the number of blocks currently allocated.
func (m *Mmap) Live() int { return m.heap.Live() }
