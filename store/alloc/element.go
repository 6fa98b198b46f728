package alloc

import (
	"unsafe"

	"github.com/joshuapare/storkit/mem"
	"github.com/joshuapare/storkit/store"
)

// Element is an allocator-backed element storage. Every Allocate draws a
// fresh block from the allocator, so any number of handles may be live at
// once.
type Element struct {
	a mem.Allocator
}

// Handle carries the block address and the layout needed to return it.
type Handle struct {
	ptr unsafe.Pointer
	l   store.Layout
}

// NewElement returns an element storage drawing from a.
func NewElement(a mem.Allocator) Element {
	return Element{a: a}
}

// Allocate reserves one block of layout l.
func (e *Element) Allocate(l store.Layout) (Handle, error) {
	p, err := e.a.Alloc(l)
	if err != nil {
		return Handle{}, err
	}
	return Handle{ptr: p, l: l}, nil
}

// Deallocate returns the block to the allocator.
func (e *Element) Deallocate(h Handle) {
	e.a.Free(h.ptr, h.l)
}

// Resolve returns the block address. Allocator-backed blocks never move, so
// the address is stable for the handle's lifetime.
func (e *Element) Resolve(h Handle) unsafe.Pointer {
	return h.ptr
}
