package mem

import (
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

// Bump is an append-only allocator over a fixed region. It uses a simple
// bump-pointer approach for O(1) allocation and zero bookkeeping overhead:
// no free lists, no indexes, no maps. Free is a no-op - blocks become dead
// space until Reset reclaims the whole region.
//
// Bump suits storages whose contents are torn down all at once.
type Bump struct {
	buf []byte

	// next is the bump pointer: the offset where the next allocation
	// will be placed, before alignment.
	next uintptr
}

// NewBump returns a Bump allocator over a fresh region of size bytes.
func NewBump(size int) *Bump {
	return &Bump{buf: make([]byte, size)}
}

// Alloc carves the next aligned block out of the region.
func (b *Bump) Alloc(l store.Layout) (unsafe.Pointer, error) {
	l = normalize(l)
	if len(b.buf) == 0 {
		return nil, store.ErrNoSpace
	}

	base := uintptr(unsafe.Pointer(&b.buf[0]))
	start := store.AlignUp(base+b.next, l.Align) - base
	if start+l.Size > uintptr(len(b.buf)) {
		return nil, store.ErrNoSpace
	}

	b.next = start + l.Size
	return unsafe.Pointer(&b.buf[start]), nil
}

// Free is a no-op; the block remains dead space until Reset.
func (b *Bump) Free(p unsafe.Pointer, l store.Layout) {}

// Reset reclaims the whole region. All previously returned blocks are
// invalid afterwards.
func (b *Bump) Reset() {
	clear(b.buf)
	b.next = 0
}

// Remaining returns the bytes left before the region is exhausted,
// ignoring alignment padding of future requests.
func (b *Bump) Remaining() int {
	return len(b.buf) - int(b.next)
}
