package inline

import (
	"math/bits"
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

// Pool is a multi-element storage over one in-value region. The region B is
// divided into sizeof(B)/sizeof(Slot) slots of type Slot; every live element
// owns one slot, tracked by an occupancy bitmap. At most 64 slots are
// addressable.
//
// The zero value is ready to use.
type Pool[Slot any, B any] struct {
	buf  B
	used uint64
}

// PoolHandle identifies one slot of a Pool.
type PoolHandle struct {
	slot uint8
}

// Slots returns the number of addressable slots in the region.
func (p *Pool[Slot, B]) Slots() int {
	slot := store.LayoutOf[Slot]()
	if slot.Size == 0 {
		return 64
	}
	n := store.LayoutOf[B]().Size / slot.Size
	if n > 64 {
		n = 64
	}
	return int(n)
}

// Allocate claims the first free slot for an element of layout l. Fails
// when l exceeds a slot or every slot is taken.
func (p *Pool[Slot, B]) Allocate(l store.Layout) (PoolHandle, error) {
	slot := store.LayoutOf[Slot]()
	if !l.FitsIn(slot) || slot.Align > store.LayoutOf[B]().Align {
		return PoolHandle{}, store.ErrNoSpace
	}
	free := bits.TrailingZeros64(^p.used)
	if free >= p.Slots() {
		return PoolHandle{}, store.ErrNoSpace
	}
	p.used |= 1 << free
	return PoolHandle{slot: uint8(free)}, nil
}

// Deallocate returns the slot to the free set.
func (p *Pool[Slot, B]) Deallocate(h PoolHandle) {
	p.used &^= 1 << h.slot
}

// Resolve recomputes the slot address from the receiver and the slot index.
func (p *Pool[Slot, B]) Resolve(h PoolHandle) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(&p.buf), uintptr(h.slot)*store.LayoutOf[Slot]().Size)
}

// Live returns the number of occupied slots.
func (p *Pool[Slot, B]) Live() int { return bits.OnesCount64(p.used) }
