package fallback

import (
	"unsafe"

	"github.com/joshuapare/storkit/internal/memops"
	"github.com/joshuapare/storkit/store"
)

// Range composes two range storages, both always alive. The first child is
// assumed to be a single-range storage (inline.Range), so the composite
// admits at most one live range there; while it is occupied, further
// requests go straight to the second child.
type Range[F, S, FH, SH any, PF store.RangePtr[F, FH], PS store.RangePtr[S, SH]] struct {
	first     F
	second    S
	firstLive bool
}

// RangeHandle tags a child handle with the child that issued it and records
// the element layout so a cross-child move can size its allocation.
type RangeHandle[FH, SH any] struct {
	tag    child
	first  FH
	second SH
	elem   store.Layout
}

// NewRange returns a composite over the two children.
func NewRange[F, S, FH, SH any, PF store.RangePtr[F, FH], PS store.RangePtr[S, SH]](first F, second S) Range[F, S, FH, SH, PF, PS] {
	return Range[F, S, FH, SH, PF, PS]{first: first, second: second}
}

// MaximumCapacity is the saturating sum of the children's maxima.
func (r *Range[F, S, FH, SH, PF, PS]) MaximumCapacity(elem store.Layout) store.Capacity {
	sum := uint64(PF(&r.first).MaximumCapacity(elem)) + uint64(PS(&r.second).MaximumCapacity(elem))
	if sum > uint64(store.MaxCapacity) {
		return store.MaxCapacity
	}
	return store.Capacity(sum)
}

// Allocate tries the first child unless it already holds a range, then the
// second.
func (r *Range[F, S, FH, SH, PF, PS]) Allocate(elem store.Layout, c store.Capacity) (RangeHandle[FH, SH], error) {
	if !r.firstLive {
		if fh, err := PF(&r.first).Allocate(elem, c); err == nil {
			r.firstLive = true
			return RangeHandle[FH, SH]{tag: childFirst, first: fh, elem: elem}, nil
		}
	}
	sh, err := PS(&r.second).Allocate(elem, c)
	if err != nil {
		return RangeHandle[FH, SH]{}, store.ErrNoSpace
	}
	return RangeHandle[FH, SH]{tag: childSecond, second: sh, elem: elem}, nil
}

// Deallocate routes to the issuing child.
func (r *Range[F, S, FH, SH, PF, PS]) Deallocate(h RangeHandle[FH, SH]) {
	if h.tag == childFirst {
		PF(&r.first).Deallocate(h.first)
		r.firstLive = false
	} else {
		PS(&r.second).Deallocate(h.second)
	}
}

// Resolve routes to the issuing child.
func (r *Range[F, S, FH, SH, PF, PS]) Resolve(h RangeHandle[FH, SH]) (unsafe.Pointer, store.Capacity) {
	if h.tag == childFirst {
		return PF(&r.first).Resolve(h.first)
	}
	return PS(&r.second).Resolve(h.second)
}

// TryGrow grows in the owning child when it can; otherwise the occupied
// bytes move to the other child and the old range is released. On failure
// the old handle and contents are untouched. Growing to a smaller capacity
// fails before either child is consulted.
func (r *Range[F, S, FH, SH, PF, PS]) TryGrow(h RangeHandle[FH, SH], newCap store.Capacity) (RangeHandle[FH, SH], error) {
	if _, cur := r.Resolve(h); newCap < cur {
		return RangeHandle[FH, SH]{}, store.ErrNoSpace
	}
	if h.tag == childFirst {
		if fh, err := PF(&r.first).TryGrow(h.first, newCap); err == nil {
			return RangeHandle[FH, SH]{tag: childFirst, first: fh, elem: h.elem}, nil
		}
	} else {
		if sh, err := PS(&r.second).TryGrow(h.second, newCap); err == nil {
			return RangeHandle[FH, SH]{tag: childSecond, second: sh, elem: h.elem}, nil
		}
	}
	return r.move(h, newCap)
}

// TryShrink shrinks in the owning child when it can; otherwise the occupied
// bytes move to the other child, which for the usual inline-first
// composition reclaims the cheap child once the data fits again. Shrinking
// to a larger capacity fails before either child is consulted.
func (r *Range[F, S, FH, SH, PF, PS]) TryShrink(h RangeHandle[FH, SH], newCap store.Capacity) (RangeHandle[FH, SH], error) {
	if _, cur := r.Resolve(h); newCap > cur {
		return RangeHandle[FH, SH]{}, store.ErrNoSpace
	}
	if h.tag == childFirst {
		if fh, err := PF(&r.first).TryShrink(h.first, newCap); err == nil {
			return RangeHandle[FH, SH]{tag: childFirst, first: fh, elem: h.elem}, nil
		}
	} else {
		if sh, err := PS(&r.second).TryShrink(h.second, newCap); err == nil {
			return RangeHandle[FH, SH]{tag: childSecond, second: sh, elem: h.elem}, nil
		}
	}
	return r.move(h, newCap)
}

// move transfers the range behind h into the child that did not issue it.
func (r *Range[F, S, FH, SH, PF, PS]) move(h RangeHandle[FH, SH], newCap store.Capacity) (RangeHandle[FH, SH], error) {
	if h.tag == childFirst {
		sh, err := PS(&r.second).Allocate(h.elem, newCap)
		if err != nil {
			return RangeHandle[FH, SH]{}, store.ErrNoSpace
		}
		src, srcCap := PF(&r.first).Resolve(h.first)
		dst, _ := PS(&r.second).Resolve(sh)
		memops.Move(dst, src, uintptr(min(srcCap, newCap))*h.elem.Size)
		PF(&r.first).Deallocate(h.first)
		r.firstLive = false
		return RangeHandle[FH, SH]{tag: childSecond, second: sh, elem: h.elem}, nil
	}

	if r.firstLive {
		return RangeHandle[FH, SH]{}, store.ErrNoSpace
	}
	fh, err := PF(&r.first).Allocate(h.elem, newCap)
	if err != nil {
		return RangeHandle[FH, SH]{}, store.ErrNoSpace
	}
	src, srcCap := PS(&r.second).Resolve(h.second)
	dst, _ := PF(&r.first).Resolve(fh)
	memops.Move(dst, src, uintptr(min(srcCap, newCap))*h.elem.Size)
	PS(&r.second).Deallocate(h.second)
	r.firstLive = true
	return RangeHandle[FH, SH]{tag: childFirst, first: fh, elem: h.elem}, nil
}
