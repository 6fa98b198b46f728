package alternative

import (
	"unsafe"

	"github.com/joshuapare/storkit/internal/memops"
	"github.com/joshuapare/storkit/store"
)

// Range composes two single-range storages; exactly one is active. It holds
// at most one range at a time, whose element layout is recorded so a
// grow-triggered migration can size the copy.
type Range[F, S, FH, SH any, PF store.RangePtr[F, FH], PS store.RangePtr[S, SH]] struct {
	first  F
	second S
	st     state
	live   bool
	elem   store.Layout
}

// RangeHandle holds both child handle shapes; the issuing composite's state
// selects which one is meaningful.
type RangeHandle[FH, SH any] struct {
	first  FH
	second SH
}

// NewRange returns a composite starting on the first child.
func NewRange[F, S, FH, SH any, PF store.RangePtr[F, FH], PS store.RangePtr[S, SH]](first F, second S) Range[F, S, FH, SH, PF, PS] {
	return Range[F, S, FH, SH, PF, PS]{first: first, second: second}
}

// MaximumCapacity reports the larger of the two children's bounds. Even
// while the first child is active a range can reach the second child's bound
// through a grow-triggered migration, so the composite's true limit is the
// bigger one.
func (r *Range[F, S, FH, SH, PF, PS]) MaximumCapacity(elem store.Layout) store.Capacity {
	return max(PF(&r.first).MaximumCapacity(elem), PS(&r.second).MaximumCapacity(elem))
}

// Allocate tries the active child; an empty first child may spill to the
// second, after which the second is active.
func (r *Range[F, S, FH, SH, PF, PS]) Allocate(elem store.Layout, c store.Capacity) (RangeHandle[FH, SH], error) {
	if r.st == stateFirst {
		if fh, err := PF(&r.first).Allocate(elem, c); err == nil {
			r.live = true
			r.elem = elem
			return RangeHandle[FH, SH]{first: fh}, nil
		}
		if r.live {
			return RangeHandle[FH, SH]{}, store.ErrNoSpace
		}
		sh, err := PS(&r.second).Allocate(elem, c)
		if err != nil {
			return RangeHandle[FH, SH]{}, store.ErrNoSpace
		}
		r.st = stateSecond
		r.live = true
		r.elem = elem
		return RangeHandle[FH, SH]{second: sh}, nil
	}

	sh, err := PS(&r.second).Allocate(elem, c)
	if err != nil {
		return RangeHandle[FH, SH]{}, err
	}
	r.live = true
	r.elem = elem
	return RangeHandle[FH, SH]{second: sh}, nil
}

// Deallocate releases the range in the active child.
func (r *Range[F, S, FH, SH, PF, PS]) Deallocate(h RangeHandle[FH, SH]) {
	if r.st == stateFirst {
		PF(&r.first).Deallocate(h.first)
	} else {
		PS(&r.second).Deallocate(h.second)
	}
	r.live = false
}

// Resolve routes to the active child.
func (r *Range[F, S, FH, SH, PF, PS]) Resolve(h RangeHandle[FH, SH]) (unsafe.Pointer, store.Capacity) {
	if r.st == stateFirst {
		return PF(&r.first).Resolve(h.first)
	}
	return PS(&r.second).Resolve(h.second)
}

// TryGrow grows in place within the active child when possible. When the
// first child cannot grow, the composite allocates the new capacity in the
// second child, copies the occupied bytes, releases the first child's
// range, and becomes second-active. Either the transition completes and the
// returned handle replaces h, or it fails and the prior state is unchanged.
// Growing to a smaller capacity fails before either child is consulted.
func (r *Range[F, S, FH, SH, PF, PS]) TryGrow(h RangeHandle[FH, SH], newCap store.Capacity) (RangeHandle[FH, SH], error) {
	if _, cur := r.Resolve(h); newCap < cur {
		return RangeHandle[FH, SH]{}, store.ErrNoSpace
	}
	if r.st == stateSecond {
		sh, err := PS(&r.second).TryGrow(h.second, newCap)
		if err != nil {
			return RangeHandle[FH, SH]{}, err
		}
		return RangeHandle[FH, SH]{second: sh}, nil
	}

	if fh, err := PF(&r.first).TryGrow(h.first, newCap); err == nil {
		return RangeHandle[FH, SH]{first: fh}, nil
	}

	sh, err := PS(&r.second).Allocate(r.elem, newCap)
	if err != nil {
		return RangeHandle[FH, SH]{}, store.ErrNoSpace
	}
	src, srcCap := PF(&r.first).Resolve(h.first)
	dst, _ := PS(&r.second).Resolve(sh)
	memops.Move(dst, src, uintptr(min(srcCap, newCap))*r.elem.Size)

	PF(&r.first).Deallocate(h.first)
	r.st = stateSecond
	return RangeHandle[FH, SH]{second: sh}, nil
}

// TryShrink shrinks within the active child only. A spilled composite stays
// on the second child: reclaiming the first would need another full move,
// which is left to the caller to request explicitly.
func (r *Range[F, S, FH, SH, PF, PS]) TryShrink(h RangeHandle[FH, SH], newCap store.Capacity) (RangeHandle[FH, SH], error) {
	if r.st == stateFirst {
		fh, err := PF(&r.first).TryShrink(h.first, newCap)
		if err != nil {
			return RangeHandle[FH, SH]{}, err
		}
		return RangeHandle[FH, SH]{first: fh}, nil
	}
	sh, err := PS(&r.second).TryShrink(h.second, newCap)
	if err != nil {
		return RangeHandle[FH, SH]{}, err
	}
	return RangeHandle[FH, SH]{second: sh}, nil
}
