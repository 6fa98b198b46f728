package alternative

import (
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

type state uint8

const (
	stateFirst state = iota
	stateSecond
)

// Element composes two single-element storages; exactly one is active.
type Element[F, S, FH, SH any, PF store.ElementPtr[F, FH], PS store.ElementPtr[S, SH]] struct {
	first  F
	second S
	st     state
	live   bool
}

// ElementHandle holds both child handle shapes; the issuing composite's
// state selects which one is meaningful.
type ElementHandle[FH, SH any] struct {
	first  FH
	second SH
}

// NewElement returns a composite starting on the first child.
func NewElement[F, S, FH, SH any, PF store.ElementPtr[F, FH], PS store.ElementPtr[S, SH]](first F, second S) Element[F, S, FH, SH, PF, PS] {
	return Element[F, S, FH, SH, PF, PS]{first: first, second: second}
}

// Allocate tries the active child; an empty first child may spill to the
// second, after which the second is active.
func (e *Element[F, S, FH, SH, PF, PS]) Allocate(l store.Layout) (ElementHandle[FH, SH], error) {
	if e.st == stateFirst {
		if fh, err := PF(&e.first).Allocate(l); err == nil {
			e.live = true
			return ElementHandle[FH, SH]{first: fh}, nil
		}
		if e.live {
			// Live data in the first child pins the composite; the
			// request either fits there or fails.
			return ElementHandle[FH, SH]{}, store.ErrNoSpace
		}
		sh, err := PS(&e.second).Allocate(l)
		if err != nil {
			return ElementHandle[FH, SH]{}, store.ErrNoSpace
		}
		e.st = stateSecond
		e.live = true
		return ElementHandle[FH, SH]{second: sh}, nil
	}

	sh, err := PS(&e.second).Allocate(l)
	if err != nil {
		return ElementHandle[FH, SH]{}, err
	}
	e.live = true
	return ElementHandle[FH, SH]{second: sh}, nil
}

// Deallocate releases the slot in the active child.
func (e *Element[F, S, FH, SH, PF, PS]) Deallocate(h ElementHandle[FH, SH]) {
	if e.st == stateFirst {
		PF(&e.first).Deallocate(h.first)
	} else {
		PS(&e.second).Deallocate(h.second)
	}
	e.live = false
}

// Resolve routes to the active child.
func (e *Element[F, S, FH, SH, PF, PS]) Resolve(h ElementHandle[FH, SH]) unsafe.Pointer {
	if e.st == stateFirst {
		return PF(&e.first).Resolve(h.first)
	}
	return PS(&e.second).Resolve(h.second)
}
