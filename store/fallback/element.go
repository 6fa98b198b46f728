package fallback

import (
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

type child uint8

const (
	childFirst child = iota + 1
	childSecond
)

// Element composes two element storages, both always alive. With
// multi-capable children (alloc.Element, inline.Pool) the composite itself
// supports any number of live handles spread across both children. A
// single-slot first child (inline.Element) tracks no occupancy of its own,
// so with one the caller must keep at most one live first-issued handle;
// compose over inline.Pool when several inline elements must coexist.
type Element[F, S, FH, SH any, PF store.ElementPtr[F, FH], PS store.ElementPtr[S, SH]] struct {
	first  F
	second S
}

// ElementHandle tags a child handle with the child that issued it.
type ElementHandle[FH, SH any] struct {
	tag    child
	first  FH
	second SH
}

// NewElement returns a composite over the two children.
func NewElement[F, S, FH, SH any, PF store.ElementPtr[F, FH], PS store.ElementPtr[S, SH]](first F, second S) Element[F, S, FH, SH, PF, PS] {
	return Element[F, S, FH, SH, PF, PS]{first: first, second: second}
}

// Allocate tries the first child, then the second.
func (e *Element[F, S, FH, SH, PF, PS]) Allocate(l store.Layout) (ElementHandle[FH, SH], error) {
	if fh, err := PF(&e.first).Allocate(l); err == nil {
		return ElementHandle[FH, SH]{tag: childFirst, first: fh}, nil
	}
	sh, err := PS(&e.second).Allocate(l)
	if err != nil {
		return ElementHandle[FH, SH]{}, store.ErrNoSpace
	}
	return ElementHandle[FH, SH]{tag: childSecond, second: sh}, nil
}

// Deallocate routes to the issuing child.
func (e *Element[F, S, FH, SH, PF, PS]) Deallocate(h ElementHandle[FH, SH]) {
	if h.tag == childFirst {
		PF(&e.first).Deallocate(h.first)
	} else {
		PS(&e.second).Deallocate(h.second)
	}
}

// Resolve routes to the issuing child.
func (e *Element[F, S, FH, SH, PF, PS]) Resolve(h ElementHandle[FH, SH]) unsafe.Pointer {
	if h.tag == childFirst {
		return PF(&e.first).Resolve(h.first)
	}
	return PS(&e.second).Resolve(h.second)
}
