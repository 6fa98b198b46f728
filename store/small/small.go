// Package small packages the canonical "small storage" composition:
// Alternative(inline region, allocator-backed). Values that fit the in-value
// region B never touch the allocator; the first overflow spills to it for
// good.
//
// The aliases pin the child storages and handle shapes, leaving only the
// region type to choose:
//
//	s := small.NewRange[[4]uint64](mem.NewHeap())
//	h, err := store.AllocateRange[small.RangeHandle, uint64](&s, 4)
package small

import (
	"github.com/joshuapare/storkit/mem"
	"github.com/joshuapare/storkit/store/alloc"
	"github.com/joshuapare/storkit/store/alternative"
	"github.com/joshuapare/storkit/store/inline"
)

// Element is an element storage staying inline below the size of B.
type Element[B any] = alternative.Element[
	inline.Element[B], alloc.Element,
	inline.Handle, alloc.Handle,
	*inline.Element[B], *alloc.Element,
]

// ElementHandle is the handle type issued by Element.
type ElementHandle = alternative.ElementHandle[inline.Handle, alloc.Handle]

// Range is a range storage staying inline below the capacity of B.
type Range[B any] = alternative.Range[
	inline.Range[B], alloc.Range,
	inline.RangeHandle, alloc.RangeHandle,
	*inline.Range[B], *alloc.Range,
]

// RangeHandle is the handle type issued by Range.
type RangeHandle = alternative.RangeHandle[inline.RangeHandle, alloc.RangeHandle]

// NewElement returns a small element storage spilling to a.
func NewElement[B any](a mem.Allocator) Element[B] {
	return alternative.NewElement[
		inline.Element[B], alloc.Element,
		inline.Handle, alloc.Handle,
		*inline.Element[B], *alloc.Element,
	](inline.Element[B]{}, alloc.NewElement(a))
}

// NewRange returns a small range storage spilling to a.
func NewRange[B any](a mem.Allocator) Range[B] {
	return alternative.NewRange[
		inline.Range[B], alloc.Range,
		inline.RangeHandle, alloc.RangeHandle,
		*inline.Range[B], *alloc.Range,
	](inline.Range[B]{}, alloc.NewRange(a))
}
