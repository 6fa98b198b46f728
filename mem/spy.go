package mem

import (
	"unsafe"

	"github.com/joshuapare/storkit/store"
)

// Spy wraps another allocator and counts traffic. Tests use it to assert
// that allocations and frees balance, or that a path never reached the
// backend at all.
type Spy struct {
	Inner Allocator

	Allocs int
	Frees  int
}

// NewSpy wraps inner in a counting allocator.
func NewSpy(inner Allocator) *Spy { return &Spy{Inner: inner} }

func (s *Spy) Alloc(l store.Layout) (unsafe.Pointer, error) {
	p, err := s.Inner.Alloc(l)
	if err != nil {
		return nil, err
	}
	s.Allocs++
	return p, nil
}

func (s *Spy) Free(p unsafe.Pointer, l store.Layout) {
	s.Frees++
	s.Inner.Free(p, l)
}

// Balanced reports whether every allocation has been freed.
func (s *Spy) Balanced() bool { return s.Allocs == s.Frees }
