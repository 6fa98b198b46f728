package raw

import "github.com/joshuapare/storkit/store"

// Vec is a growable sequence over an embedded range storage. The storage
// hands out uninitialized capacity; Vec tracks the initialized prefix
// itself.
type Vec[T any, H any, S any, PS store.RangePtr[S, H]] struct {
	storage   S
	handle    H
	len       store.Capacity
	cap       store.Capacity
	allocated bool
}

// NewVec returns a vector over storage with room for capacity elements
// reserved up front. A zero capacity defers the first allocation to the
// first Push.
func NewVec[T any, H any, S any, PS store.RangePtr[S, H]](storage S, capacity store.Capacity) (Vec[T, H, S, PS], error) {
	v := Vec[T, H, S, PS]{storage: storage}
	if capacity > 0 {
		h, err := store.AllocateRange[H, T](PS(&v.storage), capacity)
		if err != nil {
			return Vec[T, H, S, PS]{}, err
		}
		v.handle = h
		v.cap = capacity
		v.allocated = true
	}
	return v, nil
}

// Len returns the number of initialized elements.
func (v *Vec[T, H, S, PS]) Len() int { return int(v.len) }

// Cap returns the allocated capacity.
func (v *Vec[T, H, S, PS]) Cap() int { return int(v.cap) }

// Push appends value, growing the range when the initialized prefix has
// filled the capacity. Fails with store.ErrNoSpace once the storage's
// maximum capacity is exhausted.
func (v *Vec[T, H, S, PS]) Push(value T) error {
	if v.len == v.cap {
		if err := v.grow(v.len + 1); err != nil {
			return err
		}
	}
	store.Slice[T](PS(&v.storage), v.handle)[v.len] = value
	v.len++
	return nil
}

// Pop removes and returns the last element.
func (v *Vec[T, H, S, PS]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	s := store.Slice[T](PS(&v.storage), v.handle)
	value := s[v.len]
	s[v.len] = zero
	return value, true
}

// At resolves the element at index i. The pointer follows the same validity
// rules as store.Get.
func (v *Vec[T, H, S, PS]) At(i int) *T {
	return &store.Slice[T](PS(&v.storage), v.handle)[:v.len][i]
}

// Close destroys all initialized elements and releases the range.
func (v *Vec[T, H, S, PS]) Close() {
	if !v.allocated {
		v.len = 0
		return
	}
	s := store.Slice[T](PS(&v.storage), v.handle)
	var zero T
	for i := store.Capacity(0); i < v.len; i++ {
		s[i] = zero
	}
	PS(&v.storage).Deallocate(v.handle)
	v.len, v.cap, v.allocated = 0, 0, false
}

// grow doubles the capacity, pre-validated against the storage's maximum so
// a doubling strategy degrades to "whatever is left" instead of failing
// early.
func (v *Vec[T, H, S, PS]) grow(minCap store.Capacity) error {
	s := PS(&v.storage)
	maxCap := s.MaximumCapacity(store.LayoutOf[T]())
	if minCap > maxCap {
		return store.ErrNoSpace
	}

	newCap := v.cap * 2
	if newCap < v.cap {
		// Doubling wrapped the capacity type.
		newCap = maxCap
	}
	if newCap < 4 {
		newCap = 4
	}
	if newCap < minCap {
		newCap = minCap
	}
	if newCap > maxCap {
		newCap = maxCap
	}

	if !v.allocated {
		h, err := store.AllocateRange[H, T](s, newCap)
		if err != nil {
			return err
		}
		v.handle = h
		v.cap = newCap
		v.allocated = true
		return nil
	}

	h, err := store.Grow[T](s, v.handle, newCap)
	if err != nil {
		return err
	}
	v.handle = h
	v.cap = newCap
	return nil
}
