package raw

import "github.com/joshuapare/storkit/store"

// node is the storage shape of one list entry: the value plus the handle of
// its successor.
type node[T any, H any] struct {
	value   T
	next    H
	hasNext bool
}

// List is a singly linked list over an embedded multi-element storage
// (inline.Pool, alloc.Element, or a fallback composite of both).
type List[T any, H any, S any, PS store.ElementPtr[S, H]] struct {
	storage S
	head    H
	hasHead bool
	size    int
}

// NewList returns an empty list over storage.
func NewList[T any, H any, S any, PS store.ElementPtr[S, H]](storage S) List[T, H, S, PS] {
	return List[T, H, S, PS]{storage: storage}
}

// Len returns the number of elements.
func (l *List[T, H, S, PS]) Len() int { return l.size }

// PushFront prepends value. The caller keeps its value on failure.
func (l *List[T, H, S, PS]) PushFront(value T) error {
	h, err := store.Create[H](PS(&l.storage), node[T, H]{
		value:   value,
		next:    l.head,
		hasNext: l.hasHead,
	})
	if err != nil {
		return err
	}
	l.head = h
	l.hasHead = true
	l.size++
	return nil
}

// PopFront removes and returns the first element.
func (l *List[T, H, S, PS]) PopFront() (T, bool) {
	var zero T
	if !l.hasHead {
		return zero, false
	}
	s := PS(&l.storage)
	n := *store.Get[node[T, H]](s, l.head)
	store.Destroy[node[T, H]](s, l.head)
	l.head = n.next
	l.hasHead = n.hasNext
	l.size--
	return n.value, true
}

// Front resolves the first element. Validity follows store.Get.
func (l *List[T, H, S, PS]) Front() *T {
	return &store.Get[node[T, H]](PS(&l.storage), l.head).value
}

// Close destroys every element.
func (l *List[T, H, S, PS]) Close() {
	for l.hasHead {
		l.PopFront()
	}
}
