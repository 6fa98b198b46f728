// Package alloc implements storages that delegate to a general allocator
// (package mem).
//
// Handles encode the address returned by the allocator together with the
// layout of the request, so releasing a block needs no lookup. Failure of
// the underlying allocator surfaces as store.ErrNoSpace unchanged.
//
// Element places no bound on the number of live handles - each allocation
// is its own block - so it serves both the single-element and the
// multi-element role. Range relocates on grow and shrink by allocating a
// fresh block, copying the occupied bytes, and freeing the old one.
package alloc
