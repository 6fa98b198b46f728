// Package inline implements storages whose backing bytes live inside the
// storage value itself.
//
// The region's size and alignment are fixed by the buffer type parameter B
// at compile time ([16]byte, [4]uint64, a struct, ...). Requests that exceed
// the region fail immediately with store.ErrNoSpace - an inline storage
// never reaches for outside memory.
//
// Handles carry no address. Element and Range handles are offset-free unit
// values, Pool handles carry a slot index. Resolve recomputes the live
// address from the receiver at call time, which is the mechanism that makes
// relocation safe: copy the owning collection to a new stack location and
// every previously issued handle still resolves into the copy's own bytes.
//
// Choose B with the alignment the stored elements need; a [16]byte region is
// byte-aligned and rejects an int64 even though the size would fit.
package inline
