// Package store defines the storage contracts that let collections hold
// opaque handles instead of raw pointers.
//
// # Overview
//
// A collection built on this package never keeps a pointer to its elements
// across operations. It keeps a Handle, issued by a storage, and resolves the
// handle to a live address only for the duration of a single access. Because
// no address survives between operations, the backing storage is free to move
// in memory - including storages embedded directly inside the collection's
// own value - which makes allocation-free and relocatable collections
// possible.
//
// # Contracts
//
// Two contracts cover the allocation shapes collections need:
//
//   - ElementStorage: one slot per allocation, sized for a single element.
//     Used by owning single-value containers and linked structures.
//   - RangeStorage: one contiguous run of slots with a capacity counted in
//     elements. Used by growable sequences and double-ended queues. The
//     storage never tracks which slots hold initialized values; the caller
//     owns that split, because different sequence shapes (prefix-from-zero
//     vs. wrapped window) need different policies.
//
// Both contracts are generic over the handle type H alone. Requests are
// described by a Layout (size and alignment), so one storage value can serve
// any element type. Typed access is layered on top as generic functions:
//
//	h, err := store.Create[inline.Handle](&s, uint64(42))
//	v := store.Get[uint64](&s, h)
//	store.Destroy[uint64](&s, h)
//
// # Storage strategies
//
// Four strategies implement the contracts interchangeably:
//
//   - store/alloc: delegates to a general allocator (package mem); handles
//     carry real addresses.
//   - store/inline: backing bytes live inside the storage value itself;
//     handles carry no address, so they survive relocation of the owner.
//   - store/alternative: exactly one of two child storages is active;
//     growth past the first child migrates to the second.
//   - store/fallback: both children live at once; the cheaper first child
//     is preferred, the second absorbs overflow.
//
// The store/small package packages the common Alternative(inline, alloc)
// composition behind short aliases.
//
// # Handles
//
// A handle is a copyable value meaningful only to the exact storage instance
// that issued it. It is created by one Allocate or Create call, released by
// exactly one Deallocate or Destroy call, and may be resolved any number of
// times in between. Resolving never consumes the handle. Presenting a handle
// to another storage, or after release, is a contract violation - not a
// checked error.
//
// Pointers returned by Resolve, Get or Slice are invalidated by any mutating
// call on the storage and by relocation of the storage's owner. The handle
// itself is never invalidated by relocation.
//
// # Unsized elements
//
// Elements whose shape is only known at run time carry their metadata in the
// handle, not in the storage. AnyHandle pairs a storage handle with a runtime
// type descriptor; SliceHandle pairs one with a length. Coerce and
// CoerceArray convert a concretely typed handle into one of these wider views
// without touching the underlying memory.
//
// # Failure model
//
// Allocation paths fail with ErrNoSpace and nothing else. The error carries
// no diagnostics: composition (alternative, fallback) is the retry policy,
// not internal loops. Create never consumes the caller's value on failure.
//
// # Thread safety
//
// Storage instances are not thread-safe. A storage is mutably owned by one
// collection or parent storage; concurrent access requires external
// synchronization.
package store
