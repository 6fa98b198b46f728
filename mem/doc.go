// Package mem provides the general allocator capability consumed by
// allocator-backed storages.
//
// # Overview
//
// An Allocator hands out raw memory blocks described by a store.Layout and
// takes them back with the exact layout used at allocation. It is a
// capability, not a manager: every implementation here is scoped to the
// storages that own it and never shares free blocks across unrelated
// objects.
//
// # Implementations
//
//   - Heap: backed by the Go runtime. Each block is retained internally
//     until freed, so the block's bytes stay reachable.
//   - Bump: a fixed region with bump-pointer allocation. O(1) alloc, no-op
//     free; Reset reclaims the whole region at once. Suited to storages with
//     an all-at-once teardown.
//   - Mmap: page-granular anonymous mappings (unix). Off-heap memory that
//     the Go runtime never scans or moves.
//   - Null: always fails. Exercises failure paths.
//   - Spy: wraps another allocator and counts allocations and frees, for
//     balance assertions in tests.
//
// # Garbage collector caveat
//
// Blocks are untyped bytes. The collector does not scan them, so a value
// stored in one that contains Go pointers does not keep the referenced
// objects alive by itself. Callers storing pointerful values must keep the
// referents reachable elsewhere, or stick to pointer-free element types for
// off-heap allocators. Using a reclaimed block is undefined behavior.
//
// # Thread safety
//
// Allocator instances are not thread-safe; callers synchronize externally.
package mem
