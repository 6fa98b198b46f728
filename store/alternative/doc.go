// Package alternative composes two storages of which exactly one is active
// at a time.
//
// Allocation tries the first child; when it cannot satisfy the request and
// nothing is live in the first child, the composite switches to the second.
// While the first child holds live data a request either fits there or
// fails outright - live data never migrates implicitly on an ordinary
// allocation.
//
// Migration happens only through Range.TryGrow: growth that no longer fits
// the first child allocates the new capacity in the second, copies the
// occupied bytes, releases the first child's range, and records the second
// as active. The transition is all-or-nothing: if the second child's
// allocation fails, the prior state and handle are unchanged. Once spilled,
// the composite stays on the second child; shrinking does not reclaim the
// first (see the small package for the canonical inline-then-allocator
// composition this policy serves).
//
// Handles hold both child handle shapes with no discriminant; the
// composite's own state decides the route, which is sound because every
// transition invalidates all previously issued handles.
//
// The six type parameters name the two child storage types, their handle
// types, and their pointer-receiver forms. They exist so children are
// embedded by value and the inline relocation guarantees survive
// composition; the small package hides the common instantiation.
package alternative
