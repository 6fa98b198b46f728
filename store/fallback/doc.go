// Package fallback composes two storages that are both alive at all times,
// preferring the cheaper first child.
//
// Allocation tries the first child and falls back to the second; a request
// exceeding both fails with store.ErrNoSpace. Unlike package alternative
// there is no active/inactive state: each handle carries an internal tag
// naming the child that issued it, so every later operation routes itself
// without the caller remembering which child satisfied the request.
// Elements held by one child are untouched by the other child's traffic.
// Range tracks the occupancy of its single-range first child itself: while
// a range lives there, further requests route to the second child instead
// of aliasing the region.
//
// TryGrow and TryShrink first attempt the operation in the owning child; on
// failure they move the occupied bytes into the other child and release the
// old range. Both children remain alive afterwards - fallback never tears a
// child down. A shrink that no longer needs the second child therefore
// naturally returns to the first one.
package fallback
