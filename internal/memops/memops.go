// Package memops holds the raw byte-copy primitive shared by the storages
// that migrate ranges between backing regions.
package memops

import "unsafe"

// Move copies n bytes from src to dst. The regions may be identical (the
// copy is skipped) but must not partially overlap.
func Move(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 || dst == src {
		return
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}
