//go:build unix

package mem

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/storkit/store"
)

// Mmap allocates page-granular anonymous mappings. The memory lives outside
// the Go heap, so the runtime never scans or moves it; the garbage collector
// caveat in the package documentation applies in full.
//
// The zero value is ready to use.
type Mmap struct {
	regions map[unsafe.Pointer][]byte
}

// NewMmap returns an empty Mmap allocator.
func NewMmap() *Mmap { return &Mmap{} }

// Alloc maps a fresh anonymous region of at least l.Size bytes. Page
// alignment satisfies any l.Align up to the system page size; larger
// alignments fail with ErrNoSpace.
func (m *Mmap) Alloc(l store.Layout) (unsafe.Pointer, error) {
	l = normalize(l)

	page := uintptr(unix.Getpagesize())
	if l.Align > page {
		return nil, store.ErrNoSpace
	}

	length := store.AlignUp(l.Size, page)
	data, err := unix.Mmap(-1, 0, int(length),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, store.ErrNoSpace
	}

	p := unsafe.Pointer(&data[0])
	if m.regions == nil {
		m.regions = make(map[unsafe.Pointer][]byte)
	}
	m.regions[p] = data
	return p, nil
}

// Free unmaps the region. Unknown pointers are ignored, so a double free is
// a no-op rather than a crash.
func (m *Mmap) Free(p unsafe.Pointer, l store.Layout) {
	data, ok := m.regions[p]
	if !ok {
		return
	}
	delete(m.regions, p)
	_ = unix.Munmap(data)
}

// Live returns the number of regions currently mapped.
func (m *Mmap) Live() int { return len(m.regions) }
