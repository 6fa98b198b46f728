//go:build unix

package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/storkit/store"
)

// TestMmap_AllocWriteFree tests a write through a mapped region and its
// release.
func TestMmap_AllocWriteFree(t *testing.T) {
	m := NewMmap()

	l := store.Layout{Size: 128, Align: 64}
	p, err := m.Alloc(l)
	require.NoError(t, err, "anonymous mapping should succeed")
	assert.Zero(t, uintptr(p)%64, "page-aligned block satisfies the request")

	*(*uint64)(p) = 0xCAFE
	assert.Equal(t, uint64(0xCAFE), *(*uint64)(p))

	m.Free(p, l)
	assert.Zero(t, m.Live())

	m.Free(p, l) // double free is a no-op
}

// TestMmap_OversizedAlignment tests rejection of alignments beyond a page.
func TestMmap_OversizedAlignment(t *testing.T) {
	m := NewMmap()

	_, err := m.Alloc(store.Layout{Size: 8, Align: 1 << 20})
	assert.ErrorIs(t, err, store.ErrNoSpace)
}
