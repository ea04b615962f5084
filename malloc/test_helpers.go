package malloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ProgramLikeABeast/malloc/heap"
	"github.com/ProgramLikeABeast/malloc/internal/format"
)

// defaultTestLimit bounds test arenas well below the production default so a
// runaway growth loop fails fast instead of eating memory.
const defaultTestLimit = 1 << 20

// newTestAllocator builds an allocator over a fresh bounded arena and wires
// cleanup into t.
func newTestAllocator(t *testing.T) *Allocator {
	t.Helper()
	return newTestAllocatorWithLimit(t, defaultTestLimit)
}

func newTestAllocatorWithLimit(t *testing.T, limit int) *Allocator {
	t.Helper()
	arena, err := heap.New(&heap.Options{Limit: limit})
	require.NoError(t, err)
	t.Cleanup(func() { _ = arena.Close() })

	al, err := New(arena)
	require.NoError(t, err)
	return al
}

// blockHeader decodes the header of the block whose payload starts at ref.
func blockHeader(al *Allocator, ref Ref) format.Header {
	return format.ReadHeader(al.bytes(), ref-format.WordSize)
}

// forbidGrowth makes any heap growth fail the test.
func forbidGrowth(t *testing.T, al *Allocator) {
	t.Helper()
	al.onGrow = func(n int) {
		t.Fatalf("unexpected heap growth of %d bytes", n)
	}
}

// fillPattern writes a deterministic byte pattern derived from seed.
func fillPattern(p []byte, seed byte) {
	for i := range p {
		p[i] = seed + byte(i)
	}
}

// requirePattern checks that p still carries the pattern fillPattern wrote.
func requirePattern(t *testing.T, p []byte, seed byte) {
	t.Helper()
	for i := range p {
		require.Equal(t, seed+byte(i), p[i], "payload corrupted at offset %d", i)
	}
}
