package malloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ProgramLikeABeast/malloc/internal/format"
)

func TestCheckFreshHeap(t *testing.T) {
	al := newTestAllocator(t)
	require.NoError(t, al.Check())
}

// TestCheckAfterAllocFreeSweep runs release(allocate(s)) for a size sweep
// around every bucket boundary and requires a clean heap after each pair.
func TestCheckAfterAllocFreeSweep(t *testing.T) {
	sizes := []int{
		1, 8, 9, 16, 24, // tiny
		247, 248, 249, // around the last exact bucket
		255, 256, 257, // around the small threshold
		32759, 32760, 32761, // around the large threshold
		100000, 1 << 19, // very large
	}

	for _, size := range sizes {
		al := newTestAllocatorWithLimit(t, 1<<21)

		ref, _, err := al.Malloc(size)
		require.NoError(t, err, "Malloc(%d)", size)
		require.NoError(t, al.Check(), "after Malloc(%d)", size)

		require.NoError(t, al.Free(ref))
		require.NoError(t, al.Check(), "after Free of %d-byte block", size)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	t.Run("stale left-allocated flag", func(t *testing.T) {
		al := newTestAllocator(t)
		ref, _, err := al.Malloc(24)
		require.NoError(t, err)

		// The block's left neighbor is the allocated prologue; clearing
		// the flag makes the boundary tags lie.
		format.SetLeftAllocated(al.bytes(), ref-format.WordSize, false)
		require.Error(t, al.Check())
	})

	t.Run("header length mismatch", func(t *testing.T) {
		al := newTestAllocator(t)
		ref, _, err := al.Malloc(24)
		require.NoError(t, err)

		h := blockHeader(al, ref)
		h.Size += format.Alignment
		format.PutHeader(al.bytes(), ref-format.WordSize, h)
		require.Error(t, al.Check())
	})

	t.Run("clobbered bucket head", func(t *testing.T) {
		al := newTestAllocator(t)
		ref, _, err := al.Malloc(24)
		require.NoError(t, err)
		require.NoError(t, al.Free(ref))

		// Point the bucket at an allocated region.
		al.setBucketHead(classOf(24), format.PrologueOffset)
		require.Error(t, al.Check())
	})
}
