package malloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// layoutBlocks allocates one block per size, growing the heap so the blocks
// are physically contiguous in allocation order.
func layoutBlocks(t *testing.T, al *Allocator, sizes ...int) []Ref {
	t.Helper()
	refs := make([]Ref, len(sizes))
	for i, size := range sizes {
		ref, _, err := al.Malloc(size)
		require.NoError(t, err)
		refs[i] = ref
	}
	return refs
}

func TestCoalesceNeitherNeighborFree(t *testing.T) {
	al := newTestAllocator(t)
	refs := layoutBlocks(t, al, 24, 24, 24)

	require.NoError(t, al.Free(refs[1]))
	require.NoError(t, al.Check())

	h := blockHeader(al, refs[1])
	require.False(t, h.Allocated)
	require.Equal(t, 24, h.Size)
	require.Equal(t, refs[1]-8, al.bucketHead(classOf(24)))

	s := al.Stats()
	require.Zero(t, s.CoalesceLeft)
	require.Zero(t, s.CoalesceRight)
}

func TestCoalesceRightNeighborFree(t *testing.T) {
	al := newTestAllocator(t)
	refs := layoutBlocks(t, al, 24, 24, 24, 24)

	require.NoError(t, al.Free(refs[2]))
	require.NoError(t, al.Free(refs[1]))
	require.NoError(t, al.Check())

	// refs[1] and refs[2] merge into one 56-byte region headed at refs[1].
	h := blockHeader(al, refs[1])
	require.False(t, h.Allocated)
	require.Equal(t, 56, h.Size)
	require.Equal(t, refs[1]-8, al.bucketHead(classOf(56)))
	require.Zero(t, al.bucketHead(classOf(24)))

	require.Equal(t, 1, al.Stats().CoalesceRight)
}

func TestCoalesceLeftNeighborFree(t *testing.T) {
	al := newTestAllocator(t)
	refs := layoutBlocks(t, al, 24, 24, 24, 24)

	require.NoError(t, al.Free(refs[1]))
	require.NoError(t, al.Free(refs[2]))
	require.NoError(t, al.Check())

	h := blockHeader(al, refs[1])
	require.False(t, h.Allocated)
	require.Equal(t, 56, h.Size)
	require.Equal(t, refs[1]-8, al.bucketHead(classOf(56)))
	require.Zero(t, al.bucketHead(classOf(24)))

	require.Equal(t, 1, al.Stats().CoalesceLeft)
}

func TestCoalesceBothNeighborsFree(t *testing.T) {
	al := newTestAllocator(t)
	refs := layoutBlocks(t, al, 24, 24, 24, 24, 24)

	require.NoError(t, al.Free(refs[1]))
	require.NoError(t, al.Free(refs[3]))
	require.NoError(t, al.Free(refs[2]))
	require.NoError(t, al.Check())

	// refs[1] + refs[2] + refs[3] merge into one 88-byte region.
	h := blockHeader(al, refs[1])
	require.False(t, h.Allocated)
	require.Equal(t, 88, h.Size)
	require.Equal(t, refs[1]-8, al.bucketHead(classOf(88)))
	require.Zero(t, al.bucketHead(classOf(24)))

	s := al.Stats()
	require.Equal(t, 1, s.CoalesceLeft)
	require.Equal(t, 1, s.CoalesceRight)
}

// TestFreedMiddleBlockIsReused is the [24, 40, 24] scenario: releasing the
// middle block and allocating 24 bytes again must reuse the freed region
// without growing the heap, leaving both outer blocks intact.
func TestFreedMiddleBlockIsReused(t *testing.T) {
	al := newTestAllocator(t)

	a, aPayload, err := al.Malloc(24)
	require.NoError(t, err)
	b, _, err := al.Malloc(40)
	require.NoError(t, err)
	c, cPayload, err := al.Malloc(24)
	require.NoError(t, err)

	fillPattern(aPayload, 0x10)
	fillPattern(cPayload, 0x60)

	require.NoError(t, al.Free(b))
	require.NoError(t, al.Check())

	forbidGrowth(t, al)
	reused, _, err := al.Malloc(24)
	require.NoError(t, err)
	require.Equal(t, b, reused, "allocation must land in the freed middle block")
	require.NoError(t, al.Check())

	requirePattern(t, aPayload, 0x10)
	requirePattern(t, cPayload, 0x60)
	require.Equal(t, 24, blockHeader(al, a).Size)
	require.Equal(t, 24, blockHeader(al, c).Size)
}

func TestFreeThenSameSizeMallocReusesBlock(t *testing.T) {
	for _, size := range []int{24, 100, 300, 5000} {
		al := newTestAllocator(t)

		ref, _, err := al.Malloc(size)
		require.NoError(t, err)
		require.NoError(t, al.Free(ref))

		forbidGrowth(t, al)
		again, _, err := al.Malloc(size)
		require.NoError(t, err)
		require.Equal(t, ref, again, "Malloc(%d) after Free must reuse the block", size)
		require.NoError(t, al.Check())
	}
}
