package malloc

import (
	"github.com/ProgramLikeABeast/malloc/internal/buf"
	"github.com/ProgramLikeABeast/malloc/internal/format"
)

// Realloc resizes the allocation at ref to at least size bytes.
//
// The zero ref allocates fresh; size zero frees and returns the zero Ref. A
// shrink rewrites the header in place and releases the carved-off remainder
// through the free path, so it coalesces with whatever follows. A grow
// allocates a new block, copies the old payload, and frees the old block;
// if the fresh allocation fails the old block is untouched and the error is
// returned. An equal aligned size is a no-op.
//
// The returned slice carries Malloc's validity caveat: later heap growth can
// detach it on platforms without the mapped backend; re-resolve with Payload.
func (al *Allocator) Realloc(ref Ref, size int) (Ref, []byte, error) {
	if !al.ready {
		return 0, nil, ErrNotInitialized
	}
	if ref == 0 {
		return al.Malloc(size)
	}
	if size == 0 {
		return 0, nil, al.Free(ref)
	}
	if size < 0 {
		return 0, nil, ErrBadSize
	}
	if ref < format.FirstBlockOffset+format.WordSize || ref >= al.arena.Size() || !format.Aligned(ref) {
		return 0, nil, ErrBadRef
	}
	al.stats.ReallocCalls++

	b := al.bytes()
	hdrOff := ref - format.WordSize
	h := format.ReadHeader(b, hdrOff)
	want := format.AlignPayload(size)

	switch {
	case want < h.Size:
		// Shrink in place and carve the tail into its own free block.
		format.PutHeader(b, hdrOff, format.Header{Size: want, Allocated: true, LeftAllocated: h.LeftAllocated})
		remOff := ref + want
		rem := format.Header{Size: h.Size - want - format.WordSize, LeftAllocated: true}
		format.PutHeader(b, remOff, rem)
		format.PutHeader(b, ref+h.Size-format.WordSize, rem) // footer in the old block's last word
		al.stats.SplitCount++
		al.stats.BytesFreed += int64(h.Size - want)
		al.freeBlock(remOff + format.WordSize)
		return ref, b[ref : ref+want], nil

	case want > h.Size:
		newRef, newPayload, err := al.Malloc(size)
		if err != nil {
			return 0, nil, err
		}
		al.arena.Copy(newRef, ref, h.Size)
		if err := al.Free(ref); err != nil {
			return 0, nil, err
		}
		return newRef, newPayload, nil

	default:
		return ref, b[ref : ref+h.Size], nil
	}
}

// Calloc allocates a zeroed payload for count elements of size bytes each.
// An overflowing count*size is rejected as a bad size.
func (al *Allocator) Calloc(count, size int) (Ref, []byte, error) {
	if !al.ready {
		return 0, nil, ErrNotInitialized
	}
	if count <= 0 || size <= 0 {
		return 0, nil, ErrBadSize
	}
	total, ok := buf.MulOverflowSafe(count, size)
	if !ok {
		return 0, nil, ErrBadSize
	}

	ref, payload, err := al.Malloc(total)
	if err != nil {
		return 0, nil, err
	}
	al.arena.Fill(ref, 0, total)
	al.stats.CallocCalls++
	return ref, payload, nil
}
