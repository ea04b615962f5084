package malloc

import (
	"github.com/ProgramLikeABeast/malloc/internal/format"
)

// Free releases a previously allocated payload. The zero Ref is accepted
// and does nothing. Only cheap bounds and alignment checks guard against
// foreign references; deeper corruption is the Check walker's job.
func (al *Allocator) Free(ref Ref) error {
	if !al.ready {
		return ErrNotInitialized
	}
	if ref == 0 {
		return nil
	}
	if ref < format.FirstBlockOffset+format.WordSize || ref >= al.arena.Size() || !format.Aligned(ref) {
		return ErrBadRef
	}
	al.stats.FreeCalls++
	al.stats.BytesFreed += int64(blockPayloadLen(al, ref))
	al.freeBlock(ref)
	return nil
}

func blockPayloadLen(al *Allocator, ref Ref) int {
	return format.ReadHeader(al.bytes(), ref-format.WordSize).Size
}

// freeBlock turns the block whose payload starts at p into free space,
// merging it with whichever physical neighbors are free. The four-way merge
// matrix from the design collapses into two independent absorptions: the
// right neighbor extends the span in place, the left neighbor moves the
// span's start backward. The left neighbor's footer is read only when this
// block's left-allocated flag says the neighbor is free; the prologue and
// epilogue sentinels are permanently allocated, so neither direction needs
// an edge case.
func (al *Allocator) freeBlock(p int) {
	b := al.bytes()
	hdrOff := p - format.WordSize
	h := format.ReadHeader(b, hdrOff)
	right := format.ReadHeader(b, p+h.Size)

	start := hdrOff
	total := h.Size
	leftAllocated := true

	if !right.Allocated {
		if right.Size > format.WordSize {
			al.removeFree(p+h.Size, right.Size)
		}
		total += format.WordSize + right.Size
		al.stats.CoalesceRight++
	}

	if !h.LeftAllocated {
		footer := format.ReadHeader(b, hdrOff-format.WordSize)
		leftStart := hdrOff - format.WordSize - footer.Size
		if footer.Size > format.WordSize {
			al.removeFree(leftStart, footer.Size)
		}
		total += format.WordSize + footer.Size
		start = leftStart
		// The merged region inherits the flag of the leftmost survivor.
		leftAllocated = footer.LeftAllocated
		al.stats.CoalesceLeft++
	}

	merged := format.Header{Size: total, LeftAllocated: leftAllocated}
	format.PutHeader(b, start, merged)
	format.PutHeader(b, start+total, merged) // footer
	format.SetLeftAllocated(b, start+total+format.WordSize, false)

	// A single-word payload has no room for the two link words. Such a
	// block stays out of every bucket and is reachable only by coalescing.
	if total > format.WordSize {
		al.insertFree(classOf(total), start)
	}
}
