package malloc

import (
	"fmt"

	"github.com/ProgramLikeABeast/malloc/internal/format"
)

// Check walks the entire heap and every bucket list and reports the first
// structural violation found, or nil when the heap is sound. It verifies:
//
//   - the prologue and epilogue sentinels are intact
//   - every payload address is 16-aligned and inside the heap
//   - the block chain tiles the heap exactly, landing on the epilogue
//   - every left-allocated flag matches the true state of the left neighbor
//   - no two adjacent blocks are both free
//   - every free block's footer mirrors its header
//   - every listable free block sits in exactly the bucket its size maps
//     to, with consistent back links
//
// Check is for tests and debugging; it is O(heap) and never runs on the
// allocation path. A failure means the allocator itself is broken, not that
// the caller did something recoverable.
func (al *Allocator) Check() error {
	if !al.ready {
		return ErrNotInitialized
	}
	b := al.bytes()
	heapEnd := al.arena.Size()
	epiOff := heapEnd - format.WordSize

	pro := format.ReadHeader(b, format.PrologueOffset)
	if pro.Size != 0 || !pro.Allocated {
		return fmt.Errorf("malloc: prologue corrupt: %+v", pro)
	}
	epi := format.ReadHeader(b, epiOff)
	if epi.Size != 0 || !epi.Allocated {
		return fmt.Errorf("malloc: epilogue corrupt at %d: %+v", epiOff, epi)
	}

	// Pass 1: physical walk from the first block to the epilogue.
	listable := make(map[int]int) // header offset -> payload length
	prevAllocated := true         // prologue
	prevFree := false
	cur := format.FirstBlockOffset

	for cur < epiOff {
		if !format.Aligned(cur + format.WordSize) {
			return fmt.Errorf("malloc: unaligned payload at %d", cur+format.WordSize)
		}
		h := format.ReadHeader(b, cur)
		if h.Size <= 0 || h.Size%format.WordSize != 0 {
			return fmt.Errorf("malloc: bad block length %d at %d", h.Size, cur)
		}
		if cur+h.Size+format.WordSize > heapEnd {
			return fmt.Errorf("malloc: block at %d runs past the heap end", cur)
		}
		if h.LeftAllocated != prevAllocated {
			return fmt.Errorf("malloc: stale left-allocated flag at %d", cur)
		}
		if !h.Allocated {
			if prevFree {
				return fmt.Errorf("malloc: adjacent free blocks at %d", cur)
			}
			footer := format.ReadHeader(b, cur+h.Size)
			if footer.Size != h.Size || footer.Allocated {
				return fmt.Errorf("malloc: footer mismatch at %d: header %d, footer %+v", cur, h.Size, footer)
			}
			if h.Size > format.WordSize {
				listable[cur] = h.Size
			}
		}
		prevFree = !h.Allocated
		prevAllocated = h.Allocated
		cur += h.Size + format.WordSize
	}
	if cur != epiOff {
		return fmt.Errorf("malloc: block chain lands at %d, epilogue at %d", cur, epiOff)
	}
	if epi.LeftAllocated != prevAllocated {
		return fmt.Errorf("malloc: epilogue left-allocated flag stale")
	}

	// Pass 2: every bucket entry must be a listable free block of the
	// matching class, and every listable free block must appear exactly
	// once across all buckets.
	for class := 0; class < format.NumClasses; class++ {
		prev := 0
		for off := al.bucketHead(class); off != 0; off = al.freeNext(off) {
			size, ok := listable[off]
			if !ok {
				return fmt.Errorf("malloc: bucket %d links %d, which is not a listable free block", class, off)
			}
			if classOf(size) != class {
				return fmt.Errorf("malloc: block at %d (payload %d) filed in bucket %d, want %d",
					off, size, class, classOf(size))
			}
			if al.freePrev(off) != prev {
				return fmt.Errorf("malloc: back link mismatch at %d in bucket %d", off, class)
			}
			delete(listable, off) // catches duplicates too
			prev = off
		}
	}
	for off := range listable {
		return fmt.Errorf("malloc: free block at %d missing from its bucket", off)
	}

	return nil
}
