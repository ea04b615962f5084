package malloc

import (
	"fmt"

	"github.com/ProgramLikeABeast/malloc/heap"
	"github.com/ProgramLikeABeast/malloc/internal/buf"
	"github.com/ProgramLikeABeast/malloc/internal/format"
)

// Allocator manages one arena as a boundary-tagged heap with segregated
// free lists. All state besides the counters lives inside the arena itself.
type Allocator struct {
	arena *heap.Arena
	ready bool
	stats Stats

	// Test hook: called with the byte count about to be requested from the
	// arena, before every growth (nil in production).
	onGrow func(int)
}

// New initializes the heap prefix (bucket table, prologue, epilogue) in an
// empty arena and returns an allocator over it. The arena must be fresh;
// allocator state does not persist, so a non-empty arena is refused rather
// than trusted.
func New(arena *heap.Arena) (*Allocator, error) {
	if arena.Size() != 0 {
		return nil, ErrDirtyArena
	}
	if err := arena.Extend(format.PrefixSize); err != nil {
		return nil, fmt.Errorf("malloc: init: %w", err)
	}
	arena.Fill(0, 0, format.PrefixSize)

	b := arena.Bytes()
	sentinel := format.Header{Size: 0, Allocated: true, LeftAllocated: true}
	format.PutHeader(b, format.PrologueOffset, sentinel)
	format.PutHeader(b, format.FirstBlockOffset, sentinel) // initial epilogue

	return &Allocator{arena: arena, ready: true}, nil
}

func (al *Allocator) bytes() []byte {
	return al.arena.Bytes()
}

// Malloc returns a 16-aligned payload of at least size bytes. The search
// walks buckets upward from the request's class: small buckets are exact by
// construction so their first entry is taken outright; larger buckets are
// scanned best-fit with an exact-match short circuit. When the starting
// class is a small one and its bucket is empty, the first advance skips two
// classes, biasing toward buckets more likely to hold a reusable block. If
// no bucket serves, the heap grows by exactly the needed bytes.
//
// The returned slice views the arena's current backing. On platforms
// without the mapped backend, heap growth reallocates that backing, which
// detaches previously returned slices; callers holding a payload across
// later allocations should re-resolve it with Payload.
func (al *Allocator) Malloc(size int) (Ref, []byte, error) {
	if !al.ready {
		return 0, nil, ErrNotInitialized
	}
	if size <= 0 {
		return 0, nil, ErrBadSize
	}
	al.stats.MallocCalls++

	need := format.AlignPayload(size)
	class := classOf(need)
	jumped := false

	for class < format.NumClasses {
		bestOff, bestLen := 0, 0

		for cur := al.bucketHead(class); cur != 0; cur = al.freeNext(cur) {
			have := format.ReadHeader(al.bytes(), cur).Size
			if class < format.NumSmallClasses {
				// Exact bucket: every entry fits, take the first.
				return al.placeBlock(cur, need, have)
			}
			if have == need {
				return al.placeBlock(cur, need, have)
			}
			if have > need && (bestOff == 0 || have < bestLen) {
				bestOff, bestLen = cur, have
			}
		}

		if bestOff != 0 {
			return al.placeBlock(bestOff, need, bestLen)
		}

		if class < format.NumSmallClasses && !jumped {
			// First advance out of an empty small bucket: hop over the
			// next class too when it has nothing to offer.
			jumped = true
			class++
			if class < format.NumClasses && al.bucketHead(class) == 0 {
				class++
			}
		} else {
			class++
		}
	}

	return al.growAndPlace(need)
}

// Payload returns the byte slice currently backing the allocation at ref.
// Unlike the slice returned by Malloc, it always views the live backing, so
// it is the way to reach a payload held across heap growth.
func (al *Allocator) Payload(ref Ref) ([]byte, error) {
	if !al.ready {
		return nil, ErrNotInitialized
	}
	if ref < format.FirstBlockOffset+format.WordSize || ref >= al.arena.Size() || !format.Aligned(ref) {
		return nil, ErrBadRef
	}
	h := format.ReadHeader(al.bytes(), ref-format.WordSize)
	if !h.Allocated {
		return nil, ErrBadRef
	}
	return al.bytes()[ref : ref+h.Size], nil
}

// placeBlock carves an allocated block of payload length need out of the
// free block with header at off and payload length have. The remainder of a
// split is released through the regular free path so it coalesces and files
// itself like any other freed block.
func (al *Allocator) placeBlock(off, need, have int) (Ref, []byte, error) {
	b := al.bytes()
	leftAllocated := format.ReadHeader(b, off).LeftAllocated

	al.removeFree(off, have)
	format.PutHeader(b, off, format.Header{Size: need, Allocated: true, LeftAllocated: leftAllocated})

	if need < have {
		remOff := off + need + format.WordSize
		rem := format.Header{Size: have - need - format.WordSize, LeftAllocated: true}
		format.PutHeader(b, remOff, rem)
		format.PutHeader(b, off+have, rem) // remainder footer, last word of the old block
		al.stats.SplitCount++
		al.freeBlock(remOff + format.WordSize)
	} else {
		format.SetLeftAllocated(b, off+have+format.WordSize, true)
	}

	al.stats.BytesAllocated += int64(need)
	al.stats.Reused++

	payload := b[off+format.WordSize : off+format.WordSize+need]
	return off + format.WordSize, payload, nil
}

// growAndPlace extends the arena by exactly one block of payload length
// need, slides the epilogue to the new end, and hands back the vacated span
// as the allocated block.
func (al *Allocator) growAndPlace(need int) (Ref, []byte, error) {
	grow := need + format.WordSize
	if al.onGrow != nil {
		al.onGrow(grow)
	}

	oldEpi := al.arena.Size() - format.WordSize
	if err := al.arena.Extend(grow); err != nil {
		debugLogf("grow %d failed: %v", grow, err)
		if debugAlloc {
			al.dumpState()
		}
		return 0, nil, ErrNoSpace
	}

	b := al.bytes()
	epi := format.DecodeHeader(buf.U64LE(b, oldEpi))
	newEpi := oldEpi + grow

	format.PutHeader(b, newEpi, epi)
	format.PutHeader(b, oldEpi, format.Header{Size: need, Allocated: true, LeftAllocated: epi.LeftAllocated})
	format.SetLeftAllocated(b, newEpi, true)

	al.stats.GrowCalls++
	al.stats.GrowBytes += int64(grow)
	al.stats.BytesAllocated += int64(need)
	logGrowf("grow #%d: need=%d heap=%d", al.stats.GrowCalls, need, al.arena.Size())

	payload := b[oldEpi+format.WordSize : oldEpi+format.WordSize+need]
	return oldEpi + format.WordSize, payload, nil
}
