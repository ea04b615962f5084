// Package malloc implements a segregated free-list heap allocator over a
// growable byte arena.
//
// # Overview
//
// The allocator manages one contiguous byte range (a heap.Arena) and exposes
// four operations: Malloc, Free, Realloc, and Calloc. Free space is tracked
// in 24 segregated free lists whose head words live in the leading bytes of
// the heap itself, so the allocator keeps no block metadata outside the
// arena.
//
// # Block layout
//
// An allocated block is a header word followed by the payload. There is no
// footer: a block's size is only needed while it is free or while a right
// neighbor coalesces into it, and the following block's header records
// whether its left neighbor is allocated. A free block carries the header, a
// previous-link word, a next-link word, and a footer copy of the header in
// its last word:
//
//	allocated:  [header][payload............]
//	free:       [header][prev][next][......][footer]
//
// The header word packs the payload length with two low bits: "this block is
// allocated" and "the physical left neighbor is allocated". Payloads are
// 16-aligned and payload lengths are always 8 modulo 16, so the low three
// bits of the length are free for the flags.
//
// # Size classes
//
// Buckets 0-15 hold exact block totals of 16 through 256 bytes, so a
// non-empty small bucket is always an exact fit and the first entry is taken
// without scanning. Buckets 16-22 hold power-of-two ranges up to 32768 bytes
// and are searched best-fit with an exact-match short circuit. Bucket 23
// catches everything larger.
//
// # Coalescing and splitting
//
// Free immediately merges the released block with whichever physical
// neighbors are free, consulting the left neighbor's footer only when the
// left-allocated flag says there is one to read. Oversized matches are split
// on allocation and the remainder is released through the same path as any
// other free, so it coalesces and files itself like everything else. A
// merged region whose payload is a single word has no room for the two link
// words; it is left out of every bucket and becomes reachable again only by
// coalescing. That is deliberate dead space, traded for list integrity.
//
// # Growth
//
// When no bucket serves a request the heap grows by exactly the needed
// bytes: the epilogue sentinel slides to the new end and the vacated span
// becomes the allocated block. Growth failure is recoverable and reported as
// ErrNoSpace with the heap unchanged.
//
// # Usage
//
//	arena, err := heap.New(nil)
//	if err != nil {
//	    return err
//	}
//	al, err := malloc.New(arena)
//	if err != nil {
//	    return err
//	}
//
//	ref, payload, err := al.Malloc(64)
//	if err != nil {
//	    return err
//	}
//	copy(payload, data)
//
//	// Later
//	err = al.Free(ref)
//
// # Thread safety
//
// Allocator instances are not safe for concurrent use. The heap is owned by
// one caller context at a time; concurrent calls corrupt the free lists and
// boundary tags.
package malloc
