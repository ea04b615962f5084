package malloc

import (
	"github.com/ProgramLikeABeast/malloc/internal/buf"
	"github.com/ProgramLikeABeast/malloc/internal/format"
)

// Free-list plumbing. Each bucket head is one word in the heap prefix
// (bucket i at offset i*WordSize) holding the header offset of the first
// free block in that class. Intra-list links live in the first two payload
// words of each free block: previous at +1 word, next at +2 words. A link
// value of 0 is the list boundary, never a real block.

func bucketOffset(class int) int {
	return class * format.WordSize
}

func (al *Allocator) bucketHead(class int) int {
	return int(buf.U64LE(al.bytes(), bucketOffset(class)))
}

func (al *Allocator) setBucketHead(class, off int) {
	buf.PutU64LE(al.bytes(), bucketOffset(class), uint64(off))
}

func (al *Allocator) freePrev(off int) int {
	return int(buf.U64LE(al.bytes(), off+format.WordSize))
}

func (al *Allocator) freeNext(off int) int {
	return int(buf.U64LE(al.bytes(), off+2*format.WordSize))
}

func (al *Allocator) setFreePrev(off, prev int) {
	buf.PutU64LE(al.bytes(), off+format.WordSize, uint64(prev))
}

func (al *Allocator) setFreeNext(off, next int) {
	buf.PutU64LE(al.bytes(), off+2*format.WordSize, uint64(next))
}

// insertFree pushes the free block with header at off onto the head of its
// class list. O(1).
func (al *Allocator) insertFree(class, off int) {
	head := al.bucketHead(class)
	if head != 0 {
		al.setFreePrev(head, off)
	}
	al.setBucketHead(class, off)
	al.setFreePrev(off, 0)
	al.setFreeNext(off, head)
}

// removeFree unlinks the free block with header at off from its class list
// using only the block's own links. O(1). payload is the block's payload
// length, needed to locate the bucket head when the block is the first
// entry.
func (al *Allocator) removeFree(off, payload int) {
	prev := al.freePrev(off)
	next := al.freeNext(off)

	switch {
	case prev == 0 && next == 0:
		// sole member
		al.setBucketHead(classOf(payload), 0)
	case prev == 0:
		// list head with a successor
		al.setBucketHead(classOf(payload), next)
		al.setFreePrev(next, 0)
	case next == 0:
		// tail with a predecessor
		al.setFreeNext(prev, 0)
	default:
		// interior
		al.setFreeNext(prev, next)
		al.setFreePrev(next, prev)
	}
}
