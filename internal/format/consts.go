// Package format defines the on-heap block layout: header/footer word
// encoding, alignment rules, and the fixed prefix that hosts the bucket
// table and the boundary sentinels.
package format

const (
	// WordSize is the width of a header, footer, or free-list link word.
	WordSize = 8

	// Alignment is the required alignment of every payload address. Block
	// totals (payload + header) are always a multiple of it, which is what
	// frees the low header bits for the status flags.
	Alignment = 16

	alignmentMask = Alignment - 1
)

const (
	// NumClasses is the number of free-list buckets.
	NumClasses = 24

	// NumSmallClasses is the number of exact-size buckets. Every aligned
	// block total up to SmallClassMax maps 1:1 onto one of them.
	NumSmallClasses = 16

	// SmallClassMax is the largest block total served by the exact buckets.
	SmallClassMax = 256

	// LargeClassMin is the block total above which everything lands in the
	// final catch-all bucket.
	LargeClassMin = 32768
)

// Heap prefix layout. The first NumClasses words are the bucket table
// (bucket head i lives at word i), followed by the prologue and the initial
// epilogue sentinel. Bucket head and link words hold the heap offset of a
// block header, with 0 meaning "list boundary" (offset 0 is bucket 0, never
// a block, so the sentinel can never collide with a real address).
const (
	// PrologueOffset is the heap offset of the prologue sentinel header.
	PrologueOffset = NumClasses * WordSize

	// FirstBlockOffset is the heap offset of the first real block header.
	// The epilogue sits here until the first growth pushes it out.
	FirstBlockOffset = PrologueOffset + WordSize

	// PrefixSize is the number of bytes the heap must hold before any block
	// exists: bucket table, prologue, epilogue.
	PrefixSize = FirstBlockOffset + WordSize
)
