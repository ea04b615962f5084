package format

import "github.com/ProgramLikeABeast/malloc/internal/buf"

// Header is the decoded form of one header or footer word.
//
// Word layout (little-endian uint64):
//
//	bits 3..63  payload length in bytes (always a multiple of WordSize)
//	bit 0       this block is allocated
//	bit 1       the physical left neighbor is allocated
//
// Allocated blocks carry no footer; the left-allocated bit in the following
// block's header stands in for one. Free blocks copy their header word into
// their last word so the right neighbor can find the block start by reading
// backward.
type Header struct {
	Size          int // payload bytes, excluding the header word
	Allocated     bool
	LeftAllocated bool
}

const (
	allocatedBit     = 0x1
	leftAllocatedBit = 0x2
	sizeMask         = ^uint64(WordSize - 1)
)

// Encode packs h into a single header word.
func (h Header) Encode() uint64 {
	w := uint64(h.Size) & sizeMask
	if h.Allocated {
		w |= allocatedBit
	}
	if h.LeftAllocated {
		w |= leftAllocatedBit
	}
	return w
}

// DecodeHeader unpacks a header word.
func DecodeHeader(w uint64) Header {
	return Header{
		Size:          int(w & sizeMask),
		Allocated:     w&allocatedBit != 0,
		LeftAllocated: w&leftAllocatedBit != 0,
	}
}

// ReadHeader decodes the header word stored in b at off.
func ReadHeader(b []byte, off int) Header {
	return DecodeHeader(buf.U64LE(b, off))
}

// PutHeader encodes h into b at off.
func PutHeader(b []byte, off int, h Header) {
	buf.PutU64LE(b, off, h.Encode())
}

// SetLeftAllocated rewrites only the left-allocated bit of the header word at
// off, leaving size and allocation status untouched.
func SetLeftAllocated(b []byte, off int, leftAllocated bool) {
	w := buf.U64LE(b, off)
	if leftAllocated {
		w |= leftAllocatedBit
	} else {
		w &^= leftAllocatedBit
	}
	buf.PutU64LE(b, off, w)
}
