package malloc

import "github.com/ProgramLikeABeast/malloc/internal/format"

// Stats holds cumulative allocator counters for instrumentation and tests.
type Stats struct {
	MallocCalls  int // Total Malloc() calls, including those made by Realloc/Calloc
	FreeCalls    int // Total Free() calls
	ReallocCalls int // Total Realloc() calls that reached the resize logic
	CallocCalls  int // Total successful Calloc() calls

	GrowCalls int   // Heap growth requests issued to the arena
	GrowBytes int64 // Total bytes added via growth, headers included

	BytesAllocated int64 // Total payload bytes handed out
	BytesFreed     int64 // Total payload bytes released

	SplitCount    int // Oversized matches split on allocation or shrink
	CoalesceLeft  int // Merges with a free left neighbor
	CoalesceRight int // Merges with a free right neighbor
	Reused        int // Allocations served from a free list without growth
}

// LiveBytes returns the payload bytes currently allocated.
func (s Stats) LiveBytes() int64 {
	return s.BytesAllocated - s.BytesFreed
}

// Stats returns a copy of the current counters.
func (al *Allocator) Stats() Stats {
	return al.stats
}

// UsedBytes returns the payload bytes currently handed out.
func (al *Allocator) UsedBytes() int64 {
	return al.stats.LiveBytes()
}

// FreeBytes returns the heap bytes not handed out as payload. Block headers
// and split losses count as free, so UsedBytes+FreeBytes covers the whole
// heap past the prefix.
func (al *Allocator) FreeBytes() int64 {
	if !al.ready {
		return 0
	}
	return int64(al.arena.Size()-format.PrefixSize) - al.stats.LiveBytes()
}
