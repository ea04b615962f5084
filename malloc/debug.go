package malloc

import (
	"fmt"
	"os"

	"github.com/ProgramLikeABeast/malloc/internal/format"
)

// Compile-time toggle for verbose internal diagnostics.
const debugAlloc = false

// Runtime toggle for growth logging, controlled by MALLOC_LOG_ALLOC.
var logAlloc = os.Getenv("MALLOC_LOG_ALLOC") != ""

func debugLogf(msg string, args ...any) {
	if debugAlloc {
		fmt.Fprintf(os.Stderr, "[MALLOC] "+msg+"\n", args...)
	}
}

func logGrowf(msg string, args ...any) {
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[GROW] "+msg+"\n", args...)
	}
}

// dumpState writes bucket occupancy to stderr. Debug aid only.
func (al *Allocator) dumpState() {
	fmt.Fprintf(os.Stderr, "=== heap state: %d bytes, %d grow calls ===\n",
		al.arena.Size(), al.stats.GrowCalls)
	for class := 0; class < format.NumClasses; class++ {
		n, bytes := 0, 0
		for off := al.bucketHead(class); off != 0; off = al.freeNext(off) {
			n++
			bytes += format.ReadHeader(al.bytes(), off).Size
		}
		if n > 0 {
			lo, hi := ClassRange(class)
			fmt.Fprintf(os.Stderr, "  bucket %2d [%d..%d]: %d blocks, %d payload bytes\n",
				class, lo, hi, n, bytes)
		}
	}
}
