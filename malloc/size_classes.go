package malloc

import (
	"math/bits"

	"github.com/ProgramLikeABeast/malloc/internal/format"
)

// NumClasses is the number of segregated free-list buckets.
const NumClasses = format.NumClasses

// classOf maps an aligned payload length to its bucket index. The mapping is
// over the block total (payload plus header): totals up to 256 map linearly
// onto the sixteen exact buckets, totals up to 32768 map by rounded-up
// power of two onto buckets 16-22, and everything larger lands in bucket 23.
//
// Allocation search and free-list insertion must both go through this
// function with the same aligned-payload convention, or blocks end up
// filed where the search never looks.
func classOf(payload int) int {
	total := payload + format.WordSize
	switch {
	case total <= format.SmallClassMax:
		return total/format.Alignment - 1
	case total <= format.LargeClassMin:
		return ceilLog2(total) + 7
	default:
		return format.NumClasses - 1
	}
}

// ceilLog2 returns ceil(log2(n)) for n >= 2.
func ceilLog2(n int) int {
	return bits.Len(uint(n - 1))
}

// ClassRange returns the inclusive range of block totals served by bucket
// class. The upper bound of the last bucket is reported as 0 (unbounded).
func ClassRange(class int) (lo, hi int) {
	switch {
	case class < format.NumSmallClasses:
		hi = (class + 1) * format.Alignment
		return hi, hi
	case class < format.NumClasses-1:
		hi = 1 << (class - 7)
		return hi/2 + 1, hi
	default:
		return format.LargeClassMin + 1, 0
	}
}
