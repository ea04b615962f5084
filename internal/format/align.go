package format

// AlignUp returns n rounded up to the next 16-byte boundary.
//
// Example:
//
//	AlignUp(1)  = 16
//	AlignUp(16) = 16
//	AlignUp(17) = 32
func AlignUp(n int) int {
	return (n + alignmentMask) &^ alignmentMask
}

// AlignPayload returns the smallest payload length that can hold n bytes
// while keeping the whole block (payload plus one header word) a multiple of
// Alignment. The result is always congruent to WordSize modulo Alignment, so
// payload addresses stay 16-aligned.
//
// Example:
//
//	AlignPayload(1)  = 8
//	AlignPayload(8)  = 8
//	AlignPayload(9)  = 24
//	AlignPayload(24) = 24
func AlignPayload(n int) int {
	return AlignUp(n+WordSize) - WordSize
}

// Aligned reports whether off sits on a 16-byte boundary.
func Aligned(off int) bool {
	return off&alignmentMask == 0
}
