// Package buf contains helpers for endian-safe word access over raw heap bytes.
package buf

import "encoding/binary"

// U64LE reads a little-endian uint64 from b at off. Returns 0 when the read
// would run past the end of b.
func U64LE(b []byte, off int) uint64 {
	if off < 0 || off+8 > len(b) {
		return 0
	}
	return binary.LittleEndian.Uint64(b[off:])
}

// PutU64LE writes v as a little-endian uint64 into b at off. The write is
// dropped when it would run past the end of b.
func PutU64LE(b []byte, off int, v uint64) {
	if off < 0 || off+8 > len(b) {
		return
	}
	binary.LittleEndian.PutUint64(b[off:], v)
}
