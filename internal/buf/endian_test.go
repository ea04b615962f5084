package buf

import "testing"

func TestU64LERoundTrip(t *testing.T) {
	b := make([]byte, 16)

	PutU64LE(b, 0, 0xefcdab8967452301)
	if got := U64LE(b, 0); got != 0xefcdab8967452301 {
		t.Fatalf("U64LE = 0x%x, want 0xefcdab8967452301", got)
	}

	PutU64LE(b, 8, 42)
	if got := U64LE(b, 8); got != 42 {
		t.Fatalf("U64LE at 8 = %d, want 42", got)
	}
	if got := U64LE(b, 0); got != 0xefcdab8967452301 {
		t.Fatalf("adjacent word clobbered: 0x%x", got)
	}
}

func TestU64LEOutOfRange(t *testing.T) {
	b := make([]byte, 8)

	if U64LE(b, 1) != 0 {
		t.Fatalf("short read should return 0")
	}
	if U64LE(b, -1) != 0 {
		t.Fatalf("negative offset should return 0")
	}

	PutU64LE(b, 1, 0xFFFFFFFFFFFFFFFF)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("out-of-range write touched byte %d", i)
		}
	}
}
