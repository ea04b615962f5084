package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaExtend(t *testing.T) {
	a, err := New(&Options{Limit: 1 << 16})
	require.NoError(t, err)
	defer a.Close()

	require.Equal(t, 0, a.Size())

	require.NoError(t, a.Extend(208))
	require.Equal(t, 208, a.Size())
	require.Len(t, a.Bytes(), 208)

	// New bytes are zeroed.
	for i, v := range a.Bytes() {
		require.Zero(t, v, "byte %d not zeroed", i)
	}

	// Extend grows by exactly n, contiguous with the existing range.
	a.Bytes()[207] = 0xAA
	require.NoError(t, a.Extend(48))
	require.Equal(t, 256, a.Size())
	require.Equal(t, byte(0xAA), a.Bytes()[207])

	lo, hi := a.Bounds()
	require.Equal(t, 0, lo)
	require.Equal(t, 256, hi)
}

func TestArenaExtendRejectsBadSizes(t *testing.T) {
	a, err := New(&Options{Limit: 4096})
	require.NoError(t, err)
	defer a.Close()

	require.ErrorIs(t, a.Extend(0), ErrBadExtend)
	require.ErrorIs(t, a.Extend(-8), ErrBadExtend)
}

func TestArenaLimitIsRecoverable(t *testing.T) {
	a, err := New(&Options{Limit: 4096})
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Extend(4000))
	require.ErrorIs(t, a.Extend(200), ErrLimit)

	// The failed extend must leave the arena unchanged and usable.
	require.Equal(t, 4000, a.Size())
	require.NoError(t, a.Extend(96))
	require.Equal(t, 4096, a.Size())
}

func TestArenaCopyAndFill(t *testing.T) {
	a, err := New(&Options{Limit: 4096})
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Extend(64))

	a.Fill(0, 0x11, 16)
	a.Fill(16, 0x22, 16)
	require.Equal(t, byte(0x11), a.Bytes()[15])
	require.Equal(t, byte(0x22), a.Bytes()[16])

	a.Copy(32, 0, 16)
	require.Equal(t, byte(0x11), a.Bytes()[32])
	require.Equal(t, byte(0x11), a.Bytes()[47])

	// Overlapping copy behaves like memmove.
	a.Copy(8, 0, 24)
	require.Equal(t, byte(0x11), a.Bytes()[8])
	require.Equal(t, byte(0x11), a.Bytes()[23])

	a.Fill(0, 0, 64)
	for i, v := range a.Bytes() {
		require.Zero(t, v, "byte %d not zeroed", i)
	}
}

func TestArenaClose(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, a.Extend(4096))
	require.NoError(t, a.Close())
	require.ErrorIs(t, a.Extend(16), ErrClosed)
	require.NoError(t, a.Close())
}
