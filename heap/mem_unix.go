//go:build unix

package heap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// The unix backend reserves the entire limit up front as an anonymous
// PROT_NONE mapping and commits pages with mprotect as the arena extends.
// Reserved-but-uncommitted pages cost address space only, and the backing
// array never moves, so payload slices handed out by the allocator stay
// valid across growth.

func (a *Arena) reserve() error {
	b, err := unix.Mmap(-1, 0, a.limit, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return fmt.Errorf("heap: reserve %d bytes: %w", a.limit, err)
	}
	a.reserved = b
	a.data = b[:0]
	return nil
}

func (a *Arena) extend(n int) error {
	target := len(a.data) + n
	pageSize := os.Getpagesize()
	commitTo := (target + pageSize - 1) &^ (pageSize - 1)
	if commitTo > len(a.reserved) {
		commitTo = len(a.reserved)
	}
	if commitTo > a.committed {
		if err := unix.Mprotect(a.reserved[a.committed:commitTo], unix.PROT_READ|unix.PROT_WRITE); err != nil {
			return fmt.Errorf("heap: commit %d bytes: %w", commitTo-a.committed, err)
		}
		a.committed = commitTo
	}
	a.data = a.reserved[:target]
	return nil
}

func (a *Arena) release() error {
	if a.reserved == nil {
		return nil
	}
	err := unix.Munmap(a.reserved)
	a.reserved = nil
	a.committed = 0
	return err
}
