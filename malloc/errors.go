package malloc

import "errors"

var (
	// ErrNotInitialized indicates a call on an allocator that was not built
	// through New.
	ErrNotInitialized = errors.New("malloc: allocator not initialized")

	// ErrBadSize indicates a non-positive (or overflowing) requested size.
	ErrBadSize = errors.New("malloc: size must be positive")

	// ErrBadRef indicates a reference outside the managed heap.
	ErrBadRef = errors.New("malloc: ref outside the managed heap")

	// ErrNoSpace indicates that no free block was large enough and growing
	// the heap failed. The heap is left unchanged.
	ErrNoSpace = errors.New("malloc: no free block large enough and heap growth failed")

	// ErrDirtyArena indicates an attempt to initialize over an arena that
	// already contains data.
	ErrDirtyArena = errors.New("malloc: arena already contains data")
)
