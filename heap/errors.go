package heap

import "errors"

var (
	// ErrLimit indicates the arena cannot extend without exceeding its limit.
	ErrLimit = errors.New("heap: extend would exceed arena limit")

	// ErrBadExtend indicates a non-positive extend request.
	ErrBadExtend = errors.New("heap: extend size must be positive")

	// ErrClosed indicates an operation on a closed arena.
	ErrClosed = errors.New("heap: arena is closed")
)
