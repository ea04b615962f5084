package heap

// DefaultLimit is the arena limit used when Options does not set one.
// Offsets and sizes are plain ints, but keeping the managed range below 2GB
// keeps every header word's size field far away from overflow territory.
const DefaultLimit = 1 << 31

// Options configures arena construction.
type Options struct {
	// Limit is the maximum number of bytes the arena may grow to.
	// Zero means DefaultLimit.
	Limit int
}

// Arena is one contiguous, growable byte range. It is not safe for
// concurrent use; the allocator that owns it is single-threaded by design.
type Arena struct {
	data   []byte
	limit  int
	closed bool

	// unix backend state; unused by the fallback backend
	reserved  []byte
	committed int
}

// New creates an empty arena. The returned arena has size 0; the first
// Extend establishes the initial range.
func New(opts *Options) (*Arena, error) {
	limit := DefaultLimit
	if opts != nil && opts.Limit > 0 {
		limit = opts.Limit
	}
	a := &Arena{limit: limit}
	if err := a.reserve(); err != nil {
		return nil, err
	}
	return a, nil
}

// Bytes returns the managed range. The slice is reissued after every Extend;
// callers must not hold it across growth.
func (a *Arena) Bytes() []byte { return a.data }

// Size returns the current number of managed bytes.
func (a *Arena) Size() int { return len(a.data) }

// Bounds returns the current extent of the managed range as a half-open
// offset interval [lo, hi).
func (a *Arena) Bounds() (lo, hi int) { return 0, len(a.data) }

// Extend grows the managed range by exactly n bytes. The new bytes are
// zeroed. A failed extend leaves the arena unchanged and is recoverable.
func (a *Arena) Extend(n int) error {
	if a.closed {
		return ErrClosed
	}
	if n <= 0 {
		return ErrBadExtend
	}
	if len(a.data)+n > a.limit {
		return ErrLimit
	}
	return a.extend(n)
}

// Copy moves n bytes from offset src to offset dst within the arena.
// The ranges may overlap.
func (a *Arena) Copy(dst, src, n int) {
	if n <= 0 || dst < 0 || src < 0 || dst+n > len(a.data) || src+n > len(a.data) {
		return
	}
	copy(a.data[dst:dst+n], a.data[src:src+n])
}

// Fill sets n bytes starting at off to v.
func (a *Arena) Fill(off int, v byte, n int) {
	if n <= 0 || off < 0 || off+n > len(a.data) {
		return
	}
	region := a.data[off : off+n]
	if v == 0 {
		clear(region)
		return
	}
	for i := range region {
		region[i] = v
	}
}

// Close releases the backing memory. The arena is unusable afterwards.
func (a *Arena) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.data = nil
	return a.release()
}
