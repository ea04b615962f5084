//go:build !unix

package heap

// Fallback backend for platforms without the anonymous-mapping path: a plain
// slice regrown on extend. Addresses may move: that is harmless for the
// allocator, which addresses the heap by offset, but it detaches byte slices
// previously handed to callers, who must re-slice through Bytes after growth.

func (a *Arena) reserve() error {
	a.data = []byte{}
	return nil
}

func (a *Arena) extend(n int) error {
	a.data = append(a.data, make([]byte, n)...)
	return nil
}

func (a *Arena) release() error {
	return nil
}
