// Package heap provides the growable byte range the allocator manages.
//
// An Arena owns one contiguous span of bytes addressed by offset, starting
// at 0. It only ever grows: Extend appends exactly the requested number of
// bytes, up to a fixed limit chosen at construction. On unix the full limit
// is reserved up front as an anonymous inaccessible mapping and pages are
// committed as the arena extends, so the backing bytes never move; elsewhere
// a plain slice is regrown. The allocator is immune to the difference since
// it addresses the heap by offset, but caller-held byte slices are not: on
// the regrown-slice backend they detach from the heap at the next Extend and
// must be re-resolved.
//
// The arena also exposes the raw copy and fill primitives the allocator
// builds resize and zeroed allocation on.
package heap
