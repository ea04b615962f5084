package malloc

// Ref is the heap offset of an allocated block's payload. Offset 0 lands in
// the bucket table and is never a valid payload address, so the zero Ref
// doubles as the nil reference: Free(0) is a no-op and Realloc(0, n) behaves
// like Malloc(n).
type Ref = int
