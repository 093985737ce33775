// Package ptr collects the small set of unsafe pointer primitives the heap
// allocator and its extender need: reading and writing a machine word at an
// arbitrary byte offset from a base pointer, and checking that an address
// falls inside a [lo, hi) byte range.
//
// It plays the role the teacher's internal/hack and unsafex packages play
// for the rest of the module: a single place for the unsafe casts, so every
// other package can stay in terms of unsafe.Pointer without repeating the
// arithmetic.
package ptr

import "unsafe"

// Size is the machine word size in bytes: unsafe.Sizeof(uintptr(0)).
const Size = unsafe.Sizeof(uintptr(0))

// Add returns p advanced by n bytes. n may be negative.
func Add(p unsafe.Pointer, n int) unsafe.Pointer {
	return unsafe.Pointer(uintptr(p) + uintptr(n))
}

// Sub returns the byte distance from b to a (a - b), valid only when both
// point inside (or one past the end of) the same allocation.
func Sub(a, b unsafe.Pointer) int {
	return int(uintptr(a) - uintptr(b))
}

// ReadWord reads one machine word at p.
func ReadWord(p unsafe.Pointer) uintptr {
	return *(*uintptr)(p)
}

// WriteWord writes one machine word at p.
func WriteWord(p unsafe.Pointer, v uintptr) {
	*(*uintptr)(p) = v
}

// In reports whether p lies in [lo, hi).
func In(p, lo, hi unsafe.Pointer) bool {
	up, ulo, uhi := uintptr(p), uintptr(lo), uintptr(hi)
	return up >= ulo && up < uhi
}

// InClosed reports whether p lies in [lo, hi], used for pointers that may
// legitimately equal the highest in-bounds address (e.g. the epilogue).
func InClosed(p, lo, hi unsafe.Pointer) bool {
	up, ulo, uhi := uintptr(p), uintptr(lo), uintptr(hi)
	return up >= ulo && up <= uhi
}

// Aligned reports whether p is aligned to n bytes, n a power of two.
func Aligned(p unsafe.Pointer, n uintptr) bool {
	return uintptr(p)&(n-1) == 0
}
