// Package heapext provides the heap-extender collaborator the allocator
// core consumes to grow its arena, plus a concrete in-process
// implementation.
//
// The core (package heap) never allocates or moves the arena itself; it
// only ever asks an Extender for more bytes at the high end and trusts the
// returned address to remain valid for the lifetime of the Extender. This
// mirrors the relationship between a real allocator and brk/sbrk (or, in
// the reference implementation this spec was distilled from, a
// simulated sbrk backed by a fixed-size buffer).
package heapext

import "unsafe"

// Extender grows a byte arena at its high end and reports its current
// bounds. Implementations MUST return addresses that remain valid (i.e.
// the backing storage must never move or be reclaimed) until Close, if the
// implementation has one.
//
// Extender is not safe for concurrent use, matching the allocator core it
// serves.
type Extender interface {
	// Extend grows the arena by n bytes and returns the address of the
	// start of the new region. It returns a non-nil error (and a nil
	// pointer) if the arena cannot grow by n bytes.
	Extend(n int) (unsafe.Pointer, error)

	// Lo returns the lowest address in the current arena.
	Lo() unsafe.Pointer

	// Hi returns the highest address in the current arena.
	Hi() unsafe.Pointer
}
