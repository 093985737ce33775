package heapext

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/blockheap/heap/cache/mempool"
)

// DefaultMaxArena is the default ceiling on how large a MemExtender's arena
// may grow: 64 MiB, comfortably larger than anything the allocator's own
// test scenarios need.
const DefaultMaxArena = 64 << 20

// ErrExhausted is returned by Extend when growing by the requested number
// of bytes would exceed the extender's reserved capacity — the Go
// analogue of the simulated heap in the reference allocator running out of
// MAX_HEAP bytes.
var ErrExhausted = errors.New("heapext: arena exhausted")

// MemExtender is an in-process Extender backed by a single slab reserved
// once, up front, via cache/mempool — a pooled-buffer primitive built for
// short-lived buffers, here held for the extender's entire lifetime instead
// of being returned after one use.
//
// The slab's address never changes after construction, which is the
// property the allocator core depends on: once Extend has handed out an
// address, that address stays valid (and everything below it keeps its
// contents) no matter how many further Extend calls happen.
type MemExtender struct {
	slab []byte
	hi   int // logical high-water mark, in bytes from slab[0]
	base unsafe.Pointer
}

// NewMemExtender reserves a slab of maxArena bytes and returns a MemExtender
// over it. maxArena must be positive.
func NewMemExtender(maxArena int) (*MemExtender, error) {
	if maxArena <= 0 {
		return nil, fmt.Errorf("heapext: maxArena must be positive, got %d", maxArena)
	}
	slab := mempool.Malloc(maxArena)
	return &MemExtender{
		slab: slab,
		base: unsafe.Pointer(&slab[0]),
	}, nil
}

// Extend implements Extender.
func (m *MemExtender) Extend(n int) (unsafe.Pointer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("heapext: extend request must be positive, got %d", n)
	}
	if m.hi+n > len(m.slab) {
		return nil, ErrExhausted
	}
	p := unsafe.Pointer(&m.slab[m.hi])
	m.hi += n
	return p, nil
}

// Lo implements Extender.
func (m *MemExtender) Lo() unsafe.Pointer {
	return m.base
}

// Hi implements Extender.
func (m *MemExtender) Hi() unsafe.Pointer {
	if m.hi == 0 {
		return m.base
	}
	return unsafe.Pointer(&m.slab[m.hi-1])
}

// Close returns the slab to the mempool. The MemExtender and any arena
// built on it MUST NOT be used again afterward.
func (m *MemExtender) Close() {
	mempool.Free(m.slab)
	m.slab = nil
	m.base = nil
	m.hi = 0
}
