// Package heap implements the allocator core: boundary-tagged blocks laid
// out inline inside a heap arena, an explicitly linked free list threaded
// through the payload of free blocks, first-fit placement with splitting,
// and boundary-tag coalescing on release.
//
// An Arena owns no memory itself — it asks a heapext.Extender for more
// bytes whenever it needs to grow, and never otherwise touches anything
// outside the bytes the extender has already handed it. This keeps the
// block-layout/free-list logic (the hard part) decoupled from where the
// bytes actually come from, the same separation the teacher's
// BuddyAllocator draws between the arena slice it's handed and the
// bookkeeping it layers on top.
//
// Arena is not safe for concurrent use.
package heap

import (
	"fmt"
	"unsafe"

	"github.com/blockheap/heap/heapext"
	"github.com/blockheap/heap/internal/ptr"
)

// Arena is a single heap under management: a contiguous, growing byte
// region partitioned into allocated and free blocks.
type Arena struct {
	ext heapext.Extender

	base unsafe.Pointer // address of the arena's first byte (the alignment pad)

	heapListPtr  unsafe.Pointer // prologue payload; fixed for the arena's lifetime
	freeListHead unsafe.Pointer // head of the explicit free list (§4.8)

	chunkSize uintptr
}

// bootstrapWords is the number of words acquired from the extender before
// any user-visible extension: pad, prologue header, prologue prev-link,
// prologue next-link, prologue footer, epilogue header (§4.1).
const bootstrapWords = 6

// New prepares an Arena over ext: it lays out the prologue/epilogue
// sentinels (§4.1) and performs the initial chunk-size extension. It folds
// the original spec's `init() → 0 | -1` into an idiomatic error return.
func New(ext heapext.Extender, opts Options) (*Arena, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	a := &Arena{ext: ext, chunkSize: uintptr(opts.ChunkSize)}

	base, err := ext.Extend(int(bootstrapWords * Word))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBootstrap, err)
	}
	a.base = base

	writeBootstrapLayout(base)

	a.heapListPtr = ptr.Add(base, int(2*Word))
	a.freeListHead = a.heapListPtr

	if a.extendHeap(a.chunkSize/Word) == nil {
		return nil, fmt.Errorf("%w: initial chunk extension failed", ErrBootstrap)
	}

	return a, nil
}

// writeBootstrapLayout writes the six sentinel words described in §4.1 into
// the freshly extended region starting at base:
//
//	word0: alignment pad (0)
//	word1: prologue header (size=2*Dsize, alloc=1)
//	word2: prologue prev-link (null)
//	word3: prologue next-link (null)
//	word4: prologue footer (size=2*Dsize, alloc=1)
//	word5: epilogue header (size=0, alloc=1)
func writeBootstrapLayout(base unsafe.Pointer) {
	prologueSize := 2 * Dsize

	ptr.WriteWord(ptr.Add(base, 0), 0) // pad
	ptr.WriteWord(ptr.Add(base, int(Word)), packHeader(prologueSize, true))
	ptr.WriteWord(ptr.Add(base, int(2*Word)), 0) // prev-link
	ptr.WriteWord(ptr.Add(base, int(3*Word)), 0) // next-link
	ptr.WriteWord(ptr.Add(base, int(4*Word)), packHeader(prologueSize, true))
	ptr.WriteWord(ptr.Add(base, int(5*Word)), packHeader(0, true)) // epilogue
}
