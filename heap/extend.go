package heap

import (
	"unsafe"

	"github.com/blockheap/heap/internal/ptr"
)

// extendHeap grows the arena by words machine words, raised to at least the
// minimum block size and rounded up to an even number to preserve
// Dsize-alignment (§4.4). It writes a free block over
// the newly returned region, relocates the epilogue to the new high end,
// and coalesces the new block with whatever physically precedes it before
// inserting the result into the free list.
//
// It returns the coalesced block pointer, or nil if the extender failed.
func (a *Arena) extendHeap(words uintptr) unsafe.Pointer {
	if words < minBlockSize/Word {
		words = minBlockSize / Word
	}
	if words%2 != 0 {
		words++
	}
	bytes := words * Word

	p, err := a.ext.Extend(int(bytes))
	if err != nil {
		return nil
	}

	// p is the first byte past the old arena end, one word past the old
	// (zero-size) epilogue header. That header word becomes the header of
	// the new free block, so its payload starts at p, and the new epilogue
	// header takes the last word of the extended region. The old epilogue
	// contributed no footer for prevBlockPtr to trip over, so navigating to
	// the physical previous block from the new block's payload still works
	// unchanged.
	bp := p
	writeTags(bp, bytes, false)

	newEpilogue := ptr.Add(p, int(bytes)-int(Word))
	ptr.WriteWord(newEpilogue, packHeader(0, true))

	return a.coalesce(bp)
}
