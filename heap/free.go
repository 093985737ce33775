package heap

import "unsafe"

// Free releases the block at bp (§4.5). Freeing a nil pointer is a no-op;
// freeing anything else is the caller's responsibility to have obtained
// from this Arena and not already have freed (double-free is undefined
// behavior per the spec — see CheckHeap for a way to catch the damage
// after the fact, not prevent it).
func (a *Arena) Free(bp unsafe.Pointer) {
	if bp == nil {
		return
	}
	size := blockSize(bp)
	writeTags(bp, size, false)
	a.coalesce(bp)
}

// coalesce merges bp with whatever physically adjacent free blocks exist
// and inserts the resulting block into the free list (§4.5). Because the
// prologue and epilogue are permanently allocated, the physical previous
// and next blocks always resolve to a real neighbor or a sentinel, and
// this never reads or writes outside the arena.
func (a *Arena) coalesce(bp unsafe.Pointer) unsafe.Pointer {
	prev := prevBlockPtr(bp)
	next := nextBlockPtr(bp)
	prevFree := !blockAlloc(prev)
	nextFree := !blockAlloc(next)
	size := blockSize(bp)

	switch {
	case !prevFree && !nextFree:
		// case A/A: no merge.

	case !prevFree && nextFree:
		a.removeFree(next)
		size += blockSize(next)
		writeTags(bp, size, false)

	case prevFree && !nextFree:
		a.removeFree(prev)
		size += blockSize(prev)
		bp = prev
		writeTags(bp, size, false)

	default: // prevFree && nextFree
		a.removeFree(prev)
		a.removeFree(next)
		size += blockSize(prev) + blockSize(next)
		bp = prev
		writeTags(bp, size, false)
	}

	a.insertFree(bp)
	return bp
}
