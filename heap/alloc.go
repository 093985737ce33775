package heap

import "unsafe"

// adjustSize computes the legal block size for a requested payload of s
// bytes (§4.2): the minimum block (2*Dsize) for small requests, otherwise
// the payload plus one Dsize for header+footer, rounded up to the next
// Dsize.
func adjustSize(s uintptr) uintptr {
	if s <= Dsize {
		return 2 * Dsize
	}
	return Dsize * ((s + Dsize + Dsize - 1) / Dsize)
}

// place carves asize bytes out of the free block bp (§4.3). If the
// remainder is large enough to be a legal block on its own (>= 4*Word), bp
// is split: the front asize bytes become an allocated block and the
// remainder is re-tagged free and folded back into the free list via
// coalesce. Otherwise the whole block (size csize) is allocated with no
// split.
func (a *Arena) place(bp unsafe.Pointer, asize uintptr) {
	csize := blockSize(bp)

	if csize-asize >= minBlockSize {
		writeTags(bp, asize, true)
		a.removeFree(bp)

		rem := nextBlockPtr(bp)
		writeTags(rem, csize-asize, false)
		a.coalesce(rem)
		return
	}

	writeTags(bp, csize, true)
	a.removeFree(bp)
}

// Malloc allocates a block of at least size bytes and returns a pointer to
// its payload, or nil if size is 0 or the arena cannot grow to satisfy the
// request (§4.6).
func (a *Arena) Malloc(size int) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	asize := adjustSize(uintptr(size))

	if bp := a.findFit(asize); bp != nil {
		a.place(bp, asize)
		return bp
	}

	extendBytes := asize
	if a.chunkSize > extendBytes {
		extendBytes = a.chunkSize
	}
	bp := a.extendHeap(extendBytes / Word)
	if bp == nil {
		return nil
	}

	a.place(bp, asize)
	return bp
}
