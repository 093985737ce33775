package heap

import "unsafe"

// Realloc resizes the block at bp to hold at least size bytes (§4.7).
//
// size is interpreted as signed: a negative value returns nil without
// touching bp. size == 0 with bp non-nil frees bp and returns nil. bp ==
// nil is equivalent to Malloc(size). Otherwise, if the adjusted size is no
// larger than the current block, bp is returned unchanged (no shrink
// split); if the physical next block is free and absorbing it is enough,
// bp is grown in place with no split of any surplus; otherwise a new block
// is allocated, the first oldsize bytes are copied over, bp is freed, and
// the new block is returned. If allocation of the new block fails, bp is
// left untouched and valid — callers of Realloc depend on this.
func (a *Arena) Realloc(bp unsafe.Pointer, size int) unsafe.Pointer {
	if size < 0 {
		return nil
	}
	if size == 0 {
		if bp != nil {
			a.Free(bp)
		}
		return nil
	}
	if bp == nil {
		return a.Malloc(size)
	}

	asize := adjustSize(uintptr(size))
	oldsize := blockSize(bp)

	if asize <= oldsize {
		return bp
	}

	next := nextBlockPtr(bp)
	if !blockAlloc(next) && oldsize+blockSize(next) >= asize {
		a.removeFree(next)
		combined := oldsize + blockSize(next)
		writeTags(bp, combined, true)
		return bp
	}

	newbp := a.Malloc(size)
	if newbp == nil {
		return nil
	}
	copyBytes(newbp, bp, oldsize)
	a.Free(bp)
	return newbp
}

func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}
