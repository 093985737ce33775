package heap

import "unsafe"

// insert pushes bp onto the head of the explicit free list (§4.8):
//
//	bp.next = head; head.prev = bp; bp.prev = null; head = bp
func (a *Arena) insertFree(bp unsafe.Pointer) {
	head := a.freeListHead
	setNextLink(a.base, bp, head)
	setPrevLink(a.base, head, bp)
	setPrevLink(a.base, bp, nil)
	a.freeListHead = bp
}

// removeFree unlinks bp from the free list (§4.8). bp.next is never nil for
// any block reachable via the free list, because the prologue is always
// present and is never itself removed.
func (a *Arena) removeFree(bp unsafe.Pointer) {
	prev := getPrevLink(a.base, bp)
	next := getNextLink(a.base, bp)
	if prev != nil {
		setNextLink(a.base, prev, next)
	} else {
		a.freeListHead = next
	}
	setPrevLink(a.base, next, prev)
}

// findFit performs a first-fit linear scan of the free list, starting at
// head and walking next-links, returning the first block whose size is at
// least asize. It terminates (returning nil) on reaching a block whose
// header reports alloc=1 — the prologue sentinel when the list is
// exhausted.
func (a *Arena) findFit(asize uintptr) unsafe.Pointer {
	for bp := a.freeListHead; ; bp = getNextLink(a.base, bp) {
		if blockAlloc(bp) {
			return nil
		}
		if blockSize(bp) >= asize {
			return bp
		}
	}
}
