package heap

import (
	"unsafe"

	"github.com/blockheap/heap/internal/ptr"
)

// A block pointer (bp) addresses the first byte of a block's payload. Its
// header lives at bp-Word and its footer at bp+size-Dsize, exactly as
// described in §3 of the spec: the header and footer each carry the same
// packed (size, alloc) word so a block's extent can be recovered by walking
// either forward from its header or backward from its footer.

func headerPtr(bp unsafe.Pointer) unsafe.Pointer { return ptr.Add(bp, -int(Word)) }

func footerPtr(bp unsafe.Pointer, size uintptr) unsafe.Pointer {
	return ptr.Add(bp, int(size)-int(Dsize))
}

func blockSize(bp unsafe.Pointer) uintptr {
	size, _ := unpackHeader(ptr.ReadWord(headerPtr(bp)))
	return size
}

func blockAlloc(bp unsafe.Pointer) bool {
	_, alloc := unpackHeader(ptr.ReadWord(headerPtr(bp)))
	return alloc
}

// writeTags writes matching header and footer words for a block of the
// given size and allocated flag.
func writeTags(bp unsafe.Pointer, size uintptr, alloc bool) {
	w := packHeader(size, alloc)
	ptr.WriteWord(headerPtr(bp), w)
	ptr.WriteWord(footerPtr(bp, size), w)
}

// nextBlockPtr returns the block physically following bp.
func nextBlockPtr(bp unsafe.Pointer) unsafe.Pointer {
	return ptr.Add(bp, int(blockSize(bp)))
}

// prevBlockPtr returns the block physically preceding bp, read via the
// previous block's footer at bp-Dsize.
func prevBlockPtr(bp unsafe.Pointer) unsafe.Pointer {
	prevFooter := ptr.Add(bp, -int(Dsize))
	prevSize, _ := unpackHeader(ptr.ReadWord(prevFooter))
	return ptr.Add(bp, -int(prevSize))
}

// Free-list links are stored in the first two words of a free block's
// payload: prevLink at bp, nextLink at bp+Word. They are persisted as byte
// offsets from the arena base rather than raw addresses, so that reading
// them back is a plain pointer-plus-offset computation (ptr.Add) instead of
// reconstituting an unsafe.Pointer from a stored bit pattern. Offset 0 is
// reserved for "no link": the arena's first live block pointer (the
// prologue's payload) always starts at offset 2*Word, so 0 never collides
// with a real block.
const noLink = uintptr(0)

func linkOffset(base, bp unsafe.Pointer) uintptr {
	if bp == nil {
		return noLink
	}
	return uintptr(ptr.Sub(bp, base))
}

func fromOffset(base unsafe.Pointer, off uintptr) unsafe.Pointer {
	if off == noLink {
		return nil
	}
	return ptr.Add(base, int(off))
}

func getPrevLink(base, bp unsafe.Pointer) unsafe.Pointer {
	return fromOffset(base, ptr.ReadWord(bp))
}

func getNextLink(base, bp unsafe.Pointer) unsafe.Pointer {
	return fromOffset(base, ptr.ReadWord(ptr.Add(bp, int(Word))))
}

func setPrevLink(base, bp, link unsafe.Pointer) {
	ptr.WriteWord(bp, linkOffset(base, link))
}

func setNextLink(base, bp, link unsafe.Pointer) {
	ptr.WriteWord(ptr.Add(bp, int(Word)), linkOffset(base, link))
}
