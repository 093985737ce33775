package heap

import "github.com/blockheap/heap/internal/ptr"

// Word is the unit of bookkeeping: one machine word, the same width as a
// pointer on the running platform.
const Word = ptr.Size

// Dsize is the double-word alignment granularity: 2*Word.
const Dsize = 2 * Word

// minBlockSize is the smallest legal block: header + two free-list link
// words + footer.
const minBlockSize = 4 * Word

// allocBit is the low bit of a header/footer word, set when the block is
// currently allocated.
const allocBit = uintptr(1)

// packHeader packs a block size (already a multiple of Dsize) and an
// allocated flag into a single header/footer word, mirroring the
// PACK(size, alloc) macro the spec describes.
func packHeader(size uintptr, alloc bool) uintptr {
	if alloc {
		return size | allocBit
	}
	return size
}

// unpackHeader splits a header/footer word back into size and alloc.
func unpackHeader(w uintptr) (size uintptr, alloc bool) {
	return w &^ allocBit, w&allocBit != 0
}
