package heap

import (
	"os"
	"unsafe"

	"github.com/blockheap/heap/internal/ptr"
	"github.com/blockheap/heap/internal/report"
)

// CheckHeap walks the arena and the free list looking for violations of the
// invariants in §3/§8: misaligned block pointers, header/footer mismatches,
// free blocks missing from (or duplicated in) the free list, allocated
// blocks reachable from the free list, physically adjacent free blocks, and
// free-list links that fall outside the arena. It never mutates allocator
// state.
//
// When verbose is true, each violation is additionally written as a
// human-readable line to stdout via a report.Sink. The returned slice is
// always populated regardless of verbose, so callers (tests,
// cmd/heapcheck) can inspect violations programmatically.
func (a *Arena) CheckHeap(verbose bool) []report.Violation {
	var sink *report.Sink
	if verbose {
		sink = report.NewSink(os.Stdout)
	} else {
		sink = report.NewSink(nil)
	}

	freeSet := a.walkFreeList(sink)
	a.walkBlocks(sink, freeSet)

	return sink.Violations()
}

// walkFreeList walks the explicit free list from freeListHead and returns
// the set of free blocks it visited, keyed by block pointer. It reports any
// link that falls outside the arena, and any block reachable from the free
// list that the header/footer disagree is actually free.
func (a *Arena) walkFreeList(sink *report.Sink) map[unsafe.Pointer]bool {
	seen := make(map[unsafe.Pointer]bool)
	lo, hi := a.ext.Lo(), a.ext.Hi()

	for bp := a.freeListHead; bp != a.heapListPtr; bp = getNextLink(a.base, bp) {
		if seen[bp] {
			sink.Report("free-list-cycle", "block revisited while walking the free list", bp)
			break
		}
		seen[bp] = true

		if blockAlloc(bp) {
			sink.Report("allocated-in-free-list", "allocated block reachable from the free list", bp)
		}

		if !ptr.InClosed(bp, lo, hi) {
			sink.Report("free-list-out-of-bounds", "free block address outside arena bounds", bp)
		}

		next := getNextLink(a.base, bp)
		if next != nil && !ptr.InClosed(next, lo, hi) {
			sink.Report("free-list-link-out-of-bounds", "next-link address outside arena bounds", bp)
		}
		prev := getPrevLink(a.base, bp)
		if prev != nil && !ptr.InClosed(prev, lo, hi) {
			sink.Report("free-list-link-out-of-bounds", "prev-link address outside arena bounds", bp)
		}
	}

	return seen
}

// walkBlocks walks every physical block from the prologue to the epilogue,
// checking per-block invariants and cross-checking free-block membership
// against freeSet (the result of walkFreeList).
func (a *Arena) walkBlocks(sink *report.Sink, freeSet map[unsafe.Pointer]bool) {
	bp := a.heapListPtr
	checkPrologue(sink, bp)

	var prevWasFree bool
	for {
		size, alloc := unpackHeader(ptr.ReadWord(headerPtr(bp)))

		if !ptr.Aligned(bp, Dsize) {
			sink.Report("misaligned", "block pointer is not D-aligned", bp)
		}

		// the epilogue (size 0) is a lone header with no footer to compare.
		if size != 0 && ptr.ReadWord(footerPtr(bp, size)) != packHeader(size, alloc) {
			sink.Report("header-footer-mismatch", "header and footer disagree", bp)
		}

		if size != 0 && size < minBlockSize {
			sink.Report("undersized-block", "block smaller than the 4-word minimum", bp)
		}

		if !alloc {
			if !freeSet[bp] {
				sink.Report("missing-from-free-list", "free block not reachable from the free list", bp)
			}
			if prevWasFree {
				sink.Report("adjacent-free-blocks", "two physically adjacent blocks are both free", bp)
			}
		} else if freeSet[bp] {
			sink.Report("allocated-in-free-list", "allocated block reachable from the free list", bp)
		}
		prevWasFree = !alloc

		if size == 0 {
			break // epilogue: size 0 marks the end of physical traversal
		}
		bp = ptr.Add(bp, int(size))
	}

	checkEpilogue(sink, bp)
}

func checkPrologue(sink *report.Sink, bp unsafe.Pointer) {
	size, alloc := unpackHeader(ptr.ReadWord(headerPtr(bp)))
	if size != 2*Dsize || !alloc {
		sink.Report("malformed-prologue", "prologue must have size 2*D and alloc=1", bp)
	}
}

func checkEpilogue(sink *report.Sink, bp unsafe.Pointer) {
	size, alloc := unpackHeader(ptr.ReadWord(headerPtr(bp)))
	if size != 0 || !alloc {
		sink.Report("malformed-epilogue", "epilogue must have size 0 and alloc=1", bp)
	}
}
