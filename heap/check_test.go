package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockheap/heap/internal/ptr"
	"github.com/blockheap/heap/internal/report"
)

func TestCheckHeap_CleanArena(t *testing.T) {
	a, _ := newTestArena(t, DefaultOptions())
	assert.Empty(t, a.CheckHeap(false))
	assert.Empty(t, a.CheckHeap(true))
}

func TestCheckHeap_DetectsHeaderFooterMismatch(t *testing.T) {
	a, _ := newTestArena(t, DefaultOptions())

	p := a.Malloc(100)
	require.NotNil(t, p)

	// corrupt the footer directly to simulate a stray write past the
	// payload trampling the boundary tag.
	ptr.WriteWord(footerPtr(p, blockSize(p)), packHeader(blockSize(p)+Dsize, true))

	violations := a.CheckHeap(false)
	require.NotEmpty(t, violations)
	assertHasKind(t, violations, "header-footer-mismatch")
}

func TestCheckHeap_DetectsAllocatedBlockLinkedIntoFreeList(t *testing.T) {
	a, _ := newTestArena(t, DefaultOptions())

	p := a.Malloc(100)
	require.NotNil(t, p)

	// splice p into the free list by hand while its tags still say
	// allocated: this is the "allocated block reachable from the free
	// list" violation.
	a.insertFree(p)

	violations := a.CheckHeap(false)
	assertHasKind(t, violations, "allocated-in-free-list")
}

func TestCheckHeap_DetectsAdjacentFreeBlocks(t *testing.T) {
	a, _ := newTestArena(t, DefaultOptions())

	pa := a.Malloc(24)
	pb := a.Malloc(24)
	require.NotNil(t, pa)
	require.NotNil(t, pb)

	// retag both as free without going through coalesce, so the
	// "no two adjacent free blocks" invariant is violated on purpose.
	writeTags(pa, blockSize(pa), false)
	writeTags(pb, blockSize(pb), false)
	a.insertFree(pa)
	a.insertFree(pb)

	violations := a.CheckHeap(false)
	assertHasKind(t, violations, "adjacent-free-blocks")
}

func TestCheckHeap_DetectsFreeBlockMissingFromFreeList(t *testing.T) {
	a, _ := newTestArena(t, DefaultOptions())

	p := a.Malloc(100)
	require.NotNil(t, p)

	// tag free but never link it in: violates "every free block appears
	// in the free list."
	writeTags(p, blockSize(p), false)

	violations := a.CheckHeap(false)
	assertHasKind(t, violations, "missing-from-free-list")
}

func assertHasKind(t *testing.T, violations []report.Violation, kind string) {
	t.Helper()
	for _, v := range violations {
		if v.Kind == kind {
			return
		}
	}
	t.Fatalf("expected a violation of kind %q, got %+v", kind, violations)
}
