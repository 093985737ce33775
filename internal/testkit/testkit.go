// Package testkit collects test helpers built on the heap package's public
// API: building a ready-to-use Arena over a MemExtender, and driving it
// through randomized alloc/free sequences in the style of the teacher's
// buddy-allocator stress tests.
package testkit

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/blockheap/heap/heap"
	"github.com/blockheap/heap/heapext"
)

// NewArena builds an Arena backed by a MemExtender of maxArena bytes using
// opts, failing the test immediately on any construction error.
func NewArena(t *testing.T, maxArena int, opts heap.Options) (*heap.Arena, *heapext.MemExtender) {
	t.Helper()
	ext, err := heapext.NewMemExtender(maxArena)
	require.NoError(t, err)

	a, err := heap.New(ext, opts)
	require.NoError(t, err)

	return a, ext
}

// RandomAllocFreeSequence drives arena through n random alloc/free
// operations picking sizes from sizes, freeing a uniformly random
// previously-live block about 1/3 of the time (mirroring the teacher's
// buddy-allocator stress loop). It calls CheckHeap after every operation
// and fails the test at the first reported violation, and frees every
// still-live block at the end, leaving the arena consistent.
func RandomAllocFreeSequence(t *testing.T, arena *heap.Arena, rng *rand.Rand, n int, sizes []int) {
	t.Helper()

	var live []unsafe.Pointer
	for i := 0; i < n; i++ {
		if len(live) == 0 || rng.Intn(3) != 0 {
			sz := sizes[rng.Intn(len(sizes))]
			bp := arena.Malloc(sz)
			if bp != nil {
				live = append(live, bp)
			}
		} else {
			idx := rng.Intn(len(live))
			arena.Free(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}

		violations := arena.CheckHeap(false)
		require.Empty(t, violations, "iteration %d: heap inconsistent", i)
	}

	for _, bp := range live {
		arena.Free(bp)
	}
	require.Empty(t, arena.CheckHeap(false), "heap inconsistent after draining all live blocks")
}
