package heap_test

import (
	"fmt"

	"github.com/blockheap/heap/heap"
	"github.com/blockheap/heap/heapext"
)

func Example() {
	ext, _ := heapext.NewMemExtender(heapext.DefaultMaxArena)
	defer ext.Close()

	a, _ := heap.New(ext, heap.DefaultOptions())

	b1 := a.Malloc(24)
	b2 := a.Malloc(4000)
	fmt.Println(b1 != nil, b2 != nil)

	a.Free(b1)
	a.Free(b2)
	fmt.Println(len(a.CheckHeap(false)) == 0)

	// Output:
	// true true
	// true
}
