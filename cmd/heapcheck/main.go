// Command heapcheck drives an Arena through a short scripted sequence of
// malloc/free/realloc calls and runs the consistency checker verbosely
// afterward. It exists purely as a manual smoke-test harness; it is not
// part of the module's public contract.
package main

import (
	"fmt"
	"os"

	"github.com/blockheap/heap/heap"
	"github.com/blockheap/heap/heapext"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "heapcheck:", err)
		os.Exit(1)
	}
}

func run() error {
	ext, err := heapext.NewMemExtender(heapext.DefaultMaxArena)
	if err != nil {
		return fmt.Errorf("new extender: %w", err)
	}
	defer ext.Close()

	a, err := heap.New(ext, heap.DefaultOptions())
	if err != nil {
		return fmt.Errorf("new arena: %w", err)
	}

	fmt.Println("allocating three blocks")
	b1 := a.Malloc(64)
	b2 := a.Malloc(128)
	b3 := a.Malloc(256)
	if b1 == nil || b2 == nil || b3 == nil {
		return fmt.Errorf("malloc returned nil for a fresh arena")
	}

	fmt.Println("freeing the middle block")
	a.Free(b2)

	fmt.Println("growing the first block via realloc")
	b1 = a.Realloc(b1, 512)
	if b1 == nil {
		return fmt.Errorf("realloc returned nil unexpectedly")
	}

	fmt.Println("freeing the remaining blocks")
	a.Free(b1)
	a.Free(b3)

	fmt.Println("running consistency checker")
	violations := a.CheckHeap(true)
	if len(violations) == 0 {
		fmt.Println("heap is consistent")
		return nil
	}
	return fmt.Errorf("found %d violation(s)", len(violations))
}
