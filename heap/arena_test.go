package heap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockheap/heap/internal/ptr"

	"github.com/blockheap/heap/heapext"
)

func newTestArena(t *testing.T, opts Options) (*Arena, *heapext.MemExtender) {
	t.Helper()
	ext, err := heapext.NewMemExtender(heapext.DefaultMaxArena)
	require.NoError(t, err)
	a, err := New(ext, opts)
	require.NoError(t, err)
	return a, ext
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"default", DefaultOptions(), false},
		{"larger_chunk", Options{ChunkSize: 8192}, false},
		{"min_chunk", Options{ChunkSize: int(Dsize)}, false},
		{"zero", Options{ChunkSize: 0}, true},
		{"negative", Options{ChunkSize: -4096}, true},
		{"not_multiple_of_dsize", Options{ChunkSize: int(Dsize) + 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := heapext.NewMemExtender(heapext.DefaultMaxArena)
			require.NoError(t, err)
			defer ext.Close()

			a, err := New(ext, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, a)
			assert.Empty(t, a.CheckHeap(false))
		})
	}
}

func TestNew_PrologueAndEpilogueLayout(t *testing.T) {
	a, _ := newTestArena(t, DefaultOptions())

	assert.Equal(t, 2*Dsize, blockSize(a.heapListPtr))
	assert.True(t, blockAlloc(a.heapListPtr))

	// after bootstrap + one chunk extension, the free list head is the
	// single coalesced free block, not the prologue.
	assert.False(t, blockAlloc(a.freeListHead))
	assert.Equal(t, a.chunkSize, blockSize(a.freeListHead))

	// the epilogue is the zero-size allocated header right after that block.
	epilogue := nextBlockPtr(a.freeListHead)
	assert.Equal(t, uintptr(0), blockSize(epilogue))
	assert.True(t, blockAlloc(epilogue))
}

func TestNew_ExtenderExhaustionDuringBootstrap(t *testing.T) {
	// An extender with room for the bootstrap words only cannot satisfy
	// the initial chunk extension, so New must fail cleanly.
	ext, err := heapext.NewMemExtender(int(bootstrapWords * Word))
	require.NoError(t, err)
	defer ext.Close()

	a, err := New(ext, DefaultOptions())
	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestWriteBootstrapLayout(t *testing.T) {
	buf := make([]byte, bootstrapWords*Word)
	base := unsafe.Pointer(&buf[0])
	writeBootstrapLayout(base)

	bp := ptr.Add(base, int(2*Word))
	assert.Equal(t, 2*Dsize, blockSize(bp))
	assert.True(t, blockAlloc(bp))
}
