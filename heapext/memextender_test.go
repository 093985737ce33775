package heapext

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemExtender(t *testing.T) {
	tests := []struct {
		name     string
		maxArena int
		wantErr  bool
	}{
		{"valid", 1 << 20, false},
		{"valid_default", DefaultMaxArena, false},
		{"zero", 0, true},
		{"negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMemExtender(tt.maxArena)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, m)
			defer m.Close()
			assert.Equal(t, m.Lo(), m.Hi())
		})
	}
}

func TestMemExtender_ExtendGrowsAndAddressesStayStable(t *testing.T) {
	m, err := NewMemExtender(1 << 20)
	require.NoError(t, err)
	defer m.Close()

	p1, err := m.Extend(64)
	require.NoError(t, err)
	require.NotNil(t, p1)

	p2, err := m.Extend(64)
	require.NoError(t, err)
	require.NotNil(t, p2)

	assert.Equal(t, int(uintptr(p2)-uintptr(p1)), 64, "second region must start immediately after the first")

	// writing through p1 after a further Extend must not be disturbed:
	// the property extend_heap's callers in package heap depend on.
	*(*byte)(p1) = 0xAB
	_, err = m.Extend(64)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), *(*byte)(p1))
}

func TestMemExtender_ExtendRejectsNonPositive(t *testing.T) {
	m, err := NewMemExtender(1 << 20)
	require.NoError(t, err)
	defer m.Close()

	_, err = m.Extend(0)
	assert.Error(t, err)

	_, err = m.Extend(-1)
	assert.Error(t, err)
}

func TestMemExtender_ExtendExhaustion(t *testing.T) {
	m, err := NewMemExtender(128)
	require.NoError(t, err)
	defer m.Close()

	_, err = m.Extend(100)
	require.NoError(t, err)

	_, err = m.Extend(100)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestMemExtender_LoHiTrackHighWaterMark(t *testing.T) {
	m, err := NewMemExtender(1 << 20)
	require.NoError(t, err)
	defer m.Close()

	lo := m.Lo()
	assert.Equal(t, lo, m.Hi())

	p, err := m.Extend(256)
	require.NoError(t, err)
	assert.Equal(t, lo, m.Lo())
	assert.Equal(t, unsafe.Pointer(uintptr(p)+255), m.Hi())
}
