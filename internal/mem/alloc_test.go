package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	for _, size := range []int{1, 7, 64, 65, 4096} {
		buf := AllocAligned(size)
		require.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Zero(t, addr&(Alignment-1), "size %d: address %#x not aligned", size, addr)
	}
}

func TestAllocAlignedZero(t *testing.T) {
	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAlignedReal[float32](0))
	assert.Nil(t, AllocAlignedReal[float64](0))
}

func TestAllocAlignedReal(t *testing.T) {
	f32 := AllocAlignedReal[float32](100)
	require.Len(t, f32, 100)
	addr := uintptr(unsafe.Pointer(&f32[0]))
	assert.Zero(t, addr&(Alignment-1))

	f64 := AllocAlignedReal[float64](33)
	require.Len(t, f64, 33)
	addr = uintptr(unsafe.Pointer(&f64[0]))
	assert.Zero(t, addr&(Alignment-1))

	// Freshly allocated memory reads as zero.
	for _, v := range f64 {
		require.Zero(t, v)
	}
}
