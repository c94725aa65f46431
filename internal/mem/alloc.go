// Package mem provides aligned memory allocation for the numeric core.
package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every vector allocation (64 bytes,
// wide enough for AVX-512 lanes).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size whose first byte
// sits on an Alignment boundary.
//
// Note: this allocates slightly more memory than requested so that an
// aligned offset always exists. The underlying array is kept alive by the
// returned slice.
func AllocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedReal allocates a float32 or float64 slice of n elements with
// Alignment-byte alignment.
func AllocAlignedReal[T ~float32 | ~float64](n int) []T {
	if n == 0 {
		return nil
	}

	var dummy T
	byteSlice := AllocAligned(n * int(unsafe.Sizeof(dummy)))

	// Safe because AllocAligned guarantees 64-byte alignment, which
	// covers the 4- or 8-byte alignment the element type requires.
	ptr := unsafe.Pointer(&byteSlice[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)    //nolint:gosec // unsafe is required for memory alignment
}
