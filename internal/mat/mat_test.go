package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseLayout(t *testing.T) {
	m := DenseFromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 3, m.Stride())
	assert.Equal(t, []float64{4, 5, 6}, m.RowData(1))
	assert.Equal(t, 6.0, m.At(1, 2))

	m.Set(0, 1, 9)
	assert.Equal(t, 9.0, m.At(0, 1))
}

func TestDensePaddedRows(t *testing.T) {
	m := NewDenseStride[float32](2, 2, 5)
	m.Set(1, 1, 7)

	require.Len(t, m.Data(), 10)
	assert.Equal(t, float32(7), m.Data()[1*5+1])
	assert.Equal(t, []float32{0, 7}, m.RowData(1))

	assert.Panics(t, func() { NewDenseStride[float32](2, 3, 2) })
}

func TestSymPackedMirrors(t *testing.T) {
	p := NewSymPacked[float64](3)
	p.Set(2, 0, 5)
	p.Set(0, 2, 7) // overwrites the same slot via the mirror

	assert.Equal(t, 7.0, p.At(2, 0))
	assert.Equal(t, 7.0, p.At(0, 2))
	require.Len(t, p.Data(), 6)
	assert.Equal(t, 7.0, p.Data()[3]) // row 2 starts at offset 3
}

func TestTriPacked(t *testing.T) {
	p := NewTriPacked[float64](3)
	p.Set(1, 1, 4)
	p.Set(2, 1, 3)

	assert.Equal(t, 4.0, p.At(1, 1))
	assert.Equal(t, 3.0, p.At(2, 1))
	assert.Zero(t, p.At(1, 2))
	assert.Panics(t, func() { p.Set(0, 1, 1) })
}
