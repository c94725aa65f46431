package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murmel-speech/murmel/internal/mat"
)

func countingDense(rows, cols int) *mat.Dense[float64] {
	m := mat.NewDense[float64](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, float64(i*cols+j+1))
		}
	}
	return m
}

func TestRowColView(t *testing.T) {
	m := countingDense(2, 3)

	row := RowView(m, 1)
	assert.Equal(t, 3, row.Dim())
	assert.Equal(t, 4.0, row.At(0))
	assert.Equal(t, 6.0, row.At(2))

	col := ColView(m, 2)
	assert.Equal(t, 2, col.Dim())
	assert.Equal(t, 3.0, col.At(0))
	assert.Equal(t, 6.0, col.At(1))

	// Views alias the matrix storage.
	row.SetAt(0, -1)
	assert.Equal(t, -1.0, m.At(1, 0))
}

func TestCopyRowsFromMat(t *testing.T) {
	m := countingDense(2, 3)
	v := ViewOf(make([]float64, 6))

	require.NoError(t, v.CopyRowsFromMat(m))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, v.Data())

	err := ViewOf(make([]float64, 5)).CopyRowsFromMat(m)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCopyRowsFromMatPadded(t *testing.T) {
	m := mat.NewDenseStride[float64](2, 2, 4)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3)
	m.Set(1, 1, 4)

	v := ViewOf(make([]float64, 4))
	require.NoError(t, v.CopyRowsFromMat(m))
	assert.Equal(t, []float64{1, 2, 3, 4}, v.Data())
}

func TestCopyColsFromMat(t *testing.T) {
	m := countingDense(2, 3)
	v := ViewOf(make([]float64, 6))

	require.NoError(t, v.CopyColsFromMat(m))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, v.Data())
}

func TestCopyRowColFromMat(t *testing.T) {
	m := countingDense(3, 2)

	v := ViewOf(make([]float64, 2))
	require.NoError(t, v.CopyRowFromMat(m, 2))
	assert.Equal(t, []float64{5, 6}, v.Data())

	c := ViewOf(make([]float64, 3))
	require.NoError(t, c.CopyColFromMat(m, 1))
	assert.Equal(t, []float64{2, 4, 6}, c.Data())

	assert.ErrorIs(t, v.CopyRowFromMat(m, 3), ErrInvalidLength)
	assert.ErrorIs(t, c.CopyColFromMat(m, -1), ErrInvalidLength)
}

func TestCopyDiagFromMat(t *testing.T) {
	m := countingDense(3, 3)
	v := ViewOf(make([]float64, 3))

	require.NoError(t, v.CopyDiagFromMat(m))
	assert.Equal(t, []float64{1, 5, 9}, v.Data())
}

func TestCopyFromPacked(t *testing.T) {
	sp := mat.NewSymPacked[float64](3)
	val := 1.0
	for i := 0; i < 3; i++ {
		for j := 0; j <= i; j++ {
			sp.Set(i, j, val)
			val++
		}
	}

	v := ViewOf(make([]float64, 6))
	require.NoError(t, v.CopyFromPacked(sp))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, v.Data())

	d := ViewOf(make([]float64, 3))
	require.NoError(t, d.CopyDiagFromPacked(sp))
	assert.Equal(t, []float64{1, 3, 6}, d.Data())
}

func TestCopyRowFromSp(t *testing.T) {
	sp := mat.NewSymPacked[float64](3)
	val := 1.0
	for i := 0; i < 3; i++ {
		for j := 0; j <= i; j++ {
			sp.Set(i, j, val)
			val++
		}
	}

	for i := 0; i < 3; i++ {
		v := ViewOf(make([]float64, 3))
		require.NoError(t, v.CopyRowFromSp(sp, i))
		for j := 0; j < 3; j++ {
			assert.Equal(t, sp.At(i, j), v.At(j), "row %d col %d", i, j)
		}
	}
}
