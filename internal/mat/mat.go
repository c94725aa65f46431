// Package mat provides the minimal dense and packed matrix types the
// vector core consumes. The full matrix library lives above this layer;
// these types carry just enough (dimensions, stride, flat storage and
// per-row access) to drive matrix-vector operations and tests.
package mat

import (
	"fmt"

	"github.com/murmel-speech/murmel/internal/blas"
)

// Dense is a row-major matrix whose rows may carry padding (stride >=
// cols).
type Dense[T blas.Real] struct {
	rows, cols, stride int
	data               []T
}

// NewDense creates a zeroed rows×cols matrix with no row padding.
func NewDense[T blas.Real](rows, cols int) *Dense[T] {
	return NewDenseStride[T](rows, cols, cols)
}

// NewDenseStride creates a zeroed rows×cols matrix whose rows are laid out
// stride elements apart. Panics if stride < cols.
func NewDenseStride[T blas.Real](rows, cols, stride int) *Dense[T] {
	if stride < cols {
		panic(fmt.Sprintf("mat: stride %d < cols %d", stride, cols))
	}
	return &Dense[T]{
		rows:   rows,
		cols:   cols,
		stride: stride,
		data:   make([]T, rows*stride),
	}
}

// DenseFromSlice builds a rows×cols matrix copying row-major data.
func DenseFromSlice[T blas.Real](data []T, rows, cols int) *Dense[T] {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("mat: %d×%d matrix requires %d elements, got %d", rows, cols, rows*cols, len(data)))
	}
	m := NewDense[T](rows, cols)
	copy(m.data, data)
	return m
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.cols }

// Stride returns the element distance between consecutive rows.
func (m *Dense[T]) Stride() int { return m.stride }

// Data returns the flat backing storage, padding included.
func (m *Dense[T]) Data() []T { return m.data }

// RowData returns the storage of row i (cols elements).
func (m *Dense[T]) RowData(i int) []T {
	return m.data[i*m.stride : i*m.stride+m.cols]
}

// At returns element (i, j).
func (m *Dense[T]) At(i, j int) T {
	return m.data[i*m.stride+j]
}

// Set assigns element (i, j).
func (m *Dense[T]) Set(i, j int, v T) {
	m.data[i*m.stride+j] = v
}

// packed is lower-triangular row-major storage: row i holds elements
// (i,0)..(i,i) starting at offset i*(i+1)/2.
type packed[T blas.Real] struct {
	n    int
	data []T
}

func newPacked[T blas.Real](n int) packed[T] {
	return packed[T]{n: n, data: make([]T, n*(n+1)/2)}
}

// Rows returns the matrix order.
func (p *packed[T]) Rows() int { return p.n }

// Data returns the packed storage.
func (p *packed[T]) Data() []T { return p.data }

func (p *packed[T]) lowerAt(i, j int) T {
	return p.data[i*(i+1)/2+j]
}

func (p *packed[T]) lowerSet(i, j int, v T) {
	p.data[i*(i+1)/2+j] = v
}

// SymPacked is a symmetric matrix stored without its redundant upper half.
type SymPacked[T blas.Real] struct {
	packed[T]
}

// NewSymPacked creates a zeroed symmetric n×n packed matrix.
func NewSymPacked[T blas.Real](n int) *SymPacked[T] {
	return &SymPacked[T]{newPacked[T](n)}
}

// At returns element (i, j), reading the mirrored half when j > i.
func (p *SymPacked[T]) At(i, j int) T {
	if j > i {
		i, j = j, i
	}
	return p.lowerAt(i, j)
}

// Set assigns element (i, j) and its mirror.
func (p *SymPacked[T]) Set(i, j int, v T) {
	if j > i {
		i, j = j, i
	}
	p.lowerSet(i, j, v)
}

// TriPacked is a lower-triangular matrix stored without its zero upper
// half.
type TriPacked[T blas.Real] struct {
	packed[T]
}

// NewTriPacked creates a zeroed lower-triangular n×n packed matrix.
func NewTriPacked[T blas.Real](n int) *TriPacked[T] {
	return &TriPacked[T]{newPacked[T](n)}
}

// At returns element (i, j); entries above the diagonal are zero.
func (p *TriPacked[T]) At(i, j int) T {
	if j > i {
		return 0
	}
	return p.lowerAt(i, j)
}

// Set assigns element (i, j). Panics above the diagonal.
func (p *TriPacked[T]) Set(i, j int, v T) {
	if j > i {
		panic(fmt.Sprintf("mat: triangular element (%d,%d) above the diagonal", i, j))
	}
	p.lowerSet(i, j, v)
}
