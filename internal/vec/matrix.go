package vec

import (
	"github.com/murmel-speech/murmel/internal/blas"
)

// Matrix is the narrow interface through which the vector core consumes
// dense row-major matrices: dimensions, row stride, flat storage and
// per-row access. The concrete matrix types live above this layer.
type Matrix[T Real] interface {
	Rows() int
	Cols() int
	// Stride is the element distance between consecutive rows; rows may
	// carry padding, so Stride >= Cols.
	Stride() int
	Data() []T
	RowData(i int) []T
}

// Packed is the narrow interface for symmetric or triangular matrices
// stored lower-packed in row-major order: element (i,j), j <= i, lives at
// Data()[i*(i+1)/2+j].
type Packed[T Real] interface {
	Rows() int
	Data() []T
}

// packedSize is the triangular number of elements a packed order-n matrix
// stores.
func packedSize(n int) int {
	return n * (n + 1) / 2
}

// RowView returns a zero-copy view over row i of m.
func RowView[T Real](m Matrix[T], i int) View[T] {
	return ViewOf(m.RowData(i))
}

// ColView returns a zero-copy strided view over column j of m.
func ColView[T Real](m Matrix[T], j int) View[T] {
	if m.Rows() == 0 {
		return View[T]{}
	}
	return View[T]{data: m.Data()[j:], n: m.Rows(), inc: m.Stride()}
}

// CopyRowsFromMat flattens m row-major into the receiver. The receiver
// length must be rows·cols. Contiguous sources take a single-copy fast
// path.
func (v View[T]) CopyRowsFromMat(m Matrix[T]) error {
	rows, cols := m.Rows(), m.Cols()
	if err := v.checkDim(rows * cols); err != nil {
		return err
	}
	if v.n == 0 {
		return nil
	}

	if v.step() == 1 && m.Stride() == cols {
		copy(v.data[:v.n], m.Data()[:v.n])
		return nil
	}

	inc := v.step()
	for i := 0; i < rows; i++ {
		blas.Copy(cols, m.RowData(i), 1, v.data[i*cols*inc:], inc)
	}
	return nil
}

// CopyColsFromMat flattens m column-major into the receiver.
func (v View[T]) CopyColsFromMat(m Matrix[T]) error {
	rows, cols := m.Rows(), m.Cols()
	if err := v.checkDim(rows * cols); err != nil {
		return err
	}

	if rows == 0 {
		return nil
	}
	inc := v.step()
	for j := 0; j < cols; j++ {
		blas.Copy(rows, m.Data()[j:], m.Stride(), v.data[j*rows*inc:], inc)
	}
	return nil
}

// CopyRowFromMat copies row i of m into the receiver.
func (v View[T]) CopyRowFromMat(m Matrix[T], i int) error {
	if i < 0 || i >= m.Rows() {
		return indexErr(i, m.Rows())
	}
	if err := v.checkDim(m.Cols()); err != nil {
		return err
	}
	blas.Copy(v.n, m.RowData(i), 1, v.data, v.step())
	return nil
}

// CopyColFromMat copies column j of m into the receiver.
func (v View[T]) CopyColFromMat(m Matrix[T], j int) error {
	if j < 0 || j >= m.Cols() {
		return indexErr(j, m.Cols())
	}
	if err := v.checkDim(m.Rows()); err != nil {
		return err
	}
	blas.Copy(v.n, m.Data()[j:], m.Stride(), v.data, v.step())
	return nil
}

// CopyDiagFromMat copies the main diagonal of m into the receiver.
func (v View[T]) CopyDiagFromMat(m Matrix[T]) error {
	if err := v.checkDim(min(m.Rows(), m.Cols())); err != nil {
		return err
	}
	blas.Copy(v.n, m.Data(), m.Stride()+1, v.data, v.step())
	return nil
}

// CopyFromPacked copies the packed storage of m verbatim into the
// receiver, whose length must be the triangular size rows·(rows+1)/2.
func (v View[T]) CopyFromPacked(m Packed[T]) error {
	if err := v.checkDim(packedSize(m.Rows())); err != nil {
		return err
	}
	blas.Copy(v.n, m.Data(), 1, v.data, v.step())
	return nil
}

// CopyDiagFromPacked copies the diagonal of a packed matrix into the
// receiver.
func (v View[T]) CopyDiagFromPacked(m Packed[T]) error {
	if err := v.checkDim(m.Rows()); err != nil {
		return err
	}
	data, inc, pd := v.data, v.step(), m.Data()
	for i := 0; i < v.n; i++ {
		data[i*inc] = pd[packedSize(i)+i]
	}
	return nil
}

// CopyRowFromSp copies row i of a packed symmetric matrix into the
// receiver: the first i+1 elements come from the packed row, the rest from
// walking down the mirrored column.
func (v View[T]) CopyRowFromSp(m Packed[T], i int) error {
	if i < 0 || i >= m.Rows() {
		return indexErr(i, m.Rows())
	}
	if err := v.checkDim(m.Rows()); err != nil {
		return err
	}

	data, inc, pd := v.data, v.step(), m.Data()
	row := packedSize(i)
	for j := 0; j <= i; j++ {
		data[j*inc] = pd[row+j]
	}
	for j := i + 1; j < v.n; j++ {
		data[j*inc] = pd[packedSize(j)+i]
	}
	return nil
}
