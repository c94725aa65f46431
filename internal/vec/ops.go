package vec

import (
	"github.com/murmel-speech/murmel/internal/blas"
)

// CopyFromVec copies v's elements into the receiver. Copying a view onto
// itself is a no-op.
func (v View[T]) CopyFromVec(src View[T]) error {
	if err := v.checkDim(src.n); err != nil {
		return err
	}
	if sameStorage(v, src) {
		return nil
	}
	blas.Copy(v.n, src.data, src.step(), v.data, v.step())
	return nil
}

// AddVec computes v += alpha·src. The operand must not share storage with
// the receiver.
func (v View[T]) AddVec(alpha T, src View[T]) error {
	if err := v.checkDim(src.n); err != nil {
		return err
	}
	if sameStorage(v, src) {
		return ErrAliasedOperands
	}
	blas.Axpy(v.n, alpha, src.data, src.step(), v.data, v.step())
	return nil
}

// AddVec2 computes v += alpha·src², elementwise.
func (v View[T]) AddVec2(alpha T, src View[T]) error {
	if err := v.checkDim(src.n); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	sData, sInc := src.data, src.step()
	for i := 0; i < v.n; i++ {
		data[i*inc] += alpha * sData[i*sInc] * sData[i*sInc]
	}
	return nil
}

// AddVecVec computes v = beta·v + alpha·(a∘b), treating a as a diagonal
// band matrix so the kernel layer does the work.
func (v View[T]) AddVecVec(alpha T, a, b View[T], beta T) error {
	if sameStorage(v, a) || sameStorage(v, b) {
		return ErrAliasedOperands
	}
	if err := v.checkDim(a.n); err != nil {
		return err
	}
	if err := v.checkDim(b.n); err != nil {
		return err
	}
	blas.Gbmv(NoTrans, v.n, v.n, 0, 0, alpha, a.data, a.step(), b.data, b.step(), beta, v.data, v.step())
	return nil
}

// AddVecDivVec computes v = beta·v + alpha·(a/b), elementwise.
func (v View[T]) AddVecDivVec(alpha T, a, b View[T], beta T) error {
	if err := v.checkDim(a.n); err != nil {
		return err
	}
	if err := v.checkDim(b.n); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	aData, aInc := a.data, a.step()
	bData, bInc := b.data, b.step()
	for i := 0; i < v.n; i++ {
		data[i*inc] = alpha*aData[i*aInc]/bData[i*bInc] + beta*data[i*inc]
	}
	return nil
}

// MulElements computes v *= src, elementwise.
func (v View[T]) MulElements(src View[T]) error {
	if err := v.checkDim(src.n); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	sData, sInc := src.data, src.step()
	for i := 0; i < v.n; i++ {
		data[i*inc] *= sData[i*sInc]
	}
	return nil
}

// DivElements computes v /= src, elementwise.
func (v View[T]) DivElements(src View[T]) error {
	if err := v.checkDim(src.n); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	sData, sInc := src.data, src.step()
	for i := 0; i < v.n; i++ {
		data[i*inc] /= sData[i*sInc]
	}
	return nil
}

// InvertElements replaces every element with its reciprocal.
func (v View[T]) InvertElements() {
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		data[i*inc] = 1 / data[i*inc]
	}
}

// AddMatVec computes v = beta·v + alpha·op(M)·x.
func (v View[T]) AddMatVec(alpha T, m Matrix[T], trans Transpose, x View[T], beta T) error {
	if err := checkMatVecDims(v.n, m, trans, x.n); err != nil {
		return err
	}
	if sameStorage(v, x) {
		return ErrAliasedOperands
	}
	blas.Gemv(trans, m.Rows(), m.Cols(), alpha, m.Data(), m.Stride(), x.data, x.step(), beta, v.data, v.step())
	return nil
}

// AddMatSvec is AddMatVec specialized for an x that is mostly zero; it may
// use a less parallel algorithm that skips zero entries.
func (v View[T]) AddMatSvec(alpha T, m Matrix[T], trans Transpose, x View[T], beta T) error {
	if err := checkMatVecDims(v.n, m, trans, x.n); err != nil {
		return err
	}
	if sameStorage(v, x) {
		return ErrAliasedOperands
	}
	blas.GemvSparse(trans, m.Rows(), m.Cols(), alpha, m.Data(), m.Stride(), x.data, x.step(), beta, v.data, v.step())
	return nil
}

func checkMatVecDims[T Real](out int, m Matrix[T], trans Transpose, in int) error {
	wantIn, wantOut := m.Cols(), m.Rows()
	if trans == Trans {
		wantIn, wantOut = wantOut, wantIn
	}
	if in != wantIn {
		return dimErr(wantIn, in)
	}
	if out != wantOut {
		return dimErr(wantOut, out)
	}
	return nil
}

// AddSpVec computes v = beta·v + alpha·M·x for a packed symmetric M.
func (v View[T]) AddSpVec(alpha T, m Packed[T], x View[T], beta T) error {
	if m.Rows() != x.n {
		return dimErr(m.Rows(), x.n)
	}
	if err := v.checkDim(x.n); err != nil {
		return err
	}
	if sameStorage(v, x) {
		return ErrAliasedOperands
	}
	blas.Spmv(m.Rows(), alpha, m.Data(), x.data, x.step(), beta, v.data, v.step())
	return nil
}

// MulTp computes v = op(M)·v in place for a packed triangular M.
func (v View[T]) MulTp(m Packed[T], trans Transpose) error {
	if err := v.checkDim(m.Rows()); err != nil {
		return err
	}
	blas.Tpmv(trans, m.Rows(), m.Data(), v.data, v.step())
	return nil
}

// Solve solves op(M)·x = v in place for a packed triangular M: on return v
// holds the solution x.
func (v View[T]) Solve(m Packed[T], trans Transpose) error {
	if err := v.checkDim(m.Rows()); err != nil {
		return err
	}
	blas.Tpsv(trans, m.Rows(), m.Data(), v.data, v.step())
	return nil
}

// AddTpVec computes v = beta·v + alpha·op(M)·x for a packed triangular M.
func (v View[T]) AddTpVec(alpha T, m Packed[T], trans Transpose, x View[T], beta T) error {
	if err := v.checkDim(x.n); err != nil {
		return err
	}
	if err := v.checkDim(m.Rows()); err != nil {
		return err
	}
	if beta == 0 {
		if !sameStorage(v, x) {
			if err := v.CopyFromVec(x); err != nil {
				return err
			}
		}
		if err := v.MulTp(m, trans); err != nil {
			return err
		}
		if alpha != 1 {
			v.Scale(alpha)
		}
		return nil
	}

	tmp := x.Clone()
	if err := tmp.MulTp(m, trans); err != nil {
		return err
	}
	if beta != 1 {
		v.Scale(beta)
	}
	return v.AddVec(alpha, tmp.View)
}

// AddRowSumMat accumulates v = beta·v + alpha·(sum of M's rows). The sum
// runs as blocked matrix-vector products against a fixed ones vector, so
// the kernel layer stays on the hot path.
func (v View[T]) AddRowSumMat(alpha T, m Matrix[T], beta T) error {
	if err := v.checkDim(m.Cols()); err != nil {
		return err
	}
	ones := onesBlock[T]()
	rows := m.Rows()
	for off := 0; off < rows; off += onesBlockSize {
		k := min(onesBlockSize, rows-off)
		blas.Gemv(Trans, k, m.Cols(), alpha, m.Data()[off*m.Stride():], m.Stride(), ones, 1, beta, v.data, v.step())
		beta = 1
	}
	if rows == 0 {
		scaleColumnless(v, beta)
	}
	return nil
}

// AddColSumMat accumulates v = beta·v + alpha·(sum of M's columns).
func (v View[T]) AddColSumMat(alpha T, m Matrix[T], beta T) error {
	if err := v.checkDim(m.Rows()); err != nil {
		return err
	}
	ones := onesBlock[T]()
	cols := m.Cols()
	for off := 0; off < cols; off += onesBlockSize {
		k := min(onesBlockSize, cols-off)
		blas.Gemv(NoTrans, m.Rows(), k, alpha, m.Data()[off:], m.Stride(), ones, 1, beta, v.data, v.step())
		beta = 1
	}
	if cols == 0 {
		scaleColumnless(v, beta)
	}
	return nil
}

// scaleColumnless applies the beta factor when the summed dimension is
// empty and no kernel call ran.
func scaleColumnless[T Real](v View[T], beta T) {
	switch beta {
	case 1:
	case 0:
		v.SetZero()
	default:
		v.Scale(beta)
	}
}

// AddDiagMat2 accumulates v = beta·v + alpha·diag(M·Mᵗ) (NoTrans) or
// alpha·diag(Mᵗ·M) (Trans), computed row- or column-wise via dot products
// without materializing the product.
func (v View[T]) AddDiagMat2(alpha T, m Matrix[T], trans Transpose, beta T) error {
	if trans == NoTrans {
		if err := v.checkDim(m.Rows()); err != nil {
			return err
		}
		data, inc := v.data, v.step()
		for i := 0; i < v.n; i++ {
			row := m.RowData(i)
			data[i*inc] = beta*data[i*inc] + alpha*blas.Dot(m.Cols(), row, 1, row, 1)
		}
		return nil
	}

	if err := v.checkDim(m.Cols()); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	md, stride := m.Data(), m.Stride()
	for i := 0; i < v.n; i++ {
		col := md[i:]
		data[i*inc] = beta*data[i*inc] + alpha*blas.Dot(m.Rows(), col, stride, col, stride)
	}
	return nil
}

// AddDiagMatMat accumulates v = beta·v + alpha·diag(op(M)·op(N)), one dot
// product per diagonal entry.
func (v View[T]) AddDiagMatMat(alpha T, m Matrix[T], transM Transpose, n Matrix[T], transN Transpose, beta T) error {
	mRows, mCols := m.Rows(), m.Cols()
	if transM == Trans {
		mRows, mCols = mCols, mRows
	}
	nRows, nCols := n.Rows(), n.Cols()
	if transN == Trans {
		nRows, nCols = nCols, nRows
	}
	if mCols != nRows { // the summed dimension
		return dimErr(mCols, nRows)
	}
	if err := v.checkDim(mRows); err != nil {
		return err
	}
	if err := v.checkDim(nCols); err != nil {
		return err
	}

	mRowStride, mColStride := m.Stride(), 1
	if transM == Trans {
		mRowStride, mColStride = mColStride, mRowStride
	}
	nRowStride, nColStride := n.Stride(), 1
	if transN == Trans {
		nRowStride, nColStride = nColStride, nRowStride
	}

	data, inc := v.data, v.step()
	md, nd := m.Data(), n.Data()
	for i := 0; i < v.n; i++ {
		data[i*inc] = beta*data[i*inc] +
			alpha*blas.Dot(mCols, md[i*mRowStride:], mColStride, nd[i*nColStride:], nRowStride)
	}
	return nil
}

// VecMatVec returns v1ᵗ·M·v2.
func VecMatVec[T Real](v1 View[T], m Matrix[T], v2 View[T]) (T, error) {
	if v1.n != m.Rows() {
		return 0, dimErr(m.Rows(), v1.n)
	}
	if v2.n != m.Cols() {
		return 0, dimErr(m.Cols(), v2.n)
	}
	tmp, err := New[T](m.Rows())
	if err != nil {
		return 0, err
	}
	if err := tmp.AddMatVec(1, m, NoTrans, v2, 0); err != nil {
		return 0, err
	}
	return VecVec(v1, tmp.View)
}

// The BLAS contract forbids zero strides, so reductions that conceptually
// dot against an all-ones vector run blockwise against this fixed array.
const onesBlockSize = 64

var (
	ones32 = onesOf[float32]()
	ones64 = onesOf[float64]()
)

func onesOf[T Real]() []T {
	s := make([]T, onesBlockSize)
	for i := range s {
		s[i] = 1
	}
	return s
}

func onesBlock[T Real]() []T {
	var dummy T
	if _, ok := any(dummy).(float32); ok {
		return any(ones32).([]T)
	}
	return any(ones64).([]T)
}
