package blas

import (
	gblas "gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
)

// impl is stateless; a single shared instance is enough.
var impl gonum.Implementation

func gonumTrans(t Transpose) gblas.Transpose {
	if t == Trans {
		return gblas.Trans
	}
	return gblas.NoTrans
}

func gonumKernels32() kernels[float32] {
	return kernels[float32]{
		dot: func(n int, x []float32, incx int, y []float32, incy int) float32 {
			return impl.Sdot(n, x, incx, y, incy)
		},
		axpy: func(n int, alpha float32, x []float32, incx int, y []float32, incy int) {
			impl.Saxpy(n, alpha, x, incx, y, incy)
		},
		scal: func(n int, alpha float32, x []float32, incx int) {
			impl.Sscal(n, alpha, x, incx)
		},
		copy: func(n int, x []float32, incx int, y []float32, incy int) {
			impl.Scopy(n, x, incx, y, incy)
		},
		gemv: func(t Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incx int, beta float32, y []float32, incy int) {
			impl.Sgemv(gonumTrans(t), m, n, alpha, a, lda, x, incx, beta, y, incy)
		},
		gbmv: func(t Transpose, m, n, kl, ku int, alpha float32, a []float32, lda int, x []float32, incx int, beta float32, y []float32, incy int) {
			impl.Sgbmv(gonumTrans(t), m, n, kl, ku, alpha, a, lda, x, incx, beta, y, incy)
		},
		spmv: func(n int, alpha float32, ap, x []float32, incx int, beta float32, y []float32, incy int) {
			impl.Sspmv(gblas.Lower, n, alpha, ap, x, incx, beta, y, incy)
		},
		tpmv: func(t Transpose, n int, ap, x []float32, incx int) {
			impl.Stpmv(gblas.Lower, gonumTrans(t), gblas.NonUnit, n, ap, x, incx)
		},
		tpsv: func(t Transpose, n int, ap, x []float32, incx int) {
			impl.Stpsv(gblas.Lower, gonumTrans(t), gblas.NonUnit, n, ap, x, incx)
		},
	}
}

func gonumKernels64() kernels[float64] {
	return kernels[float64]{
		dot: func(n int, x []float64, incx int, y []float64, incy int) float64 {
			return impl.Ddot(n, x, incx, y, incy)
		},
		axpy: func(n int, alpha float64, x []float64, incx int, y []float64, incy int) {
			impl.Daxpy(n, alpha, x, incx, y, incy)
		},
		scal: func(n int, alpha float64, x []float64, incx int) {
			impl.Dscal(n, alpha, x, incx)
		},
		copy: func(n int, x []float64, incx int, y []float64, incy int) {
			impl.Dcopy(n, x, incx, y, incy)
		},
		gemv: func(t Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incx int, beta float64, y []float64, incy int) {
			impl.Dgemv(gonumTrans(t), m, n, alpha, a, lda, x, incx, beta, y, incy)
		},
		gbmv: func(t Transpose, m, n, kl, ku int, alpha float64, a []float64, lda int, x []float64, incx int, beta float64, y []float64, incy int) {
			impl.Dgbmv(gonumTrans(t), m, n, kl, ku, alpha, a, lda, x, incx, beta, y, incy)
		},
		spmv: func(n int, alpha float64, ap, x []float64, incx int, beta float64, y []float64, incy int) {
			impl.Dspmv(gblas.Lower, n, alpha, ap, x, incx, beta, y, incy)
		},
		tpmv: func(t Transpose, n int, ap, x []float64, incx int) {
			impl.Dtpmv(gblas.Lower, gonumTrans(t), gblas.NonUnit, n, ap, x, incx)
		},
		tpsv: func(t Transpose, n int, ap, x []float64, incx int) {
			impl.Dtpsv(gblas.Lower, gonumTrans(t), gblas.NonUnit, n, ap, x, incx)
		},
	}
}
