package blas

// Real is the constraint for supported element kinds. The core is
// instantiated for single and double precision only.
type Real interface {
	float32 | float64
}

// Transpose selects between op(M) = M and op(M) = Mᵗ in level-2 kernels.
type Transpose int

// Transpose values.
const (
	NoTrans Transpose = iota
	Trans
)

// String returns a human-readable name for the transpose flag.
func (t Transpose) String() string {
	if t == Trans {
		return "Trans"
	}
	return "NoTrans"
}

// Backend identifies a kernel implementation.
type Backend int

// Supported backends.
const (
	Reference Backend = iota
	Gonum
)

// String returns a human-readable backend name.
func (b Backend) String() string {
	switch b {
	case Reference:
		return "Reference"
	case Gonum:
		return "Gonum"
	default:
		return "Unknown"
	}
}

// kernels holds the kernel entry points for one element kind. Generic
// reference implementations are the fallback; Use(Gonum) overrides them
// with the gonum-backed versions.
type kernels[T Real] struct {
	dot  func(n int, x []T, incx int, y []T, incy int) T
	axpy func(n int, alpha T, x []T, incx int, y []T, incy int)
	scal func(n int, alpha T, x []T, incx int)
	copy func(n int, x []T, incx int, y []T, incy int)
	gemv func(t Transpose, m, n int, alpha T, a []T, lda int, x []T, incx int, beta T, y []T, incy int)
	gbmv func(t Transpose, m, n, kl, ku int, alpha T, a []T, lda int, x []T, incx int, beta T, y []T, incy int)
	spmv func(n int, alpha T, ap, x []T, incx int, beta T, y []T, incy int)
	tpmv func(t Transpose, n int, ap, x []T, incx int)
	tpsv func(t Transpose, n int, ap, x []T, incx int)
}

var (
	k32    kernels[float32]
	k64    kernels[float64]
	active Backend
)

func init() {
	Use(Gonum)
}

// Use selects the kernel implementation for all subsequent operations.
// It must not be called concurrently with running kernels.
func Use(b Backend) {
	switch b {
	case Gonum:
		k32 = gonumKernels32()
		k64 = gonumKernels64()
	default:
		b = Reference
		k32 = referenceKernels[float32]()
		k64 = referenceKernels[float64]()
	}
	active = b
}

// Active reports the currently selected backend.
func Active() Backend {
	return active
}

// pick returns the kernel table for the element kind T.
func pick[T Real]() *kernels[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(&k32).(*kernels[T])
	default:
		return any(&k64).(*kernels[T])
	}
}

// Dot returns Σ x[i*incx]·y[i*incy] over n elements.
func Dot[T Real](n int, x []T, incx int, y []T, incy int) T {
	return pick[T]().dot(n, x, incx, y, incy)
}

// Axpy computes y[i*incy] += alpha·x[i*incx] over n elements.
func Axpy[T Real](n int, alpha T, x []T, incx int, y []T, incy int) {
	pick[T]().axpy(n, alpha, x, incx, y, incy)
}

// Scal computes x[i*incx] *= alpha over n elements.
func Scal[T Real](n int, alpha T, x []T, incx int) {
	pick[T]().scal(n, alpha, x, incx)
}

// Copy copies n strided elements from x to y.
func Copy[T Real](n int, x []T, incx int, y []T, incy int) {
	pick[T]().copy(n, x, incx, y, incy)
}

// Gemv computes y = beta·y + alpha·op(A)·x for a row-major m×n matrix A
// with leading dimension lda.
func Gemv[T Real](t Transpose, m, n int, alpha T, a []T, lda int, x []T, incx int, beta T, y []T, incy int) {
	pick[T]().gemv(t, m, n, alpha, a, lda, x, incx, beta, y, incy)
}

// Gbmv is Gemv for a row-major band matrix with kl sub- and ku
// super-diagonals.
func Gbmv[T Real](t Transpose, m, n, kl, ku int, alpha T, a []T, lda int, x []T, incx int, beta T, y []T, incy int) {
	pick[T]().gbmv(t, m, n, kl, ku, alpha, a, lda, x, incx, beta, y, incy)
}

// Spmv computes y = beta·y + alpha·A·x for a symmetric n×n matrix A stored
// lower-packed in row-major order.
func Spmv[T Real](n int, alpha T, ap, x []T, incx int, beta T, y []T, incy int) {
	pick[T]().spmv(n, alpha, ap, x, incx, beta, y, incy)
}

// Tpmv computes x = op(A)·x for a lower-packed triangular matrix A with a
// non-unit diagonal.
func Tpmv[T Real](t Transpose, n int, ap, x []T, incx int) {
	pick[T]().tpmv(t, n, ap, x, incx)
}

// Tpsv solves op(A)·x = b in place for a lower-packed triangular matrix A
// with a non-unit diagonal; on entry x holds b, on return the solution.
func Tpsv[T Real](t Transpose, n int, ap, x []T, incx int) {
	pick[T]().tpsv(t, n, ap, x, incx)
}

// GemvSparse is Gemv specialized for an x that is mostly zero: it skips
// zero entries entirely. There is no accelerated version; both backends
// share the reference algorithm.
func GemvSparse[T Real](t Transpose, m, n int, alpha T, a []T, lda int, x []T, incx int, beta T, y []T, incy int) {
	refGemvSparse(t, m, n, alpha, a, lda, x, incx, beta, y, incy)
}
