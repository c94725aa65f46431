package blas

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

func randSlice(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.NormFloat64()
	}
	return s
}

// withBackend runs f under each backend and restores the default.
func withBackend(t *testing.T, b Backend, f func()) {
	t.Helper()
	prev := Active()
	Use(b)
	defer Use(prev)
	f()
}

func TestUse(t *testing.T) {
	require.Equal(t, Gonum, Active())

	Use(Reference)
	assert.Equal(t, Reference, Active())

	Use(Gonum)
	assert.Equal(t, Gonum, Active())
}

func TestDotAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 3, 4, 17, 128} {
		x, y := randSlice(rng, n*2+1), randSlice(rng, n*3+1)

		want := 0.0
		for i := 0; i < n; i++ {
			want += x[i*2] * y[i*3]
		}

		for _, b := range []Backend{Reference, Gonum} {
			withBackend(t, b, func() {
				got := Dot(n, x, 2, y, 3)
				assert.InDelta(t, want, got, tol, "backend %s n=%d", b, n)
			})
		}
	}
}

func TestDotFloat32(t *testing.T) {
	x := []float32{1, 2, 3, 4, 5}
	y := []float32{2, 0, 1, 0, 3}
	for _, b := range []Backend{Reference, Gonum} {
		withBackend(t, b, func() {
			assert.InDelta(t, float32(20), Dot(5, x, 1, y, 1), 1e-6)
		})
	}
}

func TestAxpyScalCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	x := randSlice(rng, 50)

	for _, b := range []Backend{Reference, Gonum} {
		withBackend(t, b, func() {
			y := make([]float64, 50)
			Copy(25, x, 2, y, 2)
			for i := 0; i < 25; i++ {
				require.Equal(t, x[i*2], y[i*2])
			}

			Axpy(25, 0.5, x, 2, y, 2)
			for i := 0; i < 25; i++ {
				require.InDelta(t, 1.5*x[i*2], y[i*2], tol)
			}

			Scal(25, 2, y, 2)
			for i := 0; i < 25; i++ {
				require.InDelta(t, 3*x[i*2], y[i*2], tol)
			}
		})
	}
}

func TestGemvBackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const m, n, lda = 5, 7, 9
	a := randSlice(rng, m*lda)
	x := randSlice(rng, n)
	xt := randSlice(rng, m)

	for _, trans := range []Transpose{NoTrans, Trans} {
		in := x
		outLen := m
		if trans == Trans {
			in = xt
			outLen = n
		}

		yRef := randSlice(rng, outLen)
		yGo := append([]float64(nil), yRef...)

		withBackend(t, Reference, func() {
			Gemv(trans, m, n, 0.75, a, lda, in, 1, 0.25, yRef, 1)
		})
		withBackend(t, Gonum, func() {
			Gemv(trans, m, n, 0.75, a, lda, in, 1, 0.25, yGo, 1)
		})

		for i := range yRef {
			assert.InDelta(t, yRef[i], yGo[i], tol, "%s y[%d]", trans, i)
		}
	}
}

func TestGemvSparseMatchesGemv(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	const m, n = 6, 8
	a := randSlice(rng, m*n)
	x := make([]float64, n)
	x[1], x[5] = 2.5, -1.25 // mostly zero

	want := make([]float64, m)
	got := make([]float64, m)
	withBackend(t, Reference, func() {
		Gemv(NoTrans, m, n, 1, a, n, x, 1, 0, want, 1)
	})
	GemvSparse(NoTrans, m, n, 1, a, n, x, 1, 0, got, 1)
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol)
	}

	xt := make([]float64, m)
	xt[0], xt[3] = 1.5, 4
	want = make([]float64, n)
	got = make([]float64, n)
	withBackend(t, Reference, func() {
		Gemv(Trans, m, n, 1, a, n, xt, 1, 0, want, 1)
	})
	GemvSparse(Trans, m, n, 1, a, n, xt, 1, 0, got, 1)
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol)
	}
}

func TestGbmvDiagonal(t *testing.T) {
	// kl == ku == 0 treats the band matrix as a diagonal; this is the
	// layout AddVecVec relies on.
	d := []float64{1, 2, 3, 4}
	x := []float64{10, 20, 30, 40}

	for _, b := range []Backend{Reference, Gonum} {
		withBackend(t, b, func() {
			y := make([]float64, 4)
			Gbmv(NoTrans, 4, 4, 0, 0, 1, d, 1, x, 1, 0, y, 1)
			assert.Equal(t, []float64{10, 40, 90, 160}, y, "backend %s", b)
		})
	}
}

func TestSpmvBackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	const n = 6
	ap := randSlice(rng, n*(n+1)/2)
	x := randSlice(rng, n)

	yRef := make([]float64, n)
	yGo := make([]float64, n)
	withBackend(t, Reference, func() { Spmv(n, 1.5, ap, x, 1, 0, yRef, 1) })
	withBackend(t, Gonum, func() { Spmv(n, 1.5, ap, x, 1, 0, yGo, 1) })

	// Brute force against the unpacked symmetric matrix.
	full := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			full[i*n+j] = ap[i*(i+1)/2+j]
			full[j*n+i] = ap[i*(i+1)/2+j]
		}
	}
	for i := 0; i < n; i++ {
		want := 0.0
		for j := 0; j < n; j++ {
			want += 1.5 * full[i*n+j] * x[j]
		}
		assert.InDelta(t, want, yRef[i], tol, "reference y[%d]", i)
		assert.InDelta(t, want, yGo[i], tol, "gonum y[%d]", i)
	}
}

func TestTpmvTpsvRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	const n = 5
	ap := randSlice(rng, n*(n+1)/2)
	// Keep the diagonal well away from zero so the solve is stable.
	for i := 0; i < n; i++ {
		ap[i*(i+1)/2+i] = 2 + math.Abs(ap[i*(i+1)/2+i])
	}

	for _, b := range []Backend{Reference, Gonum} {
		for _, trans := range []Transpose{NoTrans, Trans} {
			withBackend(t, b, func() {
				x := randSlice(rng, n)
				orig := append([]float64(nil), x...)

				Tpmv(trans, n, ap, x, 1)
				Tpsv(trans, n, ap, x, 1)

				for i := range orig {
					assert.InDelta(t, orig[i], x[i], 1e-9, "backend %s %s x[%d]", b, trans, i)
				}
			})
		}
	}
}

func TestTpmvBackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 7
	ap := randSlice(rng, n*(n+1)/2)

	for _, trans := range []Transpose{NoTrans, Trans} {
		x := randSlice(rng, n)
		xRef := append([]float64(nil), x...)
		xGo := append([]float64(nil), x...)

		withBackend(t, Reference, func() { Tpmv(trans, n, ap, xRef, 1) })
		withBackend(t, Gonum, func() { Tpmv(trans, n, ap, xGo, 1) })

		for i := range xRef {
			assert.InDelta(t, xRef[i], xGo[i], tol, "%s x[%d]", trans, i)
		}
	}
}
