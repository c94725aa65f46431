package vec

import (
	"fmt"
	"math"

	"github.com/murmel-speech/murmel/internal/blas"
)

// Real is the constraint for supported element kinds.
type Real = blas.Real

// Transpose re-exports the kernel layer's transpose flag.
type Transpose = blas.Transpose

// Transpose values.
const (
	NoTrans = blas.NoTrans
	Trans   = blas.Trans
)

// View is a non-owning descriptor of strided storage: logical element i
// lives at data[i*inc]. A View never outlives the storage it references
// and holds no ownership over it.
//
// The zero View is a valid empty vector.
type View[T Real] struct {
	data []T
	n    int
	inc  int
}

// NewView wraps existing storage as a strided view of n elements with the
// given stride. The backing slice must hold at least (n-1)*inc+1 elements.
func NewView[T Real](data []T, n, inc int) (View[T], error) {
	if n < 0 {
		return View[T]{}, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if n == 0 {
		return View[T]{}, nil
	}
	if inc < 1 {
		return View[T]{}, fmt.Errorf("%w: %d", ErrInvalidStride, inc)
	}
	if need := (n-1)*inc + 1; len(data) < need {
		return View[T]{}, fmt.Errorf("%w: need %d backing elements, have %d", ErrDimensionMismatch, need, len(data))
	}
	return View[T]{data: data, n: n, inc: inc}, nil
}

// ViewOf wraps a whole slice as a contiguous view.
func ViewOf[T Real](data []T) View[T] {
	if len(data) == 0 {
		return View[T]{}
	}
	return View[T]{data: data, n: len(data), inc: 1}
}

// Dim returns the element count.
func (v View[T]) Dim() int {
	return v.n
}

// Stride returns the element distance between logical neighbors.
func (v View[T]) Stride() int {
	return v.step()
}

// step is Stride normalized for the zero View, whose inc field is 0.
func (v View[T]) step() int {
	if v.inc < 1 {
		return 1
	}
	return v.inc
}

// At returns element i.
func (v View[T]) At(i int) T {
	return v.data[i*v.inc]
}

// SetAt assigns element i.
func (v View[T]) SetAt(i int, x T) {
	v.data[i*v.inc] = x
}

// Data returns the backing storage starting at logical element 0. For
// strided views the slice interleaves foreign elements; index with Stride.
func (v View[T]) Data() []T {
	return v.data
}

// Range returns a sub-view of length elements starting at offset, sharing
// storage with v.
func (v View[T]) Range(offset, length int) (View[T], error) {
	if offset < 0 || length < 0 || offset+length > v.n {
		return View[T]{}, fmt.Errorf("%w: range [%d, %d) of %d", ErrDimensionMismatch, offset, offset+length, v.n)
	}
	if length == 0 {
		return View[T]{}, nil
	}
	return View[T]{data: v.data[offset*v.step():], n: length, inc: v.step()}, nil
}

// sameStorage reports whether two views share a base element. This is the
// aliasing test for operations that forbid overlap.
func sameStorage[T, U Real](a View[T], b View[U]) bool {
	if a.n == 0 || b.n == 0 {
		return false
	}
	ad, ok := any(a.data).([]U)
	if !ok {
		return false
	}
	return &ad[0] == &b.data[0]
}

// checkDim verifies the operand length matches the receiver.
func (v View[T]) checkDim(n int) error {
	if v.n != n {
		return dimErr(v.n, n)
	}
	return nil
}

// SetZero zeroes every element.
func (v View[T]) SetZero() {
	data, n, inc := v.data, v.n, v.step()
	if inc == 1 {
		clear(data[:n])
		return
	}
	for i := 0; i < n; i++ {
		data[i*inc] = 0
	}
}

// Set assigns every element the scalar value.
func (v View[T]) Set(x T) {
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		data[i*inc] = x
	}
}

// Add adds the scalar to every element.
func (v View[T]) Add(c T) {
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		data[i*inc] += c
	}
}

// Scale multiplies every element by alpha.
func (v View[T]) Scale(alpha T) {
	blas.Scal(v.n, alpha, v.data, v.step())
}

// ReplaceValue rewrites every element equal to orig with changed.
func (v View[T]) ReplaceValue(orig, changed T) {
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		if data[i*inc] == orig {
			data[i*inc] = changed
		}
	}
}

// IsZero reports whether the largest absolute value is at most cutoff. An
// empty vector is zero.
func (v View[T]) IsZero(cutoff T) bool {
	var absMax T
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		if a := T(math.Abs(float64(data[i*inc]))); a > absMax {
			absMax = a
		}
	}
	return absMax <= cutoff
}

// ApproxEqual compares against other: exact elementwise equality when tol
// is zero, otherwise ‖v-other‖₂ ≤ tol·‖v‖₂.
func (v View[T]) ApproxEqual(other View[T], tol float32) (bool, error) {
	if v.n != other.n {
		return false, dimErr(v.n, other.n)
	}
	if tol < 0 {
		return false, domainErr("ApproxEqual tolerance", 0, float64(tol))
	}

	if v.n == 0 {
		return true, nil
	}
	if tol == 0 {
		data, inc, oData, oInc := v.data, v.step(), other.data, other.step()
		for i := 0; i < v.n; i++ {
			if data[i*inc] != oData[i*oInc] {
				return false, nil
			}
		}
		return true, nil
	}

	tmp := v.Clone()
	if err := tmp.AddVec(-1, other); err != nil {
		return false, err
	}
	diffNorm, err := tmp.Norm(2)
	if err != nil {
		return false, err
	}
	selfNorm, err := v.Norm(2)
	if err != nil {
		return false, err
	}
	return diffNorm <= T(tol)*selfNorm, nil
}
