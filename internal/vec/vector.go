package vec

import (
	"github.com/murmel-speech/murmel/internal/blas"
	"github.com/murmel-speech/murmel/internal/mem"
)

// ResizePolicy controls what Resize does with existing contents.
type ResizePolicy int

const (
	// Undefined leaves the new contents uninitialized. The backing
	// allocation is zeroed by the runtime, so in practice fresh storage
	// reads as zero; elements kept in place retain their old values.
	Undefined ResizePolicy = iota
	// ZeroFill sets every element of the resized vector to zero.
	ZeroFill
	// Preserve keeps the leading min(old, new) elements and zeroes the
	// rest.
	Preserve
)

// Vector owns contiguous aligned storage and embeds the View operation
// set over it.
type Vector[T Real] struct {
	View[T]
}

// New returns a zero-initialized vector of length n.
func New[T Real](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, lengthErr(n)
	}
	v := &Vector[T]{}
	v.init(n)
	return v, nil
}

// FromSlice returns a vector holding a copy of data.
func FromSlice[T Real](data []T) *Vector[T] {
	v := &Vector[T]{}
	v.init(len(data))
	copy(v.data, data)
	return v
}

func (v *Vector[T]) init(n int) {
	if n == 0 {
		v.View = View[T]{}
		return
	}
	v.View = View[T]{data: mem.AllocAlignedReal[T](n), n: n, inc: 1}
}

// Clone returns an owning copy of the viewed elements.
func (v View[T]) Clone() *Vector[T] {
	out := &Vector[T]{}
	out.init(v.n)
	if v.n > 0 {
		blas.Copy(v.n, v.data, v.step(), out.data, 1)
	}
	return out
}

// Resize changes the length to n, applying the policy to the contents.
// Resizing to the current length keeps the storage, Preserve keeps the
// data too.
func (v *Vector[T]) Resize(n int, policy ResizePolicy) error {
	if n < 0 {
		return lengthErr(n)
	}
	if n == v.n {
		if policy == ZeroFill {
			v.SetZero()
		}
		return nil
	}
	if policy == Preserve && (v.n == 0 || n == 0) {
		policy = ZeroFill
	}

	if policy == Preserve {
		keep := min(v.n, n)
		tmp := Vector[T]{}
		tmp.init(n)
		blas.Copy(keep, v.data, 1, tmp.data, 1)
		v.Swap(&tmp)
		return nil
	}

	v.init(n)
	if policy == ZeroFill {
		v.SetZero()
	}
	return nil
}

// Swap exchanges the storage of two vectors without copying elements.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.View, o.View = o.View, v.View
}

// Destroy releases the storage, leaving an empty vector.
func (v *Vector[T]) Destroy() {
	v.View = View[T]{}
}

// RemoveElement deletes element i, shifting the tail left and shrinking
// the vector by one.
func (v *Vector[T]) RemoveElement(i int) error {
	if i < 0 || i >= v.n {
		return indexErr(i, v.n)
	}
	copy(v.data[i:v.n-1], v.data[i+1:v.n])
	v.n--
	v.data = v.data[:v.n]
	return nil
}
