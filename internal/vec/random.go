package vec

import (
	"github.com/murmel-speech/murmel/internal/randsrc"
)

// SetRandn fills the vector with standard normal draws. Draws come in
// Box-Muller pairs; an odd trailing element consumes a pair and keeps
// only the first value.
func (v View[T]) SetRandn(src randsrc.Source) {
	data, n, inc := v.data, v.n, v.step()
	i := 0
	for ; i+2 <= n; i += 2 {
		a, b := src.GaussPair()
		data[i*inc] = T(a)
		data[(i+1)*inc] = T(b)
	}
	if i < n {
		a, _ := src.GaussPair()
		data[i*inc] = T(a)
	}
}

// SetRandUniform fills the vector with uniform draws from [0, 1).
func (v View[T]) SetRandUniform(src randsrc.Source) {
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		data[i*inc] = T(src.Uniform())
	}
}

// RandCategorical treats the elements as unnormalized probabilities and
// samples an index in proportion to them. All elements must be
// nonnegative and their sum positive.
func (v View[T]) RandCategorical(src randsrc.Source) (int, error) {
	if v.Min() < 0 {
		return 0, domainErr("categorical weight", 0, float64(v.Min()))
	}
	sum := v.Sum()
	if !(sum > 0) {
		return 0, domainErr("categorical weight sum", 0, float64(sum))
	}

	r := T(src.Uniform()) * sum
	data, n, inc := v.data, v.n, v.step()
	var cum T
	for i := 0; i < n; i++ {
		cum += data[i*inc]
		if r < cum {
			return i, nil
		}
	}
	// Possible with floating-point roundoff in the cumulative sum.
	return n - 1, nil
}
