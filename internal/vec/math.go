package vec

import (
	"math"

	"github.com/murmel-speech/murmel/internal/blas"
)

// Fixed floor constants bounding the minimum representable log value per
// precision: the log of the machine epsilon.
var (
	minLogDiffFloat32 = math.Log(math.Ldexp(1, -23))
	minLogDiffFloat64 = math.Log(math.Ldexp(1, -52))
)

func minLogDiff[T Real]() float64 {
	var dummy T
	if _, ok := any(dummy).(float32); ok {
		return minLogDiffFloat32
	}
	return minLogDiffFloat64
}

// Sum returns the sum of all elements. It runs as blocked dot products
// against a ones vector so the kernel layer's vectorized path is reused.
func (v View[T]) Sum() T {
	ones := onesBlock[T]()
	inc := v.step()
	var sum T
	for off := 0; off < v.n; off += onesBlockSize {
		k := min(onesBlockSize, v.n-off)
		sum += blas.Dot(k, v.data[off*inc:], inc, ones, 1)
	}
	return sum
}

// SumLog returns the log of the product of the elements. The running
// product is flushed through a logarithm whenever it leaves
// [1e-10, 1e+10], so it never over- or underflows.
func (v View[T]) SumLog() T {
	sumLog, prod := 0.0, 1.0
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		prod *= float64(data[i*inc])
		if prod < 1.0e-10 || prod > 1.0e+10 {
			sumLog += math.Log(prod)
			prod = 1.0
		}
	}
	if prod != 1.0 {
		sumLog += math.Log(prod)
	}
	return T(sumLog)
}

// Max returns the largest element, or -Inf for an empty vector.
func (v View[T]) Max() T {
	ans := T(math.Inf(-1))
	data, n, inc := v.data, v.n, v.step()
	i := 0
	for ; i+4 <= n; i += 4 {
		a1, a2 := data[i*inc], data[(i+1)*inc]
		a3, a4 := data[(i+2)*inc], data[(i+3)*inc]
		if a1 > ans || a2 > ans || a3 > ans || a4 > ans {
			b1, b2 := max(a1, a2), max(a3, a4)
			if b1 > ans {
				ans = b1
			}
			if b2 > ans {
				ans = b2
			}
		}
	}
	for ; i < n; i++ {
		if data[i*inc] > ans {
			ans = data[i*inc]
		}
	}
	return ans
}

// MaxIndex returns the largest element and the index of its first
// occurrence. An empty vector is an error.
func (v View[T]) MaxIndex() (T, int, error) {
	if v.n == 0 {
		return 0, 0, ErrEmptyVector
	}
	ans, index := T(math.Inf(-1)), 0
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		if data[i*inc] > ans {
			ans, index = data[i*inc], i
		}
	}
	return ans, index, nil
}

// Min returns the smallest element, or +Inf for an empty vector.
func (v View[T]) Min() T {
	ans := T(math.Inf(1))
	data, n, inc := v.data, v.n, v.step()
	i := 0
	for ; i+4 <= n; i += 4 {
		a1, a2 := data[i*inc], data[(i+1)*inc]
		a3, a4 := data[(i+2)*inc], data[(i+3)*inc]
		if a1 < ans || a2 < ans || a3 < ans || a4 < ans {
			b1, b2 := min(a1, a2), min(a3, a4)
			if b1 < ans {
				ans = b1
			}
			if b2 < ans {
				ans = b2
			}
		}
	}
	for ; i < n; i++ {
		if data[i*inc] < ans {
			ans = data[i*inc]
		}
	}
	return ans
}

// MinIndex returns the smallest element and the index of its first
// occurrence. An empty vector is an error.
func (v View[T]) MinIndex() (T, int, error) {
	if v.n == 0 {
		return 0, 0, ErrEmptyVector
	}
	ans, index := T(math.Inf(1)), 0
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		if data[i*inc] < ans {
			ans, index = data[i*inc], i
		}
	}
	return ans, index, nil
}

// Norm returns the p-norm: the nonzero count for p == 0, max absolute
// value for p == +Inf, and (Σ|xᵢ|ᵖ)^(1/p) otherwise. When an intermediate
// term of the general-p sum overflows, the norm is recomputed after
// rescaling by the largest-magnitude element and scaled back, so the
// overflow is absorbed rather than surfaced.
func (v View[T]) Norm(p T) (T, error) {
	if p < 0 {
		return 0, domainErr("norm order", 0, float64(p))
	}
	if v.n == 0 {
		return 0, ErrEmptyVector
	}

	data, n, inc := v.data, v.n, v.step()
	var sum T
	switch {
	case p == 0:
		for i := 0; i < n; i++ {
			if data[i*inc] != 0 {
				sum++
			}
		}
		return sum, nil
	case p == 1:
		for i := 0; i < n; i++ {
			sum += T(math.Abs(float64(data[i*inc])))
		}
		return sum, nil
	case p == 2:
		for i := 0; i < n; i++ {
			sum += data[i*inc] * data[i*inc]
		}
		return T(math.Sqrt(float64(sum))), nil
	case math.IsInf(float64(p), 1):
		for i := 0; i < n; i++ {
			sum = max(sum, T(math.Abs(float64(data[i*inc]))))
		}
		return sum, nil
	}

	ok := true
	for i := 0; i < n; i++ {
		tmp := T(math.Pow(math.Abs(float64(data[i*inc])), float64(p)))
		if math.IsInf(float64(tmp), 0) {
			ok = false
		}
		sum += tmp
	}
	result := T(math.Pow(float64(sum), 1/float64(p)))
	if ok {
		if math.IsInf(float64(result), 0) {
			return 0, overflowErr("norm", 0, float64(sum))
		}
		return result, nil
	}

	// Numerically stable fallback: rescale by the largest-magnitude
	// element, recompute, and scale back.
	maxAbs := max(v.Max(), -v.Min())
	if !(maxAbs > 0) {
		return 0, overflowErr("norm rescale", 0, float64(maxAbs))
	}
	tmp := v.Clone()
	tmp.Scale(1 / maxAbs)
	scaled, err := tmp.Norm(p)
	if err != nil {
		return 0, err
	}
	return scaled * maxAbs, nil
}

// LogSumExp returns log(Σ exp(xᵢ)) using max-shifted summation. When
// prune > 0, terms more than prune below the maximum are skipped as
// numerically negligible.
func (v View[T]) LogSumExp(prune T) T {
	maxElem := float64(v.Max())
	cutoff := maxElem + minLogDiff[T]()
	if prune > 0 && maxElem-float64(prune) > cutoff {
		cutoff = maxElem - float64(prune)
	}

	sumRelToMax := 0.0
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		f := float64(data[i*inc])
		if f >= cutoff {
			sumRelToMax += math.Exp(f - maxElem)
		}
	}
	return T(maxElem + math.Log(sumRelToMax))
}

// ApplyAbs replaces every element with its absolute value.
func (v View[T]) ApplyAbs() {
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		data[i*inc] = T(math.Abs(float64(data[i*inc])))
	}
}

// ApplyExp exponentiates every element.
func (v View[T]) ApplyExp() {
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		data[i*inc] = T(math.Exp(float64(data[i*inc])))
	}
}

// ApplyLog replaces every element with its natural log. A negative
// element is a domain error.
func (v View[T]) ApplyLog() error {
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		if data[i*inc] < 0 {
			return domainErr("log of negative number", i, float64(data[i*inc]))
		}
		data[i*inc] = T(math.Log(float64(data[i*inc])))
	}
	return nil
}

// ApplyLogOf assigns log(src) elementwise, without the domain check of
// ApplyLog.
func (v View[T]) ApplyLogOf(src View[T]) error {
	if err := v.checkDim(src.n); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	sData, sInc := src.data, src.step()
	for i := 0; i < v.n; i++ {
		data[i*inc] = T(math.Log(float64(sData[i*sInc])))
	}
	return nil
}

// ApplyPow raises every element to the given power. Powers 1 and 2 are
// fast-pathed; power 0.5 requires nonnegative elements; any non-finite
// general-power result is a numeric-overflow error.
func (v View[T]) ApplyPow(power T) error {
	data, n, inc := v.data, v.n, v.step()
	switch power {
	case 1:
		return nil
	case 2:
		for i := 0; i < n; i++ {
			data[i*inc] *= data[i*inc]
		}
		return nil
	case 0.5:
		for i := 0; i < n; i++ {
			if !(data[i*inc] >= 0) {
				return domainErr("square root of negative value", i, float64(data[i*inc]))
			}
			data[i*inc] = T(math.Sqrt(float64(data[i*inc])))
		}
		return nil
	}

	for i := 0; i < n; i++ {
		r := math.Pow(float64(data[i*inc]), float64(power))
		if math.IsInf(r, 0) || math.IsNaN(r) {
			return overflowErr("pow", i, r)
		}
		data[i*inc] = T(r)
	}
	return nil
}

// ApplyPowAbs raises the absolute value of every element to the given
// power, restoring the original sign when includeSign is set. A
// non-finite result is a numeric-overflow error.
func (v View[T]) ApplyPowAbs(power T, includeSign bool) error {
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		x := float64(data[i*inc])
		sign := 1.0
		if includeSign && x < 0 {
			sign = -1
		}

		var r float64
		switch {
		case power == 1:
			r = math.Abs(x)
		case power == 2:
			r = x * x
		case power == 0.5:
			r = math.Sqrt(math.Abs(x))
		case power < 0 && x == 0:
			r = 0
		default:
			r = math.Pow(math.Abs(x), float64(power))
			if math.IsInf(r, 0) || math.IsNaN(r) {
				return overflowErr("pow abs", i, r)
			}
		}
		data[i*inc] = T(sign * r)
	}
	return nil
}

// ApplyFloor clamps every element from below and returns the number of
// elements changed.
func (v View[T]) ApplyFloor(floor T) int {
	data, n, inc := v.data, v.n, v.step()
	floored := 0
	for i := 0; i < n; i++ {
		if data[i*inc] < floor {
			data[i*inc] = floor
			floored++
		}
	}
	return floored
}

// ApplyFloorVec clamps elementwise from below against a floor vector and
// returns the number of elements changed.
func (v View[T]) ApplyFloorVec(floor View[T]) (int, error) {
	if err := v.checkDim(floor.n); err != nil {
		return 0, err
	}
	data, inc := v.data, v.step()
	fData, fInc := floor.data, floor.step()
	floored := 0
	for i := 0; i < v.n; i++ {
		if data[i*inc] < fData[i*fInc] {
			data[i*inc] = fData[i*fInc]
			floored++
		}
	}
	return floored, nil
}

// ApplyCeiling clamps every element from above and returns the number of
// elements changed.
func (v View[T]) ApplyCeiling(ceil T) int {
	data, n, inc := v.data, v.n, v.step()
	ceiled := 0
	for i := 0; i < n; i++ {
		if data[i*inc] > ceil {
			data[i*inc] = ceil
			ceiled++
		}
	}
	return ceiled
}

// ApplyCeilingVec clamps elementwise from above against a ceiling vector
// and returns the number of elements changed.
func (v View[T]) ApplyCeilingVec(ceil View[T]) (int, error) {
	if err := v.checkDim(ceil.n); err != nil {
		return 0, err
	}
	data, inc := v.data, v.step()
	cData, cInc := ceil.data, ceil.step()
	ceiled := 0
	for i := 0; i < v.n; i++ {
		if data[i*inc] > cData[i*cInc] {
			data[i*inc] = cData[i*cInc]
			ceiled++
		}
	}
	return ceiled, nil
}

// ApplySoftMax exponentiates max-shifted elements and normalizes them to
// sum to one, returning the log-partition value max + log(Σ exp(xᵢ-max)).
func (v View[T]) ApplySoftMax() T {
	maxElem := float64(v.Max())
	sum := 0.0
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		e := math.Exp(float64(data[i*inc]) - maxElem)
		data[i*inc] = T(e)
		sum += e
	}
	v.Scale(T(1 / sum))
	return T(maxElem + math.Log(sum))
}

// ApplyLogSoftMax converts the elements to log-softmax in place and
// returns the log-partition value.
func (v View[T]) ApplyLogSoftMax() T {
	maxElem := float64(v.Max())
	sum := 0.0
	data, n, inc := v.data, v.n, v.step()
	for i := 0; i < n; i++ {
		shifted := float64(data[i*inc]) - maxElem
		data[i*inc] = T(shifted)
		sum += math.Exp(shifted)
	}
	logSum := math.Log(sum)
	v.Add(T(-logSum))
	return T(maxElem + logSum)
}

// Sigmoid assigns 1/(1+exp(-src)) elementwise, branching on the sign so
// the exponential never overflows for large |x|.
func (v View[T]) Sigmoid(src View[T]) error {
	if err := v.checkDim(src.n); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	sData, sInc := src.data, src.step()
	for i := 0; i < v.n; i++ {
		x := float64(sData[i*sInc])
		if x > 0 {
			x = 1 / (1 + math.Exp(-x))
		} else {
			ex := math.Exp(x)
			x = ex / (ex + 1)
		}
		data[i*inc] = T(x)
	}
	return nil
}

// Tanh assigns tanh(src) elementwise, branching on the sign so the
// exponential never overflows.
func (v View[T]) Tanh(src View[T]) error {
	if err := v.checkDim(src.n); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	sData, sInc := src.data, src.step()
	for i := 0; i < v.n; i++ {
		x := float64(sData[i*sInc])
		if x > 0 {
			invExp := math.Exp(-x)
			x = -1 + 2/(1+invExp*invExp)
		} else {
			ex := math.Exp(x)
			x = 1 - 2/(1+ex*ex)
		}
		data[i*inc] = T(x)
	}
	return nil
}
