package vec

import (
	"github.com/murmel-speech/murmel/internal/blas"
)

// CastVec copies src into dst, converting element precision. Dimensions
// must match.
func CastVec[T, U Real](dst View[T], src View[U]) error {
	if err := dst.checkDim(src.Dim()); err != nil {
		return err
	}
	if same, ok := any(src).(View[T]); ok {
		dst.CopyFromVec(same)
		return nil
	}
	data, inc := dst.data, dst.step()
	sData, sInc := src.data, src.step()
	for i := 0; i < dst.n; i++ {
		data[i*inc] = T(sData[i*sInc])
	}
	return nil
}

// VecVec returns the inner product a·b, accumulating in a's precision.
// A same-precision pair goes through the kernel layer.
func VecVec[T, U Real](a View[T], b View[U]) (T, error) {
	if err := a.checkDim(b.Dim()); err != nil {
		return 0, err
	}
	if same, ok := any(b).(View[T]); ok {
		return blas.Dot(a.n, a.data, a.step(), same.data, same.step()), nil
	}
	aData, aInc := a.data, a.step()
	bData, bInc := b.data, b.step()
	var sum T
	for i := 0; i < a.n; i++ {
		sum += aData[i*aInc] * T(bData[i*bInc])
	}
	return sum, nil
}

// AddVecCast computes v += alpha * x across precisions.
func AddVecCast[T, U Real](v View[T], alpha T, x View[U]) error {
	if same, ok := any(x).(View[T]); ok {
		return v.AddVec(alpha, same)
	}
	if err := v.checkDim(x.Dim()); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	xData, xInc := x.data, x.step()
	for i := 0; i < v.n; i++ {
		data[i*inc] += alpha * T(xData[i*xInc])
	}
	return nil
}

// AddVec2Cast computes v += alpha * x ⊙ x across precisions.
func AddVec2Cast[T, U Real](v View[T], alpha T, x View[U]) error {
	if err := v.checkDim(x.Dim()); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	xData, xInc := x.data, x.step()
	for i := 0; i < v.n; i++ {
		xi := T(xData[i*xInc])
		data[i*inc] += alpha * xi * xi
	}
	return nil
}

// MulElementsCast computes v ⊙= x across precisions.
func MulElementsCast[T, U Real](v View[T], x View[U]) error {
	if same, ok := any(x).(View[T]); ok {
		return v.MulElements(same)
	}
	if err := v.checkDim(x.Dim()); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	xData, xInc := x.data, x.step()
	for i := 0; i < v.n; i++ {
		data[i*inc] *= T(xData[i*xInc])
	}
	return nil
}

// DivElementsCast computes v ⊘= x across precisions.
func DivElementsCast[T, U Real](v View[T], x View[U]) error {
	if same, ok := any(x).(View[T]); ok {
		return v.DivElements(same)
	}
	if err := v.checkDim(x.Dim()); err != nil {
		return err
	}
	data, inc := v.data, v.step()
	xData, xInc := x.data, x.step()
	for i := 0; i < v.n; i++ {
		data[i*inc] /= T(xData[i*xInc])
	}
	return nil
}
