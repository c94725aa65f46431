package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVec(t *testing.T) {
	src := ViewOf([]float64{1.5, -2.25, 3})
	dst := ViewOf(make([]float32, 3))

	require.NoError(t, CastVec(dst, src))
	assert.Equal(t, []float32{1.5, -2.25, 3}, dst.Data())

	back := ViewOf(make([]float64, 3))
	require.NoError(t, CastVec(back, dst))
	assert.Equal(t, []float64{1.5, -2.25, 3}, back.Data())

	err := CastVec(dst, ViewOf([]float64{1}))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCastVecSamePrecision(t *testing.T) {
	src := ViewOf([]float64{1, 2, 3})
	dst := ViewOf(make([]float64, 3))
	require.NoError(t, CastVec(dst, src))
	assert.Equal(t, src.Data(), dst.Data())
}

func TestVecVecCrossPrecision(t *testing.T) {
	a := ViewOf([]float64{1, 2, 3})
	b := ViewOf([]float32{4, 5, 6})

	got, err := VecVec(a, b)
	require.NoError(t, err)
	assert.Equal(t, 32.0, got)

	got32, err := VecVec(b, a)
	require.NoError(t, err)
	assert.Equal(t, float32(32), got32)
}

func TestAddVecCast(t *testing.T) {
	v := ViewOf([]float64{1, 1})
	require.NoError(t, AddVecCast(v, 2, ViewOf([]float32{3, 4})))
	assert.Equal(t, []float64{7, 9}, v.Data())

	// Same-precision pair funnels into AddVec, including its alias check.
	err := AddVecCast(v, 1, v)
	assert.ErrorIs(t, err, ErrAliasedOperands)
}

func TestAddVec2Cast(t *testing.T) {
	v := ViewOf([]float64{0, 0})
	require.NoError(t, AddVec2Cast(v, 1, ViewOf([]float32{2, 3})))
	assert.Equal(t, []float64{4, 9}, v.Data())
}

func TestMulDivElementsCast(t *testing.T) {
	v := ViewOf([]float64{2, 3})
	require.NoError(t, MulElementsCast(v, ViewOf([]float32{4, 2})))
	assert.Equal(t, []float64{8, 6}, v.Data())

	require.NoError(t, DivElementsCast(v, ViewOf([]float32{2, 3})))
	assert.Equal(t, []float64{4, 2}, v.Data())
}
