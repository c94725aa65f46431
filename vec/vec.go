// Copyright 2026 Murmel Speech Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vec

import (
	"github.com/murmel-speech/murmel/internal/vec"
)

// Type aliases for public API

// Real is the element-type constraint: float32 or float64.
type Real = vec.Real

// View is a non-owning strided window into existing storage.
type View[T Real] = vec.View[T]

// Vector owns aligned storage and embeds the View operation set.
type Vector[T Real] = vec.Vector[T]

// Transpose selects the orientation of a matrix operand.
type Transpose = vec.Transpose

// Transpose constants.
const (
	NoTrans Transpose = vec.NoTrans
	Trans   Transpose = vec.Trans
)

// ResizePolicy controls what Resize does with existing contents.
type ResizePolicy = vec.ResizePolicy

// Resize policy constants.
const (
	Undefined ResizePolicy = vec.Undefined
	ZeroFill  ResizePolicy = vec.ZeroFill
	Preserve  ResizePolicy = vec.Preserve
)

// Matrix is the dense-matrix surface consumed by matrix-vector
// operations.
type Matrix[T Real] = vec.Matrix[T]

// Packed is the packed symmetric or triangular matrix surface.
type Packed[T Real] = vec.Packed[T]

// Error sentinels, for classification with errors.Is.
var (
	ErrDimensionMismatch = vec.ErrDimensionMismatch
	ErrDomain            = vec.ErrDomain
	ErrOverflow          = vec.ErrOverflow
	ErrMalformedStream   = vec.ErrMalformedStream
	ErrEmptyVector       = vec.ErrEmptyVector
	ErrAliasedOperands   = vec.ErrAliasedOperands
	ErrInvalidStride     = vec.ErrInvalidStride
	ErrInvalidLength     = vec.ErrInvalidLength
)

// New creates a zero-initialized vector of length n.
//
// Example:
//
//	v, err := vec.New[float32](128)
func New[T Real](n int) (*Vector[T], error) {
	return vec.New[T](n)
}

// FromSlice creates a vector holding a copy of data.
func FromSlice[T Real](data []T) *Vector[T] {
	return vec.FromSlice(data)
}

// NewView creates a strided view of n elements over data, stepping inc
// elements between logical neighbors.
func NewView[T Real](data []T, n, inc int) (View[T], error) {
	return vec.NewView(data, n, inc)
}

// ViewOf creates a contiguous view over the whole of data.
func ViewOf[T Real](data []T) View[T] {
	return vec.ViewOf(data)
}

// RowView returns a view over row i of a dense matrix, aliasing its
// storage.
func RowView[T Real](m Matrix[T], i int) View[T] {
	return vec.RowView(m, i)
}

// ColView returns a view over column j of a dense matrix, aliasing its
// storage.
func ColView[T Real](m Matrix[T], j int) View[T] {
	return vec.ColView(m, j)
}

// CastVec copies src into dst, converting element precision.
func CastVec[T, U Real](dst View[T], src View[U]) error {
	return vec.CastVec(dst, src)
}

// VecVec returns the inner product a·b, accumulating in a's precision.
func VecVec[T, U Real](a View[T], b View[U]) (T, error) {
	return vec.VecVec(a, b)
}

// AddVecCast computes v += alpha * x across precisions.
func AddVecCast[T, U Real](v View[T], alpha T, x View[U]) error {
	return vec.AddVecCast(v, alpha, x)
}

// AddVec2Cast computes v += alpha * x ⊙ x across precisions.
func AddVec2Cast[T, U Real](v View[T], alpha T, x View[U]) error {
	return vec.AddVec2Cast(v, alpha, x)
}

// MulElementsCast computes v ⊙= x across precisions.
func MulElementsCast[T, U Real](v View[T], x View[U]) error {
	return vec.MulElementsCast(v, x)
}

// DivElementsCast computes v ⊘= x across precisions.
func DivElementsCast[T, U Real](v View[T], x View[U]) error {
	return vec.DivElementsCast(v, x)
}

// VecMatVec returns v1ᵗ·M·v2.
func VecMatVec[T Real](v1 View[T], m Matrix[T], v2 View[T]) (T, error) {
	return vec.VecMatVec(v1, m, v2)
}
