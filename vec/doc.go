// Copyright 2026 Murmel Speech Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vec provides the public API for the strided vector core of the
// Murmel speech toolkit.
//
// The package exposes two shapes over the same operation set:
//   - View[T]: a non-owning strided window into existing storage
//   - Vector[T]: an owning, aligned, resizable vector embedding View[T]
//
// Both are instantiated for float32 and float64. Performance-critical
// primitives run through a swappable numeric backend; everything else is
// explicit elementwise code.
//
// Example:
//
//	v := vec.FromSlice([]float64{3, 1, 4, 1, 5})
//	v.Scale(2)
//	norm, _ := v.Norm(2)
//	logZ := v.ApplySoftMax()
package vec
