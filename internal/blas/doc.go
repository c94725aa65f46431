// Package blas is the numeric kernel layer of the vector core.
//
// It exposes BLAS-style level-1 and level-2 primitives (dot, axpy, scal,
// copy, gemv, gbmv, spmv, tpmv, tpsv) over strided float32/float64 slices,
// all in row-major convention with lower-packed symmetric and triangular
// storage.
//
// Two implementations exist:
//   - Reference: portable Go loops. These define correct behavior for
//     every kernel.
//   - Gonum: delegates to gonum.org/v1/gonum/blas/gonum, an accelerated
//     equivalent that must agree with Reference within floating-point
//     tolerance.
//
// The active implementation is selected at configuration time via Use and
// defaults to Gonum. Kernels are plain function variables, so selection is
// not safe to race with in-flight operations.
package blas
