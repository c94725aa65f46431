// Package vec implements the strided, BLAS-backed vector core of the
// toolkit.
//
// Two types cooperate:
//   - View[T]: a non-owning descriptor over strided storage. It carries
//     every read and compute operation and never allocates or frees.
//   - Vector[T]: an owning, stride-1 vector layered on View[T], adding
//     allocation, resizing, destruction and resizing deserialization.
//
// Both are instantiated for float32 and float64. Same-precision operations
// are methods; mixed-precision variants are package-level functions with a
// Cast suffix that convert element by element.
//
// Performance-critical primitives dispatch to the kernel layer in
// internal/blas; everything without a kernel primitive runs as an explicit
// elementwise loop.
//
// Nothing here locks: a vector mutated from two goroutines needs external
// synchronization, and no two views may alias the same storage during
// concurrent writes.
package vec
