// SPDX-License-Identifier: MIT

// Package tensor provides the complex-number primitives used by the simulator:
// an immutable Complex scalar and a rank-N ComplexTensor stored as two parallel
// row-major float64 slices (real and imaginary parts).
//
// The split real/imaginary layout keeps the numeric kernels in package kernel
// free of any dependency on this package: they receive the raw slices returned
// by Real() and Imag() and update them in place.
//
// Shapes:
//
//	[n]        rank 1, an amplitude vector
//	[r, c]     rank 2, a gate or step matrix
//	[1]        rank 0, a scalar
//
// Offsets are row-major: offset = Σ idx[i] · Π shape[i+1..].
//
// Complexity quicksheet:
//   - New: O(size) zero-init; At/Set: O(rank); Clone/Equal/Hash: O(size).
package tensor
