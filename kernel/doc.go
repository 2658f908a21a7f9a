// SPDX-License-Identifier: MIT

// Package kernel holds the numeric hot loops of the simulator.
//
// Every kernel operates on raw row-major float64 buffers (real and imaginary
// parts kept in parallel slices) and is split in two layers:
//
//   - a *Range body that processes the half-open outer index range [lo, hi)
//     and writes only to output slots owned by that range;
//   - a facade that validates the operands, allocates outputs and hands the
//     body to a Dispatcher.
//
// Because chunks never share output slots, Serial and Parallel dispatchers
// produce bit-identical results.
//
// Basis convention: bit q of a basis index is the state of qubit q
// (little-endian), so qubit 0 is the least significant bit.
//
// Complexity quicksheet (N = 2^n amplitudes, D = matrix dimension):
//
//	ApplyGate / ApplyControlGate   O(N)
//	BuildControlGate               O(D)   output O(D²) zero-filled
//	Kronecker                      O(|A|·|B|)
//	MatMul                         O(D³)
//	MatVec                         O(D²)
package kernel
