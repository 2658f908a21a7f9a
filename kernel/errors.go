// SPDX-License-Identifier: MIT

package kernel

import "github.com/pkg/errors"

var (
	// ErrDimensionMismatch indicates operands whose shapes do not conform.
	ErrDimensionMismatch = errors.New("kernel: dimension mismatch")

	// ErrBadQubit indicates a qubit index outside the register or equal control and target.
	ErrBadQubit = errors.New("kernel: invalid qubit index")

	// ErrNotPowerOfTwo indicates an amplitude buffer whose length is not 2^n, n ≥ 1.
	ErrNotPowerOfTwo = errors.New("kernel: length is not a power of two")

	// ErrKernelPanic is returned when a kernel body panicked inside a dispatcher.
	ErrKernelPanic = errors.New("kernel: body panicked")
)

const (
	opApplyGate        = "ApplyGate"
	opApplyControlGate = "ApplyControlGate"
	opKronecker        = "Kronecker"
	opMatMul           = "MatMul"
	opMatVec           = "MatVec"
	opBuildControlGate = "BuildControlGate"
)
