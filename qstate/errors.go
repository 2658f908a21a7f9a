// SPDX-License-Identifier: MIT

package qstate

import "github.com/pkg/errors"

var (
	// ErrInvalidQubitCount indicates a register size outside [1, MaxQubits].
	ErrInvalidQubitCount = errors.New("qstate: invalid qubit count")

	// ErrInvalidStateVector indicates a nil vector, a tensor that is not rank 1,
	// or a size that is not a power of two ≥ 2.
	ErrInvalidStateVector = errors.New("qstate: invalid state vector")

	// ErrNotNormalized indicates Σ|a|² outside the normalization tolerance.
	ErrNotNormalized = errors.New("qstate: state vector is not normalized")

	// ErrInvalidQubit indicates a qubit index outside the register.
	ErrInvalidQubit = errors.New("qstate: invalid qubit")

	// ErrInvalidBasisState indicates a basis index outside [0, 2^n).
	ErrInvalidBasisState = errors.New("qstate: invalid basis state")
)
