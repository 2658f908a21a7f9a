// SPDX-License-Identifier: MIT

package simulator

import "github.com/pkg/errors"

var (
	// ErrNilCircuit indicates a nil circuit.
	ErrNilCircuit = errors.New("simulator: nil circuit")

	// ErrNotImplemented indicates an operation the engine knowingly lacks:
	// standard functions in both engines, and every function in the
	// full-state-vector engine.
	ErrNotImplemented = errors.New("simulator: operation not implemented")

	// ErrUnsupportedOperation indicates an operation without unitary meaning.
	ErrUnsupportedOperation = errors.New("simulator: unsupported operation")

	// ErrFunctionSizeMismatch indicates custom function data whose dimension is not 2^span.
	ErrFunctionSizeMismatch = errors.New("simulator: function data size does not match its qubit range")

	// ErrInsufficientMemory indicates a unitary build that would exceed the memory budget.
	ErrInsufficientMemory = errors.New("simulator: insufficient memory for unitary simulation")

	// ErrTooManyQubits indicates a register wider than qstate.MaxQubits.
	ErrTooManyQubits = errors.New("simulator: too many qubits")

	// ErrBadGateData indicates provider data that is not a 2×2 matrix.
	ErrBadGateData = errors.New("simulator: gate data is not 2x2")

	// ErrUnknownKind indicates an unknown simulator kind name.
	ErrUnknownKind = errors.New("simulator: unknown simulator kind")
)
