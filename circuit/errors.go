// SPDX-License-Identifier: MIT

package circuit

import "github.com/pkg/errors"

// Sentinel errors for circuit construction. Call sites wrap them with
// context; match with errors.Is.
var (
	// ErrInvalidQubit indicates a negative qubit index or one outside the register.
	ErrInvalidQubit = errors.New("circuit: invalid qubit index")

	// ErrInvalidQubitCount indicates a register size below one.
	ErrInvalidQubitCount = errors.New("circuit: qubit count must be at least 1")

	// ErrSameQubit indicates a control gate whose control equals its target.
	ErrSameQubit = errors.New("circuit: control and target qubits must differ")

	// ErrPhaseRequired indicates a phase-shift gate built without an angle.
	ErrPhaseRequired = errors.New("circuit: phase-shift gate requires an angle")

	// ErrPhaseNotAllowed indicates an angle supplied to a non-parametrized gate.
	ErrPhaseNotAllowed = errors.New("circuit: angle supplied to a non-phase gate")

	// ErrInvalidRange indicates a function range with from > to or from < 0.
	ErrInvalidRange = errors.New("circuit: invalid qubit range")

	// ErrCustomNameRequired indicates a custom function built through the standard path.
	ErrCustomNameRequired = errors.New("circuit: custom function requires a name")

	// ErrInvalidFunctionName indicates an empty custom function name.
	ErrInvalidFunctionName = errors.New("circuit: invalid function name")

	// ErrFunctionNotRegistered indicates a custom function unknown to the registry.
	ErrFunctionNotRegistered = errors.New("circuit: function data not registered")

	// ErrUnknownKind indicates an enum value outside its declared set.
	ErrUnknownKind = errors.New("circuit: unknown operation kind")

	// ErrNotAGate indicates a control gate wrapping something other than a plain gate.
	ErrNotAGate = errors.New("circuit: operation is not a gate")

	// ErrQubitOccupied indicates a step slot already owned by another operation.
	ErrQubitOccupied = errors.New("circuit: qubit already occupied in step")

	// ErrQubitCountMismatch indicates appending a circuit of a different width.
	ErrQubitCountMismatch = errors.New("circuit: qubit count mismatch")

	// ErrNilOperation indicates a nil *Operation argument.
	ErrNilOperation = errors.New("circuit: nil operation")

	// ErrNilCircuit indicates a nil *Circuit argument.
	ErrNilCircuit = errors.New("circuit: nil circuit")

	// ErrNilRegistry indicates a custom function added without a registry to check it against.
	ErrNilRegistry = errors.New("circuit: nil function registry")

	// ErrBadBitstring indicates a bitstring with characters other than 0 and 1.
	ErrBadBitstring = errors.New("circuit: invalid bitstring")
)
