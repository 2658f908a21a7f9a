// SPDX-License-Identifier: MIT

package provider

import "github.com/pkg/errors"

var (
	// ErrInvalidFunctionName indicates an empty function name.
	ErrInvalidFunctionName = errors.New("provider: invalid function name")

	// ErrInvalidFunctionData indicates function data that is not a square
	// rank-2 tensor with at least four elements.
	ErrInvalidFunctionData = errors.New("provider: invalid function data")

	// ErrFunctionNotRegistered indicates a lookup of an unknown function name.
	ErrFunctionNotRegistered = errors.New("provider: function data not registered")

	// ErrNilOperation indicates a nil gate argument.
	ErrNilOperation = errors.New("provider: nil operation")

	// ErrNotAGate indicates GateData called on a function or instruction.
	ErrNotAGate = errors.New("provider: operation has no gate data")
)
