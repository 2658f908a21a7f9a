// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All constructors and accessors return these sentinels (possibly wrapped with
// call-site context); tests match them via errors.Is.

package tensor

import "github.com/pkg/errors"

var (
	// ErrBadShape is returned when a shape is empty or holds a non-positive dimension.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrBadData is returned when constructor data is missing or does not match the shape size.
	ErrBadData = errors.New("tensor: invalid data")

	// ErrOutOfRange indicates a negative index, an index beyond its dimension,
	// or an index tuple whose length does not match the tensor shape.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNilTensor indicates that a nil *ComplexTensor was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrNotMatrix indicates that a rank-2 tensor was required.
	ErrNotMatrix = errors.New("tensor: tensor is not a matrix")

	// ErrNonSquare indicates that a square matrix was required.
	ErrNonSquare = errors.New("tensor: matrix is not square")

	// ErrNotVector indicates that a rank-1 tensor was required.
	ErrNotVector = errors.New("tensor: tensor is not a vector")
)
