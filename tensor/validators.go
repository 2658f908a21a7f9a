// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Single source of truth for shape checks shared by the provider and the simulators.
//  - Return plain sentinels; callers wrap with their own operation tag.

package tensor

// ValidateNotNil ensures t is non-nil.
func ValidateNotNil(t *ComplexTensor) error {
	if t == nil {
		return ErrNilTensor
	}
	return nil
}

// ValidateMatrix ensures t is a non-nil rank-2 tensor.
func ValidateMatrix(t *ComplexTensor) error {
	if err := ValidateNotNil(t); err != nil {
		return err
	}
	if len(t.shape) != 2 || t.rank != 2 {
		return ErrNotMatrix
	}
	return nil
}

// ValidateSquareMatrix ensures t is a non-nil square rank-2 tensor.
// Sequence: NotNil → Matrix → Square.
func ValidateSquareMatrix(t *ComplexTensor) error {
	if err := ValidateMatrix(t); err != nil {
		return err
	}
	if t.shape[0] != t.shape[1] {
		return ErrNonSquare
	}
	return nil
}

// ValidateVector ensures t is a non-nil rank-1 tensor.
func ValidateVector(t *ComplexTensor) error {
	if err := ValidateNotNil(t); err != nil {
		return err
	}
	if t.rank != 1 {
		return ErrNotVector
	}
	return nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// Log2 returns k for n == 2^k, or -1 when n is not a positive power of two.
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}
