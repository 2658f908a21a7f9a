// SPDX-License-Identifier: MIT

// Package tensor - ComplexTensor storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat, cache-friendly buffer with the explicit offset formula
//     Σ idx[i] · Π shape[i+1..].
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the raw slices to the numeric kernels without copying.
//
// Complexity quicksheet:
//   - New: O(size) zero-init; At/Set: O(rank); Clone: O(size); Equal/Hash: O(size).

package tensor

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxFromParts  = "FromParts"
	ctxFromCmplx  = "FromComplex"
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxIdentity   = "Identity"
	ctxCheckIndex = "index"
)

// ComplexTensor is a rank-N tensor of complex values.
//   - shape holds the dimension sizes (all > 0), immutable after construction.
//   - strides[i] = Π shape[i+1..], cached for the offset formula.
//   - re/im are parallel row-major buffers of length size.
type ComplexTensor struct {
	shape   []int
	strides []int
	rank    int
	size    int
	re      []float64
	im      []float64
}

// New creates a zero-filled tensor with the given shape.
// Stage 1 (Validate): shape non-empty, every dimension > 0.
// Stage 2 (Prepare): compute size and strides, allocate both buffers.
// Complexity: O(size) time and memory.
func New(shape ...int) (*ComplexTensor, error) {
	t, err := newHeader(shape)
	if err != nil {
		return nil, errors.Wrap(err, ctxNew)
	}
	t.re = make([]float64, t.size)
	t.im = make([]float64, t.size)

	return t, nil
}

// FromParts builds a tensor that adopts re and im as its backing storage.
// Both slices must be non-nil, of equal length, and match the shape size.
// The caller must not keep mutating the slices through other aliases.
func FromParts(re, im []float64, shape ...int) (*ComplexTensor, error) {
	t, err := newHeader(shape)
	if err != nil {
		return nil, errors.Wrap(err, ctxFromParts)
	}
	if re == nil || im == nil || len(re) != len(im) || len(re) != t.size {
		return nil, errors.Wrapf(ErrBadData, "%s: want %d elements", ctxFromParts, t.size)
	}
	t.re = re
	t.im = im

	return t, nil
}

// FromComplex builds a tensor from a flat row-major list of values.
func FromComplex(data []Complex, shape ...int) (*ComplexTensor, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, errors.Wrap(err, ctxFromCmplx)
	}
	if data == nil || len(data) != t.size {
		return nil, errors.Wrapf(ErrBadData, "%s: want %d elements, got %d", ctxFromCmplx, t.size, len(data))
	}
	for i, v := range data {
		t.re[i] = v.Re
		t.im[i] = v.Im
	}

	return t, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*ComplexTensor, error) {
	t, err := New(n, n)
	if err != nil {
		return nil, errors.Wrap(err, ctxIdentity)
	}
	for i := 0; i < n; i++ {
		t.re[i*n+i] = 1
	}

	return t, nil
}

// Matrix2 returns the 2×2 matrix [[a, b], [c, d]].
func Matrix2(a, b, c, d Complex) *ComplexTensor {
	return &ComplexTensor{
		shape:   []int{2, 2},
		strides: []int{2, 1},
		rank:    2,
		size:    4,
		re:      []float64{a.Re, b.Re, c.Re, d.Re},
		im:      []float64{a.Im, b.Im, c.Im, d.Im},
	}
}

// newHeader validates shape and fills every field except the buffers.
func newHeader(shape []int) (*ComplexTensor, error) {
	if len(shape) == 0 {
		return nil, ErrBadShape
	}
	size := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, ErrBadShape
		}
		size *= d
	}
	own := append([]int(nil), shape...)
	strides := make([]int, len(own))
	acc := 1
	for i := len(own) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= own[i]
	}
	rank := len(own)
	if rank == 1 && own[0] == 1 {
		rank = 0
	}

	return &ComplexTensor{shape: own, strides: strides, rank: rank, size: size}, nil
}

// Shape returns a copy of the dimension sizes.
func (t *ComplexTensor) Shape() []int { return append([]int(nil), t.shape...) }

// Dim returns the size of dimension i, or 0 when i is out of range.
func (t *ComplexTensor) Dim(i int) int {
	if i < 0 || i >= len(t.shape) {
		return 0
	}
	return t.shape[i]
}

// Rank returns the tensor rank; a single-element [1] tensor has rank 0.
func (t *ComplexTensor) Rank() int { return t.rank }

// Size returns the number of elements.
func (t *ComplexTensor) Size() int { return t.size }

// Real exposes the real buffer for bulk numeric kernels. Mutations are visible.
func (t *ComplexTensor) Real() []float64 { return t.re }

// Imag exposes the imaginary buffer for bulk numeric kernels. Mutations are visible.
func (t *ComplexTensor) Imag() []float64 { return t.im }

// IsSquareMatrix reports whether t is a rank-2 tensor with equal dimensions.
func (t *ComplexTensor) IsSquareMatrix() bool {
	return t != nil && t.rank == 2 && t.shape[0] == t.shape[1]
}

// offset validates idx and returns the flat row-major offset.
// A rank-0 tensor also accepts the empty tuple.
func (t *ComplexTensor) offset(idx []int) (int, error) {
	if t.rank == 0 && len(idx) == 0 {
		return 0, nil
	}
	if len(idx) != len(t.shape) {
		return 0, errors.Wrapf(ErrOutOfRange, "%s: got %d indices for shape %v", ctxCheckIndex, len(idx), t.shape)
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= t.shape[i] {
			return 0, errors.Wrapf(ErrOutOfRange, "%s: %d not in [0,%d) at dimension %d", ctxCheckIndex, v, t.shape[i], i)
		}
		off += v * t.strides[i]
	}

	return off, nil
}

// At returns the element at idx.
// Errors: ErrOutOfRange for a negative/oversized index or a wrong index count.
// Complexity: O(rank).
func (t *ComplexTensor) At(idx ...int) (Complex, error) {
	off, err := t.offset(idx)
	if err != nil {
		return Zero, errors.Wrap(err, ctxAt)
	}

	return Complex{Re: t.re[off], Im: t.im[off]}, nil
}

// Set stores v at idx. Same validation as At.
func (t *ComplexTensor) Set(v Complex, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return errors.Wrap(err, ctxSet)
	}
	t.re[off] = v.Re
	t.im[off] = v.Im

	return nil
}

// Clone returns a deep copy; the result shares no storage with t.
func (t *ComplexTensor) Clone() *ComplexTensor {
	return &ComplexTensor{
		shape:   append([]int(nil), t.shape...),
		strides: append([]int(nil), t.strides...),
		rank:    t.rank,
		size:    t.size,
		re:      append([]float64(nil), t.re...),
		im:      append([]float64(nil), t.im...),
	}
}

// Equal reports structural equality: same shape and bit-identical data.
func (t *ComplexTensor) Equal(o *ComplexTensor) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.size != o.size || len(t.shape) != len(o.shape) {
		return false
	}
	for i := range t.shape {
		if t.shape[i] != o.shape[i] {
			return false
		}
	}
	for i := 0; i < t.size; i++ {
		if t.re[i] != o.re[i] || t.im[i] != o.im[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports equal shapes and element-wise agreement within tol.
func (t *ComplexTensor) ApproxEqual(o *ComplexTensor, tol float64) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.size != o.size || len(t.shape) != len(o.shape) {
		return false
	}
	for i := range t.shape {
		if t.shape[i] != o.shape[i] {
			return false
		}
	}
	for i := 0; i < t.size; i++ {
		if math.Abs(t.re[i]-o.re[i]) > tol || math.Abs(t.im[i]-o.im[i]) > tol {
			return false
		}
	}

	return true
}

// Hash returns a structural FNV-1a hash over shape and data bits.
// Equal tensors hash equally; -0 and +0 hash the same.
func (t *ComplexTensor) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, d := range t.shape {
		binary.LittleEndian.PutUint64(buf[:], uint64(d))
		_, _ = h.Write(buf[:])
	}
	for i := 0; i < t.size; i++ {
		binary.LittleEndian.PutUint64(buf[:], zeroBits(t.re[i]))
		_, _ = h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], zeroBits(t.im[i]))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// zeroBits returns the IEEE bits of v with -0 folded into +0, matching Equal.
func zeroBits(v float64) uint64 {
	if v == 0 {
		v = 0
	}
	return math.Float64bits(v)
}

// String renders a diagnostic form: "ComplexTensor{rank: 2, shape: [2 2], data: [...]}".
func (t *ComplexTensor) String() string {
	var sb strings.Builder
	sb.WriteString("ComplexTensor{rank: ")
	sb.WriteString(strconv.Itoa(t.rank))
	sb.WriteString(", shape: [")
	for i, d := range t.shape {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(d))
	}
	sb.WriteString("], data: [")
	for i := 0; i < t.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Complex{Re: t.re[i], Im: t.im[i]}.String())
	}
	sb.WriteString("]}")

	return sb.String()
}
