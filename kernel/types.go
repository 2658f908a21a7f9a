// SPDX-License-Identifier: MIT

package kernel

// Gate2 is a 2×2 complex matrix [[A, B], [C, D]] in row-major order.
type Gate2 struct {
	Re [4]float64
	Im [4]float64
}

// Mat is a dense row-major complex matrix view over caller-owned buffers.
type Mat struct {
	Re, Im     []float64
	Rows, Cols int
}

// NewMat allocates a zero-filled rows×cols matrix.
func NewMat(rows, cols int) Mat {
	n := rows * cols
	return Mat{Re: make([]float64, n), Im: make([]float64, n), Rows: rows, Cols: cols}
}

// Identity allocates the n×n identity.
func Identity(n int) Mat {
	m := NewMat(n, n)
	for i := 0; i < n; i++ {
		m.Re[i*n+i] = 1
	}
	return m
}

// valid reports whether the buffers match the declared shape.
func (m Mat) valid() bool {
	n := m.Rows * m.Cols
	return m.Rows > 0 && m.Cols > 0 && len(m.Re) == n && len(m.Im) == n
}

func log2(n int) int {
	if n < 2 || n&(n-1) != 0 {
		return -1
	}
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}
