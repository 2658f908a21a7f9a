// SPDX-License-Identifier: MIT

package kernel

import "github.com/pkg/errors"

// KroneckerRange fills the rows of c = a ⊗ b that belong to rows [lo, hi) of a.
//
//	c[(ia·rb + ib)·cc + ja·cb + jb] = a[ia, ja] · b[ib, jb]
func KroneckerRange(lo, hi int, a, b, c Mat) {
	rb, cb, cc := b.Rows, b.Cols, c.Cols
	for ia := lo; ia < hi; ia++ {
		for ja := 0; ja < a.Cols; ja++ {
			xr, xi := a.Re[ia*a.Cols+ja], a.Im[ia*a.Cols+ja]
			for ib := 0; ib < rb; ib++ {
				row := (ia*rb+ib)*cc + ja*cb
				for jb := 0; jb < cb; jb++ {
					yr, yi := b.Re[ib*cb+jb], b.Im[ib*cb+jb]
					c.Re[row+jb] = xr*yr - xi*yi
					c.Im[row+jb] = xr*yi + xi*yr
				}
			}
		}
	}
}

// Kronecker returns a ⊗ b with shape (a.Rows·b.Rows) × (a.Cols·b.Cols).
func Kronecker(d Dispatcher, a, b Mat) (Mat, error) {
	if !a.valid() || !b.valid() {
		return Mat{}, errors.Wrap(ErrDimensionMismatch, opKronecker)
	}
	c := NewMat(a.Rows*b.Rows, a.Cols*b.Cols)
	err := d.For(a.Rows, func(lo, hi int) { KroneckerRange(lo, hi, a, b, c) })
	if err != nil {
		return Mat{}, errors.Wrap(err, opKronecker)
	}
	return c, nil
}

// MatMulRange computes rows [lo, hi) of c = a · b using i→k→j order.
func MatMulRange(lo, hi int, a, b, c Mat) {
	n, m := a.Cols, b.Cols
	for i := lo; i < hi; i++ {
		rowA, rowC := i*n, i*m
		for k := 0; k < n; k++ {
			xr, xi := a.Re[rowA+k], a.Im[rowA+k]
			if xr == 0 && xi == 0 {
				continue
			}
			rowB := k * m
			for j := 0; j < m; j++ {
				yr, yi := b.Re[rowB+j], b.Im[rowB+j]
				c.Re[rowC+j] += xr*yr - xi*yi
				c.Im[rowC+j] += xr*yi + xi*yr
			}
		}
	}
}

// MatMul returns a · b. Requires a.Cols == b.Rows.
func MatMul(d Dispatcher, a, b Mat) (Mat, error) {
	if !a.valid() || !b.valid() || a.Cols != b.Rows {
		return Mat{}, errors.Wrapf(ErrDimensionMismatch, "%s: %dx%d · %dx%d", opMatMul, a.Rows, a.Cols, b.Rows, b.Cols)
	}
	c := NewMat(a.Rows, b.Cols)
	if err := d.For(a.Rows, func(lo, hi int) { MatMulRange(lo, hi, a, b, c) }); err != nil {
		return Mat{}, errors.Wrap(err, opMatMul)
	}
	return c, nil
}

// MatVecRange computes y[i] = Σ_j a[i, j]·x[j] for i ∈ [lo, hi).
func MatVecRange(lo, hi int, a Mat, xRe, xIm, yRe, yIm []float64) {
	for i := lo; i < hi; i++ {
		row := i * a.Cols
		var sr, si float64
		for j := 0; j < a.Cols; j++ {
			ar, ai := a.Re[row+j], a.Im[row+j]
			sr += ar*xRe[j] - ai*xIm[j]
			si += ar*xIm[j] + ai*xRe[j]
		}
		yRe[i], yIm[i] = sr, si
	}
}

// MatVec returns a · x as fresh real and imaginary slices.
func MatVec(d Dispatcher, a Mat, xRe, xIm []float64) ([]float64, []float64, error) {
	if !a.valid() || len(xRe) != a.Cols || len(xIm) != a.Cols {
		return nil, nil, errors.Wrap(ErrDimensionMismatch, opMatVec)
	}
	yRe := make([]float64, a.Rows)
	yIm := make([]float64, a.Rows)
	if err := d.For(a.Rows, func(lo, hi int) { MatVecRange(lo, hi, a, xRe, xIm, yRe, yIm) }); err != nil {
		return nil, nil, errors.Wrap(err, opMatVec)
	}
	return yRe, yIm, nil
}
