// SPDX-License-Identifier: MIT

package kernel

import "github.com/pkg/errors"

// BuildControlGateRange fills rows [lo, hi) of the 2^span × 2^span embedding
// of g controlled by local qubit control and acting on local qubit target.
// out must be zero-filled.
func BuildControlGateRange(lo, hi int, g *Gate2, control, target int, out Mat) {
	cbit, tbit := 1<<control, 1<<target
	dim := out.Cols
	for r := lo; r < hi; r++ {
		switch {
		case r&cbit == 0:
			out.Re[r*dim+r] = 1
		case r&tbit != 0:
			p := r &^ tbit
			out.Re[r*dim+p], out.Im[r*dim+p] = g.Re[2], g.Im[2]
			out.Re[r*dim+r], out.Im[r*dim+r] = g.Re[3], g.Im[3]
		default:
			p := r | tbit
			out.Re[r*dim+r], out.Im[r*dim+r] = g.Re[0], g.Im[0]
			out.Re[r*dim+p], out.Im[r*dim+p] = g.Re[1], g.Im[1]
		}
	}
}

// BuildControlGate returns the unitary of g controlled across a contiguous
// block of span qubits. control and target are positions inside the block.
func BuildControlGate(d Dispatcher, g Gate2, control, target, span int) (Mat, error) {
	if span < 2 || span > 30 || control < 0 || target < 0 || control >= span || target >= span || control == target {
		return Mat{}, errors.Wrapf(ErrBadQubit, "%s: control %d target %d span %d", opBuildControlGate, control, target, span)
	}
	dim := 1 << span
	out := NewMat(dim, dim)
	if err := d.For(dim, func(lo, hi int) { BuildControlGateRange(lo, hi, &g, control, target, out) }); err != nil {
		return Mat{}, errors.Wrap(err, opBuildControlGate)
	}
	return out, nil
}
