// SPDX-License-Identifier: MIT

// Package kernel: in-place single-qubit and controlled gate application.
//
// For n qubits the 2^(n-1) amplitude pairs touched by a gate on target t are
// enumerated by i ∈ [0, 2^(n-1)):
//
//	a = (i & low) | ((i & high) << 1)   low = 2^t − 1, high = ^low
//	b = a | 2^t
//
// and updated from their pre-update values:
//
//	ψ[a] ← A·ψ[a] + B·ψ[b]
//	ψ[b] ← C·ψ[a] + D·ψ[b]

package kernel

import "github.com/pkg/errors"

// ApplyGateRange applies g to every pair i ∈ [lo, hi).
func ApplyGateRange(lo, hi, target int, re, im []float64, g *Gate2) {
	bit := 1 << target
	low := bit - 1
	high := ^low
	for i := lo; i < hi; i++ {
		a := (i & low) | ((i & high) << 1)
		b := a | bit
		updatePair(a, b, re, im, g)
	}
}

// ApplyControlGateRange is ApplyGateRange restricted to pairs whose control bit is set.
func ApplyControlGateRange(lo, hi, control, target int, re, im []float64, g *Gate2) {
	bit := 1 << target
	cbit := 1 << control
	low := bit - 1
	high := ^low
	for i := lo; i < hi; i++ {
		a := (i & low) | ((i & high) << 1)
		if a&cbit == 0 {
			continue
		}
		updatePair(a, a|bit, re, im, g)
	}
}

func updatePair(a, b int, re, im []float64, g *Gate2) {
	ar, ai := re[a], im[a]
	br, bi := re[b], im[b]
	re[a] = g.Re[0]*ar - g.Im[0]*ai + g.Re[1]*br - g.Im[1]*bi
	im[a] = g.Re[0]*ai + g.Im[0]*ar + g.Re[1]*bi + g.Im[1]*br
	re[b] = g.Re[2]*ar - g.Im[2]*ai + g.Re[3]*br - g.Im[3]*bi
	im[b] = g.Re[2]*ai + g.Im[2]*ar + g.Re[3]*bi + g.Im[3]*br
}

// ApplyGate applies g to qubit target of the state held in re/im, in place.
// Errors: ErrNotPowerOfTwo, ErrBadQubit, ErrKernelPanic.
func ApplyGate(d Dispatcher, target int, re, im []float64, g Gate2) error {
	n, err := register(re, im)
	if err != nil {
		return errors.Wrap(err, opApplyGate)
	}
	if target < 0 || target >= n {
		return errors.Wrapf(ErrBadQubit, "%s: target %d of %d qubits", opApplyGate, target, n)
	}
	return d.For(len(re)/2, func(lo, hi int) {
		ApplyGateRange(lo, hi, target, re, im, &g)
	})
}

// ApplyControlGate applies g to target on the basis states where control is 1.
func ApplyControlGate(d Dispatcher, control, target int, re, im []float64, g Gate2) error {
	n, err := register(re, im)
	if err != nil {
		return errors.Wrap(err, opApplyControlGate)
	}
	if target < 0 || target >= n || control < 0 || control >= n || control == target {
		return errors.Wrapf(ErrBadQubit, "%s: control %d target %d of %d qubits", opApplyControlGate, control, target, n)
	}
	return d.For(len(re)/2, func(lo, hi int) {
		ApplyControlGateRange(lo, hi, control, target, re, im, &g)
	})
}

func register(re, im []float64) (int, error) {
	if len(re) != len(im) {
		return 0, ErrDimensionMismatch
	}
	n := log2(len(re))
	if n < 1 {
		return 0, ErrNotPowerOfTwo
	}
	return n, nil
}
