// SPDX-License-Identifier: MIT

// Package circuits builds the reference workloads used to evaluate the
// simulators: GHZ entanglement, the quantum Fourier transform and the
// Deutsch–Jozsa algorithm.
package circuits

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/qsim/circuit"
)

// Workload names accepted by Build.
const (
	NameEntanglement = "entanglement"
	NameQFT          = "qft"
	NameDeutschJozsa = "deutsch-jozsa"
)

var (
	// ErrUnknownWorkload indicates a name Build does not know.
	ErrUnknownWorkload = errors.New("circuits: unknown workload")

	// ErrTooFewQubits indicates a register too small for the workload.
	ErrTooFewQubits = errors.New("circuits: too few qubits for workload")
)

// Names lists the workloads in a stable order.
func Names() []string { return []string{NameEntanglement, NameQFT, NameDeutschJozsa} }

// Build returns the named workload on n qubits. balanced only affects Deutsch–Jozsa.
func Build(name string, n int, balanced bool) (*circuit.Circuit, error) {
	switch name {
	case NameEntanglement:
		return Entanglement(n)
	case NameQFT:
		return QFT(n)
	case NameDeutschJozsa:
		return DeutschJozsa(n, balanced)
	}
	return nil, errors.Wrapf(ErrUnknownWorkload, "%q", name)
}

// Entanglement prepares the GHZ state (|0…0⟩ + |1…1⟩)/√2:
// H on qubit 0, then CNOT from qubit 0 to every other qubit, highest first.
func Entanglement(n int) (*circuit.Circuit, error) {
	c, err := circuit.New(n)
	if err != nil {
		return nil, err
	}
	if err = c.H(0); err != nil {
		return nil, err
	}
	for t := n - 1; t > 0; t-- {
		if err = c.CNOT(0, t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// QFT marks qubits 0 and n-1 with X and then applies the Fourier transform.
func QFT(n int) (*circuit.Circuit, error) {
	c, err := circuit.New(n)
	if err != nil {
		return nil, err
	}
	if err = c.X(0, n-1); err != nil {
		return nil, err
	}
	if err = AppendQFT(c); err != nil {
		return nil, err
	}
	return c, nil
}

// AppendQFT appends the Fourier transform over the whole register of c:
// for each target from the highest qubit down, H followed by controlled
// phase rotations π/2^(t-c) from every lower qubit, then the qubit order
// reversal as three CNOTs per swapped pair.
func AppendQFT(c *circuit.Circuit) error {
	n := c.QubitCount()
	for t := n - 1; t >= 0; t-- {
		if err := c.H(t); err != nil {
			return err
		}
		for ctl := 0; ctl < t; ctl++ {
			if err := c.CR(ctl, t, math.Pi/math.Exp2(float64(t-ctl))); err != nil {
				return err
			}
		}
	}
	for a := 0; a < n/2; a++ {
		b := n - a - 1
		for _, p := range [3][2]int{{a, b}, {b, a}, {a, b}} {
			if err := c.CNOT(p[0], p[1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeutschJozsa decides whether an oracle over the n-1 input qubits is
// constant or balanced; qubit n-1 is the output qubit. Measuring the input
// register gives all zeros exactly when the oracle is constant.
func DeutschJozsa(n int, balanced bool) (*circuit.Circuit, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrTooFewQubits, "DeutschJozsa: %d", n)
	}
	c, err := circuit.New(n)
	if err != nil {
		return nil, err
	}
	out := n - 1
	inputs := make([]int, out)
	for i := range inputs {
		inputs[i] = i
	}

	if err = c.H(inputs...); err != nil {
		return nil, err
	}
	if err = c.X(out); err != nil {
		return nil, err
	}
	if err = c.H(out); err != nil {
		return nil, err
	}
	if balanced {
		for ctl := 0; ctl < out; ctl++ {
			if err = c.CNOT(ctl, out); err != nil {
				return nil, err
			}
		}
	} else if err = c.X(0); err != nil {
		return nil, err
	}
	if err = c.H(inputs...); err != nil {
		return nil, err
	}
	return c, nil
}
