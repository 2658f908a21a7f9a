// SPDX-License-Identifier: MIT

package circuit

import "github.com/pkg/errors"

// FunctionRegistry reports whether custom function data exists under a name.
// provider.Provider satisfies it.
type FunctionRegistry interface {
	IsFunctionDataRegistered(name string) (bool, error)
}

// Circuit is an ordered list of steps over a fixed register.
// Operations are layered greedily: each one goes into the last step unless
// one of its qubits is taken there, in which case a new step is opened.
// Operations are never reordered.
type Circuit struct {
	qubits int
	steps  []*Step
}

// New returns a circuit with one empty step.
func New(qubitCount int) (*Circuit, error) {
	if qubitCount < 1 {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "New: %d", qubitCount)
	}
	return &Circuit{qubits: qubitCount, steps: []*Step{newStep(qubitCount)}}, nil
}

// QubitCount returns the register width.
func (c *Circuit) QubitCount() int { return c.qubits }

// Depth returns the number of steps.
func (c *Circuit) Depth() int { return len(c.steps) }

// Steps returns the steps in program order. Callers must not mutate them.
func (c *Circuit) Steps() []*Step { return append([]*Step(nil), c.steps...) }

// AppendCircuit appends copies of other's steps verbatim.
func (c *Circuit) AppendCircuit(other *Circuit) error {
	if other == nil {
		return errors.Wrap(ErrNilCircuit, "AppendCircuit")
	}
	if other.qubits != c.qubits {
		return errors.Wrapf(ErrQubitCountMismatch, "AppendCircuit: %d vs %d", other.qubits, c.qubits)
	}
	for _, s := range other.steps {
		c.steps = append(c.steps, s.Clone())
	}
	return nil
}

// Add places op into the last step, opening a new one on conflict.
func (c *Circuit) Add(op *Operation) error {
	last := c.steps[len(c.steps)-1]
	ok, err := last.CanAdd(op)
	if err != nil {
		return errors.Wrap(err, "Circuit.Add")
	}
	if !ok {
		last = newStep(c.qubits)
		c.steps = append(c.steps, last)
	}
	return last.Add(op)
}

// Equal reports whether both circuits have the same width and equal steps.
func (c *Circuit) Equal(o *Circuit) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.qubits != o.qubits || len(c.steps) != len(o.steps) {
		return false
	}
	for i := range c.steps {
		if !c.steps[i].Equal(o.steps[i]) {
			return false
		}
	}
	return true
}

func (c *Circuit) validate(qubits ...int) error {
	for _, q := range qubits {
		if q < 0 || q >= c.qubits {
			return errors.Wrapf(ErrInvalidQubit, "qubit %d of %d", q, c.qubits)
		}
	}
	return nil
}

// addAll validates every qubit, builds all operations, then adds them.
func (c *Circuit) addAll(qubits []int, build func(q int) (*Operation, error)) error {
	if err := c.validate(qubits...); err != nil {
		return err
	}
	ops := make([]*Operation, len(qubits))
	for i, q := range qubits {
		op, err := build(q)
		if err != nil {
			return err
		}
		ops[i] = op
	}
	for _, op := range ops {
		if err := c.Add(op); err != nil {
			return err
		}
	}
	return nil
}

func (c *Circuit) gates(kind GateKind, qubits []int) error {
	return c.addAll(qubits, func(q int) (*Operation, error) { return NewGate(kind, q) })
}

// I applies the identity to each qubit.
func (c *Circuit) I(qubits ...int) error { return c.gates(GateI, qubits) }

// X applies Pauli-X to each qubit.
func (c *Circuit) X(qubits ...int) error { return c.gates(GateX, qubits) }

// Y applies Pauli-Y to each qubit.
func (c *Circuit) Y(qubits ...int) error { return c.gates(GateY, qubits) }

// Z applies Pauli-Z to each qubit.
func (c *Circuit) Z(qubits ...int) error { return c.gates(GateZ, qubits) }

// H applies Hadamard to each qubit.
func (c *Circuit) H(qubits ...int) error { return c.gates(GateH, qubits) }

// S applies the S phase gate to each qubit.
func (c *Circuit) S(qubits ...int) error { return c.gates(GateS, qubits) }

// T applies the T phase gate to each qubit.
func (c *Circuit) T(qubits ...int) error { return c.gates(GateT, qubits) }

// R applies the phase shift by phi radians to each qubit.
func (c *Circuit) R(phi float64, qubits ...int) error {
	return c.addAll(qubits, func(q int) (*Operation, error) { return NewPhaseGate(q, phi) })
}

func (c *Circuit) controlled(kind GateKind, phi float64, control, target int) error {
	if err := c.validate(control, target); err != nil {
		return err
	}
	var (
		g   *Operation
		err error
	)
	if kind == GateR {
		g, err = NewPhaseGate(target, phi)
	} else {
		g, err = NewGate(kind, target)
	}
	if err != nil {
		return err
	}
	op, err := NewControlGate(g, control, target)
	if err != nil {
		return err
	}
	return c.Add(op)
}

// CNOT applies X to target when control is 1.
func (c *Circuit) CNOT(control, target int) error { return c.controlled(GateX, 0, control, target) }

// CX is an alias of CNOT.
func (c *Circuit) CX(control, target int) error { return c.controlled(GateX, 0, control, target) }

// CY applies a controlled Pauli-Y.
func (c *Circuit) CY(control, target int) error { return c.controlled(GateY, 0, control, target) }

// CZ applies a controlled Pauli-Z.
func (c *Circuit) CZ(control, target int) error { return c.controlled(GateZ, 0, control, target) }

// CH applies a controlled Hadamard.
func (c *Circuit) CH(control, target int) error { return c.controlled(GateH, 0, control, target) }

// CS applies a controlled S.
func (c *Circuit) CS(control, target int) error { return c.controlled(GateS, 0, control, target) }

// CT applies a controlled T.
func (c *Circuit) CT(control, target int) error { return c.controlled(GateT, 0, control, target) }

// CR applies a controlled phase shift by phi radians.
func (c *Circuit) CR(control, target int, phi float64) error {
	return c.controlled(GateR, phi, control, target)
}

// Swap adds the standard swap function over the range spanned by a and b.
func (c *Circuit) Swap(a, b int) error {
	if err := c.validate(a, b); err != nil {
		return err
	}
	op, err := NewFunction(FunctionSwap, min(a, b), max(a, b))
	if err != nil {
		return err
	}
	return c.Add(op)
}

// CustomFunction adds the function registered under name over [from, to].
// Errors: ErrNilRegistry, ErrInvalidQubit, ErrFunctionNotRegistered, and the
// registry's own name validation errors.
func (c *Circuit) CustomFunction(reg FunctionRegistry, name string, from, to int) error {
	if reg == nil {
		return ErrNilRegistry
	}
	if err := c.validate(from, to); err != nil {
		return err
	}
	ok, err := reg.IsFunctionDataRegistered(name)
	if err != nil {
		return errors.Wrap(err, "CustomFunction")
	}
	if !ok {
		return errors.Wrapf(ErrFunctionNotRegistered, "CustomFunction: %q", name)
	}
	op, err := NewCustomFunction(name, from, to)
	if err != nil {
		return err
	}
	return c.Add(op)
}

// Measure adds a measure instruction on each qubit.
func (c *Circuit) Measure(qubits ...int) error {
	return c.addAll(qubits, func(q int) (*Operation, error) { return NewInstruction(InstructionMeasure, q) })
}

// Reset adds a reset instruction on each qubit.
func (c *Circuit) Reset(qubits ...int) error {
	return c.addAll(qubits, func(q int) (*Operation, error) { return NewInstruction(InstructionReset, q) })
}
