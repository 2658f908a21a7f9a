// SPDX-License-Identifier: MIT

// Package simulator runs circuits on one of two engines:
//
//   - FullStateVector applies each gate in place to the 2^n amplitude vector;
//   - Unitary builds one 2^n × 2^n matrix per step with Kronecker products,
//     composes the steps and applies the result to |0…0⟩.
//
// Both engines resolve gate matrices through a shared provider.Provider and
// run their numeric loops on a kernel.Dispatcher. For circuits without
// functions they agree within floating-point tolerance.
//
// The context is checked between steps; a cancelled run returns ctx.Err().
package simulator

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/kernel"
	"github.com/katalvlaran/qsim/qstate"
	"github.com/katalvlaran/qsim/tensor"
)

// Engine names accepted by New.
const (
	KindFullStateVector = "fsv"
	KindUnitary         = "unitary"
)

// Simulator produces the final state of a circuit started from |0…0⟩.
type Simulator interface {
	SimulateFullState(ctx context.Context, c *circuit.Circuit) (*qstate.State, error)
	SimulateAndCollapse(ctx context.Context, c *circuit.Circuit) (int, error)
}

// New returns the engine registered under kind.
func New(kind string, opts ...Option) (Simulator, error) {
	switch kind {
	case KindFullStateVector:
		return NewFullStateVector(opts...), nil
	case KindUnitary:
		return NewUnitary(opts...), nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
}

func collapse(ctx context.Context, s Simulator, c *circuit.Circuit) (int, error) {
	st, err := s.SimulateFullState(ctx, c)
	if err != nil {
		return 0, err
	}
	return st.Collapse(), nil
}

func checkCircuit(c *circuit.Circuit) error {
	if c == nil {
		return ErrNilCircuit
	}
	if c.QubitCount() > qstate.MaxQubits {
		return errors.Wrapf(ErrTooManyQubits, "%d > %d", c.QubitCount(), qstate.MaxQubits)
	}
	return nil
}

// gateOf resolves the 2×2 matrix of a gate or control gate.
func (e *engine) gateOf(op *circuit.Operation) (kernel.Gate2, error) {
	var g kernel.Gate2
	m, err := e.provider.GateData(op)
	if err != nil {
		return g, err
	}
	if m.Rank() != 2 || m.Dim(0) != 2 || m.Dim(1) != 2 {
		return g, errors.Wrapf(ErrBadGateData, "%v", op)
	}
	copy(g.Re[:], m.Real())
	copy(g.Im[:], m.Imag())
	return g, nil
}

func matOf(t *tensor.ComplexTensor) kernel.Mat {
	return kernel.Mat{Re: t.Real(), Im: t.Imag(), Rows: t.Dim(0), Cols: t.Dim(1)}
}
