// SPDX-License-Identifier: MIT

package simulator

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/kernel"
	"github.com/katalvlaran/qsim/qstate"
	"github.com/katalvlaran/qsim/tensor"
)

// FullStateVector updates the amplitude vector in place, one gate at a time.
// Cost per gate is O(2^n); memory is O(2^n).
type FullStateVector struct {
	*engine
}

// NewFullStateVector returns a full-state-vector simulator.
func NewFullStateVector(opts ...Option) *FullStateVector {
	return &FullStateVector{engine: newEngine(opts)}
}

// SimulateFullState runs c from |0…0⟩ and returns the final state.
// Errors: ErrNilCircuit, ErrTooManyQubits, ErrNotImplemented for functions,
// ErrUnsupportedOperation for instructions, ctx.Err() on cancellation.
func (s *FullStateVector) SimulateFullState(ctx context.Context, c *circuit.Circuit) (st *qstate.State, err error) {
	start := time.Now()
	qubits := 0
	if c != nil {
		qubits = c.QubitCount()
	}
	defer func() { s.finish(KindFullStateVector, qubits, start, err) }()

	if err = checkCircuit(c); err != nil {
		return nil, errors.Wrap(err, "FullStateVector")
	}
	vec, err := tensor.New(1 << qubits)
	if err != nil {
		return nil, errors.Wrap(err, "FullStateVector")
	}
	re, im := vec.Real(), vec.Imag()
	re[0] = 1

	for i, step := range c.Steps() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		ops := step.Operations()
		for j := range ops {
			if err = s.apply(&ops[j], re, im); err != nil {
				return nil, errors.Wrapf(err, "FullStateVector: step %d", i)
			}
		}
		if ce := s.log.Check(zap.DebugLevel, "step applied"); ce != nil {
			ce.Write(zap.Int("step", i), zap.Int("operations", len(ops)))
		}
	}

	return qstate.FromAmplitudes(vec, s.stateOptions()...)
}

func (s *FullStateVector) apply(op *circuit.Operation, re, im []float64) error {
	switch op.Kind() {
	case circuit.KindGate:
		g, err := s.gateOf(op)
		if err != nil {
			return err
		}
		return s.timed("applyGate", func() error {
			return kernel.ApplyGate(s.dispatcher, op.Target(), re, im, g)
		})
	case circuit.KindControlGate:
		g, err := s.gateOf(op)
		if err != nil {
			return err
		}
		return s.timed("applyControlGate", func() error {
			return kernel.ApplyControlGate(s.dispatcher, op.Control(), op.Target(), re, im, g)
		})
	case circuit.KindFunction, circuit.KindCustomFunction:
		return errors.Wrapf(ErrNotImplemented, "%v", op)
	case circuit.KindInstruction:
		return errors.Wrapf(ErrUnsupportedOperation, "%v", op)
	}
	return errors.Wrapf(ErrUnsupportedOperation, "kind %v", op.Kind())
}

// SimulateAndCollapse runs c and samples one basis state from the result.
func (s *FullStateVector) SimulateAndCollapse(ctx context.Context, c *circuit.Circuit) (int, error) {
	return collapse(ctx, s, c)
}
