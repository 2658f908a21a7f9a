// SPDX-License-Identifier: MIT

package simulator

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/kernel"
	"github.com/katalvlaran/qsim/qstate"
	"github.com/katalvlaran/qsim/tensor"
)

// bytesPerEntry is the size of one complex matrix entry (two float64).
const bytesPerEntry = 16

// liveMatrices is how many full-register matrices exist at once:
// the composed product, the current step and the new product.
const liveMatrices = 3

// Unitary builds the whole-register unitary of every step, composes them and
// applies the product to |0…0⟩. Cost is O(depth · 8^n); memory O(4^n).
type Unitary struct {
	*engine
}

// NewUnitary returns a unitary-matrix simulator.
func NewUnitary(opts ...Option) *Unitary {
	return &Unitary{engine: newEngine(opts)}
}

// SimulateFullState runs c from |0…0⟩ and returns the final state.
// Errors: ErrNilCircuit, ErrTooManyQubits, ErrInsufficientMemory,
// ErrNotImplemented for standard functions, ErrFunctionSizeMismatch,
// ErrUnsupportedOperation for instructions, ctx.Err() on cancellation.
func (s *Unitary) SimulateFullState(ctx context.Context, c *circuit.Circuit) (st *qstate.State, err error) {
	start := time.Now()
	qubits := 0
	if c != nil {
		qubits = c.QubitCount()
	}
	defer func() { s.finish(KindUnitary, qubits, start, err) }()

	if err = checkCircuit(c); err != nil {
		return nil, errors.Wrap(err, "Unitary")
	}
	if err = s.checkMemory(qubits); err != nil {
		return nil, errors.Wrap(err, "Unitary")
	}

	// Last step is the leftmost factor: U = M_k · … · M_1 · M_0.
	steps := c.Steps()
	var u kernel.Mat
	for i := len(steps) - 1; i >= 0; i-- {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		m, serr := s.stepMatrix(steps[i])
		if serr != nil {
			return nil, errors.Wrapf(serr, "Unitary: step %d", i)
		}
		if i == len(steps)-1 {
			u = m
			continue
		}
		if err = s.timed("matMul", func() (err error) {
			u, err = kernel.MatMul(s.dispatcher, u, m)
			return err
		}); err != nil {
			return nil, errors.Wrapf(err, "Unitary: step %d", i)
		}
		if ce := s.log.Check(zap.DebugLevel, "step composed"); ce != nil {
			ce.Write(zap.Int("step", i), zap.Int("dim", u.Rows))
		}
	}

	dim := 1 << qubits
	x0Re := make([]float64, dim)
	x0Im := make([]float64, dim)
	x0Re[0] = 1
	var yRe, yIm []float64
	if err = s.timed("matVec", func() (err error) {
		yRe, yIm, err = kernel.MatVec(s.dispatcher, u, x0Re, x0Im)
		return err
	}); err != nil {
		return nil, errors.Wrap(err, "Unitary")
	}
	vec, err := tensor.FromParts(yRe, yIm, dim)
	if err != nil {
		return nil, errors.Wrap(err, "Unitary")
	}

	return qstate.FromAmplitudes(vec, s.stateOptions()...)
}

// SimulateAndCollapse runs c and samples one basis state from the result.
func (s *Unitary) SimulateAndCollapse(ctx context.Context, c *circuit.Circuit) (int, error) {
	return collapse(ctx, s, c)
}

func (s *Unitary) checkMemory(qubits int) error {
	total := s.totalMemory()
	if total == 0 {
		return nil
	}
	// float64: 4^30 · 48 bytes does not fit a uint64.
	dim := math.Ldexp(1, qubits)
	need := dim * dim * bytesPerEntry * liveMatrices
	budget := float64(total) * s.memFraction
	if need > budget {
		return errors.Wrapf(ErrInsufficientMemory, "%d qubits need %.0f bytes, budget %.0f", qubits, need, budget)
	}
	return nil
}

// stepMatrix builds the unitary of one step. Factors are collected per qubit
// position, lowest first, then folded from the highest position down so that
// qubit q maps to bit q of the basis index.
func (s *Unitary) stepMatrix(step *circuit.Step) (kernel.Mat, error) {
	n := step.QubitCount()
	factors := make([]kernel.Mat, 0, n)
	for q := 0; q < n; {
		op, err := step.Operation(q)
		if err != nil {
			return kernel.Mat{}, err
		}
		if op == nil {
			factors = append(factors, kernel.Identity(2))
			q++
			continue
		}
		f, err := s.factor(op)
		if err != nil {
			return kernel.Mat{}, err
		}
		factors = append(factors, f)
		q += op.Size()
	}

	u := factors[len(factors)-1]
	for i := len(factors) - 2; i >= 0; i-- {
		f := factors[i]
		if err := s.timed("kronecker", func() (err error) {
			u, err = kernel.Kronecker(s.dispatcher, u, f)
			return err
		}); err != nil {
			return kernel.Mat{}, err
		}
	}
	return u, nil
}

func (s *Unitary) factor(op *circuit.Operation) (kernel.Mat, error) {
	switch op.Kind() {
	case circuit.KindGate:
		g, err := s.gateOf(op)
		if err != nil {
			return kernel.Mat{}, err
		}
		return kernel.Mat{Re: g.Re[:], Im: g.Im[:], Rows: 2, Cols: 2}, nil
	case circuit.KindControlGate:
		g, err := s.gateOf(op)
		if err != nil {
			return kernel.Mat{}, err
		}
		lo := op.Lowest()
		var m kernel.Mat
		err = s.timed("buildControlGate", func() (err error) {
			m, err = kernel.BuildControlGate(s.dispatcher, g, op.Control()-lo, op.Target()-lo, op.Size())
			return err
		})
		return m, err
	case circuit.KindCustomFunction:
		data, err := s.provider.FunctionData(op.Name())
		if err != nil {
			return kernel.Mat{}, err
		}
		if want := 1 << op.Size(); !data.IsSquareMatrix() || data.Dim(0) != want {
			return kernel.Mat{}, errors.Wrapf(ErrFunctionSizeMismatch, "%v: have %d, want %d", op, data.Dim(0), want)
		}
		return matOf(data), nil
	case circuit.KindFunction:
		return kernel.Mat{}, errors.Wrapf(ErrNotImplemented, "%v", op)
	case circuit.KindInstruction:
		return kernel.Mat{}, errors.Wrapf(ErrUnsupportedOperation, "%v", op)
	}
	return kernel.Mat{}, errors.Wrapf(ErrUnsupportedOperation, "kind %v", op.Kind())
}
