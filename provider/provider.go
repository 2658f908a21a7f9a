// SPDX-License-Identifier: MIT

// Package provider caches the 2×2 matrices of the canonical gates and holds
// the registry of user-supplied custom function matrices.
//
// A Provider is constructed explicitly and shared by reference; every method
// is safe for concurrent use. Returned tensors are shared cache entries and
// must be treated as read-only (Clone before mutating).
package provider

import (
	"math"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/tensor"
)

// DefaultPhaseCacheSize bounds the number of memoized phase-shift matrices.
const DefaultPhaseCacheSize = 1024

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the structured logger. Default: no-op.
func WithLogger(l *zap.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// WithPhaseCacheSize bounds the phase-shift cache. Non-positive values keep the default.
func WithPhaseCacheSize(n int) Option {
	return func(p *Provider) {
		if n > 0 {
			p.phaseSize = n
		}
	}
}

// Provider memoizes gate matrices and stores custom function data.
type Provider struct {
	log       *zap.Logger
	phaseSize int

	muGate sync.RWMutex
	gates  map[circuit.GateKind]*tensor.ComplexTensor

	phases *lru.Cache[float64, *tensor.ComplexTensor]

	muFunc    sync.RWMutex
	functions map[string]*tensor.ComplexTensor
}

// New returns an empty Provider.
func New(opts ...Option) *Provider {
	p := &Provider{
		log:       zap.NewNop(),
		phaseSize: DefaultPhaseCacheSize,
		gates:     make(map[circuit.GateKind]*tensor.ComplexTensor),
		functions: make(map[string]*tensor.ComplexTensor),
	}
	for _, opt := range opts {
		opt(p)
	}
	// lru.New only fails for a non-positive size, which the option guards.
	p.phases, _ = lru.New[float64, *tensor.ComplexTensor](p.phaseSize)

	return p
}

// GateData returns the 2×2 matrix of a Gate, or of the gate wrapped by a ControlGate.
func (p *Provider) GateData(op *circuit.Operation) (*tensor.ComplexTensor, error) {
	if op == nil {
		return nil, errors.Wrap(ErrNilOperation, "GateData")
	}
	if k := op.Kind(); k != circuit.KindGate && k != circuit.KindControlGate {
		return nil, errors.Wrapf(ErrNotAGate, "GateData: %v", k)
	}
	if op.GateKind() == circuit.GateR {
		return p.phaseData(op.Phi()), nil
	}
	return p.fixedData(op.GateKind())
}

func (p *Provider) fixedData(kind circuit.GateKind) (*tensor.ComplexTensor, error) {
	p.muGate.RLock()
	m, ok := p.gates[kind]
	p.muGate.RUnlock()
	if ok {
		return m, nil
	}

	m, err := canonical(kind)
	if err != nil {
		return nil, err
	}
	p.muGate.Lock()
	if cached, ok := p.gates[kind]; ok {
		m = cached
	} else {
		p.gates[kind] = m
		p.log.Debug("gate data cached", zap.Stringer("gate", kind))
	}
	p.muGate.Unlock()

	return m, nil
}

func (p *Provider) phaseData(phi float64) *tensor.ComplexTensor {
	if m, ok := p.phases.Get(phi); ok {
		return m
	}
	m := tensor.Matrix2(tensor.One, tensor.Zero, tensor.Zero, tensor.C(0, phi).Exp())
	if prev, ok, _ := p.phases.PeekOrAdd(phi, m); ok {
		return prev
	}
	p.log.Debug("phase data cached", zap.Float64("phi", phi))

	return m
}

// canonical builds the fixed matrix of a non-parametrized gate.
func canonical(kind circuit.GateKind) (*tensor.ComplexTensor, error) {
	o, z, h := tensor.One, tensor.Zero, math.Sqrt2/2
	switch kind {
	case circuit.GateI:
		return tensor.Matrix2(o, z, z, o), nil
	case circuit.GateX:
		return tensor.Matrix2(z, o, o, z), nil
	case circuit.GateY:
		return tensor.Matrix2(z, tensor.C(0, -1), tensor.I, z), nil
	case circuit.GateZ:
		return tensor.Matrix2(o, z, z, tensor.C(-1, 0)), nil
	case circuit.GateH:
		return tensor.Matrix2(tensor.C(h, 0), tensor.C(h, 0), tensor.C(h, 0), tensor.C(-h, 0)), nil
	case circuit.GateS:
		return tensor.Matrix2(o, z, z, tensor.I), nil
	case circuit.GateT:
		return tensor.Matrix2(o, z, z, tensor.C(h, h)), nil
	}
	return nil, errors.Wrapf(ErrNotAGate, "GateData: %v", kind)
}

// RegisterFunctionData stores a copy of m under name, replacing any previous entry.
// m must be a square rank-2 tensor with at least four elements.
func (p *Provider) RegisterFunctionData(name string, m *tensor.ComplexTensor) error {
	if name == "" {
		return errors.Wrap(ErrInvalidFunctionName, "RegisterFunctionData")
	}
	if err := tensor.ValidateSquareMatrix(m); err != nil {
		return errors.Wrapf(ErrInvalidFunctionData, "RegisterFunctionData %q: %v", name, err)
	}
	if m.Size() < 4 {
		return errors.Wrapf(ErrInvalidFunctionData, "RegisterFunctionData %q: size %d", name, m.Size())
	}

	p.muFunc.Lock()
	_, replaced := p.functions[name]
	p.functions[name] = m.Clone()
	p.muFunc.Unlock()
	p.log.Debug("function data registered",
		zap.String("name", name), zap.Int("dim", m.Dim(0)), zap.Bool("replaced", replaced))

	return nil
}

// FunctionData returns the matrix registered under name.
func (p *Provider) FunctionData(name string) (*tensor.ComplexTensor, error) {
	if name == "" {
		return nil, errors.Wrap(ErrInvalidFunctionName, "FunctionData")
	}
	p.muFunc.RLock()
	m, ok := p.functions[name]
	p.muFunc.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrFunctionNotRegistered, "FunctionData: %q", name)
	}
	return m, nil
}

// IsFunctionDataRegistered reports whether name has registered data.
func (p *Provider) IsFunctionDataRegistered(name string) (bool, error) {
	if name == "" {
		return false, errors.Wrap(ErrInvalidFunctionName, "IsFunctionDataRegistered")
	}
	p.muFunc.RLock()
	_, ok := p.functions[name]
	p.muFunc.RUnlock()
	return ok, nil
}

var _ circuit.FunctionRegistry = (*Provider)(nil)
