// SPDX-License-Identifier: MIT

// Package qstate wraps an amplitude vector of 2^n complex values and answers
// probability queries and stochastic collapse on it.
//
// Basis index bit q is the value of qubit q. Each State owns its random
// source; collapse results are reproducible once a seed is set.
package qstate

import (
	"math"
	"math/rand"
	"sync"

	"github.com/pkg/errors"

	"github.com/katalvlaran/qsim/tensor"
)

// MaxQubits bounds the register so that 2^n fits an int index.
const MaxQubits = 30

// Normalization tolerance: Σ|a|² must lie strictly inside (normLow, normHigh).
const (
	normLow  = 0.99
	normHigh = 1.01
)

// Option configures a State.
type Option func(*config)

type config struct{ seed *int64 }

// WithSeed fixes the random source seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = &seed }
}

// State is a register of n qubits described by its amplitude vector.
// The vector is replaced wholesale by simulators; callers treat it as read-only.
type State struct {
	qubits int
	vec    *tensor.ComplexTensor

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns the |0…0⟩ state on qubitCount qubits.
func New(qubitCount int, opts ...Option) (*State, error) {
	if qubitCount < 1 || qubitCount > MaxQubits {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "New: %d", qubitCount)
	}
	v, err := tensor.New(1 << qubitCount)
	if err != nil {
		return nil, errors.Wrap(err, "New")
	}
	v.Real()[0] = 1

	return build(qubitCount, v, opts), nil
}

// NewSeeded is New with WithSeed(seed).
func NewSeeded(qubitCount int, seed int64) (*State, error) {
	return New(qubitCount, WithSeed(seed))
}

// FromVector adopts t as the amplitude vector of a custom initial state.
// Errors: ErrInvalidStateVector, ErrNotNormalized.
func FromVector(t *tensor.ComplexTensor, opts ...Option) (*State, error) {
	s, err := FromAmplitudes(t, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "FromVector")
	}
	if !s.IsNormalized() {
		return nil, errors.Wrap(ErrNotNormalized, "FromVector")
	}
	return s, nil
}

// FromAmplitudes adopts t after shape validation only. Simulators use it to
// publish their result without re-checking normalization.
func FromAmplitudes(t *tensor.ComplexTensor, opts ...Option) (*State, error) {
	if err := tensor.ValidateVector(t); err != nil {
		return nil, errors.Wrapf(ErrInvalidStateVector, "%v", err)
	}
	n := tensor.Log2(t.Size())
	if n < 1 || n > MaxQubits {
		return nil, errors.Wrapf(ErrInvalidStateVector, "size %d", t.Size())
	}
	return build(n, t, opts), nil
}

func build(n int, v *tensor.ComplexTensor, opts []Option) *State {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &State{qubits: n, vec: v, rng: newSource(cfg.seed)}
}

// QubitCount returns the register width.
func (s *State) QubitCount() int { return s.qubits }

// Size returns the number of amplitudes, 2^QubitCount.
func (s *State) Size() int { return s.vec.Size() }

// Vector returns the amplitude tensor. It must not be mutated.
func (s *State) Vector() *tensor.ComplexTensor { return s.vec }

// SetSeed reseeds the random source.
func (s *State) SetSeed(seed int64) {
	s.mu.Lock()
	s.rng.Seed(seed)
	s.mu.Unlock()
}

func (s *State) float() float64 {
	s.mu.Lock()
	r := s.rng.Float64()
	s.mu.Unlock()
	return r
}

func (s *State) prob(i int) float64 {
	re, im := s.vec.Real()[i], s.vec.Imag()[i]
	return re*re + im*im
}

// IsNormalized reports whether Σ|a|² lies in (0.99, 1.01).
func (s *State) IsNormalized() bool {
	sum := 0.0
	for i := 0; i < s.vec.Size(); i++ {
		sum += s.prob(i)
	}
	return sum > normLow && sum < normHigh
}

// Amplitude returns the amplitude of basis state i.
func (s *State) Amplitude(i int) (tensor.Complex, error) {
	if i < 0 || i >= s.vec.Size() {
		return tensor.Zero, errors.Wrapf(ErrInvalidBasisState, "Amplitude: %d", i)
	}
	return tensor.C(s.vec.Real()[i], s.vec.Imag()[i]), nil
}

// Probability returns |a_i|².
func (s *State) Probability(i int) (float64, error) {
	if i < 0 || i >= s.vec.Size() {
		return 0, errors.Wrapf(ErrInvalidBasisState, "Probability: %d", i)
	}
	return s.prob(i), nil
}

// Probabilities returns |a_i|² for every basis state.
func (s *State) Probabilities() []float64 {
	out := make([]float64, s.vec.Size())
	for i := range out {
		out[i] = s.prob(i)
	}
	return out
}

// QubitProbability returns the probability of measuring qubit q as 1:
// the sum of |a_i|² over every i with bit q set.
func (s *State) QubitProbability(q int) (float64, error) {
	if q < 0 || q >= s.qubits {
		return 0, errors.Wrapf(ErrInvalidQubit, "QubitProbability: %d of %d", q, s.qubits)
	}
	bit := 1 << q
	p := 0.0
	for i := 0; i < s.vec.Size(); i++ {
		if i&bit != 0 {
			p += s.prob(i)
		}
	}
	return p, nil
}

// Collapse samples one basis state. It draws r ∈ [0, 1) and returns the
// first index whose cumulative probability exceeds r, or the last index when
// rounding leaves the total at or below r.
func (s *State) Collapse() int {
	r := s.float()
	acc := 0.0
	last := s.vec.Size() - 1
	for i := 0; i < last; i++ {
		acc += s.prob(i)
		if r < acc {
			return i
		}
	}
	return last
}

// QubitCollapsed samples qubit q alone with a Bernoulli draw on its marginal
// probability. Sequential calls on entangled qubits are independent draws and
// do not reproduce joint statistics; use Collapse for that.
func (s *State) QubitCollapsed(q int) (int, error) {
	p, err := s.QubitProbability(q)
	if err != nil {
		return 0, errors.Wrap(err, "QubitCollapsed")
	}
	if s.float() < p {
		return 1, nil
	}
	return 0, nil
}

// Equal reports equal width and bit-identical amplitudes.
func (s *State) Equal(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.qubits == o.qubits && s.vec.Equal(o.vec)
}

// ApproxEqual reports equal width and amplitudes within tol.
func (s *State) ApproxEqual(o *State, tol float64) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.qubits == o.qubits && s.vec.ApproxEqual(o.vec, tol)
}

// Norm returns √(Σ|a_i|²).
func (s *State) Norm() float64 {
	sum := 0.0
	for i := 0; i < s.vec.Size(); i++ {
		sum += s.prob(i)
	}
	return math.Sqrt(sum)
}
