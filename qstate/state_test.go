// SPDX-License-Identifier: MIT

package qstate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/qstate"
	"github.com/katalvlaran/qsim/tensor"
)

const tol = 1e-12

func vector(t *testing.T, amps ...tensor.Complex) *tensor.ComplexTensor {
	t.Helper()
	v, err := tensor.FromComplex(amps, len(amps))
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	t.Parallel()
	s, err := qstate.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.QubitCount())
	assert.Equal(t, 8, s.Size())
	assert.True(t, s.IsNormalized())
	a, err := s.Amplitude(0)
	require.NoError(t, err)
	assert.Equal(t, tensor.One, a)
	assert.Equal(t, 0, s.Collapse())

	for _, n := range []int{0, -1, qstate.MaxQubits + 1} {
		_, err := qstate.New(n)
		assert.ErrorIs(t, err, qstate.ErrInvalidQubitCount, "n=%d", n)
	}
}

func TestFromVector(t *testing.T) {
	t.Parallel()
	h := math.Sqrt2 / 2
	s, err := qstate.FromVector(vector(t, tensor.C(h, 0), tensor.C(0, h)))
	require.NoError(t, err)
	assert.Equal(t, 1, s.QubitCount())

	_, err = qstate.FromVector(vector(t, tensor.One, tensor.One))
	assert.ErrorIs(t, err, qstate.ErrNotNormalized)
	_, err = qstate.FromVector(vector(t, tensor.One, tensor.Zero, tensor.Zero))
	assert.ErrorIs(t, err, qstate.ErrInvalidStateVector)
	_, err = qstate.FromVector(vector(t, tensor.One))
	assert.ErrorIs(t, err, qstate.ErrInvalidStateVector)
	_, err = qstate.FromVector(nil)
	assert.ErrorIs(t, err, qstate.ErrInvalidStateVector)

	m, _ := tensor.Identity(2)
	_, err = qstate.FromVector(m)
	assert.ErrorIs(t, err, qstate.ErrInvalidStateVector)
}

func TestProbabilities(t *testing.T) {
	t.Parallel()
	// 0.5|00> + 0.5i|01> + 0.5|10> - 0.5|11>
	s, err := qstate.FromVector(vector(t, tensor.C(0.5, 0), tensor.C(0, 0.5), tensor.C(0.5, 0), tensor.C(-0.5, 0)))
	require.NoError(t, err)

	for i, p := range s.Probabilities() {
		assert.InDelta(t, 0.25, p, tol, "index %d", i)
	}
	p, err := s.Probability(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, p, tol)
	_, err = s.Probability(4)
	assert.ErrorIs(t, err, qstate.ErrInvalidBasisState)
	_, err = s.Amplitude(-1)
	assert.ErrorIs(t, err, qstate.ErrInvalidBasisState)

	q0, err := s.QubitProbability(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, q0, tol)
	_, err = s.QubitProbability(2)
	assert.ErrorIs(t, err, qstate.ErrInvalidQubit)
	_, err = s.QubitCollapsed(-1)
	assert.ErrorIs(t, err, qstate.ErrInvalidQubit)
	assert.InDelta(t, 1.0, s.Norm(), tol)
}

func TestQubitProbability_SingleBit(t *testing.T) {
	t.Parallel()
	// |110> : qubits 1 and 2 set.
	amps := make([]tensor.Complex, 8)
	amps[6] = tensor.One
	s, err := qstate.FromVector(vector(t, amps...))
	require.NoError(t, err)
	for q, want := range []float64{0, 1, 1} {
		p, err := s.QubitProbability(q)
		require.NoError(t, err)
		assert.Equal(t, want, p, "qubit %d", q)
		c, err := s.QubitCollapsed(q)
		require.NoError(t, err)
		assert.Equal(t, int(want), c)
	}
	assert.Equal(t, 6, s.Collapse())
}

func TestCollapse_Distribution(t *testing.T) {
	t.Parallel()
	// probabilities 0.1, 0.2, 0.3, 0.4
	probs := []float64{0.1, 0.2, 0.3, 0.4}
	amps := make([]tensor.Complex, len(probs))
	for i, p := range probs {
		amps[i] = tensor.C(math.Sqrt(p), 0)
	}
	s, err := qstate.FromVector(vector(t, amps...), qstate.WithSeed(42))
	require.NoError(t, err)

	const trials = 40000
	counts := make([]int, len(probs))
	for i := 0; i < trials; i++ {
		counts[s.Collapse()]++
	}
	for i, p := range probs {
		assert.InDelta(t, p, float64(counts[i])/trials, 0.01, "index %d", i)
	}
}

func TestQubitCollapsed_Marginal(t *testing.T) {
	t.Parallel()
	h := math.Sqrt2 / 2
	// Bell state (|00> + |11>)/√2: each marginal is 1/2.
	s, err := qstate.FromVector(vector(t, tensor.C(h, 0), tensor.Zero, tensor.Zero, tensor.C(h, 0)), qstate.WithSeed(7))
	require.NoError(t, err)

	const trials = 20000
	ones := 0
	for i := 0; i < trials; i++ {
		v, err := s.QubitCollapsed(1)
		require.NoError(t, err)
		ones += v
	}
	assert.InDelta(t, 0.5, float64(ones)/trials, 0.02)
}

func TestSeed_Reproducible(t *testing.T) {
	t.Parallel()
	amps := []tensor.Complex{tensor.C(0.5, 0), tensor.C(0.5, 0), tensor.C(0.5, 0), tensor.C(0.5, 0)}
	a, err := qstate.FromVector(vector(t, amps...), qstate.WithSeed(1))
	require.NoError(t, err)
	b, err := qstate.FromVector(vector(t, amps...))
	require.NoError(t, err)
	b.SetSeed(1)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Collapse(), b.Collapse())
	}
	assert.True(t, a.Equal(b))
	assert.True(t, a.ApproxEqual(b, 0))

	c, err := qstate.NewSeeded(2, 1)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestDeriveSeed(t *testing.T) {
	t.Parallel()
	seen := map[int64]bool{}
	for i := uint64(0); i < 100; i++ {
		s := qstate.DeriveSeed(9, i)
		assert.False(t, seen[s])
		seen[s] = true
	}
	assert.Equal(t, qstate.DeriveSeed(9, 3), qstate.DeriveSeed(9, 3))
	for p := int64(-50); p < 50; p++ {
		if p != 9 {
			assert.NotEqual(t, qstate.DeriveSeed(9, 0), qstate.DeriveSeed(p, 0), "parent %d", p)
		}
	}
}
