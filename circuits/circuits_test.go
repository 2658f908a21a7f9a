// SPDX-License-Identifier: MIT

package circuits_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/circuits"
	"github.com/katalvlaran/qsim/simulator"
)

const tol = 1e-9

func TestEntanglement_GHZ(t *testing.T) {
	t.Parallel()
	c, err := circuits.Entanglement(4)
	require.NoError(t, err)
	st, err := simulator.NewFullStateVector().SimulateFullState(context.Background(), c)
	require.NoError(t, err)
	for i, p := range st.Probabilities() {
		want := 0.0
		if i == 0 || i == 15 {
			want = 0.5
		}
		assert.InDelta(t, want, p, tol, "index %d", i)
	}
}

func TestAppendQFT_UniformFromZero(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 5; n++ {
		c, err := circuit.New(n)
		require.NoError(t, err)
		require.NoError(t, circuits.AppendQFT(c))
		for _, sim := range []simulator.Simulator{simulator.NewFullStateVector(), simulator.NewUnitary()} {
			st, err := sim.SimulateFullState(context.Background(), c)
			require.NoError(t, err)
			amp := 1 / math.Sqrt(float64(st.Size()))
			for i := 0; i < st.Size(); i++ {
				a, err := st.Amplitude(i)
				require.NoError(t, err)
				assert.InDelta(t, amp, a.Re, tol, "n=%d index %d", n, i)
				assert.InDelta(t, 0, a.Im, tol, "n=%d index %d", n, i)
			}
		}
	}
}

func TestQFT_EnginesAgree(t *testing.T) {
	t.Parallel()
	c, err := circuits.QFT(5)
	require.NoError(t, err)
	a, err := simulator.NewFullStateVector().SimulateFullState(context.Background(), c)
	require.NoError(t, err)
	b, err := simulator.NewUnitary().SimulateFullState(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, a.ApproxEqual(b, tol))
	assert.True(t, a.IsNormalized())
}

func TestDeutschJozsa(t *testing.T) {
	t.Parallel()
	const n = 5
	inputMask := 1<<(n-1) - 1

	balanced, err := circuits.DeutschJozsa(n, true)
	require.NoError(t, err)
	constant, err := circuits.DeutschJozsa(n, false)
	require.NoError(t, err)

	sim := simulator.NewFullStateVector(simulator.WithSeed(3))
	for i := 0; i < 50; i++ {
		v, err := sim.SimulateAndCollapse(context.Background(), balanced)
		require.NoError(t, err)
		assert.NotZero(t, v&inputMask, "balanced oracle never yields an all-zero input register")

		v, err = sim.SimulateAndCollapse(context.Background(), constant)
		require.NoError(t, err)
		assert.Zero(t, v&inputMask, "constant oracle always yields an all-zero input register")
	}

	_, err = circuits.DeutschJozsa(1, true)
	assert.ErrorIs(t, err, circuits.ErrTooFewQubits)
}

func TestBuild(t *testing.T) {
	t.Parallel()
	for _, name := range circuits.Names() {
		c, err := circuits.Build(name, 3, true)
		require.NoError(t, err, name)
		assert.Equal(t, 3, c.QubitCount())
	}
	_, err := circuits.Build("grover", 3, false)
	assert.ErrorIs(t, err, circuits.ErrUnknownWorkload)
	_, err = circuits.Build(circuits.NameQFT, 0, false)
	assert.ErrorIs(t, err, circuit.ErrInvalidQubitCount)
}
