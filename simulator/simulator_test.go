// SPDX-License-Identifier: MIT

package simulator_test

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/kernel"
	"github.com/katalvlaran/qsim/provider"
	"github.com/katalvlaran/qsim/qstate"
	"github.com/katalvlaran/qsim/simulator"
	"github.com/katalvlaran/qsim/tensor"
)

const tol = 1e-9

func engines(opts ...simulator.Option) map[string]simulator.Simulator {
	return map[string]simulator.Simulator{
		simulator.KindFullStateVector: simulator.NewFullStateVector(opts...),
		simulator.KindUnitary:         simulator.NewUnitary(opts...),
	}
}

// randomCircuit builds a circuit of unitary gates only.
func randomCircuit(t *testing.T, rng *rand.Rand, qubits, ops int) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(qubits)
	require.NoError(t, err)
	for i := 0; i < ops; i++ {
		q := rng.Intn(qubits)
		switch k := rng.Intn(10); {
		case k < 6:
			g := circuit.GateKind(rng.Intn(int(circuit.GateR) + 1))
			if g == circuit.GateR {
				require.NoError(t, c.R(rng.Float64()*2*math.Pi, q))
			} else {
				op, err := circuit.NewGate(g, q)
				require.NoError(t, err)
				require.NoError(t, c.Add(op))
			}
		case qubits > 1:
			ctl := rng.Intn(qubits - 1)
			if ctl >= q {
				ctl++
			}
			switch k {
			case 6:
				require.NoError(t, c.CNOT(ctl, q))
			case 7:
				require.NoError(t, c.CH(ctl, q))
			case 8:
				require.NoError(t, c.CY(ctl, q))
			default:
				require.NoError(t, c.CR(ctl, q, rng.Float64()*math.Pi))
			}
		}
	}
	return c
}

func TestBellState(t *testing.T) {
	t.Parallel()
	c, err := circuit.New(3)
	require.NoError(t, err)
	require.NoError(t, c.H(0))
	require.NoError(t, c.CNOT(0, 1))

	h := math.Sqrt2 / 2
	for name, sim := range engines() {
		st, err := sim.SimulateFullState(context.Background(), c)
		require.NoError(t, err, name)
		for i := 0; i < st.Size(); i++ {
			a, err := st.Amplitude(i)
			require.NoError(t, err)
			want := 0.0
			if i == 0 || i == 3 { // 000 and 011
				want = h
			}
			assert.InDelta(t, want, a.Re, tol, "%s index %d", name, i)
			assert.InDelta(t, 0, a.Im, tol, "%s index %d", name, i)
		}
		assert.True(t, st.IsNormalized())
	}
}

func TestEmptyCircuit(t *testing.T) {
	t.Parallel()
	c, err := circuit.New(2)
	require.NoError(t, err)
	for name, sim := range engines() {
		st, err := sim.SimulateFullState(context.Background(), c)
		require.NoError(t, err, name)
		p, err := st.Probability(0)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, p, tol, name)
	}
}

func TestEnginesAgree(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2024))
	fsv := simulator.NewFullStateVector()
	uni := simulator.NewUnitary()
	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.Intn(5)
		c := randomCircuit(t, rng, n, 4+rng.Intn(20))
		a, err := fsv.SimulateFullState(context.Background(), c)
		require.NoError(t, err)
		b, err := uni.SimulateFullState(context.Background(), c)
		require.NoError(t, err)
		require.True(t, a.ApproxEqual(b, tol), "trial %d, %d qubits\nfsv: %v\nuni: %v", trial, n, a.Vector(), b.Vector())
		require.True(t, a.IsNormalized())
		require.True(t, b.IsNormalized())
	}
}

func TestDispatchersAgree(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(5))
	c := randomCircuit(t, rng, 10, 60)
	for _, kind := range []string{simulator.KindFullStateVector, simulator.KindUnitary} {
		if kind == simulator.KindUnitary {
			c = randomCircuit(t, rng, 6, 30)
		}
		serial, err := simulator.New(kind)
		require.NoError(t, err)
		parallel, err := simulator.New(kind, simulator.WithDispatcher(kernel.Parallel{Workers: 4, Grain: 8}))
		require.NoError(t, err)
		a, err := serial.SimulateFullState(context.Background(), c)
		require.NoError(t, err)
		b, err := parallel.SimulateFullState(context.Background(), c)
		require.NoError(t, err)
		assert.True(t, a.Equal(b), kind)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for name, sim := range engines() {
		_, err := sim.SimulateFullState(ctx, nil)
		assert.ErrorIs(t, err, simulator.ErrNilCircuit, name)
		_, err = sim.SimulateAndCollapse(ctx, nil)
		assert.ErrorIs(t, err, simulator.ErrNilCircuit, name)

		swap, _ := circuit.New(2)
		require.NoError(t, swap.Swap(0, 1))
		_, err = sim.SimulateFullState(ctx, swap)
		assert.ErrorIs(t, err, simulator.ErrNotImplemented, name)

		meas, _ := circuit.New(2)
		require.NoError(t, meas.Measure(0))
		_, err = sim.SimulateFullState(ctx, meas)
		assert.ErrorIs(t, err, simulator.ErrUnsupportedOperation, name)
	}

	_, err := simulator.New("gpu")
	assert.ErrorIs(t, err, simulator.ErrUnknownKind)
}

func TestCustomFunction(t *testing.T) {
	t.Parallel()
	p := provider.New()
	// CNOT with control on local qubit 0 and target on local qubit 1:
	// swaps basis states 1 (01) and 3 (11).
	o, z := tensor.One, tensor.Zero
	cnot, err := tensor.FromComplex([]tensor.Complex{
		o, z, z, z,
		z, z, z, o,
		z, z, o, z,
		z, o, z, z,
	}, 4, 4)
	require.NoError(t, err)
	require.NoError(t, p.RegisterFunctionData("cnot", cnot))
	id8, _ := tensor.Identity(8)
	require.NoError(t, p.RegisterFunctionData("wide", id8))

	c, err := circuit.New(3)
	require.NoError(t, err)
	require.NoError(t, c.X(1))
	require.NoError(t, c.CustomFunction(p, "cnot", 1, 2))

	uni := simulator.NewUnitary(simulator.WithProvider(p))
	st, err := uni.SimulateFullState(context.Background(), c)
	require.NoError(t, err)
	prob, err := st.Probability(6) // qubits 1 and 2 set
	require.NoError(t, err)
	assert.InDelta(t, 1, prob, tol)

	ref, _ := circuit.New(3)
	require.NoError(t, ref.X(1))
	require.NoError(t, ref.CNOT(1, 2))
	want, err := simulator.NewFullStateVector().SimulateFullState(context.Background(), ref)
	require.NoError(t, err)
	assert.True(t, want.ApproxEqual(st, tol))

	_, err = simulator.NewFullStateVector(simulator.WithProvider(p)).SimulateFullState(context.Background(), c)
	assert.ErrorIs(t, err, simulator.ErrNotImplemented)

	bad, _ := circuit.New(3)
	require.NoError(t, bad.CustomFunction(p, "wide", 0, 1))
	_, err = uni.SimulateFullState(context.Background(), bad)
	assert.ErrorIs(t, err, simulator.ErrFunctionSizeMismatch)
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()
	c, _ := circuit.New(2)
	require.NoError(t, c.H(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, sim := range engines() {
		_, err := sim.SimulateFullState(ctx, c)
		assert.ErrorIs(t, err, context.Canceled, name)
	}
}

func TestUnitary_MemoryGuard(t *testing.T) {
	t.Parallel()
	c, _ := circuit.New(12)
	sim := simulator.NewUnitary(simulator.WithMemoryFraction(1e-12))
	_, err := sim.SimulateFullState(context.Background(), c)
	assert.ErrorIs(t, err, simulator.ErrInsufficientMemory)
}

func TestUnitary_MemoryGuardAtRegisterLimit(t *testing.T) {
	t.Parallel()
	c, err := circuit.New(qstate.MaxQubits)
	require.NoError(t, err)
	for _, total := range []uint64{64 << 30, math.MaxUint64} {
		sim := simulator.NewUnitary(simulator.WithTotalMemory(total), simulator.WithMemoryFraction(1))
		require.NotPanics(t, func() {
			_, err = sim.SimulateFullState(context.Background(), c)
		})
		assert.ErrorIs(t, err, simulator.ErrInsufficientMemory, "total %d", total)
	}
}

func TestSimulateAndCollapse(t *testing.T) {
	t.Parallel()
	c, _ := circuit.New(3)
	require.NoError(t, c.X(0, 2))
	for name, sim := range engines() {
		v, err := sim.SimulateAndCollapse(context.Background(), c)
		require.NoError(t, err)
		assert.Equal(t, 5, v, name)
	}
}

func TestSeed_Reproducible(t *testing.T) {
	t.Parallel()
	c, _ := circuit.New(4)
	require.NoError(t, c.H(0, 1, 2, 3))
	run := func() []int {
		sim := simulator.NewFullStateVector(simulator.WithSeed(99))
		out := make([]int, 20)
		for i := range out {
			v, err := sim.SimulateAndCollapse(context.Background(), c)
			require.NoError(t, err)
			out[i] = v
		}
		return out
	}
	a, b := run(), run()
	assert.Equal(t, a, b)

	distinct := map[int]bool{}
	for _, v := range a {
		distinct[v] = true
	}
	assert.Greater(t, len(distinct), 1, "each run gets its own stream")
}

type recorder struct {
	mu      sync.Mutex
	kernels map[string]int
	runs    int
	lastErr error
}

func (r *recorder) KernelDone(name string, _ time.Duration) {
	r.mu.Lock()
	r.kernels[name]++
	r.mu.Unlock()
}

func (r *recorder) SimulationDone(_ string, _ int, _ time.Duration, err error) {
	r.mu.Lock()
	r.runs++
	r.lastErr = err
	r.mu.Unlock()
}

func TestObserver(t *testing.T) {
	t.Parallel()
	c, _ := circuit.New(3)
	require.NoError(t, c.H(0, 1))
	require.NoError(t, c.CNOT(0, 2))

	rec := &recorder{kernels: map[string]int{}}
	log := zaptest.NewLogger(t)
	fsv := simulator.NewFullStateVector(simulator.WithObserver(rec), simulator.WithLogger(log))
	_, err := fsv.SimulateFullState(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.kernels["applyGate"])
	assert.Equal(t, 1, rec.kernels["applyControlGate"])

	uni := simulator.NewUnitary(simulator.WithObserver(rec), simulator.WithLogger(log))
	_, err = uni.SimulateFullState(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.kernels["buildControlGate"])
	assert.Equal(t, 1, rec.kernels["matMul"])
	assert.Equal(t, 1, rec.kernels["matVec"])
	// step 0: H H I → 2 products; step 1: CNOT block → 0 products
	assert.Equal(t, 2, rec.kernels["kronecker"])

	_, err = uni.SimulateFullState(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 3, rec.runs)
	assert.ErrorIs(t, rec.lastErr, simulator.ErrNilCircuit)
}
