// SPDX-License-Identifier: MIT

package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/simulator"
	"github.com/katalvlaran/qsim/telemetry"
)

// seriesCount returns the number of series of the named metric family.
func seriesCount(reg *prometheus.Registry, name string) (int, error) {
	families, err := reg.Gather()
	if err != nil {
		return 0, err
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return len(mf.GetMetric()), nil
		}
	}
	return 0, nil
}

func TestCollector_Counts(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	col := telemetry.NewCollector(reg)

	col.KernelDone("applyGate", time.Millisecond)
	col.KernelDone("applyGate", time.Millisecond)
	col.KernelDone("matMul", 3*time.Millisecond)
	col.SimulationDone("fsv", 3, time.Second, nil)

	stats := col.Kernels()
	require.Len(t, stats, 2)
	assert.Equal(t, telemetry.KernelStat{Name: "applyGate", Count: 2, Time: 2 * time.Millisecond}, stats[0])
	assert.Equal(t, "matMul", stats[1].Name)

	n, err := seriesCount(reg, "qsim_simulator_kernel_invocations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per kernel")

	col.Reset()
	assert.Empty(t, col.Kernels())
}

func TestCollector_AsObserver(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	col := telemetry.NewCollector(reg)

	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.H(0))
	require.NoError(t, c.CNOT(0, 1))

	sim := simulator.NewFullStateVector(simulator.WithObserver(col))
	_, err = sim.SimulateFullState(context.Background(), c)
	require.NoError(t, err)
	_, err = sim.SimulateFullState(context.Background(), nil)
	require.Error(t, err)

	stats := col.Kernels()
	require.Len(t, stats, 2)
	assert.Equal(t, "applyControlGate", stats[0].Name)
	assert.Equal(t, uint64(1), stats[0].Count)
	assert.Equal(t, uint64(1), stats[1].Count)

	n, err := seriesCount(reg, "qsim_simulator_simulations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "success and error series")
}
