// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/pbnjay/memory"
	"github.com/pkg/errors"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/simulator"
)

// Report summarizes the timed iterations of one workload.
type Report struct {
	Qubits     int
	Iterations int
	Min        time.Duration
	Max        time.Duration
	Avg        time.Duration
	// PeakHeap is the largest heap observed right after a run.
	PeakHeap uint64
	// SystemMemory is the total physical memory of the host.
	SystemMemory uint64
}

// String renders the report as [qubits, max ms, avg ms, min ms, peak bytes].
func (r Report) String() string {
	ms := func(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
	return fmt.Sprintf("[%d, %.3f, %.4f, %.3f, %d]", r.Qubits, ms(r.Max), ms(r.Avg), ms(r.Min), r.PeakHeap)
}

// run simulates c warmup times untimed, then iterations times timed.
func run(ctx context.Context, sim simulator.Simulator, c *circuit.Circuit, warmup, iterations int) (Report, error) {
	if iterations < 1 {
		return Report{}, errors.Errorf("iterations must be positive, got %d", iterations)
	}
	for i := 0; i < warmup; i++ {
		if _, err := sim.SimulateFullState(ctx, c); err != nil {
			return Report{}, errors.Wrapf(err, "warmup %d", i)
		}
	}

	r := Report{Qubits: c.QubitCount(), Iterations: iterations, SystemMemory: memory.TotalMemory()}
	var (
		total time.Duration
		ms    runtime.MemStats
	)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if _, err := sim.SimulateFullState(ctx, c); err != nil {
			return Report{}, errors.Wrapf(err, "iteration %d", i)
		}
		d := time.Since(start)
		runtime.ReadMemStats(&ms)
		r.PeakHeap = max(r.PeakHeap, ms.HeapAlloc)

		total += d
		if i == 0 || d < r.Min {
			r.Min = d
		}
		r.Max = max(r.Max, d)
	}
	r.Avg = total / time.Duration(iterations)

	return r, nil
}
