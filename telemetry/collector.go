// SPDX-License-Identifier: MIT

// Package telemetry exports simulator timings as Prometheus metrics.
package telemetry

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/qsim/simulator"
)

const (
	metricsNamespace = "qsim"
	subsystem        = "simulator"
)

// Collector implements simulator.Observer on top of Prometheus vectors and
// keeps in-process kernel totals for reporting.
type Collector struct {
	kernelTotal      *prometheus.CounterVec
	kernelDuration   *prometheus.HistogramVec
	simulationsTotal *prometheus.CounterVec
	simulationTime   *prometheus.HistogramVec

	mu     sync.Mutex
	counts map[string]uint64
	spent  map[string]time.Duration
}

// NewCollector registers the metrics on reg.
// A nil reg selects prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		kernelTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: subsystem,
				Name:      "kernel_invocations_total",
				Help:      "Number of numeric kernel invocations",
			},
			[]string{"kernel"},
		),
		kernelDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: subsystem,
				Name:      "kernel_duration_seconds",
				Help:      "Time spent in one kernel invocation",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"kernel"},
		),
		simulationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: subsystem,
				Name:      "simulations_total",
				Help:      "Number of finished simulations",
			},
			[]string{"engine", "status"}, // status: "success", "error"
		),
		simulationTime: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: subsystem,
				Name:      "simulation_duration_seconds",
				Help:      "Wall time of one simulation",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"engine"},
		),
		counts: make(map[string]uint64),
		spent:  make(map[string]time.Duration),
	}
}

// KernelDone implements simulator.Observer.
func (c *Collector) KernelDone(name string, d time.Duration) {
	c.kernelTotal.WithLabelValues(name).Inc()
	c.kernelDuration.WithLabelValues(name).Observe(d.Seconds())
	c.mu.Lock()
	c.counts[name]++
	c.spent[name] += d
	c.mu.Unlock()
}

// SimulationDone implements simulator.Observer.
func (c *Collector) SimulationDone(kind string, _ int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.simulationsTotal.WithLabelValues(kind, status).Inc()
	c.simulationTime.WithLabelValues(kind).Observe(d.Seconds())
}

// KernelStat is the running total of one kernel.
type KernelStat struct {
	Name  string
	Count uint64
	Time  time.Duration
}

// Kernels returns per-kernel totals sorted by name.
func (c *Collector) Kernels() []KernelStat {
	c.mu.Lock()
	out := make([]KernelStat, 0, len(c.counts))
	for name, n := range c.counts {
		out = append(out, KernelStat{Name: name, Count: n, Time: c.spent[name]})
	}
	c.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reset clears the in-process totals. Prometheus counters are untouched.
func (c *Collector) Reset() {
	c.mu.Lock()
	clear(c.counts)
	clear(c.spent)
	c.mu.Unlock()
}

var _ simulator.Observer = (*Collector)(nil)
