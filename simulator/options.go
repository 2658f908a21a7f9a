// SPDX-License-Identifier: MIT

package simulator

import (
	"sync/atomic"
	"time"

	"github.com/pbnjay/memory"
	"go.uber.org/zap"

	"github.com/katalvlaran/qsim/kernel"
	"github.com/katalvlaran/qsim/provider"
	"github.com/katalvlaran/qsim/qstate"
)

// DefaultMemoryFraction is the share of system memory a unitary build may use.
const DefaultMemoryFraction = 0.5

// Observer receives timing callbacks. Implementations must be safe for
// concurrent use when a simulator is shared between goroutines.
type Observer interface {
	KernelDone(name string, d time.Duration)
	SimulationDone(kind string, qubits int, d time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) KernelDone(string, time.Duration)                 {}
func (nopObserver) SimulationDone(string, int, time.Duration, error) {}

// Option configures a simulator.
type Option func(*engine)

// WithProvider shares a gate data provider. Default: a private provider.
func WithProvider(p *provider.Provider) Option {
	return func(e *engine) {
		if p != nil {
			e.provider = p
		}
	}
}

// WithDispatcher selects how kernels are run. Default: kernel.Serial.
func WithDispatcher(d kernel.Dispatcher) Option {
	return func(e *engine) {
		if d != nil {
			e.dispatcher = d
		}
	}
}

// WithLogger sets the structured logger. Default: no-op.
func WithLogger(l *zap.Logger) Option {
	return func(e *engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver receives kernel and simulation timings.
func WithObserver(o Observer) Option {
	return func(e *engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithSeed makes produced states reproducible. The n-th state of a
// simulator gets qstate.DeriveSeed(seed, n).
func WithSeed(seed int64) Option {
	return func(e *engine) { e.seed = &seed }
}

// WithMemoryFraction bounds the share of total system memory the unitary
// engine may allocate. Values outside (0, 1] keep the default.
func WithMemoryFraction(f float64) Option {
	return func(e *engine) {
		if f > 0 && f <= 1 {
			e.memFraction = f
		}
	}
}

// engine holds what both simulators share.
type engine struct {
	provider    *provider.Provider
	dispatcher  kernel.Dispatcher
	log         *zap.Logger
	observer    Observer
	seed        *int64
	runs        atomic.Uint64
	memFraction float64
	totalMemory func() uint64
}

func newEngine(opts []Option) *engine {
	e := &engine{
		dispatcher:  kernel.Serial{},
		log:         zap.NewNop(),
		observer:    nopObserver{},
		memFraction: DefaultMemoryFraction,
		totalMemory: memory.TotalMemory,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.provider == nil {
		e.provider = provider.New(provider.WithLogger(e.log))
	}
	return e
}

func (e *engine) stateOptions() []qstate.Option {
	if e.seed == nil {
		return nil
	}
	return []qstate.Option{qstate.WithSeed(qstate.DeriveSeed(*e.seed, e.runs.Add(1)-1))}
}

// timed runs fn and reports its duration under name.
func (e *engine) timed(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	e.observer.KernelDone(name, time.Since(start))
	return err
}

func (e *engine) finish(kind string, qubits int, start time.Time, err error) {
	d := time.Since(start)
	e.observer.SimulationDone(kind, qubits, d, err)
	if err != nil {
		e.log.Debug("simulation failed", zap.String("kind", kind), zap.Int("qubits", qubits), zap.Error(err))
		return
	}
	if ce := e.log.Check(zap.DebugLevel, "simulation done"); ce != nil {
		ce.Write(zap.String("kind", kind), zap.Int("qubits", qubits), zap.Duration("elapsed", d))
	}
}
