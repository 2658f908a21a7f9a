// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of the evaluation tool.
package config

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/qsim/circuits"
	"github.com/katalvlaran/qsim/kernel"
	"github.com/katalvlaran/qsim/qstate"
	"github.com/katalvlaran/qsim/simulator"
)

const (
	defaultKind           = simulator.KindFullStateVector
	defaultQubits         = 8
	defaultWarmup         = 20
	defaultIterations     = 9
	defaultMemoryFraction = simulator.DefaultMemoryFraction
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type SimulatorConfig struct {
	// Engine: "fsv" or "unitary".
	Kind string `yaml:"kind"`
	// Kernel workers; 0 or 1 runs kernels serially, negative selects GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Smallest index range handed to one worker.
	Grain int `yaml:"grain"`
	// Share of system memory the unitary engine may use, in (0, 1].
	MemoryFraction float64 `yaml:"memoryFraction"`
	// Collapse seed; unset means time-based.
	Seed *int64 `yaml:"seed"`
}

// WithDefaults returns a copy with missing fields set to their defaults.
func (c SimulatorConfig) WithDefaults() SimulatorConfig {
	cpy := c
	if cpy.Kind == "" {
		cpy.Kind = defaultKind
	}
	if cpy.Grain == 0 {
		cpy.Grain = kernel.DefaultGrain
	}
	if cpy.MemoryFraction == 0 {
		cpy.MemoryFraction = defaultMemoryFraction
	}
	return cpy
}

// Dispatcher returns the kernel dispatcher the settings describe.
func (c SimulatorConfig) Dispatcher() kernel.Dispatcher {
	switch {
	case c.Workers == 0 || c.Workers == 1:
		return kernel.Serial{}
	case c.Workers < 0:
		return kernel.Parallel{Grain: c.Grain}
	}
	return kernel.Parallel{Workers: c.Workers, Grain: c.Grain}
}

// Options translates the settings into simulator options.
func (c SimulatorConfig) Options() []simulator.Option {
	opts := []simulator.Option{
		simulator.WithDispatcher(c.Dispatcher()),
		simulator.WithMemoryFraction(c.MemoryFraction),
	}
	if c.Seed != nil {
		opts = append(opts, simulator.WithSeed(*c.Seed))
	}
	return opts
}

type WorkloadConfig struct {
	// One of circuits.Names().
	Name string `yaml:"name"`
	// Register width.
	Qubits int `yaml:"qubits"`
	// Deutsch–Jozsa oracle type.
	Balanced bool `yaml:"balanced"`
}

func (c WorkloadConfig) WithDefaults() WorkloadConfig {
	cpy := c
	if cpy.Name == "" {
		cpy.Name = circuits.NameQFT
	}
	if cpy.Qubits == 0 {
		cpy.Qubits = defaultQubits
	}
	return cpy
}

type EvalConfig struct {
	// Untimed runs before measuring. nil selects the default; 0 disables warmup.
	Warmup *int `yaml:"warmup"`
	// Timed runs.
	Iterations int `yaml:"iterations"`
}

func (c EvalConfig) WithDefaults() EvalConfig {
	cpy := c
	if cpy.Warmup == nil {
		w := defaultWarmup
		cpy.Warmup = &w
	}
	if cpy.Iterations == 0 {
		cpy.Iterations = defaultIterations
	}
	return cpy
}

// WarmupRuns returns the number of warmup runs, 0 when unset.
func (c EvalConfig) WarmupRuns() int {
	if c.Warmup == nil {
		return 0
	}
	return *c.Warmup
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

type MetricsConfig struct {
	// Address for the Prometheus /metrics endpoint; empty disables it.
	ListenAddr string `yaml:"listenAddr"`
}

type Config struct {
	Simulator SimulatorConfig `yaml:"simulator"`
	Workload  WorkloadConfig  `yaml:"workload"`
	Eval      EvalConfig      `yaml:"eval"`
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// WithDefaults returns a copy with every section defaulted.
func (c Config) WithDefaults() Config {
	cpy := c
	cpy.Simulator = cpy.Simulator.WithDefaults()
	cpy.Workload = cpy.Workload.WithDefaults()
	cpy.Eval = cpy.Eval.WithDefaults()
	return cpy
}

// Default returns the configuration used when no file is given.
func Default() Config { return Config{}.WithDefaults() }

// Load reads path, applies defaults and validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	var c Config
	if err := yaml.UnmarshalStrict(raw, &c); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes c to path as YAML.
func (c Config) Save(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "save config")
	}
	return errors.Wrap(os.WriteFile(path, raw, 0o644), "save config")
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	switch c.Simulator.Kind {
	case simulator.KindFullStateVector, simulator.KindUnitary:
	default:
		return errors.Wrapf(ErrInvalidConfig, "simulator.kind %q", c.Simulator.Kind)
	}
	if c.Simulator.MemoryFraction <= 0 || c.Simulator.MemoryFraction > 1 {
		return errors.Wrapf(ErrInvalidConfig, "simulator.memoryFraction %v", c.Simulator.MemoryFraction)
	}
	if c.Simulator.Grain < 0 {
		return errors.Wrapf(ErrInvalidConfig, "simulator.grain %d", c.Simulator.Grain)
	}
	known := false
	for _, n := range circuits.Names() {
		known = known || n == c.Workload.Name
	}
	if !known {
		return errors.Wrapf(ErrInvalidConfig, "workload.name %q", c.Workload.Name)
	}
	if c.Workload.Qubits < 1 || c.Workload.Qubits > qstate.MaxQubits {
		return errors.Wrapf(ErrInvalidConfig, "workload.qubits %d", c.Workload.Qubits)
	}
	if c.Eval.WarmupRuns() < 0 || c.Eval.Iterations < 1 {
		return errors.Wrapf(ErrInvalidConfig, "eval warmup %d iterations %d", c.Eval.WarmupRuns(), c.Eval.Iterations)
	}
	return nil
}

// CreateLogger builds a development logger when Log.Debug is set and a
// production logger otherwise.
func (c Config) CreateLogger() (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if c.Log.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	return logger, errors.Wrap(err, "create logger")
}
