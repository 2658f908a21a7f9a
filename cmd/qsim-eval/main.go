// SPDX-License-Identifier: MIT

// Command qsim-eval times a reference workload on one of the simulators.
//
//	qsim-eval -workload qft -qubits 12 -simulator fsv -workers 8
//
// Settings come from an optional YAML file (-config); flags that are set
// explicitly override it.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/qsim/circuits"
	"github.com/katalvlaran/qsim/config"
	"github.com/katalvlaran/qsim/provider"
	"github.com/katalvlaran/qsim/simulator"
	"github.com/katalvlaran/qsim/telemetry"
)

var (
	configPath = flag.String("config", "", "path to a YAML configuration file")
	simKind    = flag.String("simulator", "", "simulator engine: fsv or unitary")
	workload   = flag.String("workload", "", "workload: entanglement, qft or deutsch-jozsa")
	qubits     = flag.Int("qubits", 0, "number of qubits")
	balanced   = flag.Bool("balanced", false, "use the balanced Deutsch-Jozsa oracle")
	workers    = flag.Int("workers", 0, "kernel workers (0/1 serial, -1 all CPUs)")
	warmup     = flag.Int("warmup", 0, "untimed warmup runs")
	iterations = flag.Int("iterations", 0, "timed runs")
	seed       = flag.Int64("seed", 0, "collapse seed")
	debug      = flag.Bool("debug", false, "enable debug logging")
	metrics    = flag.String("prometheus-server", "", "serve /metrics on this address (e.g. localhost:8080)")
)

func main() {
	flag.Parse()
	os.Exit(realMain())
}

// realMain runs the evaluation and returns the process exit code. Deferred
// cleanup, including the logger flush, completes before main exits.
func realMain() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	logger, err := cfg.CreateLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := evaluate(ctx, cfg, logger); err != nil {
		logger.Error("evaluation failed", zap.Error(err))
		return 1
	}
	return 0
}

// loadConfig reads the optional file and applies explicitly set flags.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "simulator":
			cfg.Simulator.Kind = *simKind
		case "workload":
			cfg.Workload.Name = *workload
		case "qubits":
			cfg.Workload.Qubits = *qubits
		case "balanced":
			cfg.Workload.Balanced = *balanced
		case "workers":
			cfg.Simulator.Workers = *workers
		case "warmup":
			w := *warmup
			cfg.Eval.Warmup = &w
		case "iterations":
			cfg.Eval.Iterations = *iterations
		case "seed":
			s := *seed
			cfg.Simulator.Seed = &s
		case "debug":
			cfg.Log.Debug = *debug
		case "prometheus-server":
			cfg.Metrics.ListenAddr = *metrics
		}
	})
	return cfg, cfg.Validate()
}

func evaluate(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := telemetry.NewCollector(reg)

	if addr := cfg.Metrics.ListenAddr; addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			logger.Error("prometheus server stopped", zap.Error(http.ListenAndServe(addr, mux)))
		}()
	}

	c, err := circuits.Build(cfg.Workload.Name, cfg.Workload.Qubits, cfg.Workload.Balanced)
	if err != nil {
		return err
	}
	opts := append(cfg.Simulator.Options(),
		simulator.WithProvider(provider.New(provider.WithLogger(logger))),
		simulator.WithLogger(logger),
		simulator.WithObserver(collector),
	)
	sim, err := simulator.New(cfg.Simulator.Kind, opts...)
	if err != nil {
		return err
	}

	logger.Info("evaluating",
		zap.String("simulator", cfg.Simulator.Kind),
		zap.String("workload", cfg.Workload.Name),
		zap.Int("qubits", c.QubitCount()),
		zap.Int("depth", c.Depth()),
		zap.Int("warmup", cfg.Eval.WarmupRuns()),
		zap.Int("iterations", cfg.Eval.Iterations),
	)
	report, err := run(ctx, sim, c, cfg.Eval.WarmupRuns(), cfg.Eval.Iterations)
	if err != nil {
		return err
	}

	fmt.Println(report)
	for _, k := range collector.Kernels() {
		fmt.Printf("%-18s invocations %-8d time %v\n", k.Name, k.Count, k.Time)
	}
	logger.Info("evaluation done",
		zap.Duration("avg", report.Avg),
		zap.Uint64("peakHeap", report.PeakHeap),
		zap.Uint64("systemMemory", report.SystemMemory),
	)
	return nil
}
