// Package qsim is an in-memory quantum circuit simulator: build a circuit
// gate by gate, run it on a classical machine, and read back either the full
// amplitude vector or one sampled measurement outcome.
//
// What is inside?
//
//	A small, dependency-injected library that brings together:
//		• Complex scalars and row-major complex tensors
//		• Circuits packed greedily into qubit-disjoint steps
//		• A shared, concurrency-safe cache of gate matrices
//		• Two engines: in-place full-state-vector and per-step unitary matrices
//		• Pure data-parallel kernels behind a pluggable dispatcher
//		• Prometheus telemetry and a YAML-configured evaluation command
//
// Packages:
//
//	tensor/    - Complex and ComplexTensor
//	kernel/    - gate application, Kronecker, MatMul, MatVec, control-gate expansion; Serial/Parallel dispatch
//	circuit/   - Operation (Gate, ControlGate, Function, CustomFunction, Instruction), Step, Circuit
//	provider/  - gate matrix cache and custom function registry
//	qstate/    - State: probabilities, normalization, collapse
//	simulator/ - FullStateVector and Unitary engines
//	circuits/  - reference workloads: GHZ, QFT, Deutsch–Jozsa
//	telemetry/ - Prometheus Observer
//	config/    - YAML configuration
//	cmd/qsim-eval - timing harness
//
// Basis convention: bit q of a basis index is qubit q, so "011" is index 3
// with qubits 0 and 1 set.
//
// Quick example, a Bell pair on three qubits:
//
//	c, _ := circuit.New(3)
//	_ = c.H(0)
//	_ = c.CNOT(0, 1)
//	st, _ := simulator.NewFullStateVector().SimulateFullState(ctx, c)
//	// amplitudes 1/√2 at 000 and 011, 0 elsewhere
package qsim
