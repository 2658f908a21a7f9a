// SPDX-License-Identifier: MIT

// Package circuit is the construction API of the simulator: immutable
// Operation descriptors and the greedy Step/Circuit layering that packs them
// into qubit-disjoint layers.
//
// Operation is a tagged union over five variants:
//
//	Gate            single-qubit unitary (I X Y Z H S T, or R with an angle)
//	ControlGate     a Gate applied when the control qubit is 1
//	Function        standard multi-qubit function over [from, to]
//	CustomFunction  registered matrix over [from, to]
//	Instruction     measure or reset, no unitary meaning
//
// A ControlGate occupies every qubit between control and target inclusive,
// so two control gates whose ranges overlap never share a step.
//
// Layering example on 5 qubits:
//
//	c, _ := circuit.New(5)
//	_ = c.H(0, 1, 2, 3, 4) // step 0: H H H H H
//	_ = c.X(3)             // step 1: . . . X .
//
// Validation is fail-fast. Builders check every qubit before mutating the
// circuit, so a failed call leaves it unchanged.
package circuit
