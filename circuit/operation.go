// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Kind is the operation variant tag.
type Kind uint8

const (
	KindGate Kind = iota
	KindControlGate
	KindFunction
	KindCustomFunction
	KindInstruction
)

func (k Kind) String() string {
	switch k {
	case KindGate:
		return "Gate"
	case KindControlGate:
		return "ControlGate"
	case KindFunction:
		return "Function"
	case KindCustomFunction:
		return "CustomFunction"
	case KindInstruction:
		return "Instruction"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// GateKind names a single-qubit unitary.
type GateKind uint8

const (
	GateI GateKind = iota
	GateX
	GateY
	GateZ
	GateH
	GateS
	GateT
	GateR // phase shift, parametrized by Phi
	gateKindCount
)

var gateNames = [...]string{"I", "X", "Y", "Z", "H", "S", "T", "R"}

func (g GateKind) String() string {
	if g < gateKindCount {
		return gateNames[g]
	}
	return fmt.Sprintf("GateKind(%d)", uint8(g))
}

// FunctionKind names a multi-qubit function over a contiguous range.
type FunctionKind uint8

const (
	FunctionCustom FunctionKind = iota
	FunctionSwap
	functionKindCount
)

func (f FunctionKind) String() string {
	switch f {
	case FunctionCustom:
		return "Custom"
	case FunctionSwap:
		return "Swap"
	}
	return fmt.Sprintf("FunctionKind(%d)", uint8(f))
}

// InstructionKind names a non-unitary instruction.
type InstructionKind uint8

const (
	InstructionMeasure InstructionKind = iota
	InstructionReset
	instructionKindCount
)

func (i InstructionKind) String() string {
	switch i {
	case InstructionMeasure:
		return "Measure"
	case InstructionReset:
		return "Reset"
	}
	return fmt.Sprintf("InstructionKind(%d)", uint8(i))
}

// Operation is an immutable circuit action. Which fields are meaningful
// depends on Kind:
//
//	KindGate            gate, target, phi (GateR only)
//	KindControlGate     gate, target, phi, control
//	KindFunction        function, from, to
//	KindCustomFunction  name, from, to
//	KindInstruction     instruction, target
type Operation struct {
	kind        Kind
	gate        GateKind
	function    FunctionKind
	instruction InstructionKind
	phi         float64
	target      int
	control     int
	from, to    int
	name        string
}

// NewGate returns a single-qubit gate on target.
// GateR must be built with NewPhaseGate.
func NewGate(kind GateKind, target int) (*Operation, error) {
	if kind >= gateKindCount {
		return nil, errors.Wrapf(ErrUnknownKind, "NewGate: %v", kind)
	}
	if kind == GateR {
		return nil, errors.Wrap(ErrPhaseRequired, "NewGate")
	}
	if target < 0 {
		return nil, errors.Wrapf(ErrInvalidQubit, "NewGate: target %d", target)
	}
	return &Operation{kind: KindGate, gate: kind, target: target}, nil
}

// NewGateWithPhase returns a parametrized gate. Only GateR accepts an angle.
func NewGateWithPhase(kind GateKind, target int, phi float64) (*Operation, error) {
	if kind >= gateKindCount {
		return nil, errors.Wrapf(ErrUnknownKind, "NewGateWithPhase: %v", kind)
	}
	if kind != GateR {
		return nil, errors.Wrapf(ErrPhaseNotAllowed, "NewGateWithPhase: %v", kind)
	}
	if target < 0 {
		return nil, errors.Wrapf(ErrInvalidQubit, "NewGateWithPhase: target %d", target)
	}
	return &Operation{kind: KindGate, gate: GateR, target: target, phi: phi}, nil
}

// NewPhaseGate returns the phase shift diag(1, e^{iφ}) on target.
func NewPhaseGate(target int, phi float64) (*Operation, error) {
	return NewGateWithPhase(GateR, target, phi)
}

// NewControlGate wraps gate so that it acts on target only when control is 1.
// The wrapped gate is retargeted to target.
func NewControlGate(gate *Operation, control, target int) (*Operation, error) {
	if gate == nil {
		return nil, errors.Wrap(ErrNilOperation, "NewControlGate")
	}
	if gate.kind != KindGate {
		return nil, errors.Wrapf(ErrNotAGate, "NewControlGate: %v", gate.kind)
	}
	if control < 0 || target < 0 {
		return nil, errors.Wrapf(ErrInvalidQubit, "NewControlGate: control %d target %d", control, target)
	}
	if control == target {
		return nil, errors.Wrapf(ErrSameQubit, "NewControlGate: %d", control)
	}
	return &Operation{
		kind:    KindControlGate,
		gate:    gate.gate,
		phi:     gate.phi,
		target:  target,
		control: control,
	}, nil
}

// NewFunction returns a standard function over the inclusive range [from, to].
func NewFunction(kind FunctionKind, from, to int) (*Operation, error) {
	if kind >= functionKindCount {
		return nil, errors.Wrapf(ErrUnknownKind, "NewFunction: %v", kind)
	}
	if kind == FunctionCustom {
		return nil, errors.Wrap(ErrCustomNameRequired, "NewFunction")
	}
	if from < 0 || from > to || to == math.MaxInt {
		return nil, errors.Wrapf(ErrInvalidRange, "NewFunction: [%d, %d]", from, to)
	}
	return &Operation{kind: KindFunction, function: kind, from: from, to: to}, nil
}

// NewCustomFunction returns a reference to registered function data over [from, to].
func NewCustomFunction(name string, from, to int) (*Operation, error) {
	if name == "" {
		return nil, errors.Wrap(ErrInvalidFunctionName, "NewCustomFunction")
	}
	if from < 0 || from > to || to == math.MaxInt {
		return nil, errors.Wrapf(ErrInvalidRange, "NewCustomFunction: [%d, %d]", from, to)
	}
	return &Operation{kind: KindCustomFunction, function: FunctionCustom, name: name, from: from, to: to}, nil
}

// NewInstruction returns a measure or reset instruction on target.
func NewInstruction(kind InstructionKind, target int) (*Operation, error) {
	if kind >= instructionKindCount {
		return nil, errors.Wrapf(ErrUnknownKind, "NewInstruction: %v", kind)
	}
	if target < 0 {
		return nil, errors.Wrapf(ErrInvalidQubit, "NewInstruction: target %d", target)
	}
	return &Operation{kind: KindInstruction, instruction: kind, target: target}, nil
}

// Kind returns the variant tag.
func (o *Operation) Kind() Kind { return o.kind }

// GateKind returns the gate of a Gate or ControlGate.
func (o *Operation) GateKind() GateKind { return o.gate }

// Phi returns the phase angle of a GateR gate, 0 otherwise.
func (o *Operation) Phi() float64 { return o.phi }

// Target returns the target qubit of a gate, control gate or instruction.
func (o *Operation) Target() int { return o.target }

// Control returns the control qubit of a ControlGate.
func (o *Operation) Control() int { return o.control }

// Range returns the inclusive qubit range of a function.
func (o *Operation) Range() (from, to int) { return o.from, o.to }

// FunctionKind returns the kind of a Function or CustomFunction.
func (o *Operation) FunctionKind() FunctionKind { return o.function }

// Name returns the registered name of a CustomFunction.
func (o *Operation) Name() string { return o.name }

// InstructionKind returns the kind of an Instruction.
func (o *Operation) InstructionKind() InstructionKind { return o.instruction }

// TargetGate returns the plain gate wrapped by a ControlGate, or a copy of
// o itself for a Gate.
func (o *Operation) TargetGate() *Operation {
	return &Operation{kind: KindGate, gate: o.gate, phi: o.phi, target: o.target}
}

// Lowest returns the smallest qubit index the operation occupies.
func (o *Operation) Lowest() int {
	switch o.kind {
	case KindControlGate:
		return min(o.control, o.target)
	case KindFunction, KindCustomFunction:
		return o.from
	}
	return o.target
}

// Size returns the qubit span of the operation.
func (o *Operation) Size() int {
	switch o.kind {
	case KindControlGate:
		d := o.control - o.target
		if d < 0 {
			d = -d
		}
		return d + 1
	case KindFunction, KindCustomFunction:
		return o.to - o.from + 1
	}
	return 1
}

// InvolvedQubits returns the ascending contiguous qubit range the operation
// occupies. A control gate occupies every qubit between control and target.
func (o *Operation) InvolvedQubits() []int {
	lo, n := o.Lowest(), o.Size()
	qs := make([]int, n)
	for i := range qs {
		qs[i] = lo + i
	}
	return qs
}

// Equal reports structural equality.
func (o *Operation) Equal(p *Operation) bool {
	if o == nil || p == nil {
		return o == p
	}
	return *o == *p
}

func (o *Operation) String() string {
	switch o.kind {
	case KindGate:
		if o.gate == GateR {
			return fmt.Sprintf("R(%g)[%d]", o.phi, o.target)
		}
		return fmt.Sprintf("%v[%d]", o.gate, o.target)
	case KindControlGate:
		if o.gate == GateR {
			return fmt.Sprintf("CR(%g)[%d→%d]", o.phi, o.control, o.target)
		}
		return fmt.Sprintf("C%v[%d→%d]", o.gate, o.control, o.target)
	case KindFunction:
		return fmt.Sprintf("%v[%d..%d]", o.function, o.from, o.to)
	case KindCustomFunction:
		return fmt.Sprintf("%s[%d..%d]", o.name, o.from, o.to)
	case KindInstruction:
		return fmt.Sprintf("%v[%d]", o.instruction, o.target)
	}
	return o.kind.String()
}
