// SPDX-License-Identifier: MIT

package circuit

import "github.com/pkg/errors"

const free = -1

// Step is one layer of qubit-disjoint operations.
//
// slots[q] indexes into ops (the step's operation arena) or is free (-1).
// A multi-qubit operation owns every slot in its range.
type Step struct {
	ops   []Operation
	slots []int
}

// NewStep returns an empty step for a register of qubitCount qubits.
func NewStep(qubitCount int) (*Step, error) {
	if qubitCount < 1 {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "NewStep: %d", qubitCount)
	}
	return newStep(qubitCount), nil
}

func newStep(qubitCount int) *Step {
	slots := make([]int, qubitCount)
	for i := range slots {
		slots[i] = free
	}
	return &Step{slots: slots}
}

// QubitCount returns the register width.
func (s *Step) QubitCount() int { return len(s.slots) }

// OperationCount returns the number of distinct operations in the step.
func (s *Step) OperationCount() int { return len(s.ops) }

func (s *Step) checkQubit(q int) error {
	if q < 0 || q >= len(s.slots) {
		return errors.Wrapf(ErrInvalidQubit, "qubit %d of %d", q, len(s.slots))
	}
	return nil
}

// Operation returns the operation occupying qubit q, or nil when q is free.
func (s *Step) Operation(q int) (*Operation, error) {
	if err := s.checkQubit(q); err != nil {
		return nil, errors.Wrap(err, "Step.Operation")
	}
	if s.slots[q] == free {
		return nil, nil
	}
	op := s.ops[s.slots[q]]
	return &op, nil
}

// IsQubitFree reports whether no operation occupies qubit q.
func (s *Step) IsQubitFree(q int) (bool, error) {
	if err := s.checkQubit(q); err != nil {
		return false, errors.Wrap(err, "Step.IsQubitFree")
	}
	return s.slots[q] == free, nil
}

// CanAdd reports whether every qubit op involves is free.
// Errors: ErrNilOperation, ErrInvalidQubit when op reaches outside the register.
func (s *Step) CanAdd(op *Operation) (bool, error) {
	if op == nil {
		return false, errors.Wrap(ErrNilOperation, "Step.CanAdd")
	}
	lo, n := op.Lowest(), op.Size()
	if n < 1 || lo < 0 || lo >= len(s.slots) || n > len(s.slots)-lo {
		return false, errors.Wrapf(ErrInvalidQubit, "Step.CanAdd: %v on %d qubits", op, len(s.slots))
	}
	for q := lo; q < lo+n; q++ {
		if s.slots[q] != free {
			return false, nil
		}
	}
	return true, nil
}

// Add places op in the step.
// Errors: those of CanAdd, plus ErrQubitOccupied on conflict.
func (s *Step) Add(op *Operation) error {
	ok, err := s.CanAdd(op)
	if err != nil {
		return errors.Wrap(err, "Step.Add")
	}
	if !ok {
		return errors.Wrapf(ErrQubitOccupied, "Step.Add: %v", op)
	}
	idx := len(s.ops)
	s.ops = append(s.ops, *op)
	lo := op.Lowest()
	for q := lo; q < lo+op.Size(); q++ {
		s.slots[q] = idx
	}
	return nil
}

// Operations returns the distinct operations in ascending qubit order.
func (s *Step) Operations() []Operation {
	out := make([]Operation, 0, len(s.ops))
	for q := 0; q < len(s.slots); {
		idx := s.slots[q]
		if idx == free {
			q++
			continue
		}
		out = append(out, s.ops[idx])
		q += s.ops[idx].Size()
	}
	return out
}

// Clone returns a deep copy.
func (s *Step) Clone() *Step {
	return &Step{
		ops:   append([]Operation(nil), s.ops...),
		slots: append([]int(nil), s.slots...),
	}
}

// Equal reports whether both steps hold equal operations on the same qubits.
func (s *Step) Equal(o *Step) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.slots) != len(o.slots) || len(s.ops) != len(o.ops) {
		return false
	}
	for q := range s.slots {
		a, b := s.slots[q], o.slots[q]
		if (a == free) != (b == free) {
			return false
		}
		if a != free && s.ops[a] != o.ops[b] {
			return false
		}
	}
	return true
}
