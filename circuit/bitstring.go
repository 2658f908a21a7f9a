// SPDX-License-Identifier: MIT

package circuit

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StateFromBitstring parses a basis state written most significant qubit
// first, e.g. "011" is index 3 (qubits 0 and 1 set).
func StateFromBitstring(s string) (int, error) {
	if s == "" {
		return 0, errors.Wrap(ErrBadBitstring, "empty")
	}
	v, err := strconv.ParseUint(s, 2, strconv.IntSize-1)
	if err != nil {
		return 0, errors.Wrapf(ErrBadBitstring, "%q", s)
	}
	return int(v), nil
}

// StateToBitstring formats index as a bitstring zero-padded to width.
// A width smaller than the binary length does not truncate.
func StateToBitstring(index, width int) string {
	b := strconv.FormatUint(uint64(index), 2)
	if len(b) >= width {
		return b
	}
	return strings.Repeat("0", width-len(b)) + b
}
