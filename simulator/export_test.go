// SPDX-License-Identifier: MIT

package simulator

// WithTotalMemory replaces the host memory probe.
func WithTotalMemory(total uint64) Option {
	return func(e *engine) { e.totalMemory = func() uint64 { return total } }
}
