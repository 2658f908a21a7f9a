// SPDX-License-Identifier: MIT

package kernel_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qsim/kernel"
)

func benchApplyGate(b *testing.B, d kernel.Dispatcher) {
	const n = 20
	re, im := randomState(rand.New(rand.NewSource(1)), n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = kernel.ApplyGate(d, i%n, re, im, gateH)
	}
}

func BenchmarkApplyGate_Serial(b *testing.B)   { benchApplyGate(b, kernel.Serial{}) }
func BenchmarkApplyGate_Parallel(b *testing.B) { benchApplyGate(b, kernel.Parallel{}) }

func BenchmarkMatMul_64(b *testing.B) {
	m, err := kernel.BuildControlGate(kernel.Serial{}, gateH, 0, 5, 6)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kernel.MatMul(kernel.Serial{}, m, m)
	}
}
