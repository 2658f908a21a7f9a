// SPDX-License-Identifier: MIT

package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/qsim/tensor"
)

func ExampleComplexTensor_At() {
	m, _ := tensor.New(2, 2)
	_ = m.Set(tensor.C(0, 1), 1, 0)
	v, _ := m.At(1, 0)
	fmt.Println(v)
	_, err := m.At(2, 0)
	fmt.Println(err != nil)
	// Output:
	// 0.000 + 1.000i
	// true
}
