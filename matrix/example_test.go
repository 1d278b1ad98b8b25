// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/matrix"
)

// ExampleDenseOf lowers a CSR pattern matrix and prints it densely.
func ExampleDenseOf() {
	// rows are nodes, columns are edges
	csr, err := matrix.NewCSR(3, 2, []int{0, 1, 3, 3}, []int{0, 0, 1}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, err := matrix.DenseOf(csr)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(d)
	// Output:
	// [1, 0]
	// [1, 1]
	// [0, 0]
}
