// SPDX-License-Identifier: MIT
// Package matrix: conversions between encodings.

package matrix

import "fmt"

// DenseOf materializes any Incidence as a Dense. Pattern cells become 1;
// duplicate coordinates keep the last value.
//
// Errors: ErrNilMatrix, plus whatever m.ToCOO reports.
// Complexity: O(r*c + nnz). Memory: O(r*c).
func DenseOf(m Incidence) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("DenseOf: %w", ErrNilMatrix)
	}
	coo, err := m.ToCOO()
	if err != nil {
		return nil, fmt.Errorf("DenseOf: %w", err)
	}
	rows, cols := coo.Dims()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("DenseOf: %w", err)
	}
	for _, e := range coo.Entries() {
		d.data[e.Row*cols+e.Col] = e.Val
	}

	return d, nil
}
