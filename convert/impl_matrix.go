// SPDX-License-Identifier: MIT
// Package: hyperlath/convert
//
// impl_matrix.go — incidence-matrix builder.
//
// Contract:
//   - The encoding is normalized once via ToCOO; sparse encodings never
//     materialize a dense scan.
//   - Row index → node id, column index → edge id (through labels if given).
//   - Magnitudes are ignored: any non-zero entry is one incidence.
//   - Rows and columns without entries do not appear in the result.
//   - A nil encoding (untyped or typed) is ErrUnsupportedInput; labels that
//     cannot be map keys are ErrUnsupportedInput too.

package convert

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/matrix"
)

// buildMatrix adds one incidence per non-zero entry.
// Complexity: O(nnz) after normalization.
func buildMatrix[N, E comparable](in matrixInput[N, E]) (*hypergraph.Hypergraph[N, E], error) {
	if in.m == nil {
		return nil, fmt.Errorf("nil matrix: %w", ErrUnsupportedInput)
	}
	coo, err := in.m.ToCOO()
	if err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return nil, fmt.Errorf("nil %T: %w: %w", in.m, ErrUnsupportedInput, err)
		}
		return nil, err
	}
	rows, cols := coo.Dims()
	if in.labeled && (len(in.rowLabels) != rows || len(in.colLabels) != cols) {
		return nil, fmt.Errorf("labels %d×%d for a %d×%d matrix: %w",
			len(in.rowLabels), len(in.colLabels), rows, cols, matrix.ErrDimensionMismatch)
	}
	for i, l := range in.rowLabels {
		if !hypergraph.Hashable(l) {
			return nil, fmt.Errorf("row label %d: unhashable %T: %w", i, l, ErrUnsupportedInput)
		}
	}
	for j, l := range in.colLabels {
		if !hypergraph.Hashable(l) {
			return nil, fmt.Errorf("column label %d: unhashable %T: %w", j, l, ErrUnsupportedInput)
		}
	}

	h := hypergraph.New[N, E]()
	var entry matrix.Entry
	for k := 0; k < coo.Len(); k++ {
		entry = coo.At(k)
		h.AddIncidence(in.node(entry.Row), in.edge(entry.Col))
	}

	return h, nil
}
