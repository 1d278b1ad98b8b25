// SPDX-License-Identifier: MIT
// Package: hyperlath/convert
//
// File: export.go
// Role: the way back out. ToIncidence lowers a Hypergraph to a pattern COO
//       with sorted row (node) and column (edge) labels.
// Determinism:
//   - Rows follow sorted node ids, columns follow sorted edge ids.
//   - Entries are emitted column by column, rows ascending within a column.
// Round trip:
//   - FromMatrixLabeled(inc.Mat, inc.Rows, inc.Cols) rebuilds h, except that
//     empty edges (all-zero columns) do not come back.

package convert

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/matrix"
)

// Incidence is a labeled incidence matrix: Mat[i][j] = 1 iff Rows[i] ∈ Cols[j].
type Incidence[N, E comparable] struct {
	Mat  *matrix.COO
	Rows []N
	Cols []E
}

// ToIncidence builds the labeled incidence matrix of h.
//
// Errors: ErrUnsupportedInput for a nil h.
// Complexity: O(V log V + E log E + Σ|e| log |e|).
func ToIncidence[N, E cmp.Ordered](h *hypergraph.Hypergraph[N, E]) (*Incidence[N, E], error) {
	if h == nil {
		return nil, fmt.Errorf("ToIncidence: nil hypergraph: %w", ErrUnsupportedInput)
	}

	nodes := hypergraph.SortedItems(hypergraph.NewSet(h.Nodes()...))
	edges := hypergraph.SortedItems(hypergraph.NewSet(h.Edges()...))
	rowOf := make(map[N]int, len(nodes))
	for i, n := range nodes {
		rowOf[n] = i
	}

	var rows, cols []int
	for j, e := range edges {
		members, _ := h.Members(e)
		for _, n := range hypergraph.SortedItems(members) {
			rows = append(rows, rowOf[n])
			cols = append(cols, j)
		}
	}
	coo, err := matrix.NewCOO(len(nodes), len(edges), rows, cols, nil)
	if err != nil {
		return nil, fmt.Errorf("ToIncidence: %w", err)
	}

	return &Incidence[N, E]{Mat: coo, Rows: nodes, Cols: edges}, nil
}
