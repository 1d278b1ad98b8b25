// SPDX-License-Identifier: MIT
// Package: hyperlath/convert
//
// impl_table.go — bipartite-table builder.
//
// Contract:
//   - Both selectors are resolved before the first row is read, so invalid
//     columns never yield a partially built Hypergraph.
//   - Row order has no effect on the result beyond set contents.
//   - Cells are type-asserted to N / E; a mismatch, or a cell that cannot be
//     a map key (slice, map, func behind an interface id type), is ErrCellType.

package convert

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
	"github.com/katalvlaran/hyperlath/table"
)

// buildTable reads one (node, edge) incidence per row.
// Complexity: O(rows + cols).
func buildTable[N, E comparable](f *table.Frame, nodeSel, edgeSel table.Selector) (*hypergraph.Hypergraph[N, E], error) {
	if f == nil {
		return nil, fmt.Errorf("nil frame: %w", ErrUnsupportedInput)
	}
	nodeCol, err := nodeSel.Resolve(f)
	if err != nil {
		return nil, fmt.Errorf("node column: %w", err)
	}
	edgeCol, err := edgeSel.Resolve(f)
	if err != nil {
		return nil, fmt.Errorf("edge column: %w", err)
	}

	h := hypergraph.New[N, E]()
	var (
		n    N
		e    E
		cell any
	)
	for r := range f.Rows {
		if cell, err = f.Cell(r, nodeCol); err != nil {
			return nil, err
		}
		if n, err = assertCell[N](cell, r, nodeCol); err != nil {
			return nil, err
		}
		if cell, err = f.Cell(r, edgeCol); err != nil {
			return nil, err
		}
		if e, err = assertCell[E](cell, r, edgeCol); err != nil {
			return nil, err
		}
		h.AddIncidence(n, e)
	}

	return h, nil
}

// assertCell converts a cell to T or reports ErrCellType with its position.
func assertCell[T comparable](cell any, row, col int) (T, error) {
	v, ok := cell.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("row %d col %d: %T is not %T: %w", row, col, cell, zero, ErrCellType)
	}
	if !hypergraph.Hashable(v) {
		return v, fmt.Errorf("row %d col %d: unhashable %T: %w", row, col, cell, ErrCellType)
	}

	return v, nil
}
