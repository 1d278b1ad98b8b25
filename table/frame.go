// SPDX-License-Identifier: MIT
// Package: hyperlath/table
//
// frame.go — a minimal in-memory frame: labeled columns over rows of cells.
// Cells are untyped (any); consumers assert the types they need.

package table

import "fmt"

// Frame is a rectangular-by-convention table. Columns holds the labels
// (empty labels resolve only by position). Rows may be ragged; resolving a
// column against a short row yields ErrRaggedRow at read time.
type Frame struct {
	Columns []string
	Rows    [][]any
}

// NewFrame builds a Frame with the given labels and rows (rows are not copied).
// Errors: ErrDuplicateLabel when two non-empty labels collide.
func NewFrame(columns []string, rows [][]any) (*Frame, error) {
	seen := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			continue
		}
		if j, ok := seen[c]; ok {
			return nil, fmt.Errorf("NewFrame: %q at %d and %d: %w", c, j, i, ErrDuplicateLabel)
		}
		seen[c] = i
	}

	return &Frame{Columns: columns, Rows: rows}, nil
}

// NumCols returns the schema width: the number of labels, or, for an
// unlabeled frame, the width of the first row.
func (f *Frame) NumCols() int {
	if len(f.Columns) > 0 {
		return len(f.Columns)
	}
	if len(f.Rows) > 0 {
		return len(f.Rows[0])
	}

	return 0
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return len(f.Rows)
}

// Cell returns Rows[row][col] or ErrRaggedRow when the row is too short.
func (f *Frame) Cell(row, col int) (any, error) {
	r := f.Rows[row]
	if col >= len(r) {
		return nil, fmt.Errorf("Cell(%d,%d): row has %d cells: %w", row, col, len(r), ErrRaggedRow)
	}

	return r[col], nil
}
