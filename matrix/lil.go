// SPDX-License-Identifier: MIT
// Package matrix: LIL, the list-of-lists encoding.

package matrix

import "fmt"

// LIL stores, per row, the list of column ids holding an entry and
// (optionally) the parallel list of values. Data == nil means pattern matrix;
// otherwise Data[i] must have the same length as Rows[i].
type LIL struct {
	cols int
	Rows [][]int
	Data [][]float64
}

// NewLIL returns an empty LIL with the given shape.
func NewLIL(rows, cols int) (*LIL, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewLIL(%d,%d): %w", rows, cols, err)
	}

	return &LIL{cols: cols, Rows: make([][]int, rows)}, nil
}

// NewLILFromRows wraps per-row column lists (copied) as a pattern LIL.
func NewLILFromRows(cols int, rows [][]int) (*LIL, error) {
	m, err := NewLIL(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		m.Rows[i] = cloneInts(r)
	}
	if err = m.validate(); err != nil {
		return nil, fmt.Errorf("NewLILFromRows: %w", err)
	}

	return m, nil
}

// Dims returns (rows, cols).
func (m *LIL) Dims() (int, int) {
	return len(m.Rows), m.cols
}

// Set records value v at (row, col), appending to the row list. Setting an
// existing coordinate again stores a duplicate; duplicates collapse into one
// incidence downstream.
// Complexity: O(1) amortized.
func (m *LIL) Set(row, col int, v float64) error {
	if validateIndex(row, len(m.Rows)) != nil || validateIndex(col, m.cols) != nil {
		return fmt.Errorf("LIL.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if err := validateValue(v); err != nil {
		return fmt.Errorf("LIL.Set(%d,%d): %w", row, col, err)
	}
	if m.Data == nil {
		// Materialize values: every existing entry of a pattern LIL is 1.
		m.Data = make([][]float64, len(m.Rows))
		for i, r := range m.Rows {
			m.Data[i] = make([]float64, len(r))
			for k := range r {
				m.Data[i][k] = 1
			}
		}
	}
	m.Rows[row] = append(m.Rows[row], col)
	m.Data[row] = append(m.Data[row], v)

	return nil
}

// ToCOO walks rows in order.
// Complexity: O(rows + nnz).
func (m *LIL) ToCOO() (*COO, error) {
	if m == nil {
		return nil, fmt.Errorf("LIL.ToCOO: %w", ErrNilMatrix)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("LIL.ToCOO: %w", err)
	}
	out := &COO{rows: len(m.Rows), cols: m.cols}
	var v float64
	for i, r := range m.Rows {
		for k, j := range r {
			v = 1
			if m.Data != nil {
				v = m.Data[i][k]
			}
			if v == 0 {
				continue
			}
			out.appendEntry(i, j, v)
		}
	}

	return out, nil
}

func (m *LIL) validate() error {
	if m.cols < 0 {
		return ErrBadShape
	}
	if m.Data != nil && len(m.Data) != len(m.Rows) {
		return ErrDimensionMismatch
	}
	for i, r := range m.Rows {
		if m.Data != nil && len(m.Data[i]) != len(r) {
			return fmt.Errorf("row %d: %w", i, ErrDimensionMismatch)
		}
		for k, j := range r {
			if err := validateIndex(j, m.cols); err != nil {
				return fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			if m.Data != nil {
				if err := validateValue(m.Data[i][k]); err != nil {
					return fmt.Errorf("row %d col %d: %w", i, j, err)
				}
			}
		}
	}

	return nil
}
