// SPDX-License-Identifier: MIT
// Package matrix: COO, the coordinate-list encoding every other encoding
// normalizes into.

package matrix

import "fmt"

// COO stores one (row, col, val) triple per cell in three parallel slices.
// A nil Val denotes a pattern matrix where every listed cell is 1.
// Duplicate coordinates are allowed; they describe the same incidence.
type COO struct {
	rows, cols int
	Row        []int
	Col        []int
	Val        []float64
}

// NewCOO builds a COO of the given shape from parallel slices. The slices are
// copied. val may be nil (pattern matrix) or must match len(row).
//
// Errors: ErrBadShape, ErrDimensionMismatch (slice lengths),
// ErrOutOfRange (coordinates outside the shape).
// Complexity: O(nnz).
func NewCOO(rows, cols int, row, col []int, val []float64) (*COO, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewCOO(%d,%d): %w", rows, cols, err)
	}
	if len(row) != len(col) || (val != nil && len(val) != len(row)) {
		return nil, fmt.Errorf("NewCOO: len(row)=%d len(col)=%d len(val)=%d: %w",
			len(row), len(col), len(val), ErrDimensionMismatch)
	}
	m := &COO{
		rows: rows,
		cols: cols,
		Row:  append([]int(nil), row...),
		Col:  append([]int(nil), col...),
	}
	if val != nil {
		m.Val = append([]float64(nil), val...)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("NewCOO: %w", err)
	}

	return m, nil
}

// Dims returns (rows, cols).
func (m *COO) Dims() (int, int) {
	return m.rows, m.cols
}

// Len returns the number of stored triples.
func (m *COO) Len() int {
	return len(m.Row)
}

// At returns the k-th stored triple.
func (m *COO) At(k int) Entry {
	v := 1.0
	if m.Val != nil {
		v = m.Val[k]
	}

	return Entry{Row: m.Row[k], Col: m.Col[k], Val: v}
}

// Entries returns every stored triple in storage order.
// Complexity: O(nnz).
func (m *COO) Entries() []Entry {
	out := make([]Entry, m.Len())
	for k := range out {
		out[k] = m.At(k)
	}

	return out
}

// ToCOO re-validates the receiver (fields are exported and may have been
// edited) and returns a copy without explicit zeros.
// Complexity: O(nnz).
func (m *COO) ToCOO() (*COO, error) {
	if m == nil {
		return nil, fmt.Errorf("COO.ToCOO: %w", ErrNilMatrix)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("COO.ToCOO: %w", err)
	}
	out := &COO{rows: m.rows, cols: m.cols}
	var e Entry
	for k := 0; k < m.Len(); k++ {
		e = m.At(k)
		if e.Val == 0 {
			continue
		}
		out.appendEntry(e.Row, e.Col, e.Val)
	}

	return out, nil
}

// validate checks slice lengths, coordinates and values.
func (m *COO) validate() error {
	if err := validateShape(m.rows, m.cols); err != nil {
		return err
	}
	if len(m.Row) != len(m.Col) || (m.Val != nil && len(m.Val) != len(m.Row)) {
		return ErrDimensionMismatch
	}
	for k := range m.Row {
		if validateIndex(m.Row[k], m.rows) != nil || validateIndex(m.Col[k], m.cols) != nil {
			return fmt.Errorf("entry %d at (%d,%d): %w", k, m.Row[k], m.Col[k], ErrOutOfRange)
		}
		if m.Val != nil {
			if err := validateValue(m.Val[k]); err != nil {
				return fmt.Errorf("entry %d at (%d,%d): %w", k, m.Row[k], m.Col[k], err)
			}
		}
	}

	return nil
}

// appendEntry adds a triple to a COO under construction; Val is always
// materialized for normalized output.
func (m *COO) appendEntry(i, j int, v float64) {
	m.Row = append(m.Row, i)
	m.Col = append(m.Col, j)
	m.Val = append(m.Val, v)
}
