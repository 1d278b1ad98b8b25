// SPDX-License-Identifier: MIT
// Package matrix: compressed sparse row / column encodings.
//
// CSR: row i owns Indices[Indptr[i]:Indptr[i+1]] (column ids) and the same
// span of Data. CSC is the transpose layout: column j owns a span of row ids.
// Data may be nil for pattern matrices.

package matrix

import "fmt"

// CSR is the compressed-sparse-row encoding.
type CSR struct {
	rows, cols int
	Indptr     []int
	Indices    []int
	Data       []float64
}

// CSC is the compressed-sparse-column encoding.
type CSC struct {
	rows, cols int
	Indptr     []int
	Indices    []int
	Data       []float64
}

// NewCSR builds a CSR of the given shape. Slices are copied and validated.
// Errors: ErrBadShape, ErrDimensionMismatch, ErrMalformed, ErrOutOfRange, ErrNaNInf.
// Complexity: O(rows + nnz).
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	m := &CSR{rows: rows, cols: cols, Indptr: cloneInts(indptr), Indices: cloneInts(indices), Data: cloneFloats(data)}
	if _, err := compressedToCOO(rows, cols, m.Indptr, m.Indices, m.Data, false); err != nil {
		return nil, fmt.Errorf("NewCSR: %w", err)
	}

	return m, nil
}

// NewCSC builds a CSC of the given shape. Slices are copied and validated.
// Complexity: O(cols + nnz).
func NewCSC(rows, cols int, indptr, indices []int, data []float64) (*CSC, error) {
	m := &CSC{rows: rows, cols: cols, Indptr: cloneInts(indptr), Indices: cloneInts(indices), Data: cloneFloats(data)}
	if _, err := compressedToCOO(rows, cols, m.Indptr, m.Indices, m.Data, true); err != nil {
		return nil, fmt.Errorf("NewCSC: %w", err)
	}

	return m, nil
}

// Dims returns (rows, cols).
func (m *CSR) Dims() (int, int) { return m.rows, m.cols }

// Dims returns (rows, cols).
func (m *CSC) Dims() (int, int) { return m.rows, m.cols }

// ToCOO expands the row spans without touching absent cells.
// Complexity: O(rows + nnz).
func (m *CSR) ToCOO() (*COO, error) {
	if m == nil {
		return nil, fmt.Errorf("CSR.ToCOO: %w", ErrNilMatrix)
	}
	out, err := compressedToCOO(m.rows, m.cols, m.Indptr, m.Indices, m.Data, false)
	if err != nil {
		return nil, fmt.Errorf("CSR.ToCOO: %w", err)
	}

	return out, nil
}

// ToCOO expands the column spans without touching absent cells.
// Complexity: O(cols + nnz).
func (m *CSC) ToCOO() (*COO, error) {
	if m == nil {
		return nil, fmt.Errorf("CSC.ToCOO: %w", ErrNilMatrix)
	}
	out, err := compressedToCOO(m.rows, m.cols, m.Indptr, m.Indices, m.Data, true)
	if err != nil {
		return nil, fmt.Errorf("CSC.ToCOO: %w", err)
	}

	return out, nil
}

// compressedToCOO validates and expands a compressed layout. With byCol the
// major axis is columns (CSC), otherwise rows (CSR).
func compressedToCOO(rows, cols int, indptr, indices []int, data []float64, byCol bool) (*COO, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	major, minor := rows, cols
	if byCol {
		major, minor = cols, rows
	}
	if data != nil && len(data) != len(indices) {
		return nil, ErrDimensionMismatch
	}
	if err := validateOffsets(indptr, major, len(indices)); err != nil {
		return nil, err
	}

	out := &COO{rows: rows, cols: cols}
	var p, k, idx int
	var v float64
	for p = 0; p < major; p++ {
		for k = indptr[p]; k < indptr[p+1]; k++ {
			idx = indices[k]
			if err := validateIndex(idx, minor); err != nil {
				return nil, fmt.Errorf("slot %d index %d: %w", k, idx, err)
			}
			v = 1
			if data != nil {
				v = data[k]
			}
			if v == 0 {
				continue
			}
			if err := validateValue(v); err != nil {
				return nil, fmt.Errorf("slot %d: %w", k, err)
			}
			if byCol {
				out.appendEntry(idx, p, v)
			} else {
				out.appendEntry(p, idx, v)
			}
		}
	}

	return out, nil
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}

	return append([]int(nil), s...)
}

func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}

	return append([]float64(nil), s...)
}
