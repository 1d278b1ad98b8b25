// SPDX-License-Identifier: MIT

// Package matrix: the Incidence contract and the canonical coordinate form.
// Row index = node, column index = edge. Only non-zero entries are incidences;
// their magnitude is ignored by consumers.
package matrix

// Incidence is any 2-D encoding that can enumerate its non-zero cells.
//
// Implementations in this package: *Dense, *COO, *CSR, *CSC, *LIL, *Bitmap.
type Incidence interface {
	// Dims returns (rows, cols).
	// Complexity: O(1).
	Dims() (rows, cols int)

	// ToCOO validates the encoding and returns its non-zero entries in
	// coordinate form. Explicit zeros are dropped; NaN/±Inf yield ErrNaNInf.
	// The result never aliases the receiver's storage.
	ToCOO() (*COO, error)
}

// Entry is a single non-zero cell.
type Entry struct {
	Row, Col int
	Val      float64
}
