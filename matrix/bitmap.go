// SPDX-License-Identifier: MIT
// Package matrix: Bitmap, a binary column-compressed encoding backed by
// roaring bitmaps.
//
// Column j holds the set of row ids incident to edge j. Suited to large,
// sparse, unweighted incidence structures: each column compresses
// independently and iteration skips absent rows entirely.

package matrix

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a binary incidence matrix stored as one roaring bitmap per column.
// Row ids are limited to the uint32 range.
type Bitmap struct {
	rows int
	cols []*roaring.Bitmap
}

// NewBitmap returns an all-zero rows×cols Bitmap.
// Errors: ErrBadShape for negative dims or rows beyond the uint32 range.
func NewBitmap(rows, cols int) (*Bitmap, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewBitmap(%d,%d): %w", rows, cols, err)
	}
	if uint64(rows) > math.MaxUint32+1 {
		return nil, fmt.Errorf("NewBitmap(%d,%d): rows exceed uint32: %w", rows, cols, ErrBadShape)
	}
	b := &Bitmap{rows: rows, cols: make([]*roaring.Bitmap, cols)}
	for j := range b.cols {
		b.cols[j] = roaring.New()
	}

	return b, nil
}

// Dims returns (rows, cols).
func (b *Bitmap) Dims() (int, int) {
	return b.rows, len(b.cols)
}

// Set marks (row, col) as an incidence.
// Complexity: O(log n) in the column container.
func (b *Bitmap) Set(row, col int) error {
	if validateIndex(row, b.rows) != nil || validateIndex(col, len(b.cols)) != nil {
		return fmt.Errorf("Bitmap.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	b.cols[col].Add(uint32(row))

	return nil
}

// Has reports whether (row, col) is set. Out-of-range coordinates are unset.
func (b *Bitmap) Has(row, col int) bool {
	if validateIndex(row, b.rows) != nil || validateIndex(col, len(b.cols)) != nil {
		return false
	}

	return b.cols[col].Contains(uint32(row))
}

// ColumnCardinality returns the number of rows set in column col.
func (b *Bitmap) ColumnCardinality(col int) (uint64, error) {
	if err := validateIndex(col, len(b.cols)); err != nil {
		return 0, fmt.Errorf("Bitmap.ColumnCardinality(%d): %w", col, err)
	}

	return b.cols[col].GetCardinality(), nil
}

// ToCOO walks columns in order and each column's rows ascending.
// Complexity: O(cols + nnz).
func (b *Bitmap) ToCOO() (*COO, error) {
	if b == nil {
		return nil, fmt.Errorf("Bitmap.ToCOO: %w", ErrNilMatrix)
	}
	out := &COO{rows: b.rows, cols: len(b.cols)}
	var row int
	for j, col := range b.cols {
		if col == nil {
			continue
		}
		it := col.Iterator()
		for it.HasNext() {
			row = int(it.Next())
			if row >= b.rows {
				return nil, fmt.Errorf("Bitmap.ToCOO: col %d row %d: %w", j, row, ErrOutOfRange)
			}
			out.appendEntry(row, j, 1)
		}
	}

	return out, nil
}
