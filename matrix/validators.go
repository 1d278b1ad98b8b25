// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - One place for the shape/index/value guards shared by every encoding.
//  - Return plain sentinels; callers wrap with method context.

package matrix

import "math"

// validateShape rejects negative dimensions. Zero-sized shapes are legal
// (an empty incidence structure).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}

	return nil
}

// validateIndex checks 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateValue rejects NaN and ±Inf.
func validateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	return nil
}

// validateOffsets checks a compressed pointer table: length major+1, starts at
// 0, never decreases, and ends at nnz.
func validateOffsets(ptr []int, major, nnz int) error {
	if len(ptr) != major+1 {
		return ErrDimensionMismatch
	}
	if ptr[0] != 0 || ptr[major] != nnz {
		return ErrMalformed
	}
	for k := 1; k <= major; k++ {
		if ptr[k] < ptr[k-1] {
			return ErrMalformed
		}
	}

	return nil
}
