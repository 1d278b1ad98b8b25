// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every incidence encoding validates its own structure and reports violations
// with these sentinels; callers match with errors.Is. Constructors and ToCOO
// never panic on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Context is attached at the call site: fmt.Errorf("CSR.ToCOO: %w", ErrX).

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0, rows) / [0, cols).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates parallel slices (or label lists) whose
	// lengths disagree with each other or with the declared shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrMalformed indicates a compressed encoding whose pointer array is not
	// a valid non-decreasing offset table.
	ErrMalformed = errors.New("matrix: malformed compressed encoding")

	// ErrNaNInf signals a NaN or ±Inf entry. Incidence entries must be finite.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil encoding was passed where one is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
