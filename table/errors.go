// SPDX-License-Identifier: MIT
// Package: hyperlath/table
//
// errors.go — sentinel errors for tabular input.

package table

import "errors"

var (
	// ErrInvalidColumns indicates a column selector that resolves neither by
	// label nor by position against the frame's schema.
	ErrInvalidColumns = errors.New("table: invalid columns")

	// ErrRaggedRow indicates a row with fewer cells than a selected column needs.
	ErrRaggedRow = errors.New("table: row too short")

	// ErrDuplicateLabel indicates two columns share a non-empty label.
	ErrDuplicateLabel = errors.New("table: duplicate column label")
)
