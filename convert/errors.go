// SPDX-License-Identifier: MIT
// Package: hyperlath/convert
//
// errors.go — sentinel errors raised by the normalizer itself.
//
// Errors from collaborators keep their own sentinels and are wrapped with %w:
//   • table.ErrInvalidColumns      – tabular selectors did not resolve
//   • hypergraph.ErrMalformedEdge  – edge-list entry could not become an edge
//   • matrix.Err*                  – malformed incidence encodings

package convert

import "errors"

var (
	// ErrUnsupportedInput indicates an input whose shape matches none of the
	// recognized variants (including a nil Input and a variant without payload).
	ErrUnsupportedInput = errors.New("convert: unsupported input shape")

	// ErrCellType indicates a table cell whose dynamic type is not the
	// requested node or edge id type.
	ErrCellType = errors.New("convert: table cell has wrong type")
)
