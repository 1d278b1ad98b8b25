// SPDX-License-Identifier: MIT
// Package: hyperlath/codec
//
// errors.go — sentinel errors for the codec package.
//
// Error policy:
//   • Syntax and schema problems wrap ErrDecode, with the parser's own error
//     (YAML error, HCL diagnostics) chained after it.
//   • Shapes no builder understands wrap convert.ErrUnsupportedInput.
//   • Repeated edge ids wrap hypergraph.ErrDuplicateEdge.

package codec

import "errors"

var (
	// ErrDecode indicates a document that does not parse or does not match
	// the expected schema.
	ErrDecode = errors.New("codec: malformed document")

	// ErrUnknownFormat indicates a format name or file extension the codec
	// does not handle.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrAttrValue indicates an attribute value with no plain Go form
	// (for example an HCL unknown value).
	ErrAttrValue = errors.New("codec: unsupported attribute value")
)
