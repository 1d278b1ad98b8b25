// SPDX-License-Identifier: MIT
// Package: hyperlath/hypergraph
//
// errors.go — sentinel errors for the hypergraph container.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Methods attach context with fmt.Errorf("Method: ...: %w", ErrX).
//   • Nothing in this package panics on user input.

package hypergraph

import "errors"

var (
	// ErrDuplicateEdge indicates AddEdge was called with an id already present.
	ErrDuplicateEdge = errors.New("hypergraph: duplicate edge id")

	// ErrMalformedEdge indicates a bulk-add entry that cannot become an edge
	// (missing id scheme, an unhashable id or member, or a generated id that
	// collides with an existing edge).
	ErrMalformedEdge = errors.New("hypergraph: malformed edge entry")

	// ErrDualityViolation indicates node→edges and edge→nodes disagree.
	ErrDualityViolation = errors.New("hypergraph: node and edge memberships disagree")

	// ErrMissingAttrs indicates a node or edge without an attribute record.
	ErrMissingAttrs = errors.New("hypergraph: missing attribute record")
)
