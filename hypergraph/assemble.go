// SPDX-License-Identifier: MIT
// Package: hyperlath/hypergraph
//
// assemble.go — adopt prebuilt dual mappings.

package hypergraph

import "fmt"

// Assemble builds a Hypergraph around nodes and edges without copying them;
// the caller hands over ownership. A nil set inside edges becomes an empty
// edge. Every id receives an empty attribute record, then the duality is
// checked with Validate.
//
// Errors: ErrDualityViolation when the two mappings disagree.
// Complexity: O(V + E + I).
func Assemble[N, E comparable](nodes map[N]Set[E], edges map[E]Set[N]) (*Hypergraph[N, E], error) {
	h := New[N, E]()
	if nodes != nil {
		h.nodes = nodes
	}
	if edges != nil {
		h.edges = edges
	}
	for e, s := range h.edges {
		if s == nil {
			h.edges[e] = make(Set[N])
		}
		h.edgeAttrs[e] = make(Attrs)
	}
	for n := range h.nodes {
		h.nodeAttrs[n] = make(Attrs)
	}
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}

	return h, nil
}
