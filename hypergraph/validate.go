// SPDX-License-Identifier: MIT
// Package: hyperlath/hypergraph
//
// validate.go — structural self-check of the dual mappings.

package hypergraph

import "fmt"

// Validate checks the container invariants:
//  1. every (n, e) in the node mapping has its mirror in the edge mapping;
//  2. every (e, n) in the edge mapping has its mirror in the node mapping;
//  3. every listed node is incident to at least one edge;
//  4. every node and edge has an attribute record.
//
// Returns the first violation found, wrapped with the offending ids.
// Complexity: O(V + E + I).
func (h *Hypergraph[N, E]) Validate() error {
	for n, es := range h.nodes {
		if len(es) == 0 {
			return fmt.Errorf("Validate: node %v has no edges: %w", n, ErrDualityViolation)
		}
		for e := range es {
			if !h.edges[e].Has(n) {
				return fmt.Errorf("Validate: node %v lists edge %v which lacks it: %w", n, e, ErrDualityViolation)
			}
		}
		if _, ok := h.nodeAttrs[n]; !ok {
			return fmt.Errorf("Validate: node %v: %w", n, ErrMissingAttrs)
		}
	}
	for e, ns := range h.edges {
		for n := range ns {
			if !h.nodes[n].Has(e) {
				return fmt.Errorf("Validate: edge %v lists node %v which lacks it: %w", e, n, ErrDualityViolation)
			}
		}
		if _, ok := h.edgeAttrs[e]; !ok {
			return fmt.Errorf("Validate: edge %v: %w", e, ErrMissingAttrs)
		}
	}

	return nil
}
