// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_star.go - Star(n): hub node 0 paired with each leaf 1..n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Emits n-1 two-node edges {hub, leaf_i} in ascending leaf order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// Star returns a Constructor for a star with n nodes.
func Star(n int) Constructor {
	return func(h *hypergraph.Hypergraph[string, string], cfg *builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, minStarNodes, ErrTooFewNodes)
		}
		for i := 1; i < n; i++ {
			if err := cfg.addEdge(h, MethodStar, []int{0, i}); err != nil {
				return err
			}
		}

		return nil
	}
}
