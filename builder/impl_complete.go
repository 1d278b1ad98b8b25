// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_complete.go - CompleteUniform(n, k): every k-subset of n nodes.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 1 ≤ k ≤ n (else ErrBadEdgeSize).
//   - Emits C(n,k) edges in lexicographic order of their index tuples.
//
// Complexity: O(C(n,k)·k). Keep n small.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// CompleteUniform returns a Constructor for the complete k-uniform hypergraph.
func CompleteUniform(n, k int) Constructor {
	return func(h *hypergraph.Hypergraph[string, string], cfg *builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCompleteUniform, n, minNodes, ErrTooFewNodes)
		}
		if k < minEdgeSize || k > n {
			return fmt.Errorf("%s: k=%d not in [1,%d]: %w", MethodCompleteUniform, k, n, ErrBadEdgeSize)
		}

		// idx is the current combination, advanced like an odometer.
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if err := cfg.addEdge(h, MethodCompleteUniform, idx); err != nil {
				return err
			}
			// Find the rightmost position that can still move right.
			p := k - 1
			for p >= 0 && idx[p] == n-k+p {
				p--
			}
			if p < 0 {
				return nil
			}
			idx[p]++
			for q := p + 1; q < k; q++ {
				idx[q] = idx[q-1] + 1
			}
		}
	}
}
