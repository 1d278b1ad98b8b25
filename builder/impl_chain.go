// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_chain.go - Chain(n, k): sliding windows of k consecutive nodes.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 1 ≤ k ≤ n (else ErrBadEdgeSize).
//   - Emits n-k+1 edges {i, ..., i+k-1} for i ascending.
//
// Complexity: O((n-k+1)·k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// Chain returns a Constructor for a k-uniform chain over n nodes.
func Chain(n, k int) Constructor {
	return func(h *hypergraph.Hypergraph[string, string], cfg *builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodChain, n, minNodes, ErrTooFewNodes)
		}
		if k < minEdgeSize || k > n {
			return fmt.Errorf("%s: k=%d not in [1,%d]: %w", MethodChain, k, n, ErrBadEdgeSize)
		}
		window := make([]int, k)
		for i := 0; i+k <= n; i++ {
			for j := range window {
				window[j] = i + j
			}
			if err := cfg.addEdge(h, MethodChain, window); err != nil {
				return err
			}
		}

		return nil
	}
}
