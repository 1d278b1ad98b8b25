// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_random_uniform.go - RandomUniform(n, m, k): m edges of k distinct
// nodes each, drawn uniformly from n nodes.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 1 ≤ k ≤ n and m ≥ 0 (else ErrBadEdgeSize).
//   - cfg.rng must be set (else ErrNeedRandSource).
//   - Edges may repeat the same node set; they still get distinct ids.
//
// Determinism: fixed seed ⇒ identical output (partial Fisher–Yates per edge).
// Complexity: O(m·n).

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// RandomUniform returns a Constructor for a random k-uniform hypergraph.
func RandomUniform(n, m, k int) Constructor {
	return func(h *hypergraph.Hypergraph[string, string], cfg *builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomUniform, n, minNodes, ErrTooFewNodes)
		}
		if k < minEdgeSize || k > n || m < 0 {
			return fmt.Errorf("%s: k=%d m=%d (n=%d): %w", MethodRandomUniform, k, m, n, ErrBadEdgeSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomUniform, ErrNeedRandSource)
		}

		pool := make([]int, n)
		for e := 0; e < m; e++ {
			for i := range pool {
				pool[i] = i
			}
			for i := 0; i < k; i++ {
				j := i + cfg.rng.Intn(n-i)
				pool[i], pool[j] = pool[j], pool[i]
			}
			pick := append([]int(nil), pool[:k]...)
			sort.Ints(pick)
			if err := cfg.addEdge(h, MethodRandomUniform, pick); err != nil {
				return err
			}
		}

		return nil
	}
}
