// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// api.go — the orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildHypergraph(opts, cons...). Creates h, resolves
//     cfg, runs cons in order.
//   - Determinism: same options/seed and constructor order ⇒ identical output.
//   - Constructors validate first and never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// Constructor adds hyperedges to h using the resolved configuration.
type Constructor func(h *hypergraph.Hypergraph[string, string], cfg *builderConfig) error

// BuildHypergraph creates an empty Hypergraph, resolves opts and applies every
// constructor in order. The first error is wrapped with "BuildHypergraph: %w"
// and returned; no partial result is returned.
//
// Complexity: Σ cost of each constructor.
func BuildHypergraph(opts []Option, cons ...Constructor) (*hypergraph.Hypergraph[string, string], error) {
	h := hypergraph.New[string, string]()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildHypergraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(h, cfg); err != nil {
			return nil, fmt.Errorf("BuildHypergraph: %w", err)
		}
	}

	return h, nil
}

// EdgeList runs the constructors like BuildHypergraph but returns the edges
// as member lists in id order, for feeding convert.FromEdgeListIDs.
func EdgeList(opts []Option, cons ...Constructor) ([][]string, error) {
	h, err := BuildHypergraph(opts, cons...)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	out := make([][]string, 0, h.NumEdges())
	for i := 0; i < h.NumEdges(); i++ {
		m, ok := h.Members(cfg.edgeIDFn(i))
		if !ok {
			return nil, fmt.Errorf("EdgeList: edge %d missing: %w", i, ErrConstructFailed)
		}
		out = append(out, hypergraph.SortedItems(m))
	}

	return out, nil
}
