// SPDX-License-Identifier: MIT
// Package: hyperlath/convert
//
// impl_edges.go — edge-list and edge-dict builders.
//
// Edge list: ids come from the IDFunc; the container's bulk add owns
// validation (hypergraph.ErrMalformedEdge).
// Edge dict: the caller's map is copied, never adopted. Members are checked
// with hypergraph.Hashable before any set is built. Node memberships are
// derived with Dual and both views are handed to hypergraph.Assemble, which
// creates an attribute record for every id.

package convert

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// buildEdgeList adds every element of edges as one hyperedge.
// Complexity: O(total members).
func buildEdgeList[N, E comparable](edges [][]N, ids hypergraph.IDFunc[E]) (*hypergraph.Hypergraph[N, E], error) {
	h := hypergraph.New[N, E]()
	if err := h.AddEdgesFrom(edges, ids); err != nil {
		return nil, err
	}

	return h, nil
}

// buildEdgeDict copies the explicit-id mapping and derives its dual.
// Complexity: O(E + total members).
func buildEdgeDict[N, E comparable](in dictInput[N, E]) (*hypergraph.Hypergraph[N, E], error) {
	var edges map[E]hypergraph.Set[N]
	if in.sets != nil {
		edges = make(map[E]hypergraph.Set[N], len(in.sets))
		for e, s := range in.sets {
			edges[e] = s.Clone()
		}
	} else {
		edges = make(map[E]hypergraph.Set[N], len(in.lists))
		for e, members := range in.lists {
			for i, n := range members {
				if !hypergraph.Hashable(n) {
					return nil, fmt.Errorf("edge %v member %d: unhashable %T: %w", e, i, n, hypergraph.ErrMalformedEdge)
				}
			}
			edges[e] = hypergraph.NewSet(members...)
		}
	}

	h, err := hypergraph.Assemble(Dual(edges), edges)
	if err != nil {
		// Unreachable unless Dual is broken: the node view is derived from edges.
		return nil, fmt.Errorf("edge dict: %w", err)
	}

	return h, nil
}
